// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gophernes/archivefs"
	"github.com/jetsetilly/gophernes/curated"
)

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load. can be a URL with the http or https
	// scheme
	Filename string

	// empty string or "AUTO" indicates that the mapper number in the header
	// of the file will decide the mapper. otherwise the name of a mapper
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string.
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  "AUTO",
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "AUTO" && mapping != "" {
		cl.Mapping = mapping
	}

	return cl
}

// NewLoaderFromData creates a Loader that has already been loaded with the
// supplied data. The name is used for the Filename field.
func NewLoaderFromData(name string, data []byte) Loader {
	cl := NewLoader(name, "AUTO")
	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))
	return cl
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES", ".UNF"}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use
// that method to load the data. Currently supported schemes are HTTP and
// local files. Local files can be inside a zip archive.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = archivefs.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
