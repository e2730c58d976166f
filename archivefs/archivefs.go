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

package archivefs

import (
	"archive/zip"
	"cmp"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// ArchiveError is the pattern for errors returned by the package.
const ArchiveError = "archivefs: %v"

// file extensions that are treated as archives
var archiveExtensions = []string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive.
func IsArchive(filename string) bool {
	return slices.Contains(archiveExtensions, strings.ToUpper(filepath.Ext(filename)))
}

// Node is an entry in an archive.
type Node struct {
	Name  string
	IsDir bool
	Size  int
}

func (n Node) String() string {
	return n.Name
}

// split the filename into the path to an archive and the path of the file
// inside the archive. the archive is the empty string if the filename does
// not pass through an archive
func split(filename string) (string, string) {
	parts := strings.Split(filepath.ToSlash(filename), "/")
	for i := range parts {
		if IsArchive(parts[i]) {
			archive := filepath.FromSlash(strings.Join(parts[:i+1], "/"))
			inner := strings.Join(parts[i+1:], "/")
			if _, err := os.Stat(archive); err == nil {
				return archive, inner
			}
		}
	}
	return "", filename
}

// ReadFile returns the contents of the named file. The filename can pass
// through an archive.
func ReadFile(filename string) ([]byte, error) {
	archive, inner := split(filename)
	if archive == "" {
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}
		return b, nil
	}

	if inner == "" {
		return nil, curated.Errorf(ArchiveError, "archive is not a file: "+archive)
	}

	zf, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	defer zf.Close()

	f, err := zf.Open(inner)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	return b, nil
}

// List the entries of the archive with one of the supplied extensions. An
// empty list of extensions lists every file. Directories are listed first
// and entries are sorted by name.
func List(archive string, extensions ...string) ([]Node, error) {
	if !IsArchive(archive) {
		return nil, curated.Errorf(ArchiveError, errors.New("not an archive: "+archive))
	}

	zf, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	defer zf.Close()

	var nodes []Node
	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			nodes = append(nodes, Node{Name: strings.TrimSuffix(f.Name, "/"), IsDir: true})
			continue
		}
		if len(extensions) > 0 {
			ext := strings.ToUpper(path.Ext(f.Name))
			if !slices.ContainsFunc(extensions, func(e string) bool { return strings.ToUpper(e) == ext }) {
				continue
			}
		}
		nodes = append(nodes, Node{Name: f.Name, Size: int(f.UncompressedSize64)})
	}

	slices.SortFunc(nodes, func(a, b Node) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return nodes, nil
}
