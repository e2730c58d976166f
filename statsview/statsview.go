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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Launch a new goroutine running the statsview server. The address is in
// the form "host:port".
func Launch(output io.Writer, address string) {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
