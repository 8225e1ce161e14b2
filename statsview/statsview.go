// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is the default address of the stats server.
const Address = "localhost:12064"

const url = "/debug/statsview"

// Server is a running stats server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch a new goroutine running the statsview. An empty addr argument will
// use the default Address. The URL of the stats page is written to output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s\n", srv.URL())

	return srv
}

// URL returns the address of the stats page.
func (srv *Server) URL() string {
	return fmt.Sprintf("http://%s%s", srv.addr, url)
}

// Stop the stats server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
