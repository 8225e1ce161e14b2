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

// Package diagnostics produces reports of the state of a C64 emulation. It is
// intended for use after the CPU has faulted but can be used at any time.
//
// The Report() function writes a plain text report. The Graph() function
// writes a graphviz description of the CPU state, with the help of
// "github.com/bradleyjkemp/memviz". The output of Graph() can be rendered with
// the dot tool:
//
//	dot -Tpng cpu.dot > cpu.png
package diagnostics
