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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow is a Permission that always grants permission to log.
var Allow Permission = allow{}

// Sink is implemented by types that accept log entries. The Logger type
// satisfies the interface.
type Sink interface {
	Log(perm Permission, tag string, detail any)
	Logf(perm Permission, tag string, detail string, args ...any)
}

// Discard is a Sink that drops all log entries.
var Discard Sink = discard{}

type discard struct{}

func (_ discard) Log(_ Permission, _ string, _ any)                {}
func (_ discard) Logf(_ Permission, _ string, _ string, _ ...any) {}
