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

// Package prefs facilitates the storage of preferential values in the
// gopher64 system. It is intended to be used by other packages that need
// to store values between program executions.
//
// Preference values are one of the types Bool, Int or String. Each type
// has a pre and post hook, called before and after a new value is set. A
// pre-hook returning an error prevents the value from being changed.
//
// The Disk type stores preference values on disk. Each value is added to the
// Disk with a key:
//
//	dsk, _ := prefs.NewDisk("/path/to/prefs")
//	var v prefs.Bool
//	dsk.Add("hardware.memory.bankedIO", &v)
//	dsk.Load()
//
// The file format is one key/value pair per line:
//
//	hardware.memory.bankedIO :: true
//
// Values can also be specified on the command line with a prefs string. The
// prefs string is a semi-colon separated list of key::value pairs. These are
// pushed onto a stack with PushCommandLineStack() and used by the Disk type
// in preference to the values on disk.
package prefs
