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

// Package curated creates errors from a formatting pattern and a list of
// values. The pattern is remembered by the error so that callers can test for
// a class of error without comparing strings.
//
// Patterns are declared as string constants by the package that raises the
// error. For example, the memory package declares:
//
//	const KeyboardBufferFull = "memory: keyboard buffer full"
//
// and the caller tests for it with Is():
//
//	err := mem.TypeKey(k)
//	if curated.Is(err, memory.KeyboardBufferFull) {
//		// try again later
//	}
//
// Is() only looks at the outermost pattern. Has() searches the whole chain of
// wrapped curated errors:
//
//	err := curated.Errorf("c64: %v", curated.Errorf(cpubus.AddressError, 0xa123))
//
//	curated.Is(err, cpubus.AddressError)  // false
//	curated.Has(err, cpubus.AddressError) // true
//
// IsAny() reports whether the error was created by Errorf() at all. An error
// that is not curated is usually unexpected.
//
// Wrapped errors that are not curated, such as the *cpu.Fault type, can still
// be reached with errors.As() from the standard library.
//
// The message of a curated error is the list of parts separated by ": ".
// When the first two parts are the same the duplicate is removed. A function
// can therefore wrap an error with its own prefix without checking whether
// the callee already added it:
//
//	curated.Errorf("c64: %v", curated.Errorf("c64: reset failed"))
//
// prints as "c64: reset failed".
package curated
