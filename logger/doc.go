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

// Package logger is the central log repository for gopher64. There is a
// single central log available through the package level functions but
// instances of the Logger type can also be created with NewLogger().
//
// Log entries are made with the Log() and Logf() functions. The first argument
// to these functions is a Permission, which indicates whether the environment
// making the request is allowed to create new log entries. The Allow value
// can be used when permission is always granted. The C64 memory type uses the
// Permission mechanism to suppress logging of I/O accesses when the
// preference for I/O logging is false.
//
// Log entries have a tag and a detail. Consecutive entries with the same tag
// and detail are folded into a single entry with a repeat count.
//
// Components that record log entries, but which should not be tied to a
// specific Logger instance, should accept the Sink interface.
package logger
