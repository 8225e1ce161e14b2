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

// Package tod implements the time-of-day clock of the 6526 CIA.
//
// The clock counts in tenths of a second and presents its value as four BCD
// registers. Reading the tenths register latches the other three registers so
// that a program reading the registers one at a time sees a consistent time.
//
// Setting the clock and the alarm are not supported.
package tod
