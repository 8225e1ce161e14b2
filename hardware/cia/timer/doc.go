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

// Package timer implements the two interval timers of the 6526 CIA.
//
// The timers are not stepped every CPU cycle. Instead they measure the time
// elapsed since a reference point and convert it to a number of phi2 ticks.
// The source of time is the Clock interface so that tests can control the
// passing of time precisely.
package timer
