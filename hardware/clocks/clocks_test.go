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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/test"
)

func TestPhi2(t *testing.T) {
	hz, err := clocks.Phi2("PAL")
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, hz, 985248.0, 0.000001)

	hz, err = clocks.Phi2("ntsc")
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, hz, 1022727.0, 0.000001)

	_, err = clocks.Phi2("SECAM")
	test.ExpectFailure(t, err)
}
