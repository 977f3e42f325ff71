// This file is part of GopherF8.
//
// GopherF8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherF8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherF8.  If not, see <https://www.gnu.org/licenses/>.

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopherf8/govern"
	"github.com/jetsetilly/gopherf8/test"
)

func TestStateIntegrity(t *testing.T) {
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Running, govern.Normal))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Paused, govern.PausedByError))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Rewinding, govern.RewindingForwards))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Running, govern.PausedAtEnd))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Paused, govern.RewindingBackwards))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Ending, govern.PausedAtStart))
}
