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

package playmode

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/govern"
)

// number of frames moved by a rewind key press
const rewindStep = 30

func (pl *playmode) doRewind(amount int) {
	tl := pl.rewind.GetTimeline()
	frame := pl.cf.FrameNum

	if amount < 0 && frame <= tl.AvailableStart {
		pl.setState(govern.Paused, govern.PausedAtStart)
		pl.notice("rewind at start")
		return
	}
	if amount > 0 && frame >= tl.AvailableEnd {
		pl.setState(govern.Paused, govern.PausedAtEnd)
		pl.notice("rewind at end")
		return
	}

	if amount < 0 {
		pl.setState(govern.Rewinding, govern.RewindingBackwards)
	} else {
		pl.setState(govern.Rewinding, govern.RewindingForwards)
	}

	fn, err := pl.rewind.GotoFrame(frame + amount)
	if err != nil {
		pl.notice(err.Error())
	} else {
		pl.notice(fmt.Sprintf("frame %d", fn))
	}

	pl.setState(govern.Paused, govern.Normal)
}
