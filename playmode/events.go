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
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/govern"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/logger"
	"github.com/jetsetilly/gopherf8/screenshot"
)

// UserInterrupt is returned by Play() when ctrl-c is pressed.
const UserInterrupt = "playmode: user interrupt"

func (pl *playmode) keyHandler(key string) (govern.State, error) {
	if bt, ok := buttons[key]; ok {
		pl.press(bt)
		return pl.state, nil
	}

	switch key {
	case keyQuit:
		return govern.Ending, nil
	case keyInterrupt:
		return govern.Ending, curated.Errorf(UserInterrupt)
	case keyPause:
		if pl.state == govern.Paused {
			pl.setState(govern.Running, govern.Normal)
		} else {
			pl.setState(govern.Paused, govern.Normal)
		}
	case keyReset:
		pl.cf.Reset()
		pl.notice("reset")
	case keyRewindBack:
		pl.doRewind(-rewindStep)
	case keyRewindFwd:
		pl.doRewind(rewindStep)
	case keySwap:
		pl.cf.Controllers.Swap()
		pl.notice("controllers swapped")
	case keyScreenshot:
		fn := screenshot.Filename(pl.cf.Cartridge.ShortName())
		err := screenshot.Save(pl.cf.Video.Visible(), fn)
		if err != nil {
			logger.Log(pl.cf.Env, "playmode", err)
			pl.notice("screenshot failed")
		} else {
			pl.notice(fn)
		}
	case keyCursorL:
		pl.cf.ConsoleInput(controller.CursorLeft, true)
	case keyCursorR:
		pl.cf.ConsoleInput(controller.CursorRight, true)
	case keyCursorP:
		pl.cf.ConsoleInput(controller.CursorPress, true)
		pl.cursorHeld = holdFrames
	}

	return pl.state, nil
}

// called at the end of every frame
func (pl *playmode) eventHandler() (govern.State, error) {
	for {
		select {
		case <-pl.intChan:
			return govern.Ending, curated.Errorf(UserInterrupt)

		case b, ok := <-pl.keys:
			if !ok {
				return govern.Ending, nil
			}
			for _, k := range splitKeys(b) {
				st, err := pl.keyHandler(k)
				if err != nil || st == govern.Ending {
					return st, err
				}
			}

		default:
			return pl.state, nil
		}
	}
}
