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
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
)

// the number of frames a button is held for after a key press. the terminal
// does not report key releases
const holdFrames = 8

type button struct {
	id     controller.ID
	button int
}

// keys for the console buttons and the hand controllers
var buttons = map[string]button{
	"1": {id: controller.Console, button: controller.Time},
	"2": {id: controller.Console, button: controller.Mode},
	"3": {id: controller.Console, button: controller.Hold},
	"4": {id: controller.Console, button: controller.Start},

	"\x1b[A": {id: controller.HandA, button: controller.Forward},
	"\x1b[B": {id: controller.HandA, button: controller.Back},
	"\x1b[C": {id: controller.HandA, button: controller.Right},
	"\x1b[D": {id: controller.HandA, button: controller.Left},
	",":      {id: controller.HandA, button: controller.RotateLeft},
	".":      {id: controller.HandA, button: controller.RotateRight},
	"/":      {id: controller.HandA, button: controller.Pull},
	" ":      {id: controller.HandA, button: controller.Push},

	"w": {id: controller.HandB, button: controller.Forward},
	"s": {id: controller.HandB, button: controller.Back},
	"d": {id: controller.HandB, button: controller.Right},
	"a": {id: controller.HandB, button: controller.Left},
	"q": {id: controller.HandB, button: controller.RotateLeft},
	"e": {id: controller.HandB, button: controller.RotateRight},
	"f": {id: controller.HandB, button: controller.Pull},
	"g": {id: controller.HandB, button: controller.Push},
}

// keys that control the emulation rather than the console
const (
	keyQuit       = "\x1b"
	keyInterrupt  = "\x03"
	keyPause      = "p"
	keyReset      = "r"
	keyRewindBack = "["
	keyRewindFwd  = "]"
	keyScreenshot = "x"
	keySwap       = "t"
	keyCursorL    = "<"
	keyCursorR    = ">"
	keyCursorP    = "\r"
)

// splitKeys separates the bytes read from the terminal into individual key
// presses. escape sequences for the arrow keys are kept together
func splitKeys(b []byte) []string {
	var keys []string
	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b && i+2 < len(b) && b[i+1] == '[' {
			keys = append(keys, string(b[i:i+3]))
			i += 2
			continue
		}
		keys = append(keys, string(b[i:i+1]))
	}
	return keys
}

// press the button and start the hold countdown
func (pl *playmode) press(bt button) {
	_ = pl.cf.Controllers.SetButton(bt.id, bt.button, true)
	pl.held[bt] = holdFrames
}

// release buttons whose hold countdown has expired. called once per frame
func (pl *playmode) releaseHeld() {
	for bt, n := range pl.held {
		n--
		if n <= 0 {
			_ = pl.cf.Controllers.SetButton(bt.id, bt.button, false)
			delete(pl.held, bt)
		} else {
			pl.held[bt] = n
		}
	}

	if pl.cursorHeld > 0 {
		pl.cursorHeld--
		if pl.cursorHeld == 0 {
			pl.cf.ConsoleInput(controller.CursorPress, false)
		}
	}
}
