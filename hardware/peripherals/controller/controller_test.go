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

package controller_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/logger"
	"github.com/jetsetilly/gopherf8/test"
)

func TestConsoleButtons(t *testing.T) {
	c := controller.NewControllers()

	// no buttons pressed
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x0f))

	test.ExpectSuccess(t, c.SetButton(controller.Console, controller.Start, true))
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x07))

	test.ExpectSuccess(t, c.SetButton(controller.Console, controller.Time, true))
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x06))

	test.ExpectSuccess(t, c.SetButton(controller.Console, controller.Start, false))
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x0e))

	test.ExpectFailure(t, c.SetButton(controller.Console, controller.Push, true))
	test.ExpectFailure(t, c.SetButton(controller.NumDevices, controller.Left, true))
}

func TestHandControllers(t *testing.T) {
	c := controller.NewControllers()
	test.ExpectSuccess(t, c.SetButton(controller.HandA, controller.Forward, true))
	test.ExpectSuccess(t, c.SetInput(controller.HandB, 0x81))

	// not enabled
	test.ExpectEquality(t, c.ReadPort(controller.PortHandA), uint8(0x00))
	test.ExpectEquality(t, c.ReadPort(controller.PortHandB), uint8(0x00))

	c.Notify(controller.PortConsole, 0x00)
	test.ExpectEquality(t, c.Enabled, true)
	test.ExpectEquality(t, c.ReadPort(controller.PortHandA), uint8(0xf7))
	test.ExpectEquality(t, c.ReadPort(controller.PortHandB), uint8(0x7e))

	// other ports have no input
	test.ExpectEquality(t, c.ReadPort(0x05), uint8(0x00))

	c.Swap()
	test.ExpectEquality(t, c.ReadPort(controller.PortHandA), uint8(0x7e))
	test.ExpectEquality(t, c.ReadPort(controller.PortHandB), uint8(0xf7))
	c.Swap()
	test.ExpectEquality(t, c.Swapped, false)

	// bit 6 disables the hand controllers
	c.Notify(controller.PortConsole, 0x40)
	test.ExpectEquality(t, c.Enabled, false)
	test.ExpectEquality(t, c.ReadPort(controller.PortHandA), uint8(0x00))

	// writes to other ports have no effect
	c.Notify(controller.PortHandA, 0x00)
	test.ExpectEquality(t, c.Enabled, false)
}

func TestCursor(t *testing.T) {
	c := controller.NewControllers()
	test.ExpectEquality(t, c.CursorX, 4)

	// pressing on the start button
	test.ExpectEquality(t, c.CursorInput(controller.CursorPress, true), false)
	test.ExpectEquality(t, c.CursorDown, true)
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x07))
	c.CursorInput(controller.CursorPress, false)
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x0f))

	// cursor wraps in both directions
	c.CursorInput(controller.CursorRight, true)
	test.ExpectEquality(t, c.CursorX, controller.CursorReset)
	c.CursorInput(controller.CursorLeft, true)
	test.ExpectEquality(t, c.CursorX, 4)

	// releasing a direction does not move the cursor
	c.CursorInput(controller.CursorLeft, false)
	test.ExpectEquality(t, c.CursorX, 4)

	c.CursorInput(controller.CursorRight, true)
	test.ExpectEquality(t, c.CursorInput(controller.CursorPress, true), true)
	test.ExpectEquality(t, c.CursorInput(controller.CursorPress, false), false)
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x0f))

	// the time button is at position one
	c.CursorInput(controller.CursorRight, true)
	c.CursorInput(controller.CursorPress, true)
	test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x0e))
}

func TestCursorOutOfRange(t *testing.T) {
	for _, x := range []int{-3, controller.CursorMax + 1, 0xff} {
		logger.Clear()

		c := controller.NewControllers()
		c.CursorX = x

		// the cursor returns to the start button
		test.ExpectEquality(t, c.CursorInput(controller.CursorPress, true), false, x)
		test.ExpectEquality(t, c.CursorX, controller.CursorMax, x)
		test.ExpectEquality(t, c.ReadPort(controller.PortConsole), uint8(0x07), x)

		var logged bool
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				logged = logged || strings.Contains(e.Detail, "cursor position out of range")
			}
		})
		test.ExpectEquality(t, logged, true, x)
	}
}
