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

// Package controller emulates the buttons on the front of the console and
// the two hand controllers.
//
// The console buttons are read from port 0. The hand controllers are read
// from ports 1 and 4, but only when they have been enabled by writing to
// port 0 with bit 6 clear. Both sets of inputs are active low.
//
// The console buttons can also be operated with the cursor input. The cursor
// moves over a strip of five positions, the first of which resets the
// console. The remaining positions correspond to the four console buttons.
package controller

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/logger"
)

// ID identifies one of the three input devices.
type ID int

// List of input devices.
const (
	Console ID = iota
	HandA
	HandB
	NumDevices
)

func (id ID) String() string {
	switch id {
	case Console:
		return "console"
	case HandA:
		return "hand A"
	case HandB:
		return "hand B"
	}
	return "unknown"
}

// Console buttons. The value is the bit in the console state.
const (
	Time = iota
	Mode
	Hold
	Start
)

// Hand controller directions. The value is the bit in the controller state.
const (
	Right = iota
	Left
	Back
	Forward
	RotateLeft
	RotateRight
	Pull
	Push
)

// Ports read by the CPU.
const (
	PortConsole = 0x00
	PortHandA   = 0x01
	PortHandB   = 0x04
)

// CursorAction is used with CursorInput().
type CursorAction int

// List of cursor actions.
const (
	CursorLeft CursorAction = iota
	CursorRight
	CursorPress
)

// CursorReset is the cursor position that resets the console. The remaining
// positions are the console buttons in order, starting at one.
const CursorReset = 0

// CursorMax is the highest cursor position. The cursor starts here, on the
// start button.
const CursorMax = 4

// Sentinel errors.
const (
	UnknownDevice = "controller: unknown device (%d)"
	UnknownButton = "controller: %s has no button (%d)"
)

// Controllers are the console buttons and the hand controllers.
type Controllers struct {
	// pressed buttons are indicated by a set bit. the values are inverted
	// when read by the CPU
	State [NumDevices]uint8

	// the hand controllers can only be read when enabled
	Enabled bool

	// hand controller A is read from port 4 and controller B from port 1
	// when swapped
	Swapped bool

	// whether the cursor input is currently being used. the value isn't
	// used by the emulation but it is preserved in a snapshot so that the
	// front end can restore its state
	ConsoleInput bool

	CursorX    int
	CursorDown bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers() *Controllers {
	return &Controllers{
		CursorX: CursorMax,
	}
}

// Snapshot creates a copy of the controllers in their current state.
func (c *Controllers) Snapshot() *Controllers {
	n := *c
	return &n
}

func (c *Controllers) String() string {
	return fmt.Sprintf("console=%04b A=%08b B=%08b enabled=%v swapped=%v cursor=%d",
		c.State[Console], c.State[HandA], c.State[HandB], c.Enabled, c.Swapped, c.CursorX)
}

func (c *Controllers) port(id ID) uint8 {
	switch id {
	case HandA:
		if c.Swapped {
			return PortHandB
		}
		return PortHandA
	case HandB:
		if c.Swapped {
			return PortHandA
		}
		return PortHandB
	}
	return PortConsole
}

// ReadPort implements the ports.Input interface.
func (c *Controllers) ReadPort(port uint8) uint8 {
	if port == PortConsole {
		return (c.State[Console] ^ 0xff) & 0x0f
	}
	if c.Enabled {
		switch port {
		case c.port(HandA):
			return c.State[HandA] ^ 0xff
		case c.port(HandB):
			return c.State[HandB] ^ 0xff
		}
	}
	return 0
}

// Notify implements the ports.Peripheral interface.
func (c *Controllers) Notify(port uint8, data uint8) {
	if port == PortConsole {
		c.Enabled = data&0x40 == 0x00
	}
}

// SetButton changes the state of a single button or direction.
func (c *Controllers) SetButton(id ID, button int, pressed bool) error {
	if id < Console || id >= NumDevices {
		return curated.Errorf(UnknownDevice, id)
	}
	if button < 0 || button > 7 || (id == Console && button > Start) {
		return curated.Errorf(UnknownButton, id, button)
	}

	if pressed {
		c.State[id] |= 1 << button
	} else {
		c.State[id] &^= 1 << button
	}

	return nil
}

// SetInput changes the state of every button of a device at once.
func (c *Controllers) SetInput(id ID, state uint8) error {
	if id < Console || id >= NumDevices {
		return curated.Errorf(UnknownDevice, id)
	}
	c.State[id] = state
	return nil
}

// Swap the ports used by the two hand controllers.
func (c *Controllers) Swap() {
	c.Swapped = !c.Swapped
}

// CursorInput operates the console buttons with the cursor. Returns true if
// the console should be reset.
func (c *Controllers) CursorInput(action CursorAction, pressed bool) bool {
	var reset bool

	// the field is exported and may have been set to anything
	if c.CursorX < 0 || c.CursorX > CursorMax {
		logger.Logf(logger.Allow, "controller", "cursor position out of range (%d)", c.CursorX)
		c.CursorX = CursorMax
	}

	switch action {
	case CursorLeft:
		if pressed {
			c.CursorX--
		}
	case CursorRight:
		if pressed {
			c.CursorX++
		}
	case CursorPress:
		c.CursorDown = pressed
		if c.CursorX == CursorReset {
			reset = pressed
		} else {
			if err := c.SetButton(Console, c.CursorX-1, pressed); err != nil {
				logger.Logf(logger.Allow, "controller", "%v", err)
			}
		}
	}

	if c.CursorX < 0 {
		c.CursorX = CursorMax
	} else if c.CursorX > CursorMax {
		c.CursorX = 0
	}

	return reset
}
