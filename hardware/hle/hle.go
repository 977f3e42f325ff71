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

// Package hle provides a high level emulation of the console firmware.
//
// The firmware is held in two 1KiB ROMs, one in each of the PSUs. When
// either ROM is missing the routines found in it are emulated instead. Only
// the entry points used by cartridges in practice are emulated:
//
//	0x0000	cold boot
//	0x008f	delay
//	0x00d0	screen clear
//	0x0107	pushk
//	0x011e	popk
//
// The emulated routines return the number of ticks the real routine would
// have taken, as closely as is known, and leave the CPU in the state the
// real routine would leave it in. This includes registers the real routine
// clobbers.
//
// The screen clear routine can also be emulated when the firmware is present
// by setting FastScreenClear. In that case the screen is cleared in a single
// step.
package hle

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/hardware/clocks"
	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/video"
	"github.com/jetsetilly/gopherf8/logger"
)

// UnsupportedFunction is returned by Step() when the CPU enters the
// firmware at an address that can not be emulated.
const UnsupportedFunction = "Unsupported HLE function: 0x%x"

// Entry points of the emulated routines.
const (
	ColdBoot    = 0x0000
	Delay       = 0x008f
	ScreenClear = 0x00d0
	PushK       = 0x0107
	PopK        = 0x011e
)

// the address of the cartridge signature and the value it must have
const (
	signatureAddress = 0x0800
	signature        = 0x55
)

// the scratchpad register used as the stack pointer by pushk and popk
const stackPointer = 0x3b

const (
	coldBootTicks = 1459
	delayTicks    = 2563
	pushKTicks    = 48
	popKTicks     = 50
)

// Memory is the subset of the memory interface required by the firmware
// routines.
type Memory interface {
	Read(address uint16) uint8
}

// Screen is the subset of the video interface required by the screen clear
// routine.
type Screen interface {
	ClearRow(row int, colour uint8, palette uint8)
}

// HLE is the state of the firmware emulation.
type HLE struct {
	env *environment.Environment
	mc  *cpu.CPU
	mem Memory
	scr Screen

	// the firmware halves being emulated
	PSU1 bool
	PSU2 bool

	// clear the screen in one step rather than one row at a time
	FastScreenClear bool

	// the next row to clear. zero if no screen clear is in progress
	ClearRow uint8

	ClearPalette uint8
	ClearColour  uint8
}

// NewHLE is the preferred method of initialisation for the HLE type.
func NewHLE(env *environment.Environment, mc *cpu.CPU, mem Memory, scr Screen) *HLE {
	return &HLE{
		env: env,
		mc:  mc,
		mem: mem,
		scr: scr,
	}
}

// Snapshot creates a copy of the HLE state. The copy must be plumbed before
// it is used.
func (h *HLE) Snapshot() *HLE {
	n := *h
	return &n
}

// Plumb a new environment, CPU, memory and screen into the HLE.
func (h *HLE) Plumb(env *environment.Environment, mc *cpu.CPU, mem Memory, scr Screen) {
	h.env = env
	h.mc = mc
	h.mem = mem
	h.scr = scr
}

func (h *HLE) String() string {
	return fmt.Sprintf("psu1=%v psu2=%v fast=%v row=%d pal=%d colour=%d",
		h.PSU1, h.PSU2, h.FastScreenClear, h.ClearRow, h.ClearPalette, h.ClearColour)
}

// Active returns true if the next step should be taken by the HLE rather
// than by the CPU.
func (h *HLE) Active() bool {
	if h.ClearRow != 0 {
		return true
	}

	pc := h.mc.PC0

	if pc < 0x0400 && h.PSU1 {
		return true
	}
	if pc >= 0x0400 && pc < 0x0800 && h.PSU2 {
		return true
	}

	if pc == ScreenClear && h.FastScreenClear {
		switch h.mc.R[3] {
		case 0xc6, 0x21, 0xd0:
			return true
		}
	}

	return false
}

func (h *HLE) clearRow(row int) {
	h.scr.ClearRow(row, h.ClearColour, h.ClearPalette)
}

// the result of an unsupported function. the cost of a full frame ensures
// the frame ends immediately
func (h *HLE) unsupported() (int, error) {
	logger.Logf(h.env, "hle", UnsupportedFunction, h.mc.PC0)
	return clocks.TicksPerFrame, curated.Errorf(UnsupportedFunction, h.mc.PC0)
}

// Step performs the routine at the current PC0, or the next row of a screen
// clear in progress. Returns the number of ticks taken.
//
// An error is returned if the routine can not be emulated. Emulation should
// not continue in that case.
func (h *HLE) Step() (int, error) {
	if h.ClearRow != 0 {
		h.clearRow(int(h.ClearRow))
		h.ClearRow++
		if h.ClearRow == video.Height {
			h.ClearRow = 0
		}
		return clocks.TicksPerRow, nil
	}

	mc := h.mc

	switch mc.PC0 {
	case ColdBoot:
		mc.R = [cpu.ScratchpadSize]uint8{}
		if h.mem.Read(signatureAddress) != signature {
			return h.unsupported()
		}
		mc.A = signature
		mc.DC0 = signatureAddress + 1
		mc.PC0 = signatureAddress + 2
		mc.R[stackPointer] = 0x28
		mc.ISAR.Load(stackPointer)
		return coldBootTicks, nil

	case Delay:
		ticks := delayTicks * int(mc.R[5])
		mc.R[5] = 0
		mc.R[6] = 0
		mc.A = 0xff
		mc.PC0 = mc.PC1
		return ticks, nil

	case ScreenClear:
		// the colour and palette for each of the known arguments has been
		// determined by observation
		switch mc.R[3] {
		case 0xd0, 0xc6:
			h.ClearPalette = 3
			h.ClearColour = 0
		case 0x21:
			h.ClearPalette = 0
			h.ClearColour = 0
		default:
			return h.unsupported()
		}

		mc.PC0 = mc.PC1

		if h.FastScreenClear {
			for row := 0; row < video.Height; row++ {
				h.clearRow(row)
			}
			return clocks.TicksPerFrame, nil
		}

		h.clearRow(0)
		h.ClearRow = 1
		return clocks.TicksPerRow, nil

	case PushK:
		sp := mc.R[stackPointer]
		mc.R[sp&0x3f] = mc.R[12]
		mc.R[(sp+1)&0x3f] = mc.R[13]
		mc.R[stackPointer] = (sp + 2) & 0x3f
		h.clobber()
		mc.PC0 = mc.PC1
		return pushKTicks, nil

	case PopK:
		sp := mc.R[stackPointer]
		mc.R[13] = mc.R[(sp-1)&0x3f]
		mc.R[12] = mc.R[(sp-2)&0x3f]
		mc.R[stackPointer] = (sp - 2) & 0x3f
		h.clobber()
		mc.PC0 = mc.PC1
		return popKTicks, nil
	}

	return h.unsupported()
}

// the real pushk and popk routines leave the ISAR in A and R7
func (h *HLE) clobber() {
	h.mc.A = uint8(h.mc.ISAR)
	h.mc.R[7] = uint8(h.mc.ISAR)
}
