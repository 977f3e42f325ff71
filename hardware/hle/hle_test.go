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

package hle_test

import (
	"testing"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware/clocks"
	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/hle"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/hardware/video"
	"github.com/jetsetilly/gopherf8/test"
)

type machine struct {
	mc  *cpu.CPU
	mem *memory.Memory
	vd  *video.Video
	h   *hle.HLE
}

func newMachine() *machine {
	m := &machine{
		mem: memory.NewMemory(nil),
		vd:  video.NewVideo(),
	}
	m.mc = cpu.NewCPU(m.mem, ports.NewPorts())
	m.h = hle.NewHLE(nil, m.mc, m.mem, m.vd)
	m.h.PSU1 = true
	m.h.PSU2 = true
	return m
}

// step expects the HLE to be active and for the step to succeed
func (m *machine) step(t *testing.T, ticks int) {
	t.Helper()
	test.DemandEquality(t, m.h.Active(), true)
	n, err := m.h.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, ticks)
}

func TestActive(t *testing.T) {
	m := newMachine()

	m.mc.PC0 = 0x0000
	test.ExpectEquality(t, m.h.Active(), true)
	m.mc.PC0 = 0x03ff
	test.ExpectEquality(t, m.h.Active(), true)
	m.mc.PC0 = 0x0400
	test.ExpectEquality(t, m.h.Active(), true)
	m.mc.PC0 = 0x0800
	test.ExpectEquality(t, m.h.Active(), false)

	m.h.PSU1 = false
	m.mc.PC0 = 0x0100
	test.ExpectEquality(t, m.h.Active(), false)
	m.mc.PC0 = 0x0500
	test.ExpectEquality(t, m.h.Active(), true)

	m.h.PSU2 = false
	test.ExpectEquality(t, m.h.Active(), false)

	// fast screen clear is used even when the firmware is present but only
	// for the known arguments
	m.mc.PC0 = hle.ScreenClear
	m.mc.R[3] = 0x21
	test.ExpectEquality(t, m.h.Active(), false)
	m.h.FastScreenClear = true
	test.ExpectEquality(t, m.h.Active(), true)
	m.mc.R[3] = 0x22
	test.ExpectEquality(t, m.h.Active(), false)

	// a screen clear in progress
	m.mc.PC0 = 0x0900
	m.h.ClearRow = 10
	test.ExpectEquality(t, m.h.Active(), true)
}

func TestColdBoot(t *testing.T) {
	m := newMachine()
	test.DemandSuccess(t, m.mem.Load([]uint8{0x55, 0x2b, 0x20}, memory.CartridgeOrigin))

	m.mc.R[10] = 0x42
	m.step(t, 1459)
	test.ExpectEquality(t, m.mc.A, uint8(0x55))
	test.ExpectEquality(t, m.mc.DC0, uint16(0x0801))
	test.ExpectEquality(t, m.mc.PC0, uint16(0x0802))
	test.ExpectEquality(t, m.mc.R[0x3b], uint8(0x28))
	test.ExpectEquality(t, uint8(m.mc.ISAR), uint8(0x3b))
	test.ExpectEquality(t, m.mc.R[10], uint8(0x00))

	// execution continues in the cartridge
	test.ExpectEquality(t, m.h.Active(), false)
}

func TestColdBootNoCartridge(t *testing.T) {
	m := newMachine()

	n, err := m.h.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, hle.UnsupportedFunction), true)
	test.ExpectEquality(t, n, clocks.TicksPerFrame)
}

func TestDelay(t *testing.T) {
	m := newMachine()
	m.mc.PC0 = hle.Delay
	m.mc.PC1 = 0x1234
	m.mc.R[5] = 3
	m.mc.R[6] = 0x99

	m.step(t, 3*2563)
	test.ExpectEquality(t, m.mc.R[5], uint8(0))
	test.ExpectEquality(t, m.mc.R[6], uint8(0))
	test.ExpectEquality(t, m.mc.A, uint8(0xff))
	test.ExpectEquality(t, m.mc.PC0, uint16(0x1234))

	m.mc.PC0 = hle.Delay
	m.step(t, 0)
}

func TestScreenClear(t *testing.T) {
	m := newMachine()
	for i := range m.vd.RAM {
		m.vd.RAM[i] = 0x02
	}

	m.mc.PC0 = hle.ScreenClear
	m.mc.PC1 = 0x0900
	m.mc.R[3] = 0xd0

	m.step(t, clocks.TicksPerRow)
	test.ExpectEquality(t, m.mc.PC0, uint16(0x0900))
	test.ExpectEquality(t, m.h.ClearRow, uint8(1))
	test.ExpectEquality(t, m.vd.Palette(0), uint8(3))
	test.ExpectEquality(t, m.vd.RAM[1<<7], uint8(0x02))

	for row := 1; row < video.Height; row++ {
		m.step(t, clocks.TicksPerRow)
	}
	test.ExpectEquality(t, m.h.ClearRow, uint8(0))
	test.ExpectEquality(t, m.h.Active(), false)

	for row := 0; row < video.Height; row++ {
		r := row << 7
		test.ExpectEquality(t, m.vd.RAM[r], uint8(0), row)
		test.ExpectEquality(t, m.vd.RAM[r+124], uint8(0), row)
		test.ExpectEquality(t, m.vd.RAM[r+125], uint8(0), row)
		test.ExpectEquality(t, m.vd.RAM[r+126], uint8(3), row)
		test.ExpectEquality(t, m.vd.RAM[r+127], uint8(0), row)
	}
}

func TestFastScreenClear(t *testing.T) {
	m := newMachine()
	m.h.PSU1 = false
	m.h.FastScreenClear = true
	for i := range m.vd.RAM {
		m.vd.RAM[i] = 0x01
	}

	m.mc.PC0 = hle.ScreenClear
	m.mc.PC1 = 0x0900
	m.mc.R[3] = 0x21

	m.step(t, clocks.TicksPerFrame)
	test.ExpectEquality(t, m.h.ClearRow, uint8(0))
	test.ExpectEquality(t, m.mc.PC0, uint16(0x0900))
	for row := 0; row < video.Height; row++ {
		test.ExpectEquality(t, m.vd.Palette(row), uint8(0), row)
		test.ExpectEquality(t, m.vd.RAM[row<<7+50], uint8(0), row)
	}
}

func TestScreenClearUnknownArgument(t *testing.T) {
	m := newMachine()
	m.mc.PC0 = hle.ScreenClear
	m.mc.PC1 = 0x0900
	m.mc.R[3] = 0x10

	n, err := m.h.Step()
	test.ExpectEquality(t, curated.Is(err, hle.UnsupportedFunction), true)
	test.ExpectEquality(t, n, clocks.TicksPerFrame)
	test.ExpectEquality(t, m.mc.PC0, uint16(hle.ScreenClear))
}

func TestPushPop(t *testing.T) {
	m := newMachine()
	m.mc.R[0x3b] = 0x20
	m.mc.R[12] = 0xaa
	m.mc.R[13] = 0xbb
	m.mc.ISAR = 0x15
	m.mc.PC1 = 0x1000

	m.mc.PC0 = hle.PushK
	m.step(t, 48)
	test.ExpectEquality(t, m.mc.R[0x20], uint8(0xaa))
	test.ExpectEquality(t, m.mc.R[0x21], uint8(0xbb))
	test.ExpectEquality(t, m.mc.R[0x3b], uint8(0x22))
	test.ExpectEquality(t, m.mc.A, uint8(0x15))
	test.ExpectEquality(t, m.mc.R[7], uint8(0x15))
	test.ExpectEquality(t, m.mc.PC0, uint16(0x1000))

	m.mc.R[12] = 0x00
	m.mc.R[13] = 0x00
	m.mc.PC0 = hle.PopK
	m.step(t, 50)
	test.ExpectEquality(t, m.mc.R[12], uint8(0xaa))
	test.ExpectEquality(t, m.mc.R[13], uint8(0xbb))
	test.ExpectEquality(t, m.mc.R[0x3b], uint8(0x20))
	test.ExpectEquality(t, m.mc.PC0, uint16(0x1000))
}

func TestPushWrap(t *testing.T) {
	m := newMachine()
	m.mc.R[0x3b] = 0x3f
	m.mc.R[12] = 0x11
	m.mc.R[13] = 0x22

	m.mc.PC0 = hle.PushK
	m.step(t, 48)
	test.ExpectEquality(t, m.mc.R[0x3f], uint8(0x11))
	test.ExpectEquality(t, m.mc.R[0x00], uint8(0x22))
	test.ExpectEquality(t, m.mc.R[0x3b], uint8(0x01))

	m.mc.PC0 = hle.PopK
	m.step(t, 50)
	test.ExpectEquality(t, m.mc.R[12], uint8(0x11))
	test.ExpectEquality(t, m.mc.R[13], uint8(0x22))
	test.ExpectEquality(t, m.mc.R[0x3b], uint8(0x3f))
}

func TestUnsupportedFunction(t *testing.T) {
	m := newMachine()
	m.mc.PC0 = 0x0200

	n, err := m.h.Step()
	test.ExpectEquality(t, n, clocks.TicksPerFrame)
	test.DemandFailure(t, err)
	test.ExpectEquality(t, err.Error(), "Unsupported HLE function: 0x200")
}
