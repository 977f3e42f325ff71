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

package hardware

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware/audio"
	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/cpu/registers"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/f2102"
	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/hardware/video"
	"github.com/jetsetilly/gopherf8/logger"
)

// SnapshotTooShort is returned by Deserialise() when the data is too short
// to be a serialised state.
const SnapshotTooShort = "channelf: snapshot too short (%d bytes, need at least %d)"

// SnapshotInvalid is returned by Deserialise() when the data contains a value
// that the emulation could never have produced.
const SnapshotInvalid = "channelf: snapshot invalid (%s)"

// size of each section of the serialised state, in the order they appear
const (
	memorySection     = memory.Size + 1
	scratchpadSection = cpu.ScratchpadSize
	videoSection      = video.Width*video.Height + 4
	portsSection      = ports.NumPorts
	eepromSection     = f2102.MemorySize + 5
	cpuSection        = 11
	hleSection        = 7
	audioSection      = 17
	debtSection       = 4
	uiSection         = int(controller.NumDevices) + 5
)

// LegacySnapshotSize is the size of a serialised state that predates the
// console UI section. A state of this size can be restored, in which case
// the controllers are restored to a zero state.
const LegacySnapshotSize = memorySection + scratchpadSection + videoSection + portsSection +
	eepromSection + cpuSection + hleSection + audioSection + debtSection

// SnapshotSize is the size of the data returned by Serialise().
const SnapshotSize = LegacySnapshotSize + uiSection

type serialiser struct {
	data []byte
}

func (s *serialiser) bytes(b []uint8) {
	s.data = append(s.data, b...)
}

func (s *serialiser) u8(v uint8) {
	s.data = append(s.data, v)
}

func (s *serialiser) bool(v bool) {
	if v {
		s.u8(1)
	} else {
		s.u8(0)
	}
}

func (s *serialiser) u16(v uint16) {
	s.data = binary.BigEndian.AppendUint16(s.data, v)
}

func (s *serialiser) u32(v uint32) {
	s.data = binary.BigEndian.AppendUint32(s.data, v)
}

func (s *serialiser) u64(v uint64) {
	s.data = binary.BigEndian.AppendUint64(s.data, v)
}

type deserialiser struct {
	data []byte
	idx  int
}

func (d *deserialiser) skip(n int) {
	d.idx += n
}

func (d *deserialiser) bytes(n int) []uint8 {
	b := d.data[d.idx : d.idx+n]
	d.idx += n
	return b
}

func (d *deserialiser) u8() uint8 {
	return d.bytes(1)[0]
}

func (d *deserialiser) bool() bool {
	return d.u8() != 0
}

func (d *deserialiser) u16() uint16 {
	return binary.BigEndian.Uint16(d.bytes(2))
}

func (d *deserialiser) u32() uint32 {
	return binary.BigEndian.Uint32(d.bytes(4))
}

func (d *deserialiser) u64() uint64 {
	return binary.BigEndian.Uint64(d.bytes(8))
}

// Serialise the state of the console. Multi-byte values are stored most
// significant byte first. The size of the returned data is always
// SnapshotSize.
func (cf *ChannelF) Serialise() []byte {
	s := &serialiser{data: make([]byte, 0, SnapshotSize)}

	// memory
	s.bytes(cf.Mem.Image())
	s.u8(cf.Mem.Bank())

	// scratchpad
	s.bytes(cf.CPU.R[:])

	// video
	s.bytes(cf.Video.RAM[:])
	s.u8(cf.Video.X)
	s.u8(cf.Video.Y)
	s.u8(cf.Video.Colour)
	s.u8(cf.Video.ARM)

	// ports
	s.bytes(cf.Ports.Latches[:])

	// eeprom
	s.bytes(cf.EEPROM.Memory[:])
	s.u16(cf.EEPROM.State)
	s.u16(cf.EEPROM.Address)
	s.bool(cf.EEPROM.Write)

	// cpu
	s.u8(cf.CPU.A)
	s.u8(uint8(cf.CPU.W))
	s.u8(uint8(cf.CPU.ISAR))
	s.u16(cf.CPU.PC0)
	s.u16(cf.CPU.PC1)
	s.u16(cf.CPU.DC0)
	s.u16(cf.CPU.DC1)

	// hle. the final byte is reserved
	s.bool(cf.HLE.PSU1)
	s.bool(cf.HLE.PSU2)
	s.bool(cf.HLE.FastScreenClear)
	s.u8(cf.HLE.ClearRow)
	s.u8(cf.HLE.ClearPalette)
	s.u8(cf.HLE.ClearColour)
	s.u8(0)

	// audio
	s.u8(cf.Audio.Tone)
	s.u64(math.Float64bits(cf.Audio.Amplitude))
	s.u16(uint16(cf.Audio.Phase))
	s.u32(uint32(cf.Audio.Ticks))
	s.u16(uint16(cf.Audio.Cursor))

	// tick debt. the ticks executed in the current frame are stored so that
	// a state taken part way through a frame can be restored
	s.u32(uint32(int32(cf.Ticks)))

	// console ui
	s.bool(cf.Controllers.Enabled)
	s.bool(cf.Controllers.Swapped)
	s.bool(cf.Controllers.ConsoleInput)
	s.u8(uint8(cf.Controllers.CursorX))
	s.bool(cf.Controllers.CursorDown)
	s.bytes(cf.Controllers.State[:])

	return s.data
}

// checks the fields that the emulation uses as indexes or loop counters. the
// data must be at least SnapshotSize bytes long
func checkSnapshot(data []byte) error {
	d := &deserialiser{data: data}

	d.skip(memorySection + scratchpadSection + videoSection + portsSection + eepromSection + cpuSection)

	// hle
	d.skip(3)
	if row := d.u8(); row >= video.Height {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("screen clear row %d", row))
	}
	d.skip(3)

	// audio
	if tone := d.u8(); tone > 3 {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("tone %d", tone))
	}
	if amp := math.Float64frombits(d.u64()); math.IsNaN(amp) || amp < 0 || amp > 1 {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("amplitude %v", amp))
	}
	if phase := d.u16(); phase >= audio.WaveformLength {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("audio phase %d", phase))
	}
	if ticks := d.u32(); ticks > audio.TicksPerSample {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("audio ticks %d", ticks))
	}
	d.skip(2)

	// the tick debt is never negative at the end of a frame or part way
	// through one
	if ticks := int32(d.u32()); ticks < 0 {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("ticks %d", ticks))
	}

	// console ui
	d.skip(3)
	if x := d.u8(); x > controller.CursorMax {
		return curated.Errorf(SnapshotInvalid, fmt.Sprintf("cursor position %d", x))
	}

	return nil
}

// Deserialise restores a state created by Serialise(). Data that is shorter
// than LegacySnapshotSize is rejected without changing the console, as is
// data containing values that the emulation could not have produced. Data
// that is longer than SnapshotSize is accepted and the excess ignored.
//
// The halted condition of the console is cleared. The FastScreenClear
// setting of the firmware emulation is taken from the preferences and not
// from the state.
func (cf *ChannelF) Deserialise(data []byte) error {
	if len(data) < LegacySnapshotSize {
		return curated.Errorf(SnapshotTooShort, len(data), LegacySnapshotSize)
	}

	n := len(data)

	// sections missing from a legacy state are zero
	if n < SnapshotSize {
		padded := make([]byte, SnapshotSize)
		copy(padded, data)
		data = padded
	}

	if err := checkSnapshot(data); err != nil {
		return err
	}

	d := &deserialiser{data: data}

	copy(cf.Mem.Image(), d.bytes(memory.Size))
	cf.Mem.RestoreBank(d.u8())

	copy(cf.CPU.R[:], d.bytes(cpu.ScratchpadSize))

	copy(cf.Video.RAM[:], d.bytes(len(cf.Video.RAM)))
	cf.Video.X = d.u8() & (video.Width - 1)
	cf.Video.Y = d.u8() & (video.Height - 1)
	cf.Video.Colour = d.u8() & 0x03
	cf.Video.ARM = d.u8()

	copy(cf.Ports.Latches[:], d.bytes(ports.NumPorts))

	copy(cf.EEPROM.Memory[:], d.bytes(f2102.MemorySize))
	cf.EEPROM.State = d.u16()
	cf.EEPROM.Address = d.u16() & (f2102.MemorySize - 1)
	cf.EEPROM.Write = d.bool()

	cf.CPU.A = d.u8()
	cf.CPU.W = registers.StatusRegister(d.u8())
	cf.CPU.ISAR.Load(d.u8())
	cf.CPU.PC0 = d.u16()
	cf.CPU.PC1 = d.u16()
	cf.CPU.DC0 = d.u16()
	cf.CPU.DC1 = d.u16()
	cf.CPU.LastResult.Reset()

	cf.HLE.PSU1 = d.bool()
	cf.HLE.PSU2 = d.bool()
	cf.HLE.FastScreenClear = d.bool()
	cf.HLE.ClearRow = d.u8()
	cf.HLE.ClearPalette = d.u8()
	cf.HLE.ClearColour = d.u8()
	_ = d.u8()

	cf.Audio.Tone = d.u8()
	cf.Audio.Amplitude = math.Float64frombits(d.u64())
	cf.Audio.Phase = int(d.u16())
	cf.Audio.Ticks = int(d.u32())
	cf.Audio.Cursor = int(d.u16())

	cf.Ticks = int(int32(d.u32()))
	cf.Debt = cf.Ticks

	cf.Controllers.Enabled = d.bool()
	cf.Controllers.Swapped = d.bool()
	cf.Controllers.ConsoleInput = d.bool()
	cf.Controllers.CursorX = int(d.u8())
	cf.Controllers.CursorDown = d.bool()
	copy(cf.Controllers.State[:], d.bytes(int(controller.NumDevices)))

	cf.HLE.FastScreenClear = cf.Env.Prefs.FastScreenClear.Get().(bool)
	cf.Video.Resolve()
	cf.halted = nil

	logger.Logf(cf.Env, "channelf", "state restored (%d bytes)", n)

	return nil
}
