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

package f2102_test

import (
	"testing"

	"github.com/jetsetilly/gopherf8/hardware/peripherals/f2102"
	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/test"
)

func newDevice() (*f2102.F2102, *ports.Ports) {
	bus := ports.NewPorts()
	ee := f2102.NewF2102(bus)
	bus.Attach(ee)
	return ee, bus
}

func TestAddressDecoding(t *testing.T) {
	ee, bus := newDevice()

	// address 0x2a5 is spread over the low byte (0xa5) and bit 2 of the
	// high byte
	bus.Notify(f2102.PortLow, 0xa5)
	test.ExpectEquality(t, ee.Address, 0x2a1)

	bus.Notify(f2102.PortHigh, 0x04)
	test.ExpectEquality(t, ee.Address, 0x2a5)

	// bit 1 of the high byte is address bit 3
	bus.Notify(f2102.PortHighReadback, 0x02)
	test.ExpectEquality(t, ee.Address, 0x2a9)

	// writing the low byte keeps address bits 2 and 3
	bus.Notify(f2102.PortLowReadback, 0x00)
	test.ExpectEquality(t, ee.Address, 0x008)
}

func TestWriteAndRead(t *testing.T) {
	ee, bus := newDevice()

	// write a one to address 0x2a5
	bus.Notify(f2102.PortLow, 0xa5)
	bus.Notify(f2102.PortHigh, 0x0d)
	test.ExpectEquality(t, ee.Write, true)
	test.ExpectEquality(t, ee.Memory[0x2a5], 1)
	test.ExpectEquality(t, bus.Read(f2102.PortHighReadback), 0x0d)
	test.ExpectEquality(t, bus.Read(f2102.PortLowReadback), 0xa5)

	// read it back. the bit appears in bit 7 of port 0x24
	bus.Notify(f2102.PortHigh, 0x04)
	test.ExpectEquality(t, ee.Write, false)
	test.ExpectEquality(t, ee.State, 0x84a5)
	test.ExpectEquality(t, bus.Read(f2102.PortHighReadback), 0x84)

	// a different address reads as zero
	bus.Notify(f2102.PortLow, 0x00)
	bus.Notify(f2102.PortHigh, 0x04)
	test.ExpectEquality(t, ee.Address, 0x004)
	test.ExpectEquality(t, bus.Read(f2102.PortHighReadback), 0x04)
}

func TestIgnoresOtherPorts(t *testing.T) {
	ee, bus := newDevice()
	bus.Notify(f2102.PortLow, 0xff)

	bus.Write(f2102.PortHighReadback, 0x99)
	bus.Notify(0x05, 0x12)
	test.ExpectEquality(t, bus.Read(f2102.PortHighReadback), 0x99)
	test.ExpectEquality(t, ee.State, 0x00ff)
}

func TestReset(t *testing.T) {
	ee, bus := newDevice()
	bus.Notify(f2102.PortLow, 0xff)
	bus.Notify(f2102.PortHigh, 0x0f)
	ee.Reset()
	test.ExpectEquality(t, ee.State, 0)
	test.ExpectEquality(t, ee.Address, 0)
	test.ExpectEquality(t, ee.Memory, [f2102.MemorySize]uint8{})
}
