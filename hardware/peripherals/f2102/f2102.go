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

// Package f2102 emulates the Fairchild 2102 1024x1 static RAM found in some
// cartridges, such as Videocart 18. It is used as a small area of memory that
// persists for as long as the console is switched on.
//
// The device is accessed through two pairs of ports. Ports 0x20 and 0x24
// receive the high byte of the control word and ports 0x21 and 0x25 the low
// byte. After a write to any of those ports the control word is written
// back to ports 0x24 and 0x25.
//
// The ten bit address is assembled from bits scattered over both bytes of
// the control word:
//
//	address bit  9 8 7 6 5 4 3 2 1 0
//	port         L L L L L L H H L L
//	port bit     7 6 5 3 2 1 1 2 4 0
//
// Where H is the high byte port and L is the low byte port. Bit 0 of the high
// byte selects read (0) or write (1) and bit 3 is the data bit for a write.
// The result of a read appears in bit 7 of port 0x24.
package f2102

import "fmt"

// MemorySize is the number of bits in the device.
const MemorySize = 1024

// Ports used by the device.
const (
	PortHigh         = 0x20
	PortLow          = 0x21
	PortHighReadback = 0x24
	PortLowReadback  = 0x25
)

// Bus is the subset of the port bus used by the device to output its state.
type Bus interface {
	Write(port uint8, data uint8)
}

// F2102 is the EEPROM device.
type F2102 struct {
	bus Bus

	// one bit per address
	Memory [MemorySize]uint8

	// the control word. high byte written to port 0x20/0x24 and low byte
	// written to port 0x21/0x25
	State uint16

	Address uint16

	// true if the last write to the high byte port was a write operation
	Write bool
}

// NewF2102 is the preferred method of initialisation for the F2102 type.
func NewF2102(bus Bus) *F2102 {
	return &F2102{bus: bus}
}

// Snapshot creates a copy of the device in its current state.
func (ee *F2102) Snapshot() *F2102 {
	n := *ee
	return &n
}

// Plumb a new bus into the device.
func (ee *F2102) Plumb(bus Bus) {
	ee.bus = bus
}

func (ee *F2102) String() string {
	rw := "read"
	if ee.Write {
		rw = "write"
	}
	return fmt.Sprintf("state=%04x address=%03x %s", ee.State, ee.Address, rw)
}

// Reset clears the memory and the control word.
func (ee *F2102) Reset() {
	ee.State = 0
	ee.Address = 0
	ee.Memory = [MemorySize]uint8{}
}

// Notify implements the ports.Peripheral interface.
func (ee *F2102) Notify(port uint8, data uint8) {
	switch port {
	case PortHigh, PortHighReadback:
		ee.State = (ee.State & 0x00ff) | uint16(data)<<8
		ee.Write = data&0x01 == 0x01

		// address bits 2 and 3 come from bits 2 and 1 of the high byte
		ee.Address &= 0x3f3
		ee.Address |= uint16(data & 0x04)
		ee.Address |= uint16(data&0x02) << 2

		if ee.Write {
			ee.Memory[ee.Address] = (data >> 3) & 0x01
		} else {
			ee.State = (ee.State & 0x7fff) | uint16(ee.Memory[ee.Address])<<15
		}

	case PortLow, PortLowReadback:
		ee.State = (ee.State & 0xff00) | uint16(data)

		// keep address bits 2 and 3
		ee.Address &= 0x0c
		ee.Address |= uint16(data&0xe0) << 2
		ee.Address |= uint16(data&0x0e) << 3
		ee.Address |= uint16(data&0x10) >> 3
		ee.Address |= uint16(data & 0x01)

	default:
		return
	}

	ee.bus.Write(PortHighReadback, uint8(ee.State>>8))
	ee.bus.Write(PortLowReadback, uint8(ee.State))
}
