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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/test"
)

// a peripheral that responds to a single port by copying the written value
// to another port
type echo struct {
	bus  *ports.Ports
	port uint8
	to   uint8
	seen int
}

func (e *echo) Notify(port uint8, data uint8) {
	if port != e.port {
		return
	}
	e.seen++
	e.bus.Write(e.to, data)
}

type input struct {
	port  uint8
	value uint8
}

func (i input) ReadPort(port uint8) uint8 {
	if port == i.port {
		return i.value
	}
	return 0
}

func TestBroadcast(t *testing.T) {
	bus := ports.NewPorts()
	a := &echo{bus: bus, port: 1, to: 10}
	b := &echo{bus: bus, port: 2, to: 11}
	bus.Attach(a, b)

	bus.Notify(1, 0x42)
	test.ExpectEquality(t, a.seen, 1)
	test.ExpectEquality(t, b.seen, 0)
	test.ExpectEquality(t, bus.Read(1), 0x42)
	test.ExpectEquality(t, bus.Read(10), 0x42)
	test.ExpectEquality(t, bus.Read(11), 0x00)

	// a bare write is not seen by the peripherals
	bus.Write(2, 0x43)
	test.ExpectEquality(t, b.seen, 0)
	test.ExpectEquality(t, bus.Read(2), 0x43)
}

func TestAttachmentOrder(t *testing.T) {
	run := func(order ...ports.Peripheral) [ports.NumPorts]uint8 {
		bus := ports.NewPorts()
		for _, p := range order {
			p.(*echo).bus = bus
		}
		bus.Attach(order...)
		bus.Notify(1, 0x01)
		bus.Notify(2, 0x02)
		bus.Notify(3, 0x03)
		return bus.Latches
	}

	a := run(&echo{port: 1, to: 20}, &echo{port: 2, to: 21})
	b := run(&echo{port: 2, to: 21}, &echo{port: 1, to: 20})
	test.ExpectEquality(t, a, b)
}

func TestInput(t *testing.T) {
	bus := ports.NewPorts()
	bus.AttachInput(input{port: 0, value: 0x0f})

	bus.Write(0, 0x40)
	test.ExpectEquality(t, bus.Read(0), 0x4f)
	test.ExpectEquality(t, bus.Read(1), 0x00)

	// ports beyond the end of the bus are not latched
	bus.Notify(0x80, 0xff)
	test.ExpectEquality(t, bus.Read(0x80), 0x00)

	bus.Reset()
	test.ExpectEquality(t, bus.Read(0), 0x0f)
}
