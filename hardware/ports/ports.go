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

package ports

import (
	"fmt"
	"strings"
)

// NumPorts is the number of ports on the bus.
const NumPorts = 64

// Peripheral is implemented by devices that respond to writes on the port
// bus.
type Peripheral interface {
	// Notify is called for every notified write. The peripheral must ignore
	// writes to ports it does not respond to
	Notify(port uint8, data uint8)
}

// Input is implemented by devices that drive signals onto the port bus when
// a port is read.
type Input interface {
	ReadPort(port uint8) uint8
}

// Ports is the port bus.
type Ports struct {
	Latches [NumPorts]uint8

	peripherals []Peripheral
	input       Input
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{}
}

// Snapshot creates a copy of the port latches. The copy has no peripherals
// or input attached.
func (p *Ports) Snapshot() *Ports {
	return &Ports{Latches: p.Latches}
}

// Attach peripherals to the bus.
func (p *Ports) Attach(peripherals ...Peripheral) {
	p.peripherals = append(p.peripherals, peripherals...)
}

// AttachInput sets the device that drives the bus when a port is read.
func (p *Ports) AttachInput(input Input) {
	p.input = input
}

// Reset all latches to zero.
func (p *Ports) Reset() {
	p.Latches = [NumPorts]uint8{}
}

// Read returns the value of the latch combined with the input signals. Ports
// beyond the end of the bus are not connected and only the input contributes
// to the value.
func (p *Ports) Read(port uint8) uint8 {
	var v uint8
	if port < NumPorts {
		v = p.Latches[port]
	}
	if p.input != nil {
		v |= p.input.ReadPort(port)
	}
	return v
}

// Write changes the value of a latch without notifying the peripherals.
func (p *Ports) Write(port uint8, data uint8) {
	if port < NumPorts {
		p.Latches[port] = data
	}
}

// Notify changes the value of a latch and then notifies every peripheral of
// the write.
func (p *Ports) Notify(port uint8, data uint8) {
	p.Write(port, data)
	for _, d := range p.peripherals {
		d.Notify(port, data)
	}
}

func (p *Ports) String() string {
	s := strings.Builder{}
	for i := 0; i < NumPorts; i += 16 {
		s.WriteString(fmt.Sprintf("%02x:", i))
		for j := i; j < i+16; j++ {
			s.WriteString(fmt.Sprintf(" %02x", p.Latches[j]))
		}
		if i+16 < NumPorts {
			s.WriteRune('\n')
		}
	}
	return s.String()
}
