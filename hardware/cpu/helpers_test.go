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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/test"
)

type mockMem struct {
	internal [0x10000]uint8

	// writes below this address are ignored
	protected uint16
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	if address < mem.protected {
		return
	}
	mem.internal[address] = data
}

type mockPorts struct {
	latches  [64]uint8
	notified []uint8
}

func (p *mockPorts) Read(port uint8) uint8 {
	return p.latches[port&0x3f]
}

func (p *mockPorts) Notify(port uint8, data uint8) {
	p.latches[port&0x3f] = data
	p.notified = append(p.notified, port)
}

func newTestCPU() (*cpu.CPU, *mockMem, *mockPorts) {
	mem := newMockMem()
	ports := &mockPorts{}
	mc := cpu.NewCPU(mem, ports)
	mc.Reset()
	return mc, mem, ports
}

// step the CPU and check that the result of the instruction is consistent
// with the definition of the instruction
func step(t *testing.T, mc *cpu.CPU, expectedCycles int) {
	t.Helper()
	cycles := mc.Step()
	test.ExpectEquality(t, cycles, expectedCycles, mc.LastResult)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}
