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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherf8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherf8/hardware/cpu/registers"
)

// Memory is the CPU's view of the address space. Writes to read-only regions
// are the responsibility of the implementation.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Ports is the CPU's view of the port bus. Values written by the OUT and OUTS
// instructions are broadcast to all peripherals.
type Ports interface {
	Read(port uint8) uint8
	Notify(port uint8, data uint8)
}

// ScratchpadSize is the number of bytes in the scratchpad.
const ScratchpadSize = 64

// CPU implements the Fairchild F8 as found in the Channel F. The CPU of the
// console is a 3850 with the program counters and the data counters provided
// by the 3851 PSUs. It is treated here as a single device.
type CPU struct {
	A    uint8
	W    registers.StatusRegister
	ISAR registers.ISAR

	// PC0 is the program counter. PC1 is the stack register, used to hold
	// a single return address
	PC0 uint16
	PC1 uint16

	// DC0 is the data counter. DC1 is the alternative data counter, which
	// can only be swapped with DC0
	DC0 uint16
	DC1 uint16

	// the scratchpad. registers 9 to 15 have special names (J, HU, HL, KU,
	// KL, QU, QL)
	R [ScratchpadSize]uint8

	mem          Memory
	ports        Ports
	instructions []*instructions.Definition

	// the most recently executed instruction. it is updated by Step() but is
	// never consulted by the CPU
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory, ports Ports) *CPU {
	return &CPU{
		mem:          mem,
		ports:        ports,
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory and port bus into the CPU.
func (mc *CPU) Plumb(mem Memory, ports Ports) {
	mc.mem = mem
	mc.ports = ports
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC0=%04x PC1=%04x DC0=%04x DC1=%04x A=%02x %s=%s %s=%s",
		mc.PC0, mc.PC1, mc.DC0, mc.DC1, mc.A,
		mc.ISAR.Label(), mc.ISAR, mc.W.Label(), mc.W)
}

// Reset zeroes all registers and the scratchpad.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A = 0
	mc.W = 0
	mc.ISAR = 0
	mc.PC0 = 0
	mc.PC1 = 0
	mc.DC0 = 0
	mc.DC1 = 0
	mc.R = [ScratchpadSize]uint8{}
}

// Step fetches and executes the instruction at PC0. Returns the number of
// ticks consumed by the instruction.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC0

	opcode := mc.mem.Read(mc.PC0)
	mc.PC0++

	mc.LastResult.Defn = mc.instructions[opcode]
	mc.LastResult.ByteCount = 1

	cycles := opcodes[opcode](mc, opcode)

	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	return cycles
}

// Definitions returns the instruction table used by the CPU.
func (mc *CPU) Definitions() []*instructions.Definition {
	return mc.instructions
}

func (mc *CPU) readOperand8() uint8 {
	v := mc.mem.Read(mc.PC0)
	mc.PC0++
	mc.LastResult.InstructionData = mc.LastResult.InstructionData<<8 | uint16(v)
	mc.LastResult.ByteCount++
	return v
}

// most significant byte first
func (mc *CPU) readOperand16() uint16 {
	hi := mc.readOperand8()
	lo := mc.readOperand8()
	return uint16(hi)<<8 | uint16(lo)
}

// Read16 returns the sixteen bit value held in scratchpad registers r and
// r+1. Register r holds the most significant byte.
func (mc *CPU) Read16(r uint8) uint16 {
	return uint16(mc.R[r&0x3f])<<8 | uint16(mc.R[(r+1)&0x3f])
}

// Store16 stores a sixteen bit value in scratchpad registers r and r+1.
func (mc *CPU) Store16(r uint8, v uint16) {
	mc.R[r&0x3f] = uint8(v >> 8)
	mc.R[(r+1)&0x3f] = uint8(v)
}

// Displacement converts the operand of a branch instruction into the value
// added to PC0. The operand has already been consumed when the displacement
// is applied so a displacement of n is a jump of n-1 from the current PC0.
func Displacement(n uint8) int {
	if n&0x80 == 0 {
		return int(n) - 1
	}
	return -(((int(n) - 1) ^ 0xff) + 1)
}
