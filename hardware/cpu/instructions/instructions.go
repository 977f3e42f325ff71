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

package instructions

import "fmt"

// AddressingMode describes where an instruction gets its data from.
type AddressingMode int

// List of supported addressing modes.
const (
	// no operand bytes and no register encoded in the opcode
	Implied AddressingMode = iota

	// a value encoded in the low bits of the opcode (LIS, LISU, LISL, INS,
	// OUTS and the bit mask of BT and BF)
	Embedded

	// scratchpad register in the low nibble of the opcode. values 12 to 14
	// select indirect addressing through the ISAR
	Scratchpad

	// one immediate byte follows the opcode
	Immediate

	// two immediate bytes follow the opcode, most significant byte first
	Absolute

	// a one byte branch displacement follows the opcode
	Relative

	// the byte following the opcode is a port number
	Port
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	// instructions that affect registers only
	Register EffectCategory = iota

	// instructions that read or write memory through DC0
	Memory

	// instructions that read or write a port
	PortIO

	// instructions that change PC0 unconditionally
	Flow

	// conditional branches
	Branch

	// instructions that save PC0 in PC1
	Subroutine

	// opcodes that do nothing
	Undefined
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// operand text for disassembly where the operand is encoded in the
	// opcode. For example "A,KU" for opcode 0x00
	Operand string

	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s %s +%dbytes (%d cycles) [mode=%d effect=%d]", defn.OpCode, defn.Mnemonic, defn.Operand, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a conditional branch. Conditional
// branches take one more cycle than the definition says when the branch is
// taken.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Branch
}
