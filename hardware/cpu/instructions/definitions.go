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

// the instructions with a unique opcode
var singles = []Definition{
	{OpCode: 0x00, Mnemonic: "LR", Operand: "A,KU", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x01, Mnemonic: "LR", Operand: "A,KL", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x02, Mnemonic: "LR", Operand: "A,QU", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x03, Mnemonic: "LR", Operand: "A,QL", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x04, Mnemonic: "LR", Operand: "KU,A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x05, Mnemonic: "LR", Operand: "KL,A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x06, Mnemonic: "LR", Operand: "QU,A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x07, Mnemonic: "LR", Operand: "QL,A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x08, Mnemonic: "LR", Operand: "K,P", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x09, Mnemonic: "LR", Operand: "P,K", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x0a, Mnemonic: "LR", Operand: "A,IS", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x0b, Mnemonic: "LR", Operand: "IS,A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x0c, Mnemonic: "PK", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Subroutine},
	{OpCode: 0x0d, Mnemonic: "LR", Operand: "P0,Q", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Flow},
	{OpCode: 0x0e, Mnemonic: "LR", Operand: "Q,DC", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x0f, Mnemonic: "LR", Operand: "DC,Q", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x10, Mnemonic: "LR", Operand: "DC,H", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x11, Mnemonic: "LR", Operand: "H,DC", Bytes: 1, Cycles: 8, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x12, Mnemonic: "SR", Operand: "1", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x13, Mnemonic: "SL", Operand: "1", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x14, Mnemonic: "SR", Operand: "4", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x15, Mnemonic: "SL", Operand: "4", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x16, Mnemonic: "LM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x17, Mnemonic: "ST", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x18, Mnemonic: "COM", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x19, Mnemonic: "LNK", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x1a, Mnemonic: "DI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x1b, Mnemonic: "EI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x1c, Mnemonic: "POP", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Flow},
	{OpCode: 0x1d, Mnemonic: "LR", Operand: "W,J", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x1e, Mnemonic: "LR", Operand: "J,W", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x1f, Mnemonic: "INC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x20, Mnemonic: "LI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x21, Mnemonic: "NI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x22, Mnemonic: "OI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x23, Mnemonic: "XI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x24, Mnemonic: "AI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x25, Mnemonic: "CI", Bytes: 2, Cycles: 5, AddressingMode: Immediate, Effect: Register},
	{OpCode: 0x26, Mnemonic: "IN", Bytes: 2, Cycles: 8, AddressingMode: Port, Effect: PortIO},
	{OpCode: 0x27, Mnemonic: "OUT", Bytes: 2, Cycles: 8, AddressingMode: Port, Effect: PortIO},
	{OpCode: 0x28, Mnemonic: "PI", Bytes: 3, Cycles: 13, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x29, Mnemonic: "JMP", Bytes: 3, Cycles: 11, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x2a, Mnemonic: "DCI", Bytes: 3, Cycles: 12, AddressingMode: Absolute, Effect: Register},
	{OpCode: 0x2b, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x2c, Mnemonic: "XDC", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x70, Mnemonic: "CLR", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x81, Mnemonic: "BP", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x82, Mnemonic: "BC", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x84, Mnemonic: "BZ", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x88, Mnemonic: "AM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x89, Mnemonic: "AMD", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x8a, Mnemonic: "NM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x8b, Mnemonic: "OM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x8c, Mnemonic: "XM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x8d, Mnemonic: "CM", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Memory},
	{OpCode: 0x8e, Mnemonic: "ADC", Bytes: 1, Cycles: 5, AddressingMode: Implied, Effect: Register},
	{OpCode: 0x8f, Mnemonic: "BR7", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x90, Mnemonic: "BR", Bytes: 2, Cycles: 7, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x91, Mnemonic: "BN", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x92, Mnemonic: "BNC", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x94, Mnemonic: "BNZ", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
	{OpCode: 0x98, Mnemonic: "BNO", Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch},
}

// scratchpad instruction families. the low nibble of the opcode selects the
// register
var families = []struct {
	base     uint8
	mnemonic string
	format   string
	cycles   int
}{
	{base: 0x30, mnemonic: "DS", format: "%s", cycles: 3},
	{base: 0x40, mnemonic: "LR", format: "A,%s", cycles: 2},
	{base: 0x50, mnemonic: "LR", format: "%s,A", cycles: 2},
	{base: 0xc0, mnemonic: "AS", format: "%s", cycles: 2},
	{base: 0xd0, mnemonic: "ASD", format: "%s", cycles: 4},
	{base: 0xe0, mnemonic: "XS", format: "%s", cycles: 2},
	{base: 0xf0, mnemonic: "NS", format: "%s", cycles: 2},
}

// ScratchpadOperand returns the assembler name of the register encoded in
// the low nibble of a scratchpad instruction.
func ScratchpadOperand(r uint8) string {
	switch r & 0x0f {
	case 12:
		return "S"
	case 13:
		return "I"
	case 14:
		return "D"
	}
	return fmt.Sprintf("%d", r&0x0f)
}

// UndefinedCycles is the cost of an opcode that has no instruction.
const UndefinedCycles = 2

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Opcodes that have no instruction are included with the mnemonic
// "???" and the Undefined effect.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range singles {
		d := singles[i]
		defs[d.OpCode] = &d
	}

	for _, f := range families {
		for r := uint8(0); r < 15; r++ {
			defs[f.base|r] = &Definition{
				OpCode:         f.base | r,
				Mnemonic:       f.mnemonic,
				Operand:        fmt.Sprintf(f.format, ScratchpadOperand(r)),
				Bytes:          1,
				Cycles:         f.cycles,
				AddressingMode: Scratchpad,
				Effect:         Register,
			}
		}
	}

	for i := uint8(0); i < 8; i++ {
		defs[0x60|i] = &Definition{OpCode: 0x60 | i, Mnemonic: "LISU", Operand: fmt.Sprintf("%d", i), Bytes: 1, Cycles: 2, AddressingMode: Embedded, Effect: Register}
		defs[0x68|i] = &Definition{OpCode: 0x68 | i, Mnemonic: "LISL", Operand: fmt.Sprintf("%d", i), Bytes: 1, Cycles: 2, AddressingMode: Embedded, Effect: Register}
	}

	for i := uint8(1); i < 16; i++ {
		defs[0x70|i] = &Definition{OpCode: 0x70 | i, Mnemonic: "LIS", Operand: fmt.Sprintf("%d", i), Bytes: 1, Cycles: 2, AddressingMode: Embedded, Effect: Register}
	}

	// bit test branches share opcodes with the named branches
	for _, i := range []uint8{0x80, 0x83, 0x85, 0x86, 0x87} {
		defs[i] = &Definition{OpCode: i, Mnemonic: "BT", Operand: fmt.Sprintf("%d", i&0x07), Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch}
	}
	for i := uint8(0x93); i <= 0x9f; i++ {
		if defs[i] != nil {
			continue
		}
		defs[i] = &Definition{OpCode: i, Mnemonic: "BF", Operand: fmt.Sprintf("%d", i&0x0f), Bytes: 2, Cycles: 6, AddressingMode: Relative, Effect: Branch}
	}

	// the short port instructions. ports 0 and 1 are on the CPU itself and
	// are quicker to access
	for i := uint8(0); i < 16; i++ {
		cycles := 4
		if i > 1 {
			cycles = 8
		}
		defs[0xa0|i] = &Definition{OpCode: 0xa0 | i, Mnemonic: "INS", Operand: fmt.Sprintf("%d", i), Bytes: 1, Cycles: cycles, AddressingMode: Embedded, Effect: PortIO}
		defs[0xb0|i] = &Definition{OpCode: 0xb0 | i, Mnemonic: "OUTS", Operand: fmt.Sprintf("%d", i), Bytes: 1, Cycles: cycles, AddressingMode: Embedded, Effect: PortIO}
	}

	for i := range defs {
		if defs[i] == nil {
			defs[i] = &Definition{OpCode: uint8(i), Mnemonic: "???", Bytes: 1, Cycles: UndefinedCycles, AddressingMode: Implied, Effect: Undefined}
		}
	}

	return defs
}
