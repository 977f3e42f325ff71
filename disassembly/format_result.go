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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherf8/hardware/cpu/instructions"
)

// FormatResult creates an Entry for the result. It will be assigned the
// specified EntryLevel.
func FormatResult(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Result:  result,
		Level:   level,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic
	e.Operand = result.Defn.Operand

	// operand bytes that have not been read yet are shown as question marks
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, result.InstructionData>>8, result.InstructionData&0xff)
		case 2:
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, result.InstructionData&0xff)
		default:
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, result.InstructionData&0xff)
		default:
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	if result.ByteCount < result.Defn.Bytes {
		return e
	}

	switch result.Defn.AddressingMode {
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("$%02x", result.InstructionData&0xff)
	case instructions.Port:
		e.Operand = fmt.Sprintf("%d", result.InstructionData&0xff)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04x", result.InstructionData)
	case instructions.Relative:
		// the displacement is relative to the address of the operand
		target := uint16(int(result.Address) + 2 + cpu.Displacement(uint8(result.InstructionData)))
		if e.Operand == "" {
			e.Operand = fmt.Sprintf("$%04x", target)
		} else {
			e.Operand = fmt.Sprintf("%s,$%04x", e.Operand, target)
		}
	}

	return e
}
