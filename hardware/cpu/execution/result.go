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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware/cpu/instructions"
)

// Result records the execution of one instruction.
type Result struct {
	// address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the operand bytes read from the instruction stream. a two byte operand
	// is stored most significant byte first, as it appears in memory
	InstructionData uint16

	// number of bytes read from the instruction stream, including the
	// opcode
	ByteCount int

	// number of ticks the instruction took
	Cycles int

	// whether a conditional branch was taken
	BranchTaken bool

	// whether the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}
	return fmt.Sprintf("%04x %s %s [%d bytes, %d cycles]", r.Address, r.Defn.Mnemonic, r.Defn.Operand, r.ByteCount, r.Cycles)
}

// IsValid checks whether the Result is consistent with the instruction
// definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}
	if r.Defn == nil {
		return curated.Errorf("cpu: no definition for instruction at %04x", r.Address)
	}
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}
	if r.Defn.IsBranch() {
		if r.BranchTaken && r.Cycles != r.Defn.Cycles+1 {
			return curated.Errorf("cpu: number of cycles wrong for taken branch %#02x (%d instead of %d)", r.Defn.OpCode, r.Cycles, r.Defn.Cycles+1)
		}
		if !r.BranchTaken && r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for branch %#02x (%d instead of %d)", r.Defn.OpCode, r.Cycles, r.Defn.Cycles)
		}
		return nil
	}
	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
	}
	return nil
}
