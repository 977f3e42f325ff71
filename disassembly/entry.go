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
	"strings"

	"github.com/jetsetilly/gopherf8/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though the address is the start of a
// valid instruction. Blessed entries take into consideration the preceding
// instruction and the number of bytes it would have consumed. Executed
// entries have been reached by the CPU.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the CPU execution. for entries that have not been executed
	// the result is produced by the decoder
	Result execution.Result

	// string representations of information in execution.Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", e.Operator, e.Operand))
}

// Cycles returns the number of cycles the instruction took. For entries that
// have not been executed the number of cycles in the definition is returned.
// A branch that has not been executed may take one more cycle than the
// definition says.
func (e *Entry) Cycles() string {
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level < EntryLevelExecuted {
		if e.Result.Defn.IsBranch() {
			return fmt.Sprintf("%d/%d", e.Result.Defn.Cycles, e.Result.Defn.Cycles+1)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	return fmt.Sprintf("%d", e.Result.Cycles)
}

// Line returns the entry formatted for a listing.
func (e *Entry) Line() string {
	return fmt.Sprintf("%s  %-8s  %-5s %-12s %s", e.Address, e.Bytecode, e.Operator, e.Operand, e.Cycles())
}
