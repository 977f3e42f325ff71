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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherf8/disassembly"
	"github.com/jetsetilly/gopherf8/test"
)

type mockMem []uint8

func (m mockMem) Read(address uint16) uint8 {
	if int(address) >= len(m) {
		return 0x2b
	}
	return m[address]
}

var program = mockMem{
	0x20, 0x12, // LI $12
	0x29, 0x12, 0x34, // JMP $1234
	0x27, 0x05, // OUT 5
	0x90, 0xff, // BR $0007
	0x84, 0x03, // BZ $000c
	0x43, // LR A,3
	0x81, // BP ...
}

func TestDecode(t *testing.T) {
	dsm := disassembly.FromMemory(program, 0, 11)
	test.ExpectEquality(t, dsm.Len(), 6)

	e, ok := dsm.GetEntryByAddress(0)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, e.String(), "LI $12")
	test.ExpectEquality(t, e.Bytecode, "20 12")
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)

	e, _ = dsm.GetEntryByAddress(2)
	test.ExpectEquality(t, e.String(), "JMP $1234")
	test.ExpectEquality(t, e.Bytecode, "29 12 34")

	e, _ = dsm.GetEntryByAddress(5)
	test.ExpectEquality(t, e.String(), "OUT 5")

	// branch to self
	e, _ = dsm.GetEntryByAddress(7)
	test.ExpectEquality(t, e.String(), "BR $0007")

	e, _ = dsm.GetEntryByAddress(9)
	test.ExpectEquality(t, e.String(), "BZ $000c")
	test.ExpectEquality(t, e.Cycles(), "6/7")

	e, _ = dsm.GetEntryByAddress(11)
	test.ExpectEquality(t, e.String(), "LR A,3")

	// no entry for the operand of an instruction
	_, ok = dsm.GetEntryByAddress(1)
	test.ExpectEquality(t, ok, false)
}

func TestUpdateEntry(t *testing.T) {
	dsm := disassembly.FromMemory(program, 0, 11)

	// the CPU lands in the middle of the JMP instruction
	r := dsm.DecodeAt(program, 3).Result
	r.Cycles = 2
	dsm.UpdateEntry(r)

	e, ok := dsm.GetEntryByAddress(3)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.Cycles(), "2")

	// decoding again does not replace executed entries
	dsm.Decode(program, 0, 11)
	e, _ = dsm.GetEntryByAddress(3)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
}

func TestWriteAndGrep(t *testing.T) {
	dsm := disassembly.FromMemory(program, 0, 11)

	var b strings.Builder
	test.DemandSuccess(t, dsm.Write(&b, 0, 6))
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 3)

	b.Reset()
	n, err := dsm.Grep(&b, disassembly.GrepOperator, "jmp", false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, strings.Contains(b.String(), "$1234"))

	n, err = dsm.Grep(&b, disassembly.GrepOperator, "jmp", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}
