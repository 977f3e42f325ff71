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
	"sort"
	"sync"

	"github.com/jetsetilly/gopherf8/hardware/cpu/execution"
	"github.com/jetsetilly/gopherf8/hardware/cpu/instructions"
)

// Memory is the disassembler's view of the address space. Reading must not
// have side effects.
type Memory interface {
	Read(address uint16) uint8
}

// Disassembly represents the annotated disassembly of an address range.
type Disassembly struct {
	defs []*instructions.Definition

	// entries indexed by address. only the address of the first byte of an
	// instruction has an entry
	entries map[uint16]*Entry

	// critical sectioning. entries are updated by the emulation goroutine
	// and read by the monitor
	crit sync.Mutex
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type. The disassembly is empty.
func NewDisassembly() *Disassembly {
	return &Disassembly{
		defs:    instructions.GetDefinitions(),
		entries: make(map[uint16]*Entry),
	}
}

// FromMemory disassembles the address range from start to end inclusive. The
// first instruction is assumed to be at the start address.
func FromMemory(mem Memory, start uint16, end uint16) *Disassembly {
	dsm := NewDisassembly()
	dsm.Decode(mem, start, end)
	return dsm
}

// Decode the address range, replacing any entries that have not been executed.
func (dsm *Disassembly) Decode(mem Memory, start uint16, end uint16) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	a := int(start)
	for a <= int(end) {
		e := FormatResult(dsm.decode(mem, uint16(a)), EntryLevelBlessed)
		if !dsm.overlapsExecuted(e) {
			dsm.insert(e)
		}
		a += e.Result.ByteCount
	}
}

// DecodeAt returns an entry for the instruction at the address. The
// disassembly is not changed.
func (dsm *Disassembly) DecodeAt(mem Memory, address uint16) *Entry {
	return FormatResult(dsm.decode(mem, address), EntryLevelDecoded)
}

func (dsm *Disassembly) decode(mem Memory, address uint16) execution.Result {
	defn := dsm.defs[mem.Read(address)]

	r := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: 1,
		Cycles:    defn.Cycles,
		Final:     true,
	}

	for i := 1; i < defn.Bytes; i++ {
		r.InstructionData = r.InstructionData<<8 | uint16(mem.Read(address+uint16(i)))
		r.ByteCount++
	}

	return r
}

func (dsm *Disassembly) overlapsExecuted(e *Entry) bool {
	for i := 0; i < e.Result.ByteCount; i++ {
		if o, ok := dsm.entries[e.Result.Address+uint16(i)]; ok && o.Level == EntryLevelExecuted {
			return true
		}
	}
	return false
}

// insert entry and remove any entries that it overlaps
func (dsm *Disassembly) insert(e *Entry) {
	for i := 1; i < e.Result.ByteCount; i++ {
		delete(dsm.entries, e.Result.Address+uint16(i))
	}
	dsm.entries[e.Result.Address] = e
}

// UpdateEntry with the most recent execution.Result. Results that are not
// final are ignored.
func (dsm *Disassembly) UpdateEntry(result execution.Result) {
	if !result.Final || result.Defn == nil {
		return
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	dsm.insert(FormatResult(result, EntryLevelExecuted))
}

// GetEntryByAddress returns the disassembly entry at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e, ok := dsm.entries[address]
	return e, ok
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return len(dsm.entries)
}

// entries in address order between start and end inclusive
func (dsm *Disassembly) ordered(start uint16, end uint16) []*Entry {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	var l []*Entry
	for a, e := range dsm.entries {
		if a >= start && a <= end {
			l = append(l, e)
		}
	}

	sort.Slice(l, func(i, j int) bool {
		return l[i].Result.Address < l[j].Result.Address
	})

	return l
}
