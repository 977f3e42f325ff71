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

package memory

import (
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/logger"
)

// Size of the address space.
const Size = 0x10000

// Address of each memory area.
const (
	PSU1Origin      = 0x0000
	PSU2Origin      = 0x0400
	CartridgeOrigin = 0x0800
)

// Multicart geometry. The image is divided into 8 KiB banks.
const (
	MulticartSize       = 0x40000
	MulticartBankSize   = 0x2000
	MulticartBanks      = MulticartSize / MulticartBankSize
	MulticartOrigin     = CartridgeOrigin
	MulticartRAMStart   = MulticartOrigin + MulticartBankSize
	MulticartBankSelect = 0x3000
)

// Sentinal error patterns.
const (
	LoadOutOfRange = "memory: load address out of range (%#04x)"
	EmptyImage     = "memory: cannot load an empty image"
)

// Memory is the 64 KiB address space of the console.
type Memory struct {
	env *environment.Environment

	data [Size]uint8

	// writes below this address are ignored. it is the address immediately
	// after the highest byte loaded by Load()
	ramStart int

	// the full multicart image. nil if the cartridge is not a multicart
	multicart []uint8
	bank      uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	return &Memory{env: env}
}

// Snapshot creates a copy of the memory in its current state. The multicart
// image is not copied because it never changes.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Plumb a new environment into the memory.
func (mem *Memory) Plumb(env *environment.Environment) {
	mem.env = env
}

// Read returns the byte at the address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write a byte to the address. Writes to the loaded images are ignored.
func (mem *Memory) Write(address uint16, data uint8) {
	if mem.multicart != nil && address == MulticartBankSelect {
		mem.SelectBank(data)
		return
	}
	if int(address) < mem.ramStart {
		return
	}
	mem.data[address] = data
}

// Poke writes a byte to the address regardless of whether the address is
// writable. Intended for use by the monitor.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Load copies the data into memory at the address. Data that would fall
// beyond the end of the address space is discarded. The RAM start boundary
// is moved to the end of the loaded data if necessary.
func (mem *Memory) Load(data []uint8, address int) error {
	if address < 0 || address >= Size {
		return curated.Errorf(LoadOutOfRange, address)
	}
	if len(data) == 0 {
		return curated.Errorf(EmptyImage)
	}

	n := copy(mem.data[address:], data)
	if address+n > mem.ramStart {
		mem.ramStart = address + n
	}

	return nil
}

// LoadCartridge loads a cartridge image at the cartridge origin. An image of
// MulticartSize bytes is treated as a multicart.
func (mem *Memory) LoadCartridge(data []uint8) error {
	if len(data) != MulticartSize {
		mem.multicart = nil
		return mem.Load(data, CartridgeOrigin)
	}

	mem.multicart = data
	if mem.ramStart < MulticartRAMStart {
		mem.ramStart = MulticartRAMStart
	}
	mem.SelectBank(0)

	logger.Logf(mem.env, "memory", "multicart with %d banks", MulticartBanks)

	return nil
}

// Eject removes the cartridge. Only the firmware remains.
func (mem *Memory) Eject() {
	mem.multicart = nil
	mem.bank = 0
	for i := CartridgeOrigin; i < Size; i++ {
		mem.data[i] = 0
	}
	if mem.ramStart > CartridgeOrigin {
		mem.ramStart = CartridgeOrigin
	}
}

// IsMulticart returns true if the cartridge is a multicart.
func (mem *Memory) IsMulticart() bool {
	return mem.multicart != nil
}

// SelectBank copies a bank of the multicart image into the cartridge window.
// The bank number is taken from the lower five bits of the value. Has no
// effect if the cartridge is not a multicart.
func (mem *Memory) SelectBank(bank uint8) {
	if mem.multicart == nil {
		return
	}

	bank &= MulticartBanks - 1
	if bank != mem.bank {
		logger.Logf(mem.env, "memory", "multicart bank %d", bank)
	}
	mem.bank = bank

	origin := int(bank) * MulticartBankSize
	copy(mem.data[MulticartOrigin:MulticartRAMStart], mem.multicart[origin:origin+MulticartBankSize])
}

// Bank returns the currently selected multicart bank.
func (mem *Memory) Bank() uint8 {
	return mem.bank
}

// RestoreBank sets the selected bank without altering the contents of
// memory. Used when restoring a snapshot, which includes the contents of the
// cartridge window.
func (mem *Memory) RestoreBank(bank uint8) {
	mem.bank = bank & (MulticartBanks - 1)
}

// RAMStart returns the first writable address.
func (mem *Memory) RAMStart() int {
	return mem.ramStart
}

// Image returns the entire address space. The returned slice refers to the
// memory itself and not to a copy.
func (mem *Memory) Image() []uint8 {
	return mem.data[:]
}

// Reset clears the RAM. In multicart mode the first bank is selected.
func (mem *Memory) Reset() {
	for i := mem.ramStart; i < Size; i++ {
		mem.data[i] = 0
	}
	if mem.multicart != nil {
		mem.SelectBank(0)
	}
}
