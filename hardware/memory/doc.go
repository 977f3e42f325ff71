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

// Package memory implements the address space of the Channel F.
//
// The first two KiB of the address space are occupied by the firmware, one
// KiB each for the two PSUs. The cartridge is loaded from address 0x0800.
// Everything from the end of the last image loaded is treated as RAM.
// Writes to addresses below that point are ignored.
//
// A cartridge image of exactly MulticartSize bytes puts the memory into
// multicart mode. In this mode a window of the image is visible at
// MulticartOrigin and the bank is selected by writing to MulticartBankSelect.
package memory
