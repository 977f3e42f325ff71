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

// Package disassembly produces a listing of F8 instructions from the memory
// of the console.
//
// A disassembly is created with FromMemory(), which decodes the instructions
// in an address range one after the other. Entries are updated with
// UpdateEntry() as the CPU executes them so that the listing reflects the
// actual flow of the program. Instructions that the CPU lands on part way
// through a previously decoded instruction replace the earlier entries.
//
// The listing can be written with Write() and searched with Grep().
package disassembly
