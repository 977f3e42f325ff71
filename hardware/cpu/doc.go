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

// Package cpu emulates the Fairchild F8 CPU. Each call to Step() executes a
// single instruction and returns the number of clock ticks it took. There is
// no cycle level emulation; the rest of the console is synchronised with the
// CPU at instruction boundaries by the frame scheduler in the hardware
// package.
//
// The CPU accesses memory and the port bus through the Memory and Ports
// interfaces. Nothing else about the console is known to the CPU.
//
// Instruction definitions, used by the disassembler and for validating the
// execution of an instruction, are in the instructions sub-package.
package cpu
