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

// Package clocks defines the constant values that define the speed of the
// Channel F.
//
// The CPU of the NTSC console is clocked at 1.7897725MHz, half the frequency
// of the colour carrier. Instruction timings are measured in ticks of two
// clock periods, so a short cycle of four clock periods is two ticks.
package clocks

// NTSC is the CPU clock in MHz.
const NTSC = 1.7897725

// TicksPerSecond is the number of ticks in one second.
const TicksPerSecond = NTSC * 1000000 / 2

// FramesPerSecond is the refresh rate of the television.
const FramesPerSecond = 60

// TicksPerFrame is the whole number of ticks executed for each frame.
const TicksPerFrame = 14914

// TicksPerRow is the time taken by the firmware to clear one row of the
// screen.
const TicksPerRow = 18606
