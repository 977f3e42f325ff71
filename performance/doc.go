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

// Package performance measures the speed of the emulation.
//
// Check() runs a cartridge for a fixed length of time and reports the frame
// rate achieved. The run can be profiled with any combination of the CPU,
// memory and trace profilers. RunProfiler() is the function that Check()
// uses to do this and can be used on its own to profile any function.
//
// CalcFPS() compares a frame count over a duration with the frame rate of
// the console.
package performance
