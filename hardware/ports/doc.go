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

// Package ports implements the port bus of the Channel F. The bus holds a
// latch for each of the 64 ports.
//
// Writes by the CPU are broadcast to every attached peripheral with Notify().
// Each peripheral decides for itself whether the write is of interest. A
// peripheral can change the value of a latch without broadcasting the change
// with Write().
//
// Reading a port returns the latch combined with the signals being driven by
// the Input, if one has been attached. Input is used for the console buttons
// and the hand controllers.
package ports
