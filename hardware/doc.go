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

// Package hardware is the base package for the Channel F emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The ChannelF type is the root of the emulation and contains references to
// all the sub-systems of the console. The emulation is advanced one frame at
// a time with RunFrame() or one instruction at a time with Step().
//
// At the end of each frame the samples produced by the tone generator are
// available from the Audio field and the resolved image from the Video field.
//
// The entire state of the console can be serialised with Serialise() and
// restored with Deserialise(). For fast in-memory copies, as used by the
// rewind system, the Snapshot() and Plumb() functions should be used
// instead.
package hardware
