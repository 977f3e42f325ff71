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

// Package logger is the central log repository for the emulator. Entries are
// added with the Log() and Logf() functions and are tagged so that the source
// of the entry can be identified.
//
// Whether an entry is created depends on the Permission argument. The
// Environment type in the environment package implements the Permission
// interface, so that secondary emulations (a rewind replay for example) do not
// swamp the log with repeated entries. The Allow value can be used when the
// entry should always be made.
//
// Identical adjacent entries are collapsed into one entry with a repeat count.
//
// The package level functions operate on a single central log. Independent
// instances can be created with NewLogger(), which is mostly useful for
// testing.
package logger
