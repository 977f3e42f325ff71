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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes (and sub-modes), each with its own set of
// flags.
//
// Arguments are given to NewArgs() and parsed with Parse(). Flags for the
// current mode are added before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "MONITOR")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the sub-mode that was selected. The first
// sub-mode in the list is the default and is selected if the next argument is
// not a recognised sub-mode. Sub-mode matching is case insensitive.
//
// To parse the flags of the selected mode, call NewMode(), add the flags for
// that mode and call Parse() again. Arguments that are neither flags nor
// sub-modes are available through RemainingArgs() and GetArg().
//
// The path of modes selected so far is returned by Path(), with each mode
// separated by a forward slash:
//
//	PLAY/CARTRIDGE
//
// Help messages are printed automatically when the -help flag is seen. The
// help message contains the flags and the sub-modes for the current mode.
package modalflag
