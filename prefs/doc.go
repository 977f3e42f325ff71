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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are typed (Bool, Int, Float, String) and safe to access from more than
// one goroutine.
//
// A Disk instance associates preference values with keys. Save() writes the
// values to the preferences file and Load() reads them back. More than one
// Disk instance can share the same file. Entries in the file that do not
// belong to the Disk are preserved when it is saved.
//
// Preferences can also be set on the command line, as a group of key/value
// pairs:
//
//	hle.fastclear::true; audio.enabled::false
//
// See PushCommandLineStack() for details. Values from the command line take
// precedence over the values found on disk when Load() is called.
package prefs
