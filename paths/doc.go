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

// Package paths contains functions to prepare paths for emulator resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. The directory is
// created if it does not exist.
//
// The default build of the program uses a directory in the current working
// directory called ".gopherf8". Building with the "release" tag uses the
// user's configuration directory as reported by os.UserConfigDir().
//
// Firmware images, the preferences file and save states are all kept in the
// resource directory.
package paths
