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

// Package digest produces cryptographic hashes of the video and audio output
// of the console. The hash can be used to compare the output of subsequent
// emulation runs. If a new hash differs from a previously recorded value then
// something has changed. We use this as the basis for regression tests.
//
// Digests are chained. The hash of each frame includes the hash of the
// previous frame so that the final value depends on every frame that has been
// seen.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}
