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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherf8/hardware/audio"
)

// the previous digest value is stuffed into the first part of the buffer so
// that it is included in the next digest value
const audioBufferStart = sha1.Size

// Audio generates a SHA-1 value of every frame of samples it is given.
type Audio struct {
	digest [sha1.Size]byte
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]uint8, audioBufferStart+audio.SamplesPerFrame*2*2),
	}
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// SetAudio adds a frame of interleaved stereo samples to the digest. Samples
// beyond the length of a frame are ignored and missing samples are treated as
// silence.
func (dig *Audio) SetAudio(samples []int16) {
	copy(dig.buffer, dig.digest[:])

	b := dig.buffer[audioBufferStart:]
	for i := range b {
		b[i] = 0
	}
	for i, s := range samples {
		if i*2+1 >= len(b) {
			break
		}
		binary.BigEndian.PutUint16(b[i*2:], uint16(s))
	}

	dig.digest = sha1.Sum(dig.buffer)
}
