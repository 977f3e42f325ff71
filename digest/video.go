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
	"fmt"
	"image"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware/video"
)

// Video generates a SHA-1 value of every frame it is given.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+video.Width*video.Height*pixelDepth),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame adds the frame to the digest. The frame must be the full size of
// the video RAM.
func (dig *Video) NewFrame(frame *image.RGBA) error {
	b := frame.Bounds()
	if b.Dx() != video.Width || b.Dy() != video.Height {
		return curated.Errorf("digest: video: unexpected frame size (%dx%d)", b.Dx(), b.Dy())
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := frame.RGBAAt(x, y)
			dig.pixels[i] = c.R
			dig.pixels[i+1] = c.G
			dig.pixels[i+2] = c.B
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
