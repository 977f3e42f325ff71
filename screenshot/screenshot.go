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

// Package screenshot saves the visible area of the video RAM as a PNG file.
// The image is scaled so that the pixels have roughly the aspect ratio they
// have on a television.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/jetsetilly/gopherf8/curated"
	"golang.org/x/image/draw"
)

// Default scaling. The pixels of the console are wider than they are tall.
const (
	ScaleX = 6
	ScaleY = 4
)

// Scale the image by the horizontal and vertical factors. Nearest neighbour
// scaling is used so that the pixels remain sharp.
func Scale(src image.Image, sx int, sy int) *image.RGBA {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*sx, b.Dy()*sy))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}

// Filename returns a filename for a screenshot based on the name of the
// cartridge and the current time.
func Filename(cartName string) string {
	n := time.Now()
	return fmt.Sprintf("screenshot_%s_%04d%02d%02d_%02d%02d%02d.png", cartName,
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
}

// Save the image to the filename as a PNG. The image is scaled by the
// default scaling factors.
func Save(src image.Image, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	err = png.Encode(f, Scale(src, ScaleX, ScaleY))
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
