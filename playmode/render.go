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

package playmode

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// the upper half block character. the foreground colour is the upper pixel
// and the background colour is the lower pixel
const halfBlock = "▀"

// renderer draws frames to an ANSI terminal that supports 24 bit colour. Two
// rows of pixels are drawn with every line of text.
type renderer struct {
	w *bufio.Writer
}

func newRenderer(output io.Writer) *renderer {
	return &renderer{
		w: bufio.NewWriter(output),
	}
}

// clear the terminal and hide the cursor
func (r *renderer) start() {
	r.w.WriteString("\x1b[2J\x1b[?25l")
	r.w.Flush()
}

// show the cursor and reset colours
func (r *renderer) end() {
	r.w.WriteString("\x1b[0m\x1b[?25h\r\n")
	r.w.Flush()
}

func (r *renderer) frame(img *image.RGBA, status string) error {
	b := img.Bounds()

	r.w.WriteString("\x1b[H")
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			u := img.RGBAAt(x, y)
			l := u
			if y+1 < b.Max.Y {
				l = img.RGBAAt(x, y+1)
			}
			fmt.Fprintf(r.w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", u.R, u.G, u.B, l.R, l.G, l.B, halfBlock)
		}
		r.w.WriteString("\x1b[0m\r\n")
	}
	fmt.Fprintf(r.w, "\x1b[2K%s\r\n", status)

	return r.w.Flush()
}
