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

// Package video emulates the video RAM of the Channel F and the circuit that
// writes to it.
//
// The video RAM is 128 by 64 cells of two bits. A pixel is written by setting
// the colour, X and Y ports and then strobing the ARM port. The colour of a
// pixel on the screen depends on the palette selected for the row, which is
// encoded by the cells in columns 125 and 126.
package video

import (
	"image"
	"image/color"
)

// Dimensions of the video RAM.
const (
	Width  = 128
	Height = 64
)

// The area of the video RAM that is visible on a television.
const (
	VisibleLeft  = 4
	VisibleWidth = 102
)

// Ports used by the video circuit.
const (
	PortARM    = 0
	PortColour = 1
	PortX      = 4
	PortY      = 5
)

// the values of the ARM port that strobe a write to video RAM
const (
	armPrimed = 0x60
	armStrobe = 0x40
)

// InitialColour is the colour value on power up.
const InitialColour = 2

// Colours is the list of the eight colours that can be produced.
var Colours = [8]color.RGBA{
	{R: 0x10, G: 0x10, B: 0x10, A: 0xff}, // black
	{R: 0xfd, G: 0xfd, B: 0xfd, A: 0xff}, // white
	{R: 0x53, G: 0x31, B: 0xff, A: 0xff}, // blue
	{R: 0x5d, G: 0xcc, B: 0x02, A: 0xff}, // green
	{R: 0xf3, G: 0x3f, B: 0x4b, A: 0xff}, // red
	{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}, // light grey
	{R: 0xa6, G: 0xff, B: 0x91, A: 0xff}, // light green
	{R: 0xd0, G: 0xce, B: 0xff, A: 0xff}, // light blue
}

// each row has one of four palettes. the palette maps the two bit cell value
// to an entry in the Colours table
var palettes = [16]uint8{
	0, 1, 1, 1, // black and white
	7, 2, 4, 3, // light blue background
	6, 2, 4, 3, // light green background
	5, 2, 4, 3, // grey background
}

// Video is the video RAM and the write circuit.
type Video struct {
	// raw cell values
	RAM [Width * Height]uint8

	X      uint8
	Y      uint8
	Colour uint8
	ARM    uint8

	frame *image.RGBA
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		Colour: InitialColour,
		frame:  image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// Snapshot creates a copy of the video RAM and write circuit. The resolved
// frame is not copied.
func (vd *Video) Snapshot() *Video {
	n := *vd
	n.frame = image.NewRGBA(image.Rect(0, 0, Width, Height))
	return &n
}

// Notify implements the ports.Peripheral interface.
func (vd *Video) Notify(port uint8, data uint8) {
	switch port {
	case PortARM:
		data &= armPrimed
		if data == armStrobe && vd.ARM == armPrimed {
			vd.RAM[int(vd.Y)<<7+int(vd.X)] = vd.Colour
		}
		vd.ARM = data
	case PortColour:
		vd.Colour = ((data ^ 0xff) >> 6) & 0x03
	case PortX:
		vd.X = (data ^ 0xff) & 0x7f
	case PortY:
		vd.Y = (data ^ 0xff) & 0x3f
	}
}

// Palette returns the palette selected for a row.
func (vd *Video) Palette(row int) uint8 {
	r := row << 7
	return ((vd.RAM[r+125] & 0x02) >> 1) | (vd.RAM[r+126] & 0x03)
}

// Resolve converts the video RAM into colours. The result is returned by
// Frame() until the next call to Resolve().
func (vd *Video) Resolve() {
	for row := 0; row < Height; row++ {
		pal := (vd.Palette(row) << 2) & 0x0c
		r := row << 7
		for col := 0; col < Width; col++ {
			c := Colours[palettes[pal|(vd.RAM[r+col]&0x03)]&0x07]
			vd.frame.SetRGBA(col, row, c)
		}
	}
}

// Frame returns the most recently resolved frame. The full width of the video
// RAM is included.
func (vd *Video) Frame() *image.RGBA {
	return vd.frame
}

// Visible returns the part of the most recently resolved frame that is
// visible on a television.
func (vd *Video) Visible() *image.RGBA {
	return vd.frame.SubImage(image.Rect(VisibleLeft, 0, VisibleLeft+VisibleWidth, Height)).(*image.RGBA)
}

// ClearRow sets the colour of every pixel in a row and selects the palette
// for the row. Used by the high level emulation of the firmware.
func (vd *Video) ClearRow(row int, colour uint8, palette uint8) {
	r := row << 7
	for col := 0; col < 125; col++ {
		vd.RAM[r+col] = colour
	}
	vd.RAM[r+125] = 0
	vd.RAM[r+126] = palette
	vd.RAM[r+127] = 0
}
