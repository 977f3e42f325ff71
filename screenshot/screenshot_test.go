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

package screenshot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherf8/screenshot"
	"github.com/jetsetilly/gopherf8/test"
)

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 0xff, A: 0xff}
	src.SetRGBA(1, 1, red)

	dst := screenshot.Scale(src, 3, 2)
	test.ExpectEquality(t, dst.Bounds().Dx(), 6)
	test.ExpectEquality(t, dst.Bounds().Dy(), 4)
	test.ExpectEquality(t, dst.RGBAAt(5, 3), red)
	test.ExpectEquality(t, dst.RGBAAt(3, 2), red)
	test.ExpectEquality(t, dst.RGBAAt(2, 1), color.RGBA{})
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.png")
	src := image.NewRGBA(image.Rect(0, 0, 102, 64))
	test.DemandSuccess(t, screenshot.Save(src, fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 102*screenshot.ScaleX)
	test.ExpectEquality(t, img.Bounds().Dy(), 64*screenshot.ScaleY)
}
