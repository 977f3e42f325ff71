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

package cartridgeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/test"
)

func TestLoad(t *testing.T) {
	data := []byte{0x55, 0x2b, 0x70, 0x29, 0x08, 0x00}
	fn := filepath.Join(t.TempDir(), "test.chf")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, cl.ShortName(), "test")

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	// wrong hash
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.UnexpectedHash), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.NewLoader("")
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.NoFilename), true)
	test.ExpectEquality(t, cl.ShortName(), "no cartridge")

	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader("ftp://example.com/cart.bin")
	test.ExpectEquality(t, curated.Is(cl.Load(), cartridgeloader.UnsupportedScheme), true)
}

func TestExtensions(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.IsCartridgeFile("videocart.bin"), true)
	test.ExpectEquality(t, cartridgeloader.IsCartridgeFile("videocart.CHF"), true)
	test.ExpectEquality(t, cartridgeloader.IsCartridgeFile("videocart.a26"), false)
}

func TestLoadFromArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "carts.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("videocart.chf")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0x55, 0x2b, 0x90, 0xff})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	cl := cartridgeloader.NewLoader(filepath.Join(fn, "videocart.chf"))
	test.ExpectEquality(t, cl.ShortName(), "videocart")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4)

	// the first cartridge file is used when only the archive is named
	cl = cartridgeloader.NewLoader(fn)
	test.ExpectEquality(t, cl.ShortName(), "carts")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Data[0], byte(0x55))
}
