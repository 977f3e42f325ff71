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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherf8/archivefs"
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/test"
)

// creates a zip file containing a readme and two cartridges, one of which
// is in a subdirectory
func createArchive(t *testing.T, dir string) string {
	t.Helper()

	fn := filepath.Join(dir, "carts.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range []struct {
		name string
		data string
	}{
		{"readme.txt", "hello"},
		{"videocart-1.bin", "\x55\x2b"},
		{"more/videocart-2.bin", "\x90\xff"},
	} {
		w, err := zw.Create(e.name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(e.data))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return fn
}

func isBin(name string) bool {
	return strings.HasSuffix(name, ".bin")
}

func TestPlainFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "plain.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0o600))

	loc, err := archivefs.Locate(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, loc.Archive, false)
	test.ExpectEquality(t, loc.Path, fn)

	data, err := archivefs.ReadFile(fn, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 3)

	// a plain file can not be treated as a directory
	_, err = archivefs.ReadFile(filepath.Join(fn, "other.bin"), nil)
	test.ExpectEquality(t, curated.Is(err, archivefs.NotAFile), true)

	// nor can a directory be read
	_, err = archivefs.ReadFile(dir, nil)
	test.ExpectEquality(t, curated.Is(err, archivefs.NotAFile), true)

	_, err = archivefs.ReadFile(filepath.Join(dir, "missing.bin"), nil)
	test.ExpectEquality(t, curated.Is(err, archivefs.NotFound), true)
}

func TestArchive(t *testing.T) {
	zfn := createArchive(t, t.TempDir())

	loc, err := archivefs.Locate(filepath.Join(zfn, "more", "videocart-2.bin"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, loc.Archive, true)
	test.ExpectEquality(t, loc.Path, zfn)
	test.ExpectEquality(t, loc.Inner, "more/videocart-2.bin")

	data, err := archivefs.ReadFile(filepath.Join(zfn, "more", "videocart-2.bin"), isBin)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "\x90\xff")

	// the first matching file is used when the archive itself is named
	data, err = archivefs.ReadFile(zfn, isBin)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "\x55\x2b")

	data, err = archivefs.ReadFile(zfn, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "hello")

	_, err = archivefs.ReadFile(zfn, func(string) bool { return false })
	test.ExpectEquality(t, curated.Is(err, archivefs.NoMatch), true)

	_, err = archivefs.ReadFile(filepath.Join(zfn, "missing.bin"), nil)
	test.ExpectEquality(t, curated.Is(err, archivefs.NotFound), true)

	_, err = archivefs.ReadFile(filepath.Join(zfn, "more"), nil)
	test.ExpectEquality(t, curated.Is(err, archivefs.NotAFile), true)
}

func TestTrimArchiveExt(t *testing.T) {
	test.ExpectEquality(t, archivefs.TrimArchiveExt("carts.zip"), "carts")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("carts.ZIP"), "carts")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("videocart.bin"), "videocart.bin")
}
