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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/modalflag"
	"github.com/jetsetilly/gopherf8/test"
)

func writeCartridge(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "loop.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x55, 0x2b, 0x90, 0xff}, 0o644))
	return fn
}

func TestDigest(t *testing.T) {
	fn := writeCartridge(t)

	v1, err := runDigest(cartridgeloader.NewLoader(fn), 10, false, true)
	test.DemandSuccess(t, err)
	v2, err := runDigest(cartridgeloader.NewLoader(fn), 10, false, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v1, v2)

	// more frames produce a different video digest
	v3, err := runDigest(cartridgeloader.NewLoader(fn), 11, false, true)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, v1, v3)

	a, err := runDigest(cartridgeloader.NewLoader(fn), 10, true, true)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, a, v1)
}

func TestDisasmMode(t *testing.T) {
	fn := writeCartridge(t)

	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{fn})

	var b strings.Builder
	test.DemandSuccess(t, disasm(md, &b))
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 3)
	test.ExpectSuccess(t, strings.Contains(b.String(), "BR    $0802"))
}

func TestVersionMode(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	var b strings.Builder
	test.DemandSuccess(t, showVersion(md, &b))
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "GopherF8 "))
}
