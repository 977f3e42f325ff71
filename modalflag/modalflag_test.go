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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherf8/modalflag"
	"github.com/jetsetilly/gopherf8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestNoHelpAvailable(t *testing.T) {
	w := &strings.Builder{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	w := &strings.Builder{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	w := &strings.Builder{}

	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"monitor", "-fastclear", "game.bin"})
	md.AddSubModes("PLAY", "MONITOR")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "MONITOR")

	md.NewMode()
	fastclear := md.AddBool("fastclear", false, "fast screen clear")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *fastclear, true)
	test.ExpectEquality(t, md.GetArg(0), "game.bin")
	test.ExpectEquality(t, md.Path(), "MONITOR")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"game.bin"})
	md.AddSubModes("PLAY", "MONITOR")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PLAY")

	md.NewMode()
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.GetArg(0), "game.bin")
}
