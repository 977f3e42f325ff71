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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherf8/prefs"
	"github.com/jetsetilly/gopherf8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty stack
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("foo::bar; baz::qux; bad")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "bar")

	// value is consumed on retrieval
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("hle.fastclear", &b))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("hle.fastclear::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
}
