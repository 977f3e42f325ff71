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

package rewind_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/hardware"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/hardware/preferences"
	"github.com/jetsetilly/gopherf8/rewind"
	"github.com/jetsetilly/gopherf8/test"
)

func newConsole(t *testing.T) *hardware.ChannelF {
	t.Helper()
	env, err := environment.NewEnvironment("test", preferences.NewDefaultPreferences())
	test.DemandSuccess(t, err)
	cf := hardware.NewChannelF(env)
	cf.AttachFirmware(nil, nil)

	cl := cartridgeloader.NewLoader("test.bin")
	cl.Data = []uint8{0x55, 0x2b, 0x90, 0xff}
	test.DemandSuccess(t, cf.AttachCartridge(cl))

	return cf
}

func newRewind(t *testing.T, cf *hardware.ChannelF, maxEntries int, freq int) *rewind.Rewind {
	t.Helper()
	prefs := rewind.NewDefaultPreferences()
	test.DemandSuccess(t, prefs.MaxEntries.Set(maxEntries))
	test.DemandSuccess(t, prefs.Freq.Set(freq))
	r, err := rewind.NewRewind(cf, prefs)
	test.DemandSuccess(t, err)
	return r
}

// runs the number of frames, recording each one. returns the serialised
// state of the console at the end of each frame, indexed by frame number
func run(t *testing.T, cf *hardware.ChannelF, r *rewind.Rewind, frames int) map[int][]byte {
	t.Helper()
	history := make(map[int][]byte)
	for i := 0; i < frames; i++ {
		test.DemandSuccess(t, cf.RunFrame())
		r.RecordFrameState()
		history[cf.FrameNum] = cf.Serialise()
	}
	return history
}

func TestRecord(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 1)
	test.ExpectEquality(t, r.NumEntries(), 1)

	run(t, cf, r, 10)
	test.ExpectEquality(t, r.NumEntries(), 11)

	s := r.GetSummary()
	test.ExpectEquality(t, s.Start, 0)
	test.ExpectEquality(t, s.End, 10)
	test.ExpectEquality(t, s.Current, 10)
}

func TestMaxEntries(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 4, 1)

	run(t, cf, r, 10)
	test.ExpectEquality(t, r.NumEntries(), 4)

	s := r.GetSummary()
	test.ExpectEquality(t, s.Start, 7)
	test.ExpectEquality(t, s.End, 10)

	// frames earlier than the earliest entry go to the earliest entry
	fn, err := r.GotoFrame(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 7)
	test.ExpectEquality(t, cf.FrameNum, 7)
}

func TestGotoFrame(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 1)
	history := run(t, cf, r, 10)

	fn, err := r.GotoFrame(5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 5)
	test.ExpectEquality(t, cf.FrameNum, 5)
	test.ExpectSuccess(t, bytes.Equal(cf.Serialise(), history[5]))

	// frames later than the latest entry go to the latest entry
	fn, err = r.GotoFrame(50)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 10)
	test.ExpectSuccess(t, bytes.Equal(cf.Serialise(), history[10]))

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, cf.FrameNum, 10)
}

func TestCatchUp(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 3)
	history := run(t, cf, r, 10)

	// reset state plus frames 3, 6 and 9
	test.ExpectEquality(t, r.NumEntries(), 4)

	// there is no entry for frame 8 so the emulation runs on from frame 6
	fn, err := r.GotoFrame(8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 8)
	test.ExpectEquality(t, cf.FrameNum, 8)
	test.ExpectSuccess(t, bytes.Equal(cf.Serialise(), history[8]))
}

func TestRecordAfterRewind(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 1)
	run(t, cf, r, 10)

	_, err := r.GotoFrame(4)
	test.DemandSuccess(t, err)

	// recording from frame 4 forgets the entries for frames 5 to 10
	run(t, cf, r, 2)
	s := r.GetSummary()
	test.ExpectEquality(t, s.End, 6)
	test.ExpectEquality(t, r.NumEntries(), 7)
}

func TestExecutionState(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 1)
	run(t, cf, r, 2)

	_, err := cf.Step()
	test.DemandSuccess(t, err)
	r.RecordExecutionState()
	test.ExpectEquality(t, r.NumEntries(), 4)

	// only one execution state is kept
	_, err = cf.Step()
	test.DemandSuccess(t, err)
	r.RecordExecutionState()
	test.ExpectEquality(t, r.NumEntries(), 4)

	// an execution state is replaced by the frame state
	test.DemandSuccess(t, cf.RunFrame())
	r.RecordFrameState()
	test.ExpectEquality(t, r.NumEntries(), 4)
	test.ExpectEquality(t, r.GetSummary().End, 3)
}

func TestComparison(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 100, 1)
	run(t, cf, r, 5)

	c := r.GetComparisonState()
	test.ExpectEquality(t, c.State.FrameNum(), 0)

	r.UpdateComparison()
	test.ExpectEquality(t, r.GetComparisonState().State.FrameNum(), 5)

	r.SetComparison(3)
	test.ExpectEquality(t, r.GetComparisonState().State.FrameNum(), 3)

	r.LockComparison(true)
	r.UpdateComparison()
	c = r.GetComparisonState()
	test.ExpectEquality(t, c.Locked, true)
	test.ExpectEquality(t, c.State.FrameNum(), 3)
}

func TestTimeline(t *testing.T) {
	cf := newConsole(t)
	r := newRewind(t, cf, 3, 1)

	run(t, cf, r, 2)
	test.DemandSuccess(t, cf.Controllers.SetButton(controller.HandA, controller.Push, true))
	run(t, cf, r, 2)

	tl := r.GetTimeline()
	test.ExpectEquality(t, len(tl.FrameNum), 4)
	test.ExpectEquality(t, tl.FrameNum[0], 1)
	test.ExpectEquality(t, tl.HandAInput[1], false)
	test.ExpectEquality(t, tl.HandAInput[2], true)
	test.ExpectEquality(t, tl.HandBInput[2], false)

	// the timeline covers more frames than are available
	test.ExpectEquality(t, tl.AvailableStart, 2)
	test.ExpectEquality(t, tl.AvailableEnd, 4)
}
