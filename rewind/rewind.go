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

// Package rewind keeps a history of machine states so that the emulation can
// be moved back to an earlier frame.
//
// A snapshot is taken at the end of every frame (or every Freq frames, as
// set in the preferences) with RecordFrameState(). Snapshots can also be
// taken part way through a frame with RecordExecutionState(). Only the most
// recent execution state is kept.
//
// When the emulation is moved to a frame for which there is no snapshot, the
// nearest earlier snapshot is plumbed in and the emulation is run forward to
// the requested frame.
package rewind

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware"
)

// CatchUpError is returned when the emulation can not be run forward to the
// requested frame.
const CatchUpError = "rewind: %v"

// snapshotLevel indicates the level of snapshot.
type snapshotLevel int

// List of valid snapshotLevel values.
const (
	levelReset snapshotLevel = iota
	levelFrame
	levelExecution
)

// State is a single entry in the rewind history.
type State struct {
	level   snapshotLevel
	Machine *hardware.State
}

// FrameNum returns the frame number of the state.
func (s *State) FrameNum() int {
	return s.Machine.FrameNum
}

func (s State) String() string {
	if s.level == levelExecution {
		return "c"
	}
	return fmt.Sprintf("%d", s.Machine.FrameNum)
}

func (s *State) snapshot() *State {
	return &State{
		level:   s.level,
		Machine: s.Machine.Snapshot(),
	}
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	cf    *hardware.ChannelF
	Prefs *Preferences

	// entries in frame order. the entry at curr is the state most recently
	// plumbed in or recorded
	entries []*State
	curr    int

	// comparison point
	comparison       *State
	comparisonLocked bool

	timeline Timeline
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The prefs argument can be nil, in which case the preferences are loaded
// from disk.
func NewRewind(cf *hardware.ChannelF, prefs *Preferences) (*Rewind, error) {
	r := &Rewind{
		cf:    cf,
		Prefs: prefs,
	}

	if r.Prefs == nil {
		var err error
		r.Prefs, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("rewind: %v", err)
		}
	}

	r.Reset()

	return r, nil
}

func (r *Rewind) maxEntries() int {
	n := r.Prefs.MaxEntries.Get().(int)
	if n < 2 {
		n = 2
	}
	return n
}

func (r *Rewind) freq() int {
	n := r.Prefs.Freq.Get().(int)
	if n < 1 {
		n = 1
	}
	return n
}

// Reset removes all entries and takes a snapshot of the current state. This
// should be called whenever a new cartridge is attached to the emulation.
func (r *Rewind) Reset() {
	r.entries = r.entries[:0]
	r.curr = -1
	r.timeline = Timeline{}

	r.append(&State{
		level:   levelReset,
		Machine: r.cf.Snapshot(),
	})

	// first comparison is to the snapshot of the reset machine
	r.comparison = r.entries[0]
}

// RecordFrameState should be called at the end of every frame. A snapshot is
// taken if the frame number is a multiple of the snapshot frequency.
func (r *Rewind) RecordFrameState() {
	r.addTimelineEntry()

	if r.cf.FrameNum%r.freq() != 0 {
		return
	}

	r.trim()
	r.append(&State{
		level:   levelFrame,
		Machine: r.cf.Snapshot(),
	})
}

// RecordExecutionState takes a snapshot of the emulation part way through a
// frame. It replaces any previous execution state.
func (r *Rewind) RecordExecutionState() {
	r.trim()
	r.append(&State{
		level:   levelExecution,
		Machine: r.cf.Snapshot(),
	})
}

// appending after a rewind forgets all entries after the current entry
func (r *Rewind) append(s *State) {
	r.entries = append(r.entries[:r.curr+1], s)

	if len(r.entries) > r.maxEntries() {
		r.entries = r.entries[len(r.entries)-r.maxEntries():]
	}

	r.curr = len(r.entries) - 1
}

// remove the current entry if it is an execution state
func (r *Rewind) trim() {
	if r.curr >= 0 && r.entries[r.curr].level == levelExecution {
		r.entries = r.entries[:r.curr]
		r.curr--
	}
}

// Summary of the current state of the rewind system.
type Summary struct {
	Start   int
	End     int
	Current int
}

// GetSummary returns the frame numbers of the earliest and latest entries
// and the frame number of the current emulation state.
func (r *Rewind) GetSummary() Summary {
	return Summary{
		Start:   r.entries[0].FrameNum(),
		End:     r.entries[len(r.entries)-1].FrameNum(),
		Current: r.cf.FrameNum,
	}
}

// NumEntries returns the number of entries in the rewind history.
func (r *Rewind) NumEntries() int {
	return len(r.entries)
}

// plumb in the entry at idx and run the emulation forward to the frame
func (r *Rewind) plumb(idx int, frame int) error {
	r.curr = idx
	r.cf.Plumb(r.entries[idx].Machine)

	for r.cf.FrameNum < frame {
		if err := r.cf.RunFrame(); err != nil {
			return curated.Errorf(CatchUpError, err)
		}
	}

	return nil
}

// GotoLast moves the emulation to the most recent entry.
func (r *Rewind) GotoLast() error {
	idx := len(r.entries) - 1
	return r.plumb(idx, r.entries[idx].FrameNum())
}

// GotoFrame moves the emulation to the frame number. If the frame number is
// outside the range of the history the nearest entry is used. Returns the
// frame number the emulation was moved to.
func (r *Rewind) GotoFrame(frame int) (int, error) {
	s := 0
	e := len(r.entries) - 1

	if fn := r.entries[s].FrameNum(); frame <= fn {
		return fn, r.plumb(s, fn)
	}

	// the most recent entry might be an execution state in which case the
	// frame number refers to a frame that hasn't completed
	if fn := r.entries[e].FrameNum(); frame >= fn {
		if r.entries[e].level == levelExecution && e > 0 {
			e--
		} else {
			return fn, r.plumb(e, fn)
		}
	}

	// find the latest entry at or before the frame
	for s < e {
		m := (s + e + 1) / 2
		if r.entries[m].FrameNum() <= frame {
			s = m
		} else {
			e = m - 1
		}
	}

	return frame, r.plumb(s, frame)
}
