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

package rewind

// ComparisonState is returned by GetComparisonState().
type ComparisonState struct {
	State  *State
	Locked bool
}

// GetComparisonState gets a copy of the current comparison point.
func (r *Rewind) GetComparisonState() ComparisonState {
	return ComparisonState{
		State:  r.comparison.snapshot(),
		Locked: r.comparisonLocked,
	}
}

// UpdateComparison points the comparison to the current entry.
func (r *Rewind) UpdateComparison() {
	if r.comparisonLocked {
		return
	}
	r.comparison = r.entries[r.curr]
}

// SetComparison points the comparison to the latest entry at or before the
// frame.
func (r *Rewind) SetComparison(frame int) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].FrameNum() <= frame {
			r.comparison = r.entries[i]
			return
		}
	}
	r.comparison = r.entries[0]
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}
