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

import "github.com/jetsetilly/gopherf8/hardware/peripherals/controller"

// the number of frames recorded in the timeline
const timelineLength = 1000

func (r *Rewind) addTimelineEntry() {
	ctrl := r.cf.Controllers
	r.timeline.FrameNum = append(r.timeline.FrameNum, r.cf.FrameNum)
	r.timeline.HandAInput = append(r.timeline.HandAInput, ctrl.State[controller.HandA] != 0)
	r.timeline.HandBInput = append(r.timeline.HandBInput, ctrl.State[controller.HandB] != 0)
	r.timeline.ConsoleInput = append(r.timeline.ConsoleInput, ctrl.State[controller.Console] != 0)

	if len(r.timeline.FrameNum) > timelineLength {
		r.timeline.FrameNum = r.timeline.FrameNum[1:]
		r.timeline.HandAInput = r.timeline.HandAInput[1:]
		r.timeline.HandBInput = r.timeline.HandBInput[1:]
		r.timeline.ConsoleInput = r.timeline.ConsoleInput[1:]
	}
}

// Timeline provides a summary of recent frames. Input from the controllers
// is noted for each frame.
//
// The timeline covers more frames than the rewind history. The
// AvailableStart and AvailableEnd fields state the earliest and latest frames
// that can be moved to.
type Timeline struct {
	FrameNum     []int
	HandAInput   []bool
	HandBInput   []bool
	ConsoleInput []bool

	AvailableStart int
	AvailableEnd   int
}

// GetTimeline returns a copy of the timeline.
func (r *Rewind) GetTimeline() Timeline {
	s := r.GetSummary()
	return Timeline{
		FrameNum:       append([]int(nil), r.timeline.FrameNum...),
		HandAInput:     append([]bool(nil), r.timeline.HandAInput...),
		HandBInput:     append([]bool(nil), r.timeline.HandBInput...),
		ConsoleInput:   append([]bool(nil), r.timeline.ConsoleInput...),
		AvailableStart: s.Start,
		AvailableEnd:   s.End,
	}
}
