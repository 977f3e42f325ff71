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

package hardware

import (
	"github.com/jetsetilly/gopherf8/hardware/audio"
	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/hle"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/f2102"
	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/hardware/video"
)

// State stores the console sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU         *cpu.CPU
	Mem         *memory.Memory
	Ports       *ports.Ports
	EEPROM      *f2102.F2102
	Video       *video.Video
	Audio       *audio.Audio
	Controllers *controller.Controllers
	HLE         *hle.HLE

	Debt     int
	Ticks    int
	FrameNum int
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:         s.CPU.Snapshot(),
		Mem:         s.Mem.Snapshot(),
		Ports:       s.Ports.Snapshot(),
		EEPROM:      s.EEPROM.Snapshot(),
		Video:       s.Video.Snapshot(),
		Audio:       s.Audio.Snapshot(),
		Controllers: s.Controllers.Snapshot(),
		HLE:         s.HLE.Snapshot(),
		Debt:        s.Debt,
		Ticks:       s.Ticks,
		FrameNum:    s.FrameNum,
	}
}

// Snapshot the state of the console sub-systems.
func (cf *ChannelF) Snapshot() *State {
	return &State{
		CPU:         cf.CPU.Snapshot(),
		Mem:         cf.Mem.Snapshot(),
		Ports:       cf.Ports.Snapshot(),
		EEPROM:      cf.EEPROM.Snapshot(),
		Video:       cf.Video.Snapshot(),
		Audio:       cf.Audio.Snapshot(),
		Controllers: cf.Controllers.Snapshot(),
		HLE:         cf.HLE.Snapshot(),
		Debt:        cf.Debt,
		Ticks:       cf.Ticks,
		FrameNum:    cf.FrameNum,
	}
}

// Plumb a previously snapshotted state into the console. The state may have
// been created by a different console.
//
// The halted condition of the console is cleared.
func (cf *ChannelF) Plumb(state *State) {
	if state == nil {
		panic("channelf: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in our state array
	state = state.Snapshot()

	cf.CPU = state.CPU
	cf.Mem = state.Mem
	cf.Ports = state.Ports
	cf.EEPROM = state.EEPROM
	cf.Video = state.Video
	cf.Audio = state.Audio
	cf.Controllers = state.Controllers
	cf.HLE = state.HLE
	cf.Debt = state.Debt
	cf.Ticks = state.Ticks
	cf.FrameNum = state.FrameNum

	cf.Mem.Plumb(cf.Env)
	cf.CPU.Plumb(cf.Mem, cf.Ports)
	cf.EEPROM.Plumb(cf.Ports)
	cf.HLE.Plumb(cf.Env, cf.CPU, cf.Mem, cf.Video)
	cf.attach()

	cf.Video.Resolve()
	cf.halted = nil
}
