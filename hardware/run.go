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
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/govern"
	"github.com/jetsetilly/gopherf8/hardware/clocks"
)

// MachineHalted is returned by the run functions when the emulation has been
// stopped by an earlier error.
const MachineHalted = "channelf: machine halted: %v"

// UnsupportedState is returned by Run() when the continue check returns a
// state that can not be handled.
const UnsupportedState = "channelf: unsupported emulation state (%s)"

// Step executes one CPU instruction or one step of the firmware emulation.
// Returns true if the step completed the frame.
//
// An error is returned if the firmware emulation encounters a routine it can
// not emulate. The frame is completed immediately and no further steps are
// possible until the console is reset.
func (cf *ChannelF) Step() (bool, error) {
	if cf.halted != nil {
		return false, curated.Errorf(MachineHalted, cf.halted)
	}

	var ticks int
	var err error

	if cf.HLE.Active() {
		ticks, err = cf.HLE.Step()
	} else {
		ticks = cf.CPU.Step()
	}

	cf.Ticks += ticks
	cf.Audio.Tick(ticks)

	if err != nil {
		cf.halted = err
		cf.endFrame()
		return true, err
	}

	if cf.Ticks >= clocks.TicksPerFrame {
		cf.endFrame()
		return true, nil
	}

	return false, nil
}

// the excess ticks are carried into the next frame
func (cf *ChannelF) endFrame() {
	cf.Debt = cf.Ticks - clocks.TicksPerFrame
	if cf.Debt < 0 {
		cf.Debt = 0
	}
	cf.Ticks = cf.Debt

	cf.Audio.EndFrame()
	cf.Video.Resolve()
	cf.FrameNum++

	cf.HLE.FastScreenClear = cf.Env.Prefs.FastScreenClear.Get().(bool)
}

// RunFrame runs the emulation until the end of the current frame. On return
// the frame's samples are available from the Audio field and the resolved
// image from the Video field.
func (cf *ChannelF) RunFrame() error {
	for {
		done, err := cf.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Run sets the emulation running one frame at a time. The continueCheck
// function is called at the end of every frame and should return
// govern.Ending when the emulation is to stop. While the returned state is
// govern.Paused no frames are run but the continueCheck function is still
// called.
func (cf *ChannelF) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			err = cf.RunFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for FPS and regression tests. The continueCheck function
// can be nil.
func (cf *ChannelF) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := cf.FrameNum + numFrames

	state := govern.Running
	for cf.FrameNum < targetFrame && state != govern.Ending {
		err := cf.RunFrame()
		if err != nil {
			return err
		}

		state, err = continueCheck(cf.FrameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
