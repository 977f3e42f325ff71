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
	"fmt"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/hardware/audio"
	"github.com/jetsetilly/gopherf8/hardware/cpu"
	"github.com/jetsetilly/gopherf8/hardware/hle"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/controller"
	"github.com/jetsetilly/gopherf8/hardware/peripherals/f2102"
	"github.com/jetsetilly/gopherf8/hardware/ports"
	"github.com/jetsetilly/gopherf8/hardware/video"
	"github.com/jetsetilly/gopherf8/logger"
)

// ChannelF struct is the main container for the emulated components of the
// console.
type ChannelF struct {
	Env *environment.Environment

	CPU         *cpu.CPU
	Mem         *memory.Memory
	Ports       *ports.Ports
	EEPROM      *f2102.F2102
	Video       *video.Video
	Audio       *audio.Audio
	Controllers *controller.Controllers
	HLE         *hle.HLE

	// ticks executed beyond the end of the previous frame. the next frame
	// is shorter by this amount
	Debt int

	// ticks executed in the current frame, starting with the debt carried
	// from the previous frame
	Ticks int

	// number of frames completed since the console was created. not
	// affected by Reset()
	FrameNum int

	// the cartridge currently attached
	Cartridge cartridgeloader.Loader

	// the error that caused emulation to stop. only cleared by Reset() or by
	// restoring a state
	halted error
}

// NewChannelF creates a new console and everything associated with the
// hardware. The firmware must be loaded with LoadFirmware() before the
// console is useful.
func NewChannelF(env *environment.Environment) *ChannelF {
	cf := &ChannelF{
		Env:         env,
		Mem:         memory.NewMemory(env),
		Ports:       ports.NewPorts(),
		Video:       video.NewVideo(),
		Audio:       audio.NewAudio(),
		Controllers: controller.NewControllers(),
	}

	cf.CPU = cpu.NewCPU(cf.Mem, cf.Ports)
	cf.EEPROM = f2102.NewF2102(cf.Ports)
	cf.HLE = hle.NewHLE(env, cf.CPU, cf.Mem, cf.Video)
	cf.attach()

	if env.Prefs.SwapControllers.Get().(bool) {
		cf.Controllers.Swap()
	}

	cf.Reset()

	return cf
}

// connect the peripherals to the port bus
func (cf *ChannelF) attach() {
	cf.Ports.Attach(cf.EEPROM, cf.Video, cf.Audio, cf.Controllers)
	cf.Ports.AttachInput(cf.Controllers)
}

func (cf *ChannelF) String() string {
	return fmt.Sprintf("frame=%d ticks=%d debt=%d %s", cf.FrameNum, cf.Ticks, cf.Debt, cf.CPU)
}

// AttachCartridge loads a cartridge into memory and resets the console. A
// loader with no filename ejects the current cartridge.
func (cf *ChannelF) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" {
		cf.Mem.Eject()
		cf.Cartridge = cartload
		logger.Log(cf.Env, "channelf", "cartridge ejected")
		cf.Reset()
		return nil
	}

	err := cartload.Load()
	if err != nil {
		return err
	}

	cf.Mem.Eject()
	err = cf.Mem.LoadCartridge(cartload.Data)
	if err != nil {
		return err
	}

	cf.Cartridge = cartload
	logger.Logf(cf.Env, "channelf", "attached %s (%d bytes)", cartload.ShortName(), len(cartload.Data))

	cf.Reset()

	return nil
}

// Reset emulates the reset button of the console. The controllers and the
// video RAM are not affected.
func (cf *ChannelF) Reset() {
	cf.Debt = 0
	cf.Ticks = 0
	cf.Mem.Reset()
	cf.EEPROM.Reset()
	cf.CPU.Reset()
	cf.Audio.Reset()
	cf.Ports.Reset()
	cf.halted = nil
	cf.HLE.FastScreenClear = cf.Env.Prefs.FastScreenClear.Get().(bool)
}

// ConsoleInput operates the console buttons with the cursor. The console is
// reset if the cursor is pressed on the reset position.
func (cf *ChannelF) ConsoleInput(action controller.CursorAction, pressed bool) {
	if cf.Controllers.CursorInput(action, pressed) {
		cf.Reset()
	}
}

// Halted returns the error that caused the emulation to stop, or nil if the
// emulation can continue.
func (cf *ChannelF) Halted() error {
	return cf.halted
}
