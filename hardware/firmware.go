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
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/logger"
	"github.com/jetsetilly/gopherf8/paths"
)

// FirmwareSize is the size of each half of the firmware.
const FirmwareSize = 0x0400

// the filenames searched for each half of the firmware. the first file found
// is used
var (
	psu1Files = []string{"sl90025.bin", "sl31253.bin"}
	psu2Files = []string{"sl31254.bin"}
)

// FirmwareDir returns the directory that is searched by LoadFirmware(). The
// FirmwarePath preference is used if it is set.
func (cf *ChannelF) FirmwareDir() (string, error) {
	dir := cf.Env.Prefs.FirmwarePath.Get().(string)
	if dir != "" {
		return dir, nil
	}
	return paths.ResourcePath("firmware", "")
}

// LoadFirmware loads the two halves of the firmware from the firmware
// directory. A half that can not be loaded is emulated instead. Both halves
// are emulated if the ForceHLE preference is set.
//
// The console is reset after the firmware is loaded.
func (cf *ChannelF) LoadFirmware() {
	if cf.Env.Prefs.ForceHLE.Get().(bool) {
		logger.Log(cf.Env, "firmware", "high level emulation forced")
		cf.AttachFirmware(nil, nil)
		return
	}

	dir, err := cf.FirmwareDir()
	if err != nil {
		logger.Logf(cf.Env, "firmware", "%v", err)
		cf.AttachFirmware(nil, nil)
		return
	}

	cf.AttachFirmware(cf.readFirmware(dir, psu1Files), cf.readFirmware(dir, psu2Files))
}

// returns nil if no file could be loaded
func (cf *ChannelF) readFirmware(dir string, files []string) []uint8 {
	for _, fn := range files {
		data, err := os.ReadFile(filepath.Join(dir, fn))
		if err != nil {
			logger.Logf(cf.Env, "firmware", "%v", err)
			continue
		}
		if len(data) == 0 {
			logger.Logf(cf.Env, "firmware", "%s is empty", fn)
			continue
		}
		logger.Logf(cf.Env, "firmware", "using %s", fn)
		return data
	}
	return nil
}

// AttachFirmware places the firmware in memory. A nil or empty value for
// either half causes that half to be emulated. Data beyond FirmwareSize is
// ignored.
//
// The console is reset after the firmware is attached.
func (cf *ChannelF) AttachFirmware(psu1 []uint8, psu2 []uint8) {
	cf.HLE.PSU1 = !cf.loadFirmware(psu1, memory.PSU1Origin)
	if cf.HLE.PSU1 {
		logger.Log(cf.Env, "firmware", "emulating PSU1 firmware")
	}

	cf.HLE.PSU2 = !cf.loadFirmware(psu2, memory.PSU2Origin)
	if cf.HLE.PSU2 {
		logger.Log(cf.Env, "firmware", "emulating PSU2 firmware")
	}

	cf.Reset()
}

func (cf *ChannelF) loadFirmware(data []uint8, origin int) bool {
	if len(data) > FirmwareSize {
		data = data[:FirmwareSize]
	}

	// an empty image is not an error in this context. the firmware will
	// be emulated
	if err := cf.Mem.Load(data, origin); err != nil {
		if !curated.Is(err, memory.EmptyImage) {
			logger.Logf(cf.Env, "firmware", "%v", err)
		}
		return false
	}

	return true
}
