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

package preferences

import (
	"github.com/jetsetilly/gopherf8/paths"
	"github.com/jetsetilly/gopherf8/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// clear the screen in a single step when the screen clear routine is
	// being emulated at a high level. the real firmware clears the screen one
	// row at a time
	FastScreenClear prefs.Bool

	// use high level emulation of the firmware even if the firmware files
	// are available
	ForceHLE prefs.Bool

	// directory in which to look for the firmware files. the empty string
	// means the "firmware" directory of the resource path
	FirmwarePath prefs.String

	// the hand controllers are swapped on reset
	SwapControllers prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hle.fastclear", &p.FastScreenClear)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hle.force", &p.ForceHLE)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("firmware.path", &p.FirmwarePath)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controller.swap", &p.SwapControllers)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns an instance of Preferences that is not backed
// by the preferences file. Useful for secondary emulations and for testing.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.FastScreenClear.Set(false)
	_ = p.ForceHLE.Set(false)
	_ = p.FirmwarePath.Set("")
	_ = p.SwapControllers.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
