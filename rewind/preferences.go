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

import (
	"fmt"

	"github.com/jetsetilly/gopherf8/paths"
	"github.com/jetsetilly/gopherf8/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of entries to store before the earliest entries are
	// forgotten
	MaxEntries prefs.Int

	// how often a frame snapshot of the system is taken. the higher the
	// number the longer it takes to move to a frame that has not been
	// snapshotted
	Freq prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("rewind.maxEntries :: %s\nrewind.snapshotFreq :: %s\n", &p.MaxEntries, &p.Freq)
	}
	return p.dsk.String()
}

const (
	defaultMaxEntries = 300
	defaultFreq       = 1
)

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

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.snapshotFreq", &p.Freq)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns preferences that are not backed by the
// preferences file.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.MaxEntries.Set(defaultMaxEntries)
	_ = p.Freq.Set(defaultFreq)
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
