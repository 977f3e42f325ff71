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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// the string that separates the key from the value in the preferences file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values to their zero value. Does not touch the file on
// disk.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the preferences file and return key/value pairs. a missing file is
// not an error.
func (dsk *Disk) read() (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() {
		return kv, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) == 2 {
			kv[s[0]] = s[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return kv, nil
}

// Load preference values from disk. Values on the command line stack take
// precedence. Keys in the file that have not been added to this Disk are
// ignored.
func (dsk *Disk) Load() error {
	kv, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return err
			}
			continue
		}
		if v, ok := kv[key]; ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk are preserved.
func (dsk *Disk) Save() error {
	kv, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		kv[key] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, kv[key]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
