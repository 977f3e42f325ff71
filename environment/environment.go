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

package environment

import (
	"github.com/jetsetilly/gopherf8/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations, for example when a rewind state is being
// replayed alongside the main emulation.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case preferences are loaded from
// disk for the main emulation and set to default values for any other
// emulation. Providing a non-nil value allows the preferences of more than one
// emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}

	if env.Prefs == nil {
		if label == MainEmulation {
			var err error
			env.Prefs, err = preferences.NewPreferences()
			if err != nil {
				return nil, err
			}
		} else {
			env.Prefs = preferences.NewDefaultPreferences()
		}
	}

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log. A nil environment is treated as the main
// emulation.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return true
	}
	return env.Label == MainEmulation
}
