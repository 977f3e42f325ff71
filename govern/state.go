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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Initialising is used while the emulation is being prepared. For example,
// when a cartridge is being attached.
//
// Paused and Rewinding can have meaningful sub-states.
const (
	Initialising State = iota
	Paused
	Stepping
	Rewinding
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Rewinding:
		return "Rewinding"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// SubState allows more detail for some states. Normal indicates that there
// is no more information to impart about the state.
type SubState int

// List of possible sub states.
const (
	Normal SubState = iota
	RewindingBackwards
	RewindingForwards
	PausedAtStart
	PausedAtEnd
	PausedByError
)

func (s SubState) String() string {
	switch s {
	case RewindingBackwards:
		return "Backwards"
	case RewindingForwards:
		return "Forwards"
	case PausedAtStart:
		return "Paused at start"
	case PausedAtEnd:
		return "Paused at end"
	case PausedByError:
		return "Paused by error"
	}
	return ""
}

// StateIntegrity checks whether the combination of state and sub-state makes
// sense.
//
// Rules:
//
//  1. Normal can coexist with any state
//
//  2. PausedAtStart, PausedAtEnd and PausedByError can only be paired with
//     the Paused state
//
//  3. RewindingBackwards and RewindingForwards can only be paired with the
//     Rewinding state
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	switch state {
	case Rewinding:
		return subState == RewindingBackwards || subState == RewindingForwards
	case Paused:
		return subState == PausedAtEnd || subState == PausedAtStart || subState == PausedByError
	}
	return false
}
