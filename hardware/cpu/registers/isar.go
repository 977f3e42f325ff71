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

package registers

import "fmt"

// ISAR is the six bit indirect scratchpad address register. The upper and
// lower octal digits can be loaded independently and only the lower digit is
// affected by the auto-increment and auto-decrement addressing modes.
type ISAR uint8

// Label returns the canonical name for the register.
func (is ISAR) Label() string {
	return "IS"
}

// String returns the register as two octal digits, as is conventional for
// scratchpad addresses.
func (is ISAR) String() string {
	return fmt.Sprintf("%02o", uint8(is))
}

// Load a new value. Only the lower six bits are kept.
func (is *ISAR) Load(v uint8) {
	*is = ISAR(v & 0x3f)
}

// Upper octal digit.
func (is ISAR) Upper() uint8 {
	return uint8(is>>3) & 0x07
}

// Lower octal digit.
func (is ISAR) Lower() uint8 {
	return uint8(is) & 0x07
}

// LoadUpper replaces the upper octal digit.
func (is *ISAR) LoadUpper(v uint8) {
	*is = (*is & 0x07) | ISAR((v&0x07)<<3)
}

// LoadLower replaces the lower octal digit.
func (is *ISAR) LoadLower(v uint8) {
	*is = (*is & 0x38) | ISAR(v&0x07)
}

// Increment the lower octal digit, wrapping within the current bank of eight.
func (is *ISAR) Increment() {
	*is = (*is & 0x38) | ((*is + 1) & 0x07)
}

// Decrement the lower octal digit, wrapping within the current bank of eight.
func (is *ISAR) Decrement() {
	*is = (*is & 0x38) | ((*is - 1) & 0x07)
}
