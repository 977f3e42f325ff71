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

import "strings"

// Bit positions of the flags in the W register.
const (
	SignBit      = 0
	CarryBit     = 1
	ZeroBit      = 2
	OverflowBit  = 3
	InterruptBit = 4
)

// StatusRegister is the W register of the F8. Unlike the other flags, the sign
// flag is stored inverted: a set bit means the last result was positive.
//
// The register is kept as a raw byte because the LR W,J and LR J,W
// instructions move it to and from the scratchpad unaltered.
type StatusRegister uint8

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "W"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on rune, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.InterruptEnabled(), 'I', 'i')
	flag(sr.Overflow(), 'O', 'o')
	flag(sr.Zero(), 'Z', 'z')
	flag(sr.Carry(), 'C', 'c')

	// upper case S means the sign is negative
	flag(!sr.Positive(), 'S', 's')

	return s.String()
}

// Positive returns the raw value of the sign bit.
func (sr StatusRegister) Positive() bool {
	return sr&(1<<SignBit) != 0
}

// Carry flag.
func (sr StatusRegister) Carry() bool {
	return sr&(1<<CarryBit) != 0
}

// Zero flag.
func (sr StatusRegister) Zero() bool {
	return sr&(1<<ZeroBit) != 0
}

// Overflow flag.
func (sr StatusRegister) Overflow() bool {
	return sr&(1<<OverflowBit) != 0
}

// InterruptEnabled returns the state of the interrupt control bit.
func (sr StatusRegister) InterruptEnabled() bool {
	return sr&(1<<InterruptBit) != 0
}

func (sr *StatusRegister) set(bit uint, v bool) {
	if v {
		*sr |= 1 << bit
	} else {
		*sr &^= 1 << bit
	}
}

// setSign takes the sign from bit 7 of v and stores it inverted.
func (sr *StatusRegister) setSign(v int) {
	sr.set(SignBit, v&0x80 == 0)
}

// SetInterrupt sets or clears the interrupt control bit.
func (sr *StatusRegister) SetInterrupt(v bool) {
	sr.set(InterruptBit, v)
}

// Add two eight bit values, setting all four arithmetic flags. The arguments
// are ints because the two's complement of zero used by Subtract is the nine
// bit value 0x100.
func (sr *StatusRegister) Add(a int, b int) uint8 {
	signa := a & 0x80
	signb := b & 0x80
	result := a + b
	signr := result & 0x80

	sr.setSign(result)
	sr.set(ZeroBit, result&0xff == 0)
	sr.set(OverflowBit, signa == signb && signa != signr)
	sr.set(CarryBit, result&0x100 != 0)

	return uint8(result)
}

// Subtract b from a by adding the two's complement of b. Note that
// subtracting zero, and so comparing a value with itself, leaves the carry
// flag set.
func (sr *StatusRegister) Subtract(a int, b int) uint8 {
	return sr.Add(a, (b^0xff)+1)
}

// AddDecimal adds two packed BCD values. The flags are those of the binary
// addition. The F8 expects one of the operands to have been biased by 0x66
// beforehand and only corrects nibbles that did not carry.
func (sr *StatusRegister) AddDecimal(a int, b int) uint8 {
	sum := a + b
	lowerCarry := (a&0x0f)+(b&0x0f) > 0x0f
	upperCarry := sum >= 0x100

	sr.Add(a, b)

	if !lowerCarry {
		sum = (sum & 0xf0) | ((sum + 0x0a) & 0x0f)
	}
	if !upperCarry {
		sum += 0xa0
	}

	return uint8(sum)
}

// Logical sets the flags for the result of a logical or shift operation.
// Overflow and carry are cleared. The value is returned unchanged.
func (sr *StatusRegister) Logical(v uint8) uint8 {
	sr.set(OverflowBit, false)
	sr.set(ZeroBit, v == 0)
	sr.set(CarryBit, false)
	sr.setSign(int(v))
	return v
}
