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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, in the same way as the function of the same name in the
// fmt package.
//
// The formatting pattern given to Errorf() identifies the error. The Is()
// function checks whether an error was created with a specific pattern and
// Has() checks whether the pattern appears anywhere in the chain:
//
//	const unsupported = "unsupported function: %#04x"
//
//	e := curated.Errorf(unsupported, pc)
//	f := curated.Errorf("hle: %v", e)
//
//	curated.Is(e, unsupported)  // true
//	curated.Is(f, unsupported)  // false
//	curated.Has(f, unsupported) // true
//
// Patterns that are checked for in this way should be stored as an exported
// const string in the package that creates the error.
//
// IsAny() answers whether an error is curated at all. In practice a curated
// error is an expected error and an uncurated error is unexpected.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts of the chain, where a part is separated from the next by the
// sub-string ": ". This means that a function can wrap an error with its own
// context without worrying that the caller will do the same. For example, the
// chain
//
//	hle: hle: unsupported function: 0x0123
//
// is reported as
//
//	hle: unsupported function: 0x0123
package curated
