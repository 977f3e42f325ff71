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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepAll GrepScope = iota
	GrepOperator
	GrepOperand
)

// Grep searches the disassembly for the specified search string. Matching
// lines are written to output. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var n int

	for _, e := range dsm.ordered(0, 0xffff) {
		var s string

		switch scope {
		case GrepOperator:
			s = e.Operator
		case GrepOperand:
			s = e.Operand
		default:
			s = e.Line()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			n++
			if _, err := fmt.Fprintln(output, e.Line()); err != nil {
				return n, fmt.Errorf("disassembly: %w", err)
			}
		}
	}

	return n, nil
}
