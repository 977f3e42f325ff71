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
)

// Write the disassembly of the address range to the output.
func (dsm *Disassembly) Write(output io.Writer, start uint16, end uint16) error {
	for _, e := range dsm.ordered(start, end) {
		if _, err := fmt.Fprintln(output, e.Line()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
