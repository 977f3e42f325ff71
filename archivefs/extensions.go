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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions that are recognised as
// archives. The list is only used for naming. Archives are identified by
// their content.
var ArchiveExtensions = [...]string{".ZIP"}

// TrimArchiveExt removes the archive extension from a filename.
func TrimArchiveExt(s string) string {
	ext := filepath.Ext(s)
	for _, e := range ArchiveExtensions {
		if strings.ToUpper(ext) == e {
			return strings.TrimSuffix(s, ext)
		}
	}
	return s
}
