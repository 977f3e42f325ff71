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

package logger

// Permission is consulted before a log entry is created. An emulation that is
// not the main emulation, for example one used to generate a digest, should
// not be adding to the log.
type Permission interface {
	AllowLogging() bool
}

type alwaysAllow struct{}

func (alwaysAllow) AllowLogging() bool {
	return true
}

// Allow can be used as a Permission when there is no environment to consult.
var Allow Permission = alwaysAllow{}
