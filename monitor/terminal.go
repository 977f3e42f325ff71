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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Style of a printed line.
type Style int

// List of print styles.
const (
	StyleResult Style = iota
	StyleMachineInfo
	StyleFeedback
	StyleHelp
	StyleError
)

const (
	ansiOff    = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[37m"
)

// terminal is a plain line based terminal. Colour is used when the output is
// a real terminal.
type terminal struct {
	input  *bufio.Scanner
	output io.Writer

	realInput  bool
	realOutput bool
}

func newTerminal(input io.Reader, output io.Writer) *terminal {
	t := &terminal{
		input:  bufio.NewScanner(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		t.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := output.(*os.File); ok {
		t.realOutput = term.IsTerminal(int(f.Fd()))
	}

	return t
}

func (t *terminal) print(style Style, s string, a ...any) {
	s = fmt.Sprintf(s, a...)

	if style == StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	if !t.realOutput {
		fmt.Fprintln(t.output, s)
		return
	}

	switch style {
	case StyleResult:
		fmt.Fprint(t.output, ansiYellow)
	case StyleMachineInfo:
		fmt.Fprint(t.output, ansiCyan)
	case StyleFeedback, StyleHelp:
		fmt.Fprint(t.output, ansiGray)
	case StyleError:
		fmt.Fprint(t.output, ansiRed)
	}
	fmt.Fprint(t.output, s)
	fmt.Fprintln(t.output, ansiOff)
}

// read a line of input. the prompt is only shown for a real terminal. returns
// io.EOF when there is no more input
func (t *terminal) read(prompt string) (string, error) {
	if t.realInput {
		fmt.Fprint(t.output, prompt)
	}

	if !t.input.Scan() {
		if err := t.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return t.input.Text(), nil
}
