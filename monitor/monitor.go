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

// Package monitor is a line based interface to the emulation. Commands step
// the CPU, run frames, inspect memory and the registers, disassemble, save
// and restore the state of the console, and rewind.
//
// Commands can be abbreviated to any unambiguous prefix. Command and
// arguments are separated by spaces. Numeric arguments are decimal unless
// prefixed with $ or 0x.
package monitor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/disassembly"
	"github.com/jetsetilly/gopherf8/hardware"
	"github.com/jetsetilly/gopherf8/rewind"
)

// Sentinel errors.
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	AmbiguousCommand = "monitor: ambiguous command (%s)"
	WrongArguments   = "monitor: wrong number of arguments for %s"
	BadNumber        = "monitor: not a number (%s)"
	BadRange         = "monitor: end address ($%04x) is before start address ($%04x)"
)

// Monitor is the command line interface to a console.
type Monitor struct {
	cf     *hardware.ChannelF
	rewind *rewind.Rewind
	dsm    *disassembly.Disassembly

	term *terminal

	// commands are found by exact name first and then by unambiguous
	// prefix. MEM is a prefix of MEMVIZ
	commands *prefixtree.Tree[*command]
	exact    map[string]*command

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The console should already have firmware and a cartridge attached.
func NewMonitor(cf *hardware.ChannelF, rwnd *rewind.Rewind, input io.Reader, output io.Writer) *Monitor {
	m := &Monitor{
		cf:       cf,
		rewind:   rwnd,
		dsm:      disassembly.NewDisassembly(),
		term:     newTerminal(input, output),
		commands: prefixtree.New[*command](),
		exact:    make(map[string]*command),
	}

	for i := range commands {
		m.commands.Add(strings.ToLower(commands[i].name), &commands[i])
		m.exact[strings.ToLower(commands[i].name)] = &commands[i]
	}

	return m
}

func (m *Monitor) prompt() string {
	return fmt.Sprintf("[%04x] > ", m.cf.CPU.PC0)
}

// Run reads and executes commands until the input is exhausted or the QUIT
// command is used.
func (m *Monitor) Run() error {
	for !m.quit {
		line, err := m.term.read(m.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		err = m.Execute(line)
		if err != nil {
			m.term.print(StyleError, "%v", err)
		}
	}

	return nil
}

// Execute a single command line.
func (m *Monitor) Execute(line string) error {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}

	cmd, ok := m.exact[strings.ToLower(f[0])]
	if !ok {
		var err error
		cmd, err = m.commands.FindValue(strings.ToLower(f[0]))
		if err != nil {
			if err == prefixtree.ErrPrefixAmbiguous {
				return curated.Errorf(AmbiguousCommand, f[0])
			}
			return curated.Errorf(UnknownCommand, f[0])
		}
	}

	args := f[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return curated.Errorf(WrongArguments, cmd.name)
	}

	return cmd.handler(m, args)
}

// parse a numeric argument
func parseNumber(s string, bits int) (uint64, error) {
	v := s
	if strings.HasPrefix(v, "$") {
		v = "0x" + v[1:]
	}
	n, err := strconv.ParseUint(v, 0, bits)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return n, nil
}
