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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/screenshot"
)

type command struct {
	name    string
	usage   string
	help    string
	minArgs int

	// -1 for no maximum
	maxArgs int

	handler func(m *Monitor, args []string) error
}

// the number of instructions disassembled by DISASM when no end address is
// given. F8 instructions are at most three bytes long
const disasmDefault = 16

// the number of bytes shown by MEM when no length is given
const memDefault = 64

var commands = []command{
	{name: "STEP", usage: "STEP [n]", help: "execute one or more instructions", maxArgs: 1, handler: cmdStep},
	{name: "FRAME", usage: "FRAME [n]", help: "run to the end of one or more frames", maxArgs: 1, handler: cmdFrame},
	{name: "REGS", usage: "REGS", help: "show the CPU registers and the scratchpad", handler: cmdRegs},
	{name: "MEM", usage: "MEM address [length]", help: "show the contents of memory", minArgs: 1, maxArgs: 2, handler: cmdMem},
	{name: "PORTS", usage: "PORTS", help: "show the port latches and the state of the peripherals", handler: cmdPorts},
	{name: "DISASM", usage: "DISASM [address [end]]", help: "disassemble memory. defaults to the current instruction", maxArgs: 2, handler: cmdDisasm},
	{name: "RESET", usage: "RESET", help: "press the reset button", handler: cmdReset},
	{name: "SAVE", usage: "SAVE filename", help: "save the state of the console", minArgs: 1, maxArgs: 1, handler: cmdSave},
	{name: "LOAD", usage: "LOAD filename", help: "restore a saved state", minArgs: 1, maxArgs: 1, handler: cmdLoad},
	{name: "REWIND", usage: "REWIND [frame]", help: "move to an earlier frame or show the available frames", maxArgs: 1, handler: cmdRewind},
	{name: "SCREENSHOT", usage: "SCREENSHOT [filename]", help: "save the screen as a PNG file", maxArgs: 1, handler: cmdScreenshot},
	{name: "MEMVIZ", usage: "MEMVIZ filename", help: "write a graphviz description of the CPU and the controllers", minArgs: 1, maxArgs: 1, handler: cmdMemviz},
	{name: "HELP", usage: "HELP [command]", help: "list commands or show the usage of a command", maxArgs: 1, handler: cmdHelp},
	{name: "QUIT", usage: "QUIT", help: "leave the monitor", handler: cmdQuit},
}

func optionalCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := parseNumber(args[0], 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func cmdStep(m *Monitor, args []string) error {
	n, err := optionalCount(args)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		hle := m.cf.HLE.Active()
		pc := m.cf.CPU.PC0

		done, err := m.cf.Step()
		if err != nil {
			return err
		}

		if hle {
			m.term.print(StyleResult, "$%04x  (firmware routine)", pc)
		} else {
			m.dsm.UpdateEntry(m.cf.CPU.LastResult)
			if e, ok := m.dsm.GetEntryByAddress(m.cf.CPU.LastResult.Address); ok {
				m.term.print(StyleResult, "%s", e.Line())
			}
		}

		if done {
			m.rewind.RecordFrameState()
			m.term.print(StyleFeedback, "end of frame %d", m.cf.FrameNum)
		}
	}

	return nil
}

func cmdFrame(m *Monitor, args []string) error {
	n, err := optionalCount(args)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		err := m.cf.RunFrame()
		if err != nil {
			return err
		}
		m.rewind.RecordFrameState()
	}

	m.term.print(StyleFeedback, "frame %d", m.cf.FrameNum)

	return nil
}

func cmdRegs(m *Monitor, _ []string) error {
	m.term.print(StyleMachineInfo, "%s", m.cf.CPU)
	for i := 0; i < len(m.cf.CPU.R); i += 16 {
		s := strings.Builder{}
		fmt.Fprintf(&s, "r%02d:", i)
		for _, v := range m.cf.CPU.R[i : i+16] {
			fmt.Fprintf(&s, " %02x", v)
		}
		m.term.print(StyleMachineInfo, "%s", s.String())
	}
	m.term.print(StyleMachineInfo, "%s", m.cf.HLE)
	m.term.print(StyleMachineInfo, "ticks=%d debt=%d frame=%d", m.cf.Ticks, m.cf.Debt, m.cf.FrameNum)
	return nil
}

func cmdMem(m *Monitor, args []string) error {
	address, err := parseNumber(args[0], 16)
	if err != nil {
		return err
	}

	length := uint64(memDefault)
	if len(args) > 1 {
		length, err = parseNumber(args[1], 16)
		if err != nil {
			return err
		}
	}

	for a := address; a < address+length; a += 16 {
		s := strings.Builder{}
		fmt.Fprintf(&s, "%04x:", a&0xffff)
		for b := a; b < a+16 && b < address+length; b++ {
			fmt.Fprintf(&s, " %02x", m.cf.Mem.Read(uint16(b)))
		}
		m.term.print(StyleMachineInfo, "%s", s.String())
	}

	return nil
}

func cmdPorts(m *Monitor, _ []string) error {
	m.term.print(StyleMachineInfo, "%s", m.cf.Ports)
	m.term.print(StyleMachineInfo, "%s", m.cf.Controllers)
	m.term.print(StyleMachineInfo, "%s", m.cf.EEPROM)
	return nil
}

func cmdDisasm(m *Monitor, args []string) error {
	start := m.cf.CPU.PC0
	if len(args) > 0 {
		v, err := parseNumber(args[0], 16)
		if err != nil {
			return err
		}
		start = uint16(v)
	}

	end := uint32(start) + disasmDefault*3
	if len(args) > 1 {
		v, err := parseNumber(args[1], 16)
		if err != nil {
			return err
		}
		end = uint32(v)
	}
	if end > 0xffff {
		end = 0xffff
	}
	if end < uint32(start) {
		return curated.Errorf(BadRange, end, start)
	}

	m.dsm.Decode(m.cf.Mem, start, uint16(end))
	return m.dsm.Write(m.term.output, start, uint16(end))
}

func cmdReset(m *Monitor, _ []string) error {
	m.cf.Reset()
	m.term.print(StyleFeedback, "console reset")
	return nil
}

func cmdSave(m *Monitor, args []string) error {
	err := os.WriteFile(args[0], m.cf.Serialise(), 0o644)
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	m.term.print(StyleFeedback, "state saved to %s", args[0])
	return nil
}

func cmdLoad(m *Monitor, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}

	err = m.cf.Deserialise(data)
	if err != nil {
		return err
	}

	m.rewind.Reset()
	m.term.print(StyleFeedback, "state restored from %s", args[0])
	return nil
}

func cmdRewind(m *Monitor, args []string) error {
	if len(args) == 0 {
		s := m.rewind.GetSummary()
		m.term.print(StyleFeedback, "frames %d to %d available (current %d)", s.Start, s.End, s.Current)
		return nil
	}

	v, err := parseNumber(args[0], 32)
	if err != nil {
		return err
	}

	fn, err := m.rewind.GotoFrame(int(v))
	if err != nil {
		return err
	}

	m.term.print(StyleFeedback, "frame %d", fn)
	return nil
}

func cmdScreenshot(m *Monitor, args []string) error {
	fn := screenshot.Filename(m.cf.Cartridge.ShortName())
	if len(args) > 0 {
		fn = args[0]
	}

	err := screenshot.Save(m.cf.Video.Visible(), fn)
	if err != nil {
		return err
	}

	m.term.print(StyleFeedback, "screenshot saved to %s", fn)
	return nil
}

func cmdMemviz(m *Monitor, args []string) (rerr error) {
	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("monitor: %v", err)
		}
	}()

	// the CPU is disconnected from memory so that the 64K of memory doesn't
	// swamp the graph
	mc := m.cf.CPU.Snapshot()
	mc.Plumb(nil, nil)

	memviz.Map(f, mc, m.cf.Controllers.Snapshot())

	m.term.print(StyleFeedback, "graph written to %s", args[0])
	return nil
}

func cmdHelp(m *Monitor, args []string) error {
	if len(args) > 0 {
		cmd, ok := m.exact[strings.ToLower(args[0])]
		if !ok {
			var err error
			cmd, err = m.commands.FindValue(strings.ToLower(args[0]))
			if err != nil {
				return curated.Errorf(UnknownCommand, args[0])
			}
		}
		m.term.print(StyleHelp, "%s", cmd.usage)
		m.term.print(StyleHelp, "  %s", cmd.help)
		return nil
	}

	names := make([]string, 0, len(m.exact))
	for _, c := range m.exact {
		names = append(names, c.name)
	}
	sort.Strings(names)
	m.term.print(StyleHelp, "%s", strings.Join(names, " "))

	return nil
}

func cmdQuit(m *Monitor, _ []string) error {
	m.quit = true
	return nil
}
