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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/digest"
	"github.com/jetsetilly/gopherf8/disassembly"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/hardware"
	"github.com/jetsetilly/gopherf8/hardware/memory"
	"github.com/jetsetilly/gopherf8/hardware/preferences"
	"github.com/jetsetilly/gopherf8/logger"
	"github.com/jetsetilly/gopherf8/modalflag"
	"github.com/jetsetilly/gopherf8/monitor"
	"github.com/jetsetilly/gopherf8/performance"
	"github.com/jetsetilly/gopherf8/playmode"
	"github.com/jetsetilly/gopherf8/prefs"
	"github.com/jetsetilly/gopherf8/rewind"
	"github.com/jetsetilly/gopherf8/statsview"
	"github.com/jetsetilly/gopherf8/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "MONITOR", "DISASM", "DIGEST", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "MONITOR":
		err = monitorMode(md, os.Stdin, os.Stdout)

	case "DISASM":
		err = disasm(md, os.Stdout)

	case "DIGEST":
		err = digestMode(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// a single cartridge argument is required by most modes
func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// preferences can be set on the command line for the duration of the
// program. for example: -prefs "hle.fastclear::true; hle.force::true"
//
// the returned function should be called after the flags have been parsed.
// it returns the function that removes the preferences again
func pushPrefs(md *modalflag.Modes) func() func() {
	s := md.AddString("prefs", "", "preferences to apply for this run (key::value; key::value)")
	return func() func() {
		if *s == "" {
			return func() {}
		}
		prefs.PushCommandLineStack(*s)
		return func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopherf8", "unused preferences: %s", unused)
			}
		}
	}
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	uncapped := md.AddBool("uncapped", false, "do not limit the frame rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	applyPrefs := pushPrefs(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer applyPrefs()()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	// playmode handles ctrl-c itself
	sync.state <- stateRequest{req: reqNoIntSig}

	return playmode.Play(os.Stdout, cartload, playmode.Options{
		WavFile:  *wav,
		Uncapped: *uncapped,
	})
}

func monitorMode(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	state := md.AddString("state", "", "restore a saved state before starting")
	applyPrefs := pushPrefs(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer applyPrefs()()

	setLogEcho(*log)

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	cf := hardware.NewChannelF(env)
	cf.LoadFirmware()

	// the cartridge is optional in monitor mode
	if len(md.RemainingArgs()) > 0 {
		cartload, err := cartridgeArg(md)
		if err != nil {
			return err
		}
		err = cf.AttachCartridge(cartload)
		if err != nil {
			return err
		}
	}

	if *state != "" {
		data, err := os.ReadFile(*state)
		if err != nil {
			return err
		}
		err = cf.Deserialise(data)
		if err != nil {
			return err
		}
	}

	rwnd, err := rewind.NewRewind(cf, nil)
	if err != nil {
		return err
	}

	return monitor.NewMonitor(cf, rwnd, input, output).Run()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	origin := md.AddString("origin", fmt.Sprintf("$%04x", memory.CartridgeOrigin), "address of the first byte of the file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	err = cartload.Load()
	if err != nil {
		return err
	}

	o, err := strconv.ParseUint(strings.Replace(*origin, "$", "0x", 1), 0, 16)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}

	env, err := environment.NewEnvironment("disasm", preferences.NewDefaultPreferences())
	if err != nil {
		return err
	}

	mem := memory.NewMemory(env)
	err = mem.Load(cartload.Data, int(o))
	if err != nil {
		return err
	}

	end := int(o) + len(cartload.Data) - 1
	if end > 0xffff {
		end = 0xffff
	}

	dsm := disassembly.FromMemory(mem, uint16(o), uint16(end))
	return dsm.Write(output, uint16(o), uint16(end))
}

func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	audio := md.AddBool("audio", false, "digest the audio rather than the video")
	hle := md.AddBool("hle", false, "emulate the firmware even if the firmware files are available")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	hash, err := runDigest(cartload, *frames, *audio, *hle)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, hash)
	return nil
}

// runs the cartridge in a normalised environment and returns the digest of
// the video or audio output
func runDigest(cartload cartridgeloader.Loader, frames int, audio bool, hle bool) (string, error) {
	env, err := environment.NewEnvironment("digest", nil)
	if err != nil {
		return "", err
	}
	env.Normalise()

	err = env.Prefs.ForceHLE.Set(hle)
	if err != nil {
		return "", err
	}

	cf := hardware.NewChannelF(env)
	cf.LoadFirmware()

	err = cf.AttachCartridge(cartload)
	if err != nil {
		return "", err
	}

	var dig digest.Digest
	var update func() error

	if audio {
		a := digest.NewAudio()
		dig = a
		update = func() error {
			a.SetAudio(cf.Audio.Samples())
			return nil
		}
	} else {
		v := digest.NewVideo()
		dig = v
		update = func() error {
			return v.NewFrame(cf.Video.Frame())
		}
	}

	for i := 0; i < frames; i++ {
		err = cf.RunFrame()
		if err != nil {
			return "", err
		}
		err = update()
		if err != nil {
			return "", err
		}
	}

	return dig.Hash(), nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run performance with no FPS cap")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, cartload, *uncapped, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
