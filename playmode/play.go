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

// Package playmode runs the emulation in the terminal. The visible area of
// the screen is drawn with ANSI colour codes and the keyboard operates the
// console buttons and the hand controllers.
//
// Key bindings:
//
//	1 2 3 4         console buttons TIME, MODE, HOLD and START
//	< > RETURN      move and press the console cursor
//	arrow keys      hand controller A directions
//	, .             hand controller A rotate
//	/ SPACE         hand controller A pull and push
//	w a s d         hand controller B directions
//	q e             hand controller B rotate
//	f g             hand controller B pull and push
//	t               swap hand controllers
//	p               pause
//	r               reset
//	[ ]             rewind backwards and forwards
//	x               screenshot
//	ESC             quit
package playmode

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/curated"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/govern"
	"github.com/jetsetilly/gopherf8/hardware"
	"github.com/jetsetilly/gopherf8/hardware/clocks"
	"github.com/jetsetilly/gopherf8/logger"
	"github.com/jetsetilly/gopherf8/performance/limiter"
	"github.com/jetsetilly/gopherf8/rewind"
	"github.com/jetsetilly/gopherf8/wavwriter"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// NotATerminal is returned by Play() when stdin or stdout are not terminals.
const NotATerminal = "playmode: requires a terminal"

// how long a read of the terminal blocks before checking for the end of the
// emulation
const readTimeout = 100 * time.Millisecond

// how many frames a notice stays on the status line
const noticeFrames = 120

// Options for Play().
type Options struct {
	// write the audio to a WAV file when the emulation ends
	WavFile string

	// do not limit the frame rate
	Uncapped bool
}

type playmode struct {
	cf     *hardware.ChannelF
	rewind *rewind.Rewind

	state    govern.State
	subState govern.SubState

	tty     *term.Term
	keys    chan []byte
	quit    chan bool
	intChan chan os.Signal

	held       map[button]int
	cursorHeld int

	scr *renderer
	lim *limiter.FpsLimiter
	wav *wavwriter.WavWriter

	noticeText string
	noticeTime int
}

// Play runs the cartridge in the terminal until the user quits.
func Play(output io.Writer, cartload cartridgeloader.Loader, opts Options) (rerr error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return curated.Errorf(NotATerminal)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl := &playmode{
		cf:      hardware.NewChannelF(env),
		state:   govern.Initialising,
		keys:    make(chan []byte, 16),
		quit:    make(chan bool),
		intChan: make(chan os.Signal, 1),
		held:    make(map[button]int),
		scr:     newRenderer(output),
	}

	pl.cf.LoadFirmware()

	err = pl.cf.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl.rewind, err = rewind.NewRewind(pl.cf, nil)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if opts.WavFile != "" {
		pl.wav, err = wavwriter.New(opts.WavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		defer func() {
			err := pl.wav.EndMixing()
			if err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if !opts.Uncapped {
		pl.lim = limiter.NewFPSLimiter(clocks.FramesPerSecond)
		defer pl.lim.Stop()
	}

	pl.tty, err = term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer func() {
		_ = pl.tty.Restore()
		_ = pl.tty.Close()
	}()

	err = pl.tty.SetReadTimeout(readTimeout)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	go pl.readKeys()
	defer close(pl.quit)

	pl.scr.start()
	defer pl.scr.end()

	pl.setState(govern.Running, govern.Normal)

	err = pl.cf.Run(pl.endOfFrame)
	if err != nil {
		if curated.Is(err, UserInterrupt) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// readKeys runs in its own goroutine and forwards bytes read from the
// terminal to the emulation
func (pl *playmode) readKeys() {
	b := make([]byte, 16)
	for {
		n, err := pl.tty.Read(b)
		if err != nil && err != io.EOF {
			close(pl.keys)
			return
		}

		if n > 0 {
			k := make([]byte, n)
			copy(k, b[:n])
			select {
			case pl.keys <- k:
			case <-pl.quit:
				return
			}
		}

		select {
		case <-pl.quit:
			return
		default:
		}
	}
}

func (pl *playmode) setState(state govern.State, subState govern.SubState) {
	if !govern.StateIntegrity(state, subState) {
		logger.Logf(pl.cf.Env, "playmode", "state integrity error: %s %s", state, subState)
		subState = govern.Normal
	}
	pl.state = state
	pl.subState = subState
}

func (pl *playmode) notice(s string) {
	pl.noticeText = s
	pl.noticeTime = noticeFrames
}

func (pl *playmode) status() string {
	s := fmt.Sprintf("frame %-8d %-8s cursor %d", pl.cf.FrameNum, pl.state, pl.cf.Controllers.CursorX)
	if pl.subState != govern.Normal {
		s = fmt.Sprintf("%s (%s)", s, pl.subState)
	}
	if pl.noticeTime > 0 {
		pl.noticeTime--
		s = fmt.Sprintf("%s  %s", s, pl.noticeText)
	}
	return s
}

// the continue check for ChannelF.Run()
func (pl *playmode) endOfFrame() (govern.State, error) {
	if pl.state == govern.Running {
		pl.releaseHeld()
		pl.rewind.RecordFrameState()
		if pl.wav != nil {
			pl.wav.SetAudio(pl.cf.Audio.Samples())
		}
	}

	err := pl.scr.frame(pl.cf.Video.Visible(), pl.status())
	if err != nil {
		return govern.Ending, err
	}

	if pl.lim != nil {
		pl.lim.Wait()
	} else if pl.state == govern.Paused {
		// don't spin when paused and the frame rate is uncapped
		time.Sleep(readTimeout)
	}

	return pl.eventHandler()
}
