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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherf8/cartridgeloader"
	"github.com/jetsetilly/gopherf8/environment"
	"github.com/jetsetilly/gopherf8/govern"
	"github.com/jetsetilly/gopherf8/hardware"
	"github.com/jetsetilly/gopherf8/hardware/clocks"
	"github.com/jetsetilly/gopherf8/performance/limiter"
)

var timedOut = errors.New("performance timed out")

// the leadtime allows the frame rate to settle before measurement begins
const leadtime = 2 * time.Second

// Check runs the emulation for the duration and writes the frame rate
// achieved to output. If uncapped is false the frame rate is limited to that
// of the real console.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	cf := hardware.NewChannelF(env)
	cf.LoadFirmware()

	err = cf.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(clocks.FramesPerSecond)
		defer lim.Stop()
	}

	startFrame := cf.FrameNum

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return cf.Run(func() (govern.State, error) {
			if lim != nil {
				lim.Wait()
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = cf.FrameNum
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := cf.FrameNum - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
