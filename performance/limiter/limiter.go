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

// Package limiter paces the emulation so that frames are produced at the
// rate of the real console.
package limiter

import (
	"time"
)

// FpsLimiter produces a regular tick that the emulation waits on at the end
// of each frame.
type FpsLimiter struct {
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: time.Duration(float64(time.Second) / framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	// run ticker concurrently. the sleep period is adjusted every frame to
	// account for the time taken to send the tick
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// Wait blocks until the next tick.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick is pending. Does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. The limiter can not be restarted.
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}
