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

package performance_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherf8/performance"
	"github.com/jetsetilly/gopherf8/performance/limiter"
	"github.com/jetsetilly/gopherf8/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, mem")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfileString("all")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(300, 10)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.001)

	fps, _ = performance.CalcFPS(300, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)
}

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten ticks at 100 per second take at least 90ms
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}
