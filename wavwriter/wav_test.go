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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherf8/test"
	"github.com/jetsetilly/gopherf8/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	samples := make([]int16, 735*2)
	for i := range samples {
		samples[i] = int16(i * 10)
	}
	aw.SetAudio(samples)
	aw.SetAudio(samples)
	test.ExpectEquality(t, aw.NumSamples(), 735*2)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, dec.NumChans, uint16(2))
	test.ExpectEquality(t, dec.SampleRate, uint32(44100))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 735*4)
	test.ExpectEquality(t, buf.Data[100], 1000)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)
}
