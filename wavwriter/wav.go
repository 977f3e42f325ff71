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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherf8/curated"
	hwaudio "github.com/jetsetilly/gopherf8/hardware/audio"
	"github.com/jetsetilly/gopherf8/logger"
)

const (
	numChannels = 2
	bitDepth    = 16

	// PCM format in the WAV header
	formatPCM = 1
)

// WavWriter collects the audio produced by the console, one frame at a time.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, hwaudio.SamplesPerFrame*numChannels*60),
	}

	return aw, nil
}

// SetAudio adds a frame of interleaved stereo samples to the buffer.
func (aw *WavWriter) SetAudio(samples []int16) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
}

// NumSamples returns the number of stereo samples collected so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer) / numChannels
}

// EndMixing writes the collected audio to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, hwaudio.SampleRate, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  hwaudio.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all collected audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
