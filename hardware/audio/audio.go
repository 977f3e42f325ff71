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

// Package audio emulates the tone generator of the Channel F.
//
// The tone generator can produce one of three tones or silence, selected by
// bits 6 and 7 of port 5. The volume of the tone decays from the moment it
// is selected.
//
// Samples are produced at 44.1kHz. The CPU runs at roughly 20.29 ticks per
// sample, which is tracked with a 16.16 fixed point accumulator.
package audio

import "math"

// SampleRate of the generated audio.
const SampleRate = 44100

// SamplesPerFrame is the number of samples produced in one video frame.
const SamplesPerFrame = 735

// PortTone is the port used to select the tone.
const PortTone = 5

// TicksPerSample is the number of CPU ticks per sample in 16.16 fixed point
// (20.29). The Ticks field never exceeds this value between calls to Tick().
const TicksPerSample = 1329725

// the volume of a tone is multiplied by this value after every sample
const decay = 0.998

// WaveformLength is the length of the waveform table, which holds one cycle
// of a 20Hz sine wave. The tones are all multiples of 20Hz and are generated
// by stepping through the table at different rates. The Phase field is
// always less than this value.
const WaveformLength = SampleRate / 20

// the amplitude of a single tone
const peak = 16384 / math.Pi

var waveform [WaveformLength]float64

func init() {
	for i := range waveform {
		waveform[i] = math.Sin(2*math.Pi*float64(i)/WaveformLength) * peak
	}
}

// the table stride for each tone. tone 1 is 1000Hz, tone 2 is 500Hz and tone
// 3 is the sum of 120Hz and 240Hz
var strides = [4][2]int{
	{0, 0},
	{50, 0},
	{25, 0},
	{6, 12},
}

// Audio is the tone generator.
type Audio struct {
	Tone uint8

	// the current volume of the tone. starts at 1.0 when the tone is
	// selected and decays over time
	Amplitude float64

	// number of samples since the tone was selected, modulo the waveform
	// table length
	Phase int

	// unprocessed CPU ticks in 16.16 fixed point
	Ticks int

	// the position in the current frame
	Cursor int

	// stereo samples for the current frame. left and right channels are
	// identical
	buffer [SamplesPerFrame * 2]int16
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{Amplitude: 1.0}
}

// Snapshot creates a copy of the tone generator in its current state.
func (au *Audio) Snapshot() *Audio {
	n := *au
	return &n
}

// Reset silences the tone generator and starts a new frame.
func (au *Audio) Reset() {
	au.Tone = 0
	au.Phase = 0
	au.Cursor = 0
	au.buffer = [SamplesPerFrame * 2]int16{}
}

// Notify implements the ports.Peripheral interface.
func (au *Audio) Notify(port uint8, data uint8) {
	if port != PortTone {
		return
	}
	tone := (data & 0xc0) >> 6
	if tone != au.Tone {
		au.Tone = tone
		au.Amplitude = 1.0
		au.Phase = 0
	}
}

// Tick advances the tone generator by the number of CPU ticks, generating
// samples as required. Samples beyond the end of the frame are discarded.
func (au *Audio) Tick(ticks int) {
	au.Ticks += ticks << 16
	for au.Ticks > TicksPerSample {
		au.Ticks -= TicksPerSample
		if au.Cursor < SamplesPerFrame {
			v := au.Sample()
			au.buffer[au.Cursor*2] = v
			au.buffer[au.Cursor*2+1] = v
		}
		au.Amplitude *= decay
		au.Phase = (au.Phase + 1) % WaveformLength
		au.Cursor++
	}
}

// Sample returns the value of the current sample.
func (au *Audio) Sample() int16 {
	s := strides[au.Tone&0x03]

	var v float64
	if s[0] > 0 {
		v = waveform[(au.Phase*s[0])%WaveformLength]
	}
	if s[1] > 0 {
		v += waveform[(au.Phase*s[1])%WaveformLength]
	}

	return saturate(v * au.Amplitude)
}

func saturate(v float64) int16 {
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// EndFrame pads the current frame with silence if necessary and starts a
// new frame. The samples for the frame just ended are returned by Samples()
// until the next call to Tick().
func (au *Audio) EndFrame() {
	for ; au.Cursor < SamplesPerFrame; au.Cursor++ {
		au.buffer[au.Cursor*2] = 0
		au.buffer[au.Cursor*2+1] = 0
	}
	au.Cursor = 0
}

// Samples returns the interleaved stereo samples for the frame. The returned
// slice refers to the internal buffer and should be copied if it is to be
// kept.
func (au *Audio) Samples() []int16 {
	return au.buffer[:]
}
