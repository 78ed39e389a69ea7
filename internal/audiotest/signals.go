// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic signals and sources for tests.
package audiotest

import (
	"math"
	"math/rand/v2"
)

// Sine returns seconds of a sine wave at freq Hz with peak amplitude amp.
func Sine(sampleRate int, seconds, freq, amp float64) []float32 {
	out := make([]float32, int(seconds*float64(sampleRate)))
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(amp * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// Silence returns seconds of zeros.
func Silence(sampleRate int, seconds float64) []float32 {
	return make([]float32, int(seconds*float64(sampleRate)))
}

// ClickBurst is the length of one click in samples.
const ClickBurst = 32

// ClickTrack returns seconds of silence with a short decaying burst every
// 60/bpm seconds, the first one offset seconds in.
func ClickTrack(sampleRate int, seconds, bpm, offset float64) []float32 {
	out := make([]float32, int(seconds*float64(sampleRate)))
	step := 60 / bpm * float64(sampleRate)
	for at := offset * float64(sampleRate); int(at) < len(out); at += step {
		start := int(math.Round(at))
		for j := 0; j < ClickBurst && start+j < len(out); j++ {
			sign := float32(1)
			if j%2 == 1 {
				sign = -1
			}
			out[start+j] = sign * float32(math.Exp(-float64(j)/8))
		}
	}
	return out
}

// Noise returns seconds of uniform white noise in [-amp, amp] from a fixed
// seed.
func Noise(sampleRate int, seconds, amp float64, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float32, int(seconds*float64(sampleRate)))
	for i := range out {
		out[i] = float32(amp * (2*rng.Float64() - 1))
	}
	return out
}
