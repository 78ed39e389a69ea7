// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the spectral engine behind the mood features: a short-time
// Fourier transform over Hann-windowed frames, the spectral centroid computed
// from it and a beat tracker driven by spectral flux.
//
// An Engine is immutable once built. FFT plans are not safe for concurrent
// use, so each STFT keeps them in a sync.Pool and every call borrows one.
// Default returns a process-wide engine that is built on first use:
//
//	eng := dsp.Default()
//	centroid, err := eng.SpectralCentroid(samples, 44100)
//	beats, err := eng.BeatTrack(samples, 44100)
//
// Beat times are in seconds, ascending.
package dsp
