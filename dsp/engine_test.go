// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/ik5/audmood/internal/audiotest"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"default", DefaultConfig(), nil},
		{"tiny frame", Config{FrameSize: 8, HopSize: 4}, ErrInvalidFrameSize},
		{"zero hop", Config{FrameSize: 1024, HopSize: 0}, ErrInvalidHopSize},
		{"hop past frame", Config{FrameSize: 1024, HopSize: 2048}, ErrInvalidHopSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if _, err := NewSTFT(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("NewSTFT() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFrameCount(t *testing.T) {
	t.Parallel()

	e, err := NewSTFT(Config{FrameSize: 1024, HopSize: 256})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		n, want int
	}{
		{1, 1},
		{1024, 1},
		{1279, 1},
		{1280, 2},
		{1024 + 10*256, 11},
	}
	for _, tt := range tests {
		if got := e.frameCount(tt.n); got != tt.want {
			t.Errorf("frameCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestInputErrors(t *testing.T) {
	t.Parallel()

	e := Default()

	if _, err := e.SpectralCentroid(nil, 8000); !errors.Is(err, ErrNoSamples) {
		t.Errorf("SpectralCentroid(nil) = %v, want ErrNoSamples", err)
	}
	if _, err := e.SpectralCentroid([]float32{1}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("SpectralCentroid(rate 0) = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := e.BeatTrack(nil, 8000); !errors.Is(err, ErrNoSamples) {
		t.Errorf("BeatTrack(nil) = %v, want ErrNoSamples", err)
	}
	if _, err := e.BeatTrack([]float32{1}, -1); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("BeatTrack(rate -1) = %v, want ErrInvalidSampleRate", err)
	}
}

func TestDefaultIsShared(t *testing.T) {
	t.Parallel()

	if Default() != Default() {
		t.Error("Default() built more than one engine")
	}
	if Default().Config() != DefaultConfig() {
		t.Errorf("Default().Config() = %+v", Default().Config())
	}
}

func TestHann(t *testing.T) {
	t.Parallel()

	w := hann(8)
	if w[0] != 0 {
		t.Errorf("w[0] = %v, want 0", w[0])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Errorf("w[4] = %v, want 1", w[4])
	}
	for i := 1; i < 4; i++ {
		if math.Abs(w[i]-w[8-i]) > 1e-12 {
			t.Errorf("window not periodic-symmetric at %d", i)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	e := Default()
	signal := audiotest.Noise(8000, 2, 0.5, 7)

	want, err := e.SpectralCentroid(signal, 8000)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.SpectralCentroid(signal, 8000)
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- errors.New("centroid differs between goroutines")
			}
			if _, err := e.BeatTrack(signal, 8000); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
