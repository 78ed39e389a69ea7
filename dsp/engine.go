// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Engine computes the spectral features that need a frequency-domain pass.
type Engine interface {
	// SpectralCentroid returns the magnitude-weighted mean frequency in Hz.
	SpectralCentroid(samples []float32, sampleRate int) (float64, error)
	// BeatTrack returns ascending beat times in seconds.
	BeatTrack(samples []float32, sampleRate int) ([]float64, error)
}

// Config sizes the analysis frames, in samples.
type Config struct {
	FrameSize int
	HopSize   int
}

func DefaultConfig() Config {
	return Config{
		FrameSize: 2048,
		HopSize:   512,
	}
}

func (c Config) Validate() error {
	if c.FrameSize < 16 {
		return ErrInvalidFrameSize
	}
	if c.HopSize <= 0 || c.HopSize > c.FrameSize {
		return ErrInvalidHopSize
	}
	return nil
}

// STFT is the gonum backed Engine.
type STFT struct {
	cfg    Config
	window []float64
	plans  sync.Pool
}

var _ Engine = (*STFT)(nil)

func NewSTFT(cfg Config) (*STFT, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.FrameSize
	e := &STFT{
		cfg:    cfg,
		window: hann(n),
	}
	e.plans.New = func() any {
		return &plan{
			fft:    fourier.NewFFT(n),
			frame:  make([]float64, n),
			coeffs: make([]complex128, n/2+1),
			mag:    make([]float64, n/2+1),
		}
	}
	return e, nil
}

// Config returns the frame layout the engine was built with.
func (e *STFT) Config() Config { return e.cfg }

var (
	defaultOnce   sync.Once
	defaultEngine *STFT
)

// Default returns the shared engine built from DefaultConfig.
func Default() *STFT {
	defaultOnce.Do(func() {
		eng, err := NewSTFT(DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultEngine = eng
	})
	return defaultEngine
}

// plan is the per-goroutine scratch space for one FFT size.
type plan struct {
	fft    *fourier.FFT
	frame  []float64
	coeffs []complex128
	mag    []float64
}

// frameCount returns how many hops fit in n samples. Anything shorter than one
// frame still yields a single zero-padded frame with the samples centred.
func (e *STFT) frameCount(n int) int {
	if n <= e.cfg.FrameSize {
		return 1
	}
	return 1 + (n-e.cfg.FrameSize)/e.cfg.HopSize
}

// spectra calls fn with the magnitude spectrum of every frame. mag is reused
// between calls.
func (e *STFT) spectra(samples []float32, fn func(i int, mag []float64)) {
	p := e.plans.Get().(*plan)
	defer e.plans.Put(p)

	// a clip shorter than one frame is centred so it sits under the
	// window's peak rather than its rising edge
	offset := 0
	if len(samples) < e.cfg.FrameSize {
		offset = (e.cfg.FrameSize - len(samples)) / 2
	}

	frames := e.frameCount(len(samples))
	for i := range frames {
		start := i*e.cfg.HopSize - offset
		for j := range p.frame {
			var x float64
			if k := start + j; k >= 0 && k < len(samples) {
				x = float64(samples[k])
			}
			p.frame[j] = x * e.window[j]
		}

		p.coeffs = p.fft.Coefficients(p.coeffs, p.frame)
		for k, c := range p.coeffs {
			p.mag[k] = math.Hypot(real(c), imag(c))
		}
		fn(i, p.mag)
	}
}

func (e *STFT) check(samples []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}
	return nil
}

// hann builds a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
