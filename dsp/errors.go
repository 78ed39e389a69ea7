// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidFrameSize  = errors.New("frame size must be at least 16 samples")
	ErrInvalidHopSize    = errors.New("hop size must be positive and not exceed the frame size")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoSamples         = errors.New("no samples to analyse")
)
