// SPDX-License-Identifier: EPL-2.0

package features

import "errors"

var (
	ErrEmptySamples      = errors.New("no samples to extract features from")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoEngine          = errors.New("no spectral engine configured")
)
