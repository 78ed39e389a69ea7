// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidSampleRate = errors.New("sample rate must not be negative")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrInvalidWorkers    = errors.New("workers must be positive")
)
