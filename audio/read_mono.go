// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBufSize is the read buffer used when callers pass a non-positive size.
const DefaultBufSize = 4096

const maxIdleReads = 8

// ReadMono drains src into a single mono float32 slice.
//
// When targetRate is positive and differs from the source rate the stream is
// resampled with NewResampler before the channels are folded; otherwise the
// native rate is kept. The returned int is the rate of the returned samples.
//
// An exhausted source is not an error; a source that yields no samples at all
// returns ErrEmptySource.
func ReadMono(src Source, targetRate int, bufSize int) ([]float32, int, error) {
	if src.SampleRate() <= 0 {
		return nil, 0, ErrInvalidRate
	}
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	var stage Source = src
	rate := src.SampleRate()
	if targetRate > 0 && targetRate != rate {
		stage = NewResampler(stage, targetRate)
		rate = targetRate
	}
	mono := NewMonoMixer(stage)

	out := make([]float32, 0, rate)
	buf := make([]float32, bufSize)

	idle := 0
	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rate, fmt.Errorf("read mono: %w", err)
		}

		// stalled sources return (0, nil) forever
		if n == 0 {
			idle++
			if idle >= maxIdleReads {
				break
			}
			continue
		}
		idle = 0
	}

	if len(out) == 0 {
		return nil, rate, ErrEmptySource
	}

	return out, rate, nil
}
