// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audmood/audio"
	"github.com/ik5/audmood/internal/audiotest"
)

// ExampleReadMono folds a stereo source into one channel at its native rate.
func ExampleReadMono() {
	// one second of stereo: left 0.25, right 0.75
	src := audiotest.NewMockSource(44100, 2, 44100, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.25
		}
		return 0.75
	})

	samples, rate, err := audio.ReadMono(src, 0, audio.DefaultBufSize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d samples at %d Hz, first %.2f\n", len(samples), rate, samples[0])
	// Output: 44100 samples at 44100 Hz, first 0.50
}

// ExampleReadMono_resample converts to a lower rate before mixing down.
func ExampleReadMono_resample() {
	src := audiotest.NewConstantSource(44100, 2, 44100, 0.5)

	samples, rate, err := audio.ReadMono(src, 16000, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seconds := float64(len(samples)) / float64(rate)
	fmt.Printf("rate %d Hz, %.2f s\n", rate, seconds)
	// Output: rate 16000 Hz, 1.00 s
}
