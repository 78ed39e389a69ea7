// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/audmood/dsp"
)

// Inter-beat intervals outside (MinBeatInterval, MaxBeatInterval) seconds are
// treated as tracking noise.
const (
	MinBeatInterval = 0.2
	MaxBeatInterval = 2.0
)

// Samples is one decoded, mono audio clip.
type Samples struct {
	Data       []float32
	SampleRate int
}

// FeatureSet is what the classifier consumes. BPM is nil when no usable
// beat interval was found.
type FeatureSet struct {
	RMS              float64  `json:"rms"`
	ZCR              float64  `json:"zcr"`
	SpectralCentroid float64  `json:"spectral_centroid"`
	BPM              *float64 `json:"bpm,omitempty"`
}

// Extract computes every feature of s using eng for the spectral ones.
func Extract(s Samples, eng dsp.Engine) (FeatureSet, error) {
	if len(s.Data) == 0 {
		return FeatureSet{}, ErrEmptySamples
	}
	if s.SampleRate <= 0 {
		return FeatureSet{}, ErrInvalidSampleRate
	}
	if eng == nil {
		return FeatureSet{}, ErrNoEngine
	}

	centroid, err := eng.SpectralCentroid(s.Data, s.SampleRate)
	if err != nil {
		return FeatureSet{}, fmt.Errorf("spectral centroid: %w", err)
	}

	beats, err := eng.BeatTrack(s.Data, s.SampleRate)
	if err != nil {
		return FeatureSet{}, fmt.Errorf("beat tracking: %w", err)
	}

	return FeatureSet{
		RMS:              RMS(s.Data),
		ZCR:              ZCR(s.Data),
		SpectralCentroid: centroid,
		BPM:              TempoFromBeats(beats),
	}, nil
}

// RMS is the root mean square amplitude. An empty buffer yields 0.
func RMS(data []float32) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		x := float64(v)
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(data)))
}

// ZCR counts sign changes between neighbours, zero counting as positive,
// divided by max(1, len-1).
func ZCR(data []float32) float64 {
	var crossings int
	for i := 1; i < len(data); i++ {
		prev, cur := data[i-1], data[i]
		if (prev >= 0 && cur < 0) || (prev < 0 && cur >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(max(1, len(data)-1))
}

// TempoFromBeats converts ascending beat times in seconds into a BPM
// estimate using the median of the usable inter-beat intervals.
func TempoFromBeats(beats []float64) *float64 {
	if len(beats) < 2 {
		return nil
	}

	intervals := make([]float64, 0, len(beats)-1)
	for i := 1; i < len(beats); i++ {
		d := beats[i] - beats[i-1]
		if d > MinBeatInterval && d < MaxBeatInterval {
			intervals = append(intervals, d)
		}
	}
	if len(intervals) == 0 {
		return nil
	}

	slices.Sort(intervals)
	// upper median for even counts
	median := intervals[len(intervals)/2]
	bpm := math.Round(60 / median)
	return &bpm
}
