// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
)

// Beat periods outside this range are never considered. They match the
// interval window the tempo estimate keeps.
const (
	minBeatPeriod = 0.2 // seconds
	maxBeatPeriod = 2.0 // seconds

	// tempo prior: log-Gaussian around 120 BPM, one octave wide
	priorBPM    = 120.0
	priorOctave = 1.0

	// tightness of the beat grid; higher values punish tempo drift harder
	tightness = 100.0

	// below this peak flux the envelope is treated as flat
	minOnsetPeak = 1e-6
)

// BeatTrack finds beats by dynamic programming over the spectral flux
// envelope. The global beat period comes from the envelope's
// autocorrelation weighted by a tempo prior; each frame then scores its
// onset strength plus the best predecessor roughly one period back.
func (e *STFT) BeatTrack(samples []float32, sampleRate int) ([]float64, error) {
	if err := e.check(samples, sampleRate); err != nil {
		return nil, err
	}

	env := e.onsetEnvelope(samples)
	if !normalise(env) {
		return nil, nil
	}

	fps := float64(sampleRate) / float64(e.cfg.HopSize)
	period := estimatePeriod(env, fps)
	if period == 0 {
		return nil, nil
	}

	frames := trackBeats(env, period)
	if len(frames) == 0 {
		return nil, nil
	}

	beats := make([]float64, len(frames))
	for i, f := range frames {
		beats[i] = float64(f) / fps
	}
	return beats, nil
}

// onsetEnvelope returns half-wave rectified spectral flux, one value per hop.
func (e *STFT) onsetEnvelope(samples []float32) []float64 {
	env := make([]float64, e.frameCount(len(samples)))
	prev := make([]float64, e.cfg.FrameSize/2+1)

	e.spectra(samples, func(i int, mag []float64) {
		var flux float64
		for k, m := range mag {
			if d := m - prev[k]; d > 0 {
				flux += d
			}
		}
		if i > 0 {
			env[i] = flux
		}
		copy(prev, mag)
	})

	return env
}

// normalise scales env to unit standard deviation in place. It reports
// false when the envelope is too flat to carry a beat.
func normalise(env []float64) bool {
	if len(env) < 2 {
		return false
	}

	var peak, mean float64
	for _, v := range env {
		peak = max(peak, v)
		mean += v
	}
	if peak < minOnsetPeak {
		return false
	}
	mean /= float64(len(env))

	var variance float64
	for _, v := range env {
		variance += (v - mean) * (v - mean)
	}
	std := math.Sqrt(variance / float64(len(env)))
	if std == 0 {
		return false
	}

	for i := range env {
		env[i] /= std
	}
	return true
}

// estimatePeriod returns the beat period in frames, or 0 when no lag in the
// allowed range fits inside the envelope.
func estimatePeriod(env []float64, fps float64) int {
	lo := max(1, int(math.Ceil(minBeatPeriod*fps)))
	hi := min(len(env)-1, int(math.Floor(maxBeatPeriod*fps)))
	if lo > hi {
		return 0
	}

	center := 60.0 / priorBPM * fps
	best, bestLag := 0.0, 0
	for lag := lo; lag <= hi; lag++ {
		var ac float64
		for t := 0; t+lag < len(env); t++ {
			ac += env[t] * env[t+lag]
		}
		ac /= float64(len(env) - lag)

		octaves := math.Log2(float64(lag)/center) / priorOctave
		weighted := ac * math.Exp(-0.5*octaves*octaves)
		if weighted > best {
			best, bestLag = weighted, lag
		}
	}
	return bestLag
}

// trackBeats runs the dynamic programme and returns beat frames in order.
func trackBeats(env []float64, period int) []int {
	p := float64(period)
	score := make([]float64, len(env))
	back := make([]int, len(env))

	for t := range env {
		score[t] = env[t]
		back[t] = -1

		lo := t - 2*period
		hi := t - int(math.Round(p/2))
		best := 0.0
		for prev := max(0, lo); prev <= hi; prev++ {
			d := math.Log(float64(t-prev) / p)
			if v := score[prev] - tightness*d*d; v > best {
				best = v
				back[t] = prev
			}
		}
		score[t] += best
	}

	// last beat: best cumulative score within the final period
	last := -1
	for t := max(0, len(env)-period); t < len(env); t++ {
		if last < 0 || score[t] > score[last] {
			last = t
		}
	}

	var rev []int
	for t := last; t >= 0; t = back[t] {
		rev = append(rev, t)
	}

	beats := make([]int, len(rev))
	for i, t := range rev {
		beats[len(rev)-1-i] = t
	}
	return trimWeak(beats, env)
}

// trimWeak drops leading and trailing beats whose onset strength is under
// half the mean strength across all beats.
func trimWeak(beats []int, env []float64) []int {
	if len(beats) == 0 {
		return beats
	}

	var mean float64
	for _, b := range beats {
		mean += env[b]
	}
	floor := 0.5 * mean / float64(len(beats))

	start, end := 0, len(beats)
	for start < end && env[beats[start]] < floor {
		start++
	}
	for end > start && env[beats[end-1]] < floor {
		end--
	}
	return beats[start:end]
}
