// SPDX-License-Identifier: EPL-2.0

package dsp

// below this total magnitude the signal is treated as silence
const minSpectrumMass = 1e-12

// SpectralCentroid returns the magnitude-weighted mean frequency of the
// whole signal: Σ f·|X| over Σ |X| accumulated across every frame, so loud
// frames weigh more than quiet ones. Silence yields 0.
func (e *STFT) SpectralCentroid(samples []float32, sampleRate int) (float64, error) {
	if err := e.check(samples, sampleRate); err != nil {
		return 0, err
	}

	binHz := float64(sampleRate) / float64(e.cfg.FrameSize)

	var weighted, mass float64
	e.spectra(samples, func(_ int, mag []float64) {
		for k, m := range mag {
			weighted += float64(k) * binHz * m
			mass += m
		}
	})

	if mass <= minSpectrumMass {
		return 0, nil
	}
	return weighted / mass, nil
}
