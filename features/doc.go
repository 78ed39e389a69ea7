// SPDX-License-Identifier: EPL-2.0

// Package features turns a mono sample buffer into the four scalars the mood
// classifier scores: RMS energy, zero-crossing rate, spectral centroid and
// tempo. RMS and ZCR are closed-form passes over the time domain; centroid
// and beats are delegated to a dsp.Engine.
package features
