// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files through github.com/go-audio/wav.
//
// Decoding accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any sample rate, and yields an audio.Source of float32 samples in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Encode writes 16-bit PCM. It needs an io.WriteSeeker because the RIFF
// sizes are patched once all data is written; Buffer is an in-memory one:
//
//	var buf wav.Buffer
//	err := wav.Encode(&buf, 22050, 1, samples)
package wav
