// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM plumbing between a container decoder and the
// feature extractor.
//
// # Source Interface
//
// Every decoder yields a Source of interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF, possibly together with the final samples, once
// the stream is exhausted.
//
// # Format Registry
//
// Registry maps format keys to decoders. Decoders that also implement
// Sniffer take part in Detect, which walks them in registration order:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	format, dec, ok := reg.Detect(header)
//
// # Mono Collection
//
// ReadMono drains a Source into one mono slice, optionally resampling it
// first with the Catmull-Rom Resampler, then averaging channels with
// MonoMixer:
//
//	samples, rate, err := audio.ReadMono(src, 22050, audio.DefaultBufSize)
package audio
