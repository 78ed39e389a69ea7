// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audmood/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs; tests fake it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return audio.DefaultBufSize }

// ReadSamples reads whole frames only, so dst is trimmed to a multiple of
// the channel count.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	if ch < 1 {
		return 0, ErrInvalidChannels
	}

	dst = dst[:len(dst)/ch*ch]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, err
}

type Decoder struct{}

// Sniff reports whether header is the start of an Ogg page.
func (Decoder) Sniff(header []byte) bool {
	return len(header) >= 4 && string(header[:4]) == "OggS"
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	if dec.Channels() < 1 {
		return nil, ErrInvalidChannels
	}

	return &source{dec: dec}, nil
}
