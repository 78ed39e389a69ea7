// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"ogg page", "OggS\x00\x02\x00\x00\x00\x00\x00\x00", true},
		{"wav", "RIFF\x00\x00\x00\x00WAVE", false},
		{"short", "Og", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := (Decoder{}).Sniff([]byte(tt.header)); got != tt.want {
				t.Errorf("Sniff(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode of garbage succeeded")
	}
}

type fakeOgg struct {
	channels int
	left     int
	lastLen  int
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	f.lastLen = len(p)
	if f.left == 0 {
		return 0, io.EOF
	}
	n := min(len(p), f.left)
	for i := range n {
		p[i] = 0.25
	}
	f.left -= n
	return n, nil
}

func TestSourceTrimsToFrames(t *testing.T) {
	t.Parallel()

	dec := &fakeOgg{channels: 2, left: 10}
	src := &source{dec: dec}

	n, err := src.ReadSamples(make([]float32, 7))
	if err != nil || n != 6 {
		t.Fatalf("ReadSamples = %d, %v; want 6, nil", n, err)
	}
	if dec.lastLen != 6 {
		t.Errorf("decoder asked for %d samples, want 6", dec.lastLen)
	}

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("sub-frame read = %d, %v; want 0, nil", n, err)
	}
}

func TestSourceNoChannels(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("ReadSamples error = %v, want ErrInvalidChannels", err)
	}
}
