// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"slices"
	"testing"

	"github.com/ik5/audmood/audio"
	"github.com/ik5/audmood/formats/wav"
)

func TestNewRegistryOrder(t *testing.T) {
	t.Parallel()

	want := []string{WAV, AIFF, Vorbis, MP3}
	if got := NewRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	var buf wav.Buffer
	if err := wav.Encode(&buf, 8000, 1, []float32{0, 0.1, 0.2}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header []byte
		want   string
		wantOK bool
	}{
		{"wav", buf.Bytes()[:audio.SniffLen], WAV, true},
		{"aiff", []byte("FORM\x00\x00\x10\x00AIFF"), AIFF, true},
		{"ogg", []byte("OggS\x00\x02\x00\x00\x00\x00\x00\x00"), Vorbis, true},
		{"mp3 id3", []byte("ID3\x03\x00\x00\x00\x00\x00\x00\x00\x00"), MP3, true},
		{"mp3 sync", []byte{0xFF, 0xFB, 0x90, 0x64}, MP3, true},
		{"unknown", []byte("PK\x03\x04 zip file"), "", false},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _, ok := reg.Detect(tt.header)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Detect = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAliasesResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for ext, format := range Aliases {
		if _, ok := reg.Get(format); !ok {
			t.Errorf("alias %q points at unregistered format %q", ext, format)
		}
	}
}
