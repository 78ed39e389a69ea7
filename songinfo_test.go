// SPDX-License-Identifier: EPL-2.0

package audmood

import (
	"bytes"
	"testing"

	"github.com/ik5/audmood/formats/wav"
	"github.com/ik5/audmood/internal/audiotest"
	"github.com/ik5/audmood/mood"
)

func TestReadSongInfo(t *testing.T) {
	t.Parallel()

	var buf wav.Buffer
	if err := wav.Encode(&buf, 8000, 1, audiotest.Sine(8000, 0.1, 440, 0.5)); err != nil {
		t.Fatal(err)
	}
	untagged := buf.Bytes()

	tests := []struct {
		name          string
		file          string
		data          []byte
		title, artist string
		want          SongInfo
	}{
		{
			name: "explicit values win",
			file: "uploads/take1.wav", data: untagged,
			title: " Anthem ", artist: "The Band",
			want: SongInfo{Title: "Anthem", Artist: "The Band", Mood: mood.Unknown},
		},
		{
			name: "falls back to file name",
			file: "uploads/My Song.wav", data: untagged,
			want: SongInfo{Title: "My Song", Artist: UnknownArtist, Mood: mood.Unknown},
		},
		{
			name: "blank arguments are ignored",
			file: "demo.wav", data: untagged,
			title: "   ", artist: "\t",
			want: SongInfo{Title: "demo", Artist: UnknownArtist, Mood: mood.Unknown},
		},
		{
			name: "no name at all",
			data: []byte("garbage"),
			want: SongInfo{Title: UntitledTitle, Artist: UnknownArtist, Mood: mood.Unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ReadSongInfo(tt.file, bytes.NewReader(tt.data), tt.title, tt.artist)
			if got != tt.want {
				t.Errorf("ReadSongInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadSongInfoNilReader(t *testing.T) {
	t.Parallel()

	got := ReadSongInfo("a/b/c.flac", nil, "", "Someone")
	want := SongInfo{Title: "c", Artist: "Someone", Mood: mood.Unknown}
	if got != want {
		t.Errorf("ReadSongInfo() = %+v, want %+v", got, want)
	}
}
