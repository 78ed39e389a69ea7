// SPDX-License-Identifier: EPL-2.0

package audmood

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/ik5/audmood/mood"
)

// UnknownArtist is stored when neither the caller nor the file names one.
const UnknownArtist = "Unknown"

// SongInfo is the metadata stored next to an uploaded song.
type SongInfo struct {
	Title  string     `json:"title"`
	Artist string     `json:"artist"`
	Mood   mood.Label `json:"mood"`
}

// ReadSongInfo resolves title and artist for the file called name. Non-blank
// title and artist arguments win, then embedded tags, then the file name and
// UnknownArtist. r may be nil when there is no content to read tags from.
// Mood is left Unknown.
func ReadSongInfo(name string, r io.ReadSeeker, title, artist string) SongInfo {
	info := SongInfo{
		Title:  strings.TrimSpace(title),
		Artist: strings.TrimSpace(artist),
		Mood:   mood.Unknown,
	}

	if (info.Title == "" || info.Artist == "") && r != nil {
		if m, err := tag.ReadFrom(r); err == nil {
			if info.Title == "" {
				info.Title = strings.TrimSpace(m.Title())
			}
			if info.Artist == "" {
				info.Artist = strings.TrimSpace(m.Artist())
			}
		}
	}

	if info.Title == "" {
		base := name
		if base != "" {
			base = filepath.Base(base)
		}
		info.Title = DeriveTitleFromFile(base)
	}
	if info.Artist == "" {
		info.Artist = UnknownArtist
	}
	return info
}
