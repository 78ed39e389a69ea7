// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/audmood/audio"
	"github.com/ik5/audmood/formats/aiff"
	"github.com/ik5/audmood/formats/mp3"
	"github.com/ik5/audmood/formats/vorbis"
	"github.com/ik5/audmood/formats/wav"
)

// Format keys, also used as file-extension fallbacks.
const (
	WAV    = "wav"
	AIFF   = "aiff"
	Vorbis = "ogg"
	MP3    = "mp3"
)

// NewRegistry returns a registry holding the wav, aiff, ogg and mp3 decoders,
// in that order. MP3 goes last because its frame-sync check is the loosest.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(WAV, wav.Decoder{})
	reg.Register(AIFF, aiff.Decoder{})
	reg.Register(Vorbis, vorbis.Decoder{})
	reg.Register(MP3, mp3.Decoder{})
	return reg
}

// Aliases maps common file extensions onto registered format keys.
var Aliases = map[string]string{
	"wave": WAV,
	"aif":  AIFF,
	"aifc": AIFF,
	"oga":  Vorbis,
	"mpeg": MP3,
	"mpga": MP3,
}
