// SPDX-License-Identifier: EPL-2.0

// Package audmood estimates the mood of a song from its audio.
//
// An audio file is decoded to mono PCM, reduced to four features (RMS
// energy, zero-crossing rate, spectral centroid and tempo) and classified into
// one of five labels: angry, sad, happy, surprised or neutral.
//
//	label := audmood.AnalyzeAudioMood("song.mp3", file)
//
// Mood is an enhancement, not a requirement for storing a song, so the
// pipeline never returns an error to callers of AnalyzeAudioMood. Corrupt
// or unsupported input, or a failure in any analysis stage, yields
// mood.Unknown. Analyzer.Analyze exposes the underlying error and the
// intermediate features for callers that want them:
//
//	a := audmood.New(audmood.WithSampleRate(22050))
//	res := a.AnalyzeFile("song.ogg")
//	if res.Err != nil {
//	    // res.Mood == mood.Unknown
//	}
//
// # Supported Formats
//
// The container is detected from the first bytes of the stream, falling back
// to the file extension:
//   - WAV (integer PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// # Packages
//
//   - audio: Source/Decoder interfaces, format registry, resampling and mono mixing
//   - dsp: STFT engine for spectral centroid and beat tracking
//   - features: RMS, ZCR, centroid and tempo extraction
//   - mood: band scoring and the tie-break policy
//
// DeriveTitleFromFile and ReadSongInfo fill the title and artist of an
// upload when the user leaves them blank.
package audmood
