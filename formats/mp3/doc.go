// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels since go-mp3 upmixes mono files.
package mp3
