// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFC files with github.com/go-audio/aiff.
//
// The input is buffered in memory when it is not an io.ReadSeeker, since
// the go-audio decoder needs to seek between chunks.
package aiff
