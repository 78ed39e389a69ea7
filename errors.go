// SPDX-License-Identifier: EPL-2.0

package audmood

import "errors"

var (
	// ErrDecode wraps every failure up to and including PCM extraction.
	ErrDecode = errors.New("audio decode failed")

	// ErrFeatures wraps failures of the feature extractor.
	ErrFeatures = errors.New("feature extraction failed")

	// ErrUnknownFormat means neither the header nor the file name matched a
	// registered decoder.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrAnalysisPanic is reported when a decoder or the engine panicked.
	ErrAnalysisPanic = errors.New("analysis panicked")
)
