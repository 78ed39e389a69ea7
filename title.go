// SPDX-License-Identifier: EPL-2.0

package audmood

import "regexp"

// UntitledTitle is used when a file name gives nothing to work with.
const UntitledTitle = "Untitled"

var extPattern = regexp.MustCompile(`\.[^/.]+$`)

// DeriveTitleFromFile strips the last extension from name to build a default
// song title. A name that is nothing but an extension is returned as is and
// an empty name becomes UntitledTitle.
func DeriveTitleFromFile(name string) string {
	if title := extPattern.ReplaceAllString(name, ""); title != "" {
		return title
	}
	if name != "" {
		return name
	}
	return UntitledTitle
}
