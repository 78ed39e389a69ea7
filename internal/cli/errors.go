// SPDX-License-Identifier: EPL-2.0

package cli

import "errors"

var (
	errUnknownOutput   = errors.New("unknown output format")
	errSingleFileFlags = errors.New("--title and --artist need exactly one file")
)
