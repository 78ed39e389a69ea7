// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrInvalidChannels = errors.New("vorbis stream reports no channels")
