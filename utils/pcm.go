// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the full-scale magnitude of a signed integer PCM sample
// at bitDepth. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 normalises a signed integer sample to [-1, 1).
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// Float32ToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
// The positive edge maps to scale-1 so it never overflows.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := PCMScale(bitDepth)
	if x == 1 {
		return int(scale) - 1
	}
	return int(x * scale)
}
