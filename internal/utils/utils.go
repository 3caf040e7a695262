package utils

import "math/bits"

// RoundUp2 - Rounds a value up to the nearest power of two. A value that already is a power
// of two is returned as is, and zero rounds up to one.
func RoundUp2(value int64) (rounded int64) {
	if value <= 1 {
		rounded = 1
		return
	}

	rounded = int64(1) << (bits.Len64(uint64(value)) - 1)
	if value > rounded {
		rounded <<= 1
	}

	return
}
