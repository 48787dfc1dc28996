// Package numutil provides the small numeric helpers shared by the grain
// algebra and its consumers: unit conversion, clamping, and uniform integer
// sampling.
package numutil

import (
	"math"
	"math/rand"
)

// SecondsToSamples converts a duration in seconds to a sample count at the
// given sample rate, rounding to the nearest whole sample.
func SecondsToSamples(seconds float64, sampleRate int) int64 {
	return int64(math.Round(seconds * float64(sampleRate)))
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandRange returns a uniformly distributed integer in [low, high). When
// the range is empty it returns low.
func RandRange(rng *rand.Rand, low, high int64) int64 {
	if high <= low {
		return low
	}
	return low + rng.Int63n(high-low)
}
