// Package vmath provides the small numeric toolbox shared by the distance
// calculator, morton keys, and quadtree math: a generic Number constraint
// plus the handful of ordering and rounding helpers built on it.
package vmath

import "math"

// Number is satisfied by any integer or floating point type used for
// coordinates or lengths in this package.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns the square root of num, converting through float64.
func Sqrt[T Number](num T) T {
	return T(math.Sqrt(float64(num)))
}

// RoundHalfAwayFromZero rounds a float64 to the nearest int64, with ties
// (exact .5) rounding away from zero. This is the rounding rule the
// distance calculator uses for segment lengths, and it must match exactly
// everywhere a length is computed: pruning in the V-move search compares
// these integer lengths directly, so two calculators that round
// differently would silently disagree about which moves improve the tour.
func RoundHalfAwayFromZero(x float64) int64 {
	if x >= 0 {
		return int64(math.Floor(x + 0.5))
	}
	return int64(math.Ceil(x - 0.5))
}
