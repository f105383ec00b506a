// Package stats provides small generic helpers over numeric series.
package stats

import (
	"cmp"
)

// Number is the set of element types the series helpers accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp restricts val to the range [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}

// Max returns the largest element in values.
// Returns the zero value of T for an empty slice.
func Max[T cmp.Ordered](values []T) T {
	if len(values) == 0 {
		var zero T

		return zero
	}

	result := values[0]

	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}

	return result
}

// ArgMax returns the index of the first largest element in values.
// Returns -1 for an empty slice.
func ArgMax[T cmp.Ordered](values []T) int {
	if len(values) == 0 {
		return -1
	}

	best := 0

	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}

	return best
}

// Sum returns the sum of all elements in values.
// Returns the zero value of T for an empty slice.
func Sum[T Number](values []T) T {
	var result T

	for _, v := range values {
		result += v
	}

	return result
}

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	return float64(Sum(values)) / float64(len(values))
}

// CountIf returns how many elements satisfy pred.
func CountIf[T any](values []T, pred func(T) bool) int {
	n := 0

	for _, v := range values {
		if pred(v) {
			n++
		}
	}

	return n
}

// LongestRun returns the length and start index of the longest run of
// consecutive elements satisfying pred. The earliest run wins ties.
// Returns (0, -1) when no element matches.
func LongestRun[T any](values []T, pred func(T) bool) (length, start int) {
	start = -1

	current, currentStart := 0, 0

	for i, v := range values {
		if !pred(v) {
			current = 0

			continue
		}

		if current == 0 {
			currentStart = i
		}

		current++

		if current > length {
			length, start = current, currentStart
		}
	}

	return length, start
}
