package search

import "golang.org/x/exp/constraints"

// maxOf returns the larger of a and b.
func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// minOf returns the smaller of a and b.
func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
