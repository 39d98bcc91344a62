package math

import "golang.org/x/exp/constraints"

// Clamp returns value limited to the range [start, end].
// The bounds come first and the value last: Clamp(0, 10, x), not Clamp(x, 0, 10).
// It works for any ordered type (integers and floats).
func Clamp[T constraints.Ordered](start, end, value T) T {
	if value > end {
		return end
	}
	if value < start {
		return start
	}
	return value
}
