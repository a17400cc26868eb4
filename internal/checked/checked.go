// Package checked provides overflow-safe arithmetic for slot-count and
// byte-size calculations made by allocation strategies.
package checked

import "math"

// Add returns a + b, with ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul returns a * b, with ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing a raw
// allocation.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// Total returns count * elemSize rounded up to a multiple of align, with
// ok = false when any step overflows or an argument is negative.
func Total(count, elemSize, align int) (int, bool) {
	if count < 0 || elemSize < 0 || align <= 0 {
		return 0, false
	}
	size, ok := Mul(count, elemSize)
	if !ok {
		return 0, false
	}
	padded, ok := Add(size, align-1)
	if !ok {
		return 0, false
	}
	return padded - padded%align, true
}
