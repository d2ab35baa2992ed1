package dispatch

// Window normalizes [start, end) against a sequence of the given length the
// way slice expressions with negative indices do: negative bounds count
// from the end, and both bounds are clamped into [0, length]. The result
// never panics when used to slice.
func Window(length, start, end int) (lo, hi int) {
	lo, hi = clampIndex(length, start), clampIndex(length, end)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Bounds resolves optional search bounds: bounds[0] is the inclusive start
// (default 0) and bounds[1] the exclusive end (default length).
func Bounds(length int, bounds ...int) (lo, hi int) {
	start, end := 0, length
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	return Window(length, start, end)
}

func clampIndex(length, i int) int {
	if i < 0 {
		i += length
	}
	switch {
	case i < 0:
		return 0
	case i > length:
		return length
	}
	return i
}
