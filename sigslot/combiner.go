package sigslot

import "cmp"

// Combiner folds the results of one emission into the signal's return value.
type Combiner[R any] func(results *Results[R]) R

// LastValue returns the result of the last slot that ran, or the zero value
// when none did. It is the default combiner.
func LastValue[R any](results *Results[R]) R {
	var last R
	for v := range results.All() {
		last = v
	}
	return last
}

// Optional holds a value that may be missing.
type Optional[T any] struct {
	Value T
	OK    bool
}

// OptionalLastValue is LastValue that also says whether any slot ran. Use it
// with Fold.
func OptionalLastValue[R any](results *Results[R]) Optional[R] {
	var out Optional[R]
	for v := range results.All() {
		out = Optional[R]{Value: v, OK: true}
	}
	return out
}

// FirstValue stops at the first slot that produces a value; later slots do
// not run.
func FirstValue[R any](results *Results[R]) R {
	for v := range results.All() {
		return v
	}
	var zero R
	return zero
}

// Collect gathers every result in slot order. Use it with Fold.
func Collect[R any](results *Results[R]) []R {
	var out []R
	for v := range results.All() {
		out = append(out, v)
	}
	return out
}

func Max[R cmp.Ordered](results *Results[R]) R {
	var best R
	first := true
	for v := range results.All() {
		if first || v > best {
			best = v
			first = false
		}
	}
	return best
}

func Min[R cmp.Ordered](results *Results[R]) R {
	var best R
	first := true
	for v := range results.All() {
		if first || v < best {
			best = v
			first = false
		}
	}
	return best
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[R number](results *Results[R]) R {
	var total R
	for v := range results.All() {
		total += v
	}
	return total
}

// All is true unless some slot returns false. It stops at the first false.
func All(results *Results[bool]) bool {
	for v := range results.All() {
		if !v {
			return false
		}
	}
	return true
}

// Any is true once some slot returns true. It stops at the first true.
func Any(results *Results[bool]) bool {
	for v := range results.All() {
		if v {
			return true
		}
	}
	return false
}
