// Package random provides the injectable randomness used by every chaos
// component.
//
// All draws go through [Source], a single-method interface satisfied by
// *rand.Rand from math/rand/v2. Production code uses [New]; tests use
// [Sequence] to script exact draws and assert which operator or branch was
// taken.
//
// Probabilities are expressed as whole percentages and decided with one
// IntN(100) draw, so a scripted source controls them the same way it
// controls index picks:
//
//	r := random.New(42)
//	if random.Chance(r, 30) {
//	    // taken roughly 30% of the time
//	}
package random

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform integers in [0, n). n is always positive.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed draws one from the clock.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Int returns a uniform integer in [0, bound).
func Int(r Source, bound int) int {
	return r.IntN(bound)
}

// Choice returns a uniformly chosen element of items.
// It panics if items is empty; callers must never pass an empty slice.
func Choice[T any](r Source, items []T) T {
	return items[r.IntN(len(items))]
}

// Chance reports true with probability percent/100.
func Chance(r Source, percent int) bool {
	return r.IntN(100) < percent
}
