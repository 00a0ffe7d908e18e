package random

// Sequence is a scripted [Source] that replays fixed values in order,
// wrapping around when exhausted. Each value is reduced modulo the
// requested bound so a script never produces an out-of-range draw.
//
// Sequence is meant for tests: it makes operator selection and every
// coin flip deterministic.
//
// Callers that re-draw until a value differs, such as the interior swap in
// mutate.ScrambleWord, loop forever on a script whose remaining values are
// all equal modulo the bound. NewSequence(0) is one such script; give those
// paths at least two values that differ modulo the bound.
type Sequence struct {
	values []int
	pos    int
	calls  int
}

// NewSequence returns a source that replays values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value modulo n.
func (s *Sequence) IntN(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Calls returns how many draws have been made.
func (s *Sequence) Calls() int {
	return s.calls
}

var _ Source = (*Sequence)(nil)
