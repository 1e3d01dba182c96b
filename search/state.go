package search

import "math"

// Bound names a bracket endpoint.
type Bound int

const (
	// BoundLower is the bracket endpoint with the smaller sequence.
	BoundLower Bound = iota
	// BoundUpper is the bracket endpoint with the larger sequence.
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// State is the bracket carried across iterations: two sequences and the
// close times confirmed for them. After Normalize, L1 <= L2 and, for a
// monotone source, T1 <= T2.
type State struct {
	L1, L2 int64 // sequence bounds
	T1, T2 int64 // close times of L1 and L2
	Target int64 // close time being searched for
}

// Width returns the bracket width L2 - L1.
func (s *State) Width() int64 { return s.L2 - s.L1 }

// Normalize swaps both pairs when the bounds arrived out of order, so the
// L1 <= L2 invariant holds before the first classification.
func (s *State) Normalize() {
	if s.L1 > s.L2 {
		s.L1, s.L2 = s.L2, s.L1
		s.T1, s.T2 = s.T2, s.T1
	}
}

// Set writes a confirmed sample into the named bound.
func (s *State) Set(role Bound, seq, closeTime int64) {
	if role == BoundLower {
		s.L1, s.T1 = seq, closeTime
	} else {
		s.L2, s.T2 = seq, closeTime
	}
}

// Degenerate reports whether interpolation is undefined: both bounds share a
// close time while naming different sequences, so the slope has a zero
// denominator.
func (s *State) Degenerate() bool { return s.T1 == s.T2 && s.L1 != s.L2 }

// Guess treats the bounds as defining a line in (close time, sequence) space
// and returns the sequence that line predicts for Target, rounded to the
// nearest integer. Callers must rule out Degenerate first.
func (s *State) Guess() int64 {
	m := float64(s.L2-s.L1) / float64(s.T2-s.T1)
	b := float64(s.L1) - m*float64(s.T1)
	return int64(math.Round(m*float64(s.Target) + b))
}

// Bisect returns the midpoint of the bracket, the fallback guess when the
// bracket is degenerate.
func (s *State) Bisect() int64 {
	return s.L1 + (s.L2-s.L1)/2
}
