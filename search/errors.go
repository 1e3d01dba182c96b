package search

import "fmt"

// ErrDegenerateBracket indicates a bracket the interpolation cannot work
// with: both bounds share a close time while naming different sequences
// (reported only with FailOnDegenerate; the default policy bisects), or the
// seeds collapsed onto a single sequence.
type ErrDegenerateBracket struct {
	L1, L2    int64
	CloseTime int64
}

func (e *ErrDegenerateBracket) Error() string {
	return fmt.Sprintf("degenerate bracket: sequences %d and %d share close time %d", e.L1, e.L2, e.CloseTime)
}

// ErrNonMonotonic indicates the source violated the monotone assumption: a
// confirmed sample left the bracket with T1 > T2. The data source is
// inconsistent and the search cannot continue.
type ErrNonMonotonic struct {
	L1, L2 int64
	T1, T2 int64
}

func (e *ErrNonMonotonic) Error() string {
	return fmt.Sprintf("non-monotonic source: close time %d at sequence %d exceeds %d at sequence %d", e.T1, e.L1, e.T2, e.L2)
}

// ErrIterationLimit indicates the search did not converge within the
// configured number of iterations. Pathological spacing of the underlying
// relation, or a flaky source, can cause this.
type ErrIterationLimit struct {
	Limit int
}

func (e *ErrIterationLimit) Error() string {
	return fmt.Sprintf("no convergence after %d iterations", e.Limit)
}
