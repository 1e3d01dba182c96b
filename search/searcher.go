// Package search implements the bracketing interpolation search that locates
// the ledger sequence whose close time equals (or most tightly brackets) a
// target, using as few lookups as possible.
//
// The relation sequence → close time is strictly increasing and roughly
// linear but irregularly spaced, and every evaluation is an expensive remote
// call. The searcher maintains a shrinking bracket of two confirmed samples,
// predicts the target's sequence by inverse linear interpolation between
// them, and classifies each guess against the bracket until it either hits
// the target exactly or the bracket collapses to two adjacent sequences.
package search

import (
	"context"
	"fmt"

	"github.com/ledgerseek/ledgerseek/lookup"
)

// DefaultOptions are the options used when none are overridden.
var DefaultOptions = Options{
	SeedOffset:    10,
	MaxIterations: 64,
}

// Options configures a Searcher.
type Options struct {
	// SeedOffset is how many sequences before the latest validated ledger
	// the second seed sample is taken. Must be positive.
	SeedOffset int64

	// MaxIterations caps the search loop. Exceeding it returns
	// ErrIterationLimit rather than looping forever on pathological input.
	MaxIterations int

	// FailOnDegenerate makes a degenerate bracket (equal close times at
	// distinct sequences) a terminal ErrDegenerateBracket. When false, the
	// searcher falls back to bisecting the sequence range.
	FailOnDegenerate bool

	// OnStep, if set, is invoked after every confirmed sample with the
	// bracket state it produced. Purely observational.
	OnStep func(Step)

	// Logger receives progress logging. Defaults to a no-op logger.
	Logger Logger
}

// Logger is a simple interface for logging.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// noopLogger is a default logger that does nothing.
type noopLogger struct{}

func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}

// Step describes one confirmed sample and the bracket it left behind.
type Step struct {
	Seq       int64
	CloseTime int64
	Replaced  Bound // the bound the sample was written into
	Width     int64 // bracket width after the update
}

// Result is the outcome of a search: an exact hit, or the tightest adjacent
// bracket when no sequence closes exactly at the target.
type Result struct {
	// Exact is true when Seq's close time equals the target.
	Exact bool

	// Seq is the exact sequence on a hit, otherwise the bound the
	// terminating branch picked as closest.
	Seq int64

	// CloseTime is Seq's confirmed close time.
	CloseTime int64

	// Lower and Upper are the final bracket. Equal to each other on an
	// exact hit; adjacent (Upper.Seq == Lower.Seq+1) otherwise.
	Lower, Upper lookup.Sample

	// Iterations is the number of loop iterations performed.
	Iterations int

	// Lookups is the number of provider calls issued, seeding included.
	Lookups int
}

// Searcher runs bracketing interpolation searches against a Provider.
// It is stateless between searches and safe for concurrent use as long as
// the provider is.
type Searcher struct {
	provider lookup.Provider
	opts     Options
}

// New creates a Searcher over the given provider.
func New(provider lookup.Provider, optFns ...func(o *Options)) *Searcher {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.SeedOffset <= 0 {
		opts.SeedOffset = DefaultOptions.SeedOffset
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions.MaxIterations
	}
	if opts.Logger == nil {
		opts.Logger = &noopLogger{}
	}

	return &Searcher{provider: provider, opts: opts}
}

// Seek finds the sequence whose close time equals target, or the adjacent
// bracket around it. Seeding follows the eager short-circuit strategy: the
// latest validated sample is checked against the target before any further
// lookup is spent.
func (s *Searcher) Seek(ctx context.Context, target int64) (Result, error) {
	latest, err := s.provider.Latest(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("seed latest: %w", err)
	}

	lookups := 1
	s.step(Step{Seq: latest.Seq, CloseTime: latest.CloseTime, Replaced: BoundUpper})

	if latest.CloseTime == target {
		return exactResult(latest.Seq, latest.CloseTime, 0, lookups), nil
	}

	seedSeq := latest.Seq - s.opts.SeedOffset

	t1, err := s.provider.CloseTime(ctx, seedSeq)
	if err != nil {
		return Result{}, fmt.Errorf("seed seq %d: %w", seedSeq, err)
	}

	lookups++
	s.step(Step{Seq: seedSeq, CloseTime: t1, Replaced: BoundLower, Width: latest.Seq - seedSeq})

	if t1 == target {
		return exactResult(seedSeq, t1, 0, lookups), nil
	}

	st := State{
		L1: seedSeq, T1: t1,
		L2: latest.Seq, T2: latest.CloseTime,
		Target: target,
	}

	return s.run(ctx, &st, lookups)
}

// SeekFrom runs the search between two already-confirmed seed samples
// instead of seeding from the latest validated ledger. Out-of-order seeds
// are normalized; a seed whose close time already equals target is returned
// immediately with no lookups spent.
func (s *Searcher) SeekFrom(ctx context.Context, target int64, a, b lookup.Sample) (Result, error) {
	if a.CloseTime == target {
		return exactResult(a.Seq, a.CloseTime, 0, 0), nil
	}
	if b.CloseTime == target {
		return exactResult(b.Seq, b.CloseTime, 0, 0), nil
	}

	st := State{
		L1: a.Seq, T1: a.CloseTime,
		L2: b.Seq, T2: b.CloseTime,
		Target: target,
	}

	return s.run(ctx, &st, 0)
}

// run iterates guess → classify → fetch → update until termination. st must
// hold two confirmed samples.
func (s *Searcher) run(ctx context.Context, st *State, lookups int) (Result, error) {
	st.Normalize()

	for iter := 0; ; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if st.T1 > st.T2 {
			err := &ErrNonMonotonic{L1: st.L1, L2: st.L2, T1: st.T1, T2: st.T2}
			s.opts.Logger.Errorf("aborting: %v", err)
			return Result{}, err
		}

		if iter >= s.opts.MaxIterations {
			return Result{}, &ErrIterationLimit{Limit: s.opts.MaxIterations}
		}

		// A zero-width bracket can only come from colliding seeds; there is
		// nothing left to interpolate between.
		if st.L1 == st.L2 {
			return Result{}, &ErrDegenerateBracket{L1: st.L1, L2: st.L2, CloseTime: st.T1}
		}

		var nl int64
		if st.Degenerate() {
			if s.opts.FailOnDegenerate {
				return Result{}, &ErrDegenerateBracket{L1: st.L1, L2: st.L2, CloseTime: st.T1}
			}
			nl = st.Bisect()
		} else {
			nl = st.Guess()

			// Rounding can pull the guess for a target outside [T1,T2]
			// back onto a bound, which would send the forced probe away
			// from the target. Clamp so the extrapolation branch fires.
			if st.Target < st.T1 && nl >= st.L1 {
				nl = st.L1 - 1
			} else if st.Target > st.T2 && nl <= st.L2 {
				nl = st.L2 + 1
			}
		}

		var role Bound
		switch {
		case nl < st.L1:
			// Extrapolated below: chase the guess with the old lower bound,
			// which becomes the new upper bound with its close time intact.
			st.L2, st.T2 = st.L1, st.T1
			st.L1 = nl
			role = BoundLower

		case nl > st.L2:
			// Extrapolated above, mirror case.
			st.L1, st.T1 = st.L2, st.T2
			st.L2 = nl
			role = BoundUpper

		case nl == st.L1:
			if st.Width() == 1 {
				// Adjacent bracket, lower bound is the closest sequence.
				return bracketResult(st, BoundLower, iter, lookups), nil
			}
			// Probe the lower bound's immediate successor instead of
			// re-guessing the same sequence.
			nl = st.L1 + 1
			st.L2 = nl
			role = BoundUpper

		case nl == st.L2:
			if st.Width() == 1 {
				return bracketResult(st, BoundUpper, iter, lookups), nil
			}
			nl = st.L2 - 1
			st.L1 = nl
			role = BoundLower

		default:
			// Interior guess: replace whichever bound is numerically
			// closer, ties replacing the upper.
			if nl-st.L1 <= st.L2-nl {
				st.L2 = nl
				role = BoundUpper
			} else {
				st.L1 = nl
				role = BoundLower
			}
		}

		t, err := s.provider.CloseTime(ctx, nl)
		if err != nil {
			return Result{}, fmt.Errorf("lookup seq %d: %w", nl, err)
		}

		lookups++
		st.Set(role, nl, t)
		s.step(Step{Seq: nl, CloseTime: t, Replaced: role, Width: st.Width()})

		if t == st.Target {
			return exactResult(nl, t, iter+1, lookups), nil
		}
	}
}

func (s *Searcher) step(step Step) {
	if s.opts.OnStep != nil {
		s.opts.OnStep(step)
	}
	s.opts.Logger.Infof("sample seq=%d close_time=%d replaced=%s width=%d",
		step.Seq, step.CloseTime, step.Replaced, step.Width)
}

func exactResult(seq, closeTime int64, iterations, lookups int) Result {
	sample := lookup.Sample{Seq: seq, CloseTime: closeTime}
	return Result{
		Exact:      true,
		Seq:        seq,
		CloseTime:  closeTime,
		Lower:      sample,
		Upper:      sample,
		Iterations: iterations,
		Lookups:    lookups,
	}
}

func bracketResult(st *State, best Bound, iterations, lookups int) Result {
	r := Result{
		Lower:      lookup.Sample{Seq: st.L1, CloseTime: st.T1},
		Upper:      lookup.Sample{Seq: st.L2, CloseTime: st.T2},
		Iterations: iterations,
		Lookups:    lookups,
	}
	if best == BoundLower {
		r.Seq, r.CloseTime = st.L1, st.T1
	} else {
		r.Seq, r.CloseTime = st.L2, st.T2
	}
	return r
}
