package ledgerseek

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerseek/ledgerseek/lookup"
	"github.com/ledgerseek/ledgerseek/search"
	"github.com/ledgerseek/ledgerseek/xrpl"
)

// Result is the outcome of a seek. See search.Result.
type Result = search.Result

// Step is one confirmed sample during a seek. See search.Step.
type Step = search.Step

// Seeker locates ledger sequences by close time. Build one with XRPL or
// FromProvider. A Seeker is stateless between seeks and safe for concurrent
// use as long as its provider is.
type Seeker struct {
	provider         lookup.Provider
	seedOffset       int64
	maxIterations    int
	failOnDegenerate bool
	onStep           func(Step)
	logger           *Logger
	metrics          MetricsObserver
}

// SeekCloseTime finds the sequence whose close time (seconds since the
// Ripple epoch) equals target, or the tightest adjacent bracket around it.
func (s *Seeker) SeekCloseTime(ctx context.Context, target int64) (Result, error) {
	logger := s.logger.WithSeekID(uuid.NewString())

	searcher := search.New(
		&instrumentedProvider{provider: s.provider, metrics: s.metrics, logger: logger},
		func(o *search.Options) {
			o.SeedOffset = s.seedOffset
			o.MaxIterations = s.maxIterations
			o.FailOnDegenerate = s.failOnDegenerate
			o.OnStep = s.onStep
			o.Logger = searchLogger{l: logger}
		},
	)

	start := time.Now()

	result, err := searcher.Seek(ctx, target)
	err = translateError(err)

	duration := time.Since(start)
	s.metrics.OnSeek(duration, result.Iterations, result.Lookups, err)
	logger.LogSeek(ctx, target, result, duration, err)

	return result, err
}

// SeekTime is SeekCloseTime with a wall-clock target, truncated to whole
// seconds of the Ripple epoch.
func (s *Seeker) SeekTime(ctx context.Context, target time.Time) (Result, error) {
	return s.SeekCloseTime(ctx, xrpl.CloseTimeFromTime(target))
}

// Provider returns the (decorated) provider the seeker queries. Useful for
// sharing a memoized provider between seekers.
func (s *Seeker) Provider() lookup.Provider {
	return s.provider
}

// instrumentedProvider reports per-lookup latency to the metrics observer
// and the logger.
type instrumentedProvider struct {
	provider lookup.Provider
	metrics  MetricsObserver
	logger   *Logger
}

func (p *instrumentedProvider) Latest(ctx context.Context) (lookup.Sample, error) {
	start := time.Now()
	sample, err := p.provider.Latest(ctx)
	duration := time.Since(start)

	p.metrics.OnLookup(duration, sample.Seq, err)
	p.logger.LogLookup(ctx, sample.Seq, sample.CloseTime, duration, err)

	return sample, err
}

func (p *instrumentedProvider) CloseTime(ctx context.Context, seq int64) (int64, error) {
	start := time.Now()
	closeTime, err := p.provider.CloseTime(ctx, seq)
	duration := time.Since(start)

	p.metrics.OnLookup(duration, seq, err)
	p.logger.LogLookup(ctx, seq, closeTime, duration, err)

	return closeTime, err
}
