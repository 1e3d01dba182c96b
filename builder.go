// Package ledgerseek provides close-time search over the XRP Ledger.
//
// This file implements the fluent builder API for creating and configuring
// Seeker instances. Builders are immutable - each method returns a new
// builder with the updated configuration.
package ledgerseek

import (
	"github.com/ledgerseek/ledgerseek/lookup"
	"github.com/ledgerseek/ledgerseek/search"
	"github.com/ledgerseek/ledgerseek/xrpl"
)

// XRPL creates a builder whose seeker queries a rippled JSON-RPC endpoint.
// An empty url selects xrpl.DefaultURL.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	sk, err := ledgerseek.XRPL(xrpl.DefaultURL).
//	    Memoize().
//	    RateLimit(4, 1).
//	    MaxIterations(64).
//	    Build()
func XRPL(url string, opts ...xrpl.ClientOption) Builder {
	return Builder{
		useXRPL:       true,
		url:           url,
		clientOpts:    opts,
		seedOffset:    search.DefaultOptions.SeedOffset,
		maxIterations: search.DefaultOptions.MaxIterations,
	}
}

// FromProvider creates a builder over an existing provider, typically a
// table-backed fake in tests or an already-decorated client.
func FromProvider(p lookup.Provider) Builder {
	return Builder{
		provider:      p,
		seedOffset:    search.DefaultOptions.SeedOffset,
		maxIterations: search.DefaultOptions.MaxIterations,
	}
}

// Builder is an immutable fluent builder for creating Seeker instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	provider   lookup.Provider
	useXRPL    bool
	url        string
	clientOpts []xrpl.ClientOption

	memoize       bool
	lookupsPerSec float64
	burst         int

	seedOffset       int64
	maxIterations    int
	failOnDegenerate bool
	onStep           func(Step)
	logger           *Logger
	metrics          MetricsObserver
}

// Memoize caches close times by sequence. Lookups are idempotent, so the
// cache never expires; revisited bounds cost no round-trip.
func (b Builder) Memoize() Builder {
	b.memoize = true
	return b
}

// RateLimit throttles provider calls to lookupsPerSec with the given burst.
// Cache hits from Memoize do not consume tokens.
func (b Builder) RateLimit(lookupsPerSec float64, burst int) Builder {
	b.lookupsPerSec = lookupsPerSec
	b.burst = burst
	return b
}

// SeedOffset sets how many sequences before the latest validated ledger the
// second seed sample is taken. Default: 10.
func (b Builder) SeedOffset(n int64) Builder {
	b.seedOffset = n
	return b
}

// MaxIterations caps the search loop. Default: 64.
func (b Builder) MaxIterations(n int) Builder {
	b.maxIterations = n
	return b
}

// FailOnDegenerate makes a degenerate bracket (equal close times at distinct
// sequences) a terminal error instead of falling back to bisection.
func (b Builder) FailOnDegenerate() Builder {
	b.failOnDegenerate = true
	return b
}

// OnStep registers an observer invoked after every confirmed sample.
func (b Builder) OnStep(fn func(Step)) Builder {
	b.onStep = fn
	return b
}

// WithLogger sets the logger. Default: no logging.
func (b Builder) WithLogger(logger *Logger) Builder {
	b.logger = logger
	return b
}

// WithMetrics sets the metrics observer. Default: none.
func (b Builder) WithMetrics(m MetricsObserver) Builder {
	b.metrics = m
	return b
}

// Build validates the configuration and creates the Seeker.
func (b Builder) Build() (*Seeker, error) {
	if b.seedOffset <= 0 {
		return nil, ErrInvalidSeedOffset
	}
	if b.maxIterations <= 0 {
		return nil, ErrInvalidMaxIterations
	}

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}

	metrics := b.metrics
	if metrics == nil {
		metrics = &NoopMetricsObserver{}
	}

	provider := b.provider
	if provider == nil {
		if !b.useXRPL {
			return nil, ErrNoProvider
		}
		provider = xrpl.NewClient(b.url, b.clientOpts...)
	}

	// Rate limiting sits below the memoizer so cache hits bypass it.
	if b.lookupsPerSec > 0 {
		provider = lookup.NewLimited(provider, b.lookupsPerSec, b.burst)
	}
	if b.memoize {
		provider = lookup.NewMemo(provider)
	}

	return &Seeker{
		provider:         provider,
		seedOffset:       b.seedOffset,
		maxIterations:    b.maxIterations,
		failOnDegenerate: b.failOnDegenerate,
		onStep:           b.onStep,
		logger:           logger,
		metrics:          metrics,
	}, nil
}
