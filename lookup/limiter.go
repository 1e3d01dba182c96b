package lookup

import (
	"context"

	"golang.org/x/time/rate"
)

// Limited throttles calls to an upstream Provider.
//
// The public full-history servers are a shared best-effort service; the
// limiter keeps a search (or several, if the provider is shared) from
// hammering them. Waiting respects the caller's context, so a deadline or
// cancellation set on the search aborts a queued lookup too.
type Limited struct {
	upstream Provider
	limiter  *rate.Limiter
}

// NewLimited wraps upstream with a token-bucket limiter of lookupsPerSec
// with the given burst. If lookupsPerSec <= 0, the limiter is a no-op.
func NewLimited(upstream Provider, lookupsPerSec float64, burst int) *Limited {
	var l *rate.Limiter
	if lookupsPerSec > 0 {
		if burst < 1 {
			burst = 1
		}
		l = rate.NewLimiter(rate.Limit(lookupsPerSec), burst)
	}
	return &Limited{upstream: upstream, limiter: l}
}

func (l *Limited) wait(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Latest delegates to the upstream provider after acquiring a token.
func (l *Limited) Latest(ctx context.Context) (Sample, error) {
	if err := l.wait(ctx); err != nil {
		return Sample{}, err
	}
	return l.upstream.Latest(ctx)
}

// CloseTime delegates to the upstream provider after acquiring a token.
func (l *Limited) CloseTime(ctx context.Context, seq int64) (int64, error) {
	if err := l.wait(ctx); err != nil {
		return 0, err
	}
	return l.upstream.CloseTime(ctx, seq)
}
