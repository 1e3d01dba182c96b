package lookup

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Memo caches close times by sequence on top of another Provider.
//
// The backing relation is immutable per sequence, so entries never expire.
// Concurrent requests for the same uncached sequence are collapsed into a
// single upstream call. The search loop itself is sequential; the memoizer
// mainly saves a round-trip when a bound is revisited, and makes the
// Provider safe to share between searches against the same source.
type Memo struct {
	upstream Provider

	mu         sync.RWMutex
	closeTimes map[int64]int64

	group singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo wraps upstream with a sequence → close-time cache.
func NewMemo(upstream Provider) *Memo {
	return &Memo{
		upstream:   upstream,
		closeTimes: make(map[int64]int64),
	}
}

// Latest delegates to the upstream provider and records the returned sample.
// It is never served from cache: "latest" moves as the relation grows.
func (m *Memo) Latest(ctx context.Context) (Sample, error) {
	s, err := m.upstream.Latest(ctx)
	if err != nil {
		return Sample{}, err
	}

	m.mu.Lock()
	m.closeTimes[s.Seq] = s.CloseTime
	m.mu.Unlock()

	return s, nil
}

// CloseTime returns the cached close time for seq, fetching it from the
// upstream provider on a miss. Errors are not cached.
func (m *Memo) CloseTime(ctx context.Context, seq int64) (int64, error) {
	m.mu.RLock()
	t, ok := m.closeTimes[seq]
	m.mu.RUnlock()

	if ok {
		m.hits.Add(1)
		return t, nil
	}

	m.misses.Add(1)

	v, err, _ := m.group.Do(strconv.FormatInt(seq, 10), func() (any, error) {
		t, err := m.upstream.CloseTime(ctx, seq)
		if err != nil {
			return int64(0), err
		}

		m.mu.Lock()
		m.closeTimes[seq] = t
		m.mu.Unlock()

		return t, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(int64), nil
}

// Len returns the number of cached sequences.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.closeTimes)
}

// Hits returns the number of cache hits served so far.
func (m *Memo) Hits() int64 { return m.hits.Load() }

// Misses returns the number of cache misses so far.
func (m *Memo) Misses() int64 { return m.misses.Load() }
