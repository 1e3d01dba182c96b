package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider answers 10*seq and counts upstream calls.
type countingProvider struct {
	latestCalls    int
	closeTimeCalls int
	failSeq        int64
}

func (p *countingProvider) Latest(ctx context.Context) (Sample, error) {
	p.latestCalls++
	return Sample{Seq: 100, CloseTime: 1000}, nil
}

func (p *countingProvider) CloseTime(ctx context.Context, seq int64) (int64, error) {
	p.closeTimeCalls++
	if p.failSeq != 0 && seq == p.failSeq {
		return 0, errors.New("boom")
	}
	return 10 * seq, nil
}

func TestMemoCachesCloseTimes(t *testing.T) {
	upstream := &countingProvider{}
	m := NewMemo(upstream)
	ctx := context.Background()

	ct, err := m.CloseTime(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(70), ct)

	ct, err = m.CloseTime(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(70), ct)

	assert.Equal(t, 1, upstream.closeTimeCalls, "second call must be served from cache")
	assert.Equal(t, int64(1), m.Hits())
	assert.Equal(t, int64(1), m.Misses())
	assert.Equal(t, 1, m.Len())
}

func TestMemoRecordsLatest(t *testing.T) {
	upstream := &countingProvider{}
	m := NewMemo(upstream)
	ctx := context.Background()

	s, err := m.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, Sample{Seq: 100, CloseTime: 1000}, s)

	// The latest sample's close time is now cached by sequence.
	ct, err := m.CloseTime(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), ct)
	assert.Equal(t, 0, upstream.closeTimeCalls)

	// Latest itself is never cached.
	_, err = m.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.latestCalls)
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	upstream := &countingProvider{failSeq: 9}
	m := NewMemo(upstream)
	ctx := context.Background()

	_, err := m.CloseTime(ctx, 9)
	require.Error(t, err)

	_, err = m.CloseTime(ctx, 9)
	require.Error(t, err)

	assert.Equal(t, 2, upstream.closeTimeCalls)
	assert.Equal(t, 0, m.Len())
}
