package ledgerseek

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderValidation(t *testing.T) {
	t.Run("no provider", func(t *testing.T) {
		_, err := Builder{}.SeedOffset(10).MaxIterations(64).Build()
		assert.ErrorIs(t, err, ErrNoProvider)
	})

	t.Run("invalid seed offset", func(t *testing.T) {
		_, err := FromProvider(&linearProvider{latest: 100}).SeedOffset(0).Build()
		assert.ErrorIs(t, err, ErrInvalidSeedOffset)
	})

	t.Run("invalid max iterations", func(t *testing.T) {
		_, err := FromProvider(&linearProvider{latest: 100}).MaxIterations(-1).Build()
		assert.ErrorIs(t, err, ErrInvalidMaxIterations)
	})
}

func TestBuilderIsImmutable(t *testing.T) {
	base := FromProvider(&linearProvider{latest: 100})

	memoized := base.Memoize()
	assert.False(t, base.memoize)
	assert.True(t, memoized.memoize)

	capped := base.MaxIterations(5)
	assert.Equal(t, 64, base.maxIterations)
	assert.Equal(t, 5, capped.maxIterations)
}

func TestBuilderXRPLDefaults(t *testing.T) {
	sk, err := XRPL("").Build()
	require.NoError(t, err)
	assert.NotNil(t, sk.Provider())
}

func TestBuilderDecorationOrder(t *testing.T) {
	p := &linearProvider{latest: 100}

	sk, err := FromProvider(p).Memoize().RateLimit(1000, 10).Build()
	require.NoError(t, err)

	// The outermost decorator is the memoizer, so repeated lookups must not
	// consume rate tokens or upstream calls.
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := sk.Provider().CloseTime(ctx, 50)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, p.calls)
}
