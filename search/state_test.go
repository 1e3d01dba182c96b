package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNormalize(t *testing.T) {
	t.Run("swaps out-of-order bounds", func(t *testing.T) {
		st := State{L1: 26, T1: 460, L2: 16, T2: 160}
		st.Normalize()

		assert.Equal(t, State{L1: 16, T1: 160, L2: 26, T2: 460}, st)
	})

	t.Run("keeps ordered bounds", func(t *testing.T) {
		st := State{L1: 16, T1: 160, L2: 26, T2: 460}
		st.Normalize()

		assert.Equal(t, State{L1: 16, T1: 160, L2: 26, T2: 460}, st)
	})
}

func TestStateGuess(t *testing.T) {
	tests := []struct {
		name string
		st   State
		want int64
	}{
		{
			name: "interpolates linearly",
			st:   State{L1: 10, T1: 100, L2: 20, T2: 200, Target: 150},
			want: 15,
		},
		{
			name: "rounds to nearest",
			st:   State{L1: 10, T1: 100, L2: 20, T2: 200, Target: 142},
			want: 14,
		},
		{
			name: "rounds half away from zero",
			st:   State{L1: 10, T1: 100, L2: 20, T2: 200, Target: 145},
			want: 15,
		},
		{
			name: "extrapolates below",
			st:   State{L1: 10, T1: 100, L2: 20, T2: 200, Target: 50},
			want: 5,
		},
		{
			name: "extrapolates above",
			st:   State{L1: 10, T1: 100, L2: 20, T2: 200, Target: 300},
			want: 30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.Guess())
		})
	}
}

func TestStateDegenerate(t *testing.T) {
	assert.True(t, (&State{L1: 10, T1: 100, L2: 20, T2: 100}).Degenerate())
	assert.False(t, (&State{L1: 10, T1: 100, L2: 20, T2: 200}).Degenerate())
	assert.False(t, (&State{L1: 10, T1: 100, L2: 10, T2: 100}).Degenerate())
}

func TestStateBisect(t *testing.T) {
	st := State{L1: 10, L2: 20}
	assert.Equal(t, int64(15), st.Bisect())

	st = State{L1: 10, L2: 11}
	assert.Equal(t, int64(10), st.Bisect())
}

func TestStateSet(t *testing.T) {
	st := State{L1: 10, T1: 100, L2: 20, T2: 200}

	st.Set(BoundLower, 12, 120)
	assert.Equal(t, int64(12), st.L1)
	assert.Equal(t, int64(120), st.T1)

	st.Set(BoundUpper, 18, 180)
	assert.Equal(t, int64(18), st.L2)
	assert.Equal(t, int64(180), st.T2)

	assert.Equal(t, int64(6), st.Width())
}

func TestBoundString(t *testing.T) {
	assert.Equal(t, "lower", BoundLower.String())
	assert.Equal(t, "upper", BoundUpper.String())
	assert.Equal(t, "unknown", Bound(7).String())
}
