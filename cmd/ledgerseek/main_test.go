package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2020-01-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2019-12-31T23:59:59Z", time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTarget(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}

	_, err := parseTarget("")
	assert.Error(t, err)

	_, err = parseTarget("not-a-time")
	assert.Error(t, err)
}

func TestRootCmdRequiresTarget(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
