package xrpl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCloseTimeConversion(t *testing.T) {
	// One second before 2020-01-01 is 631151999 seconds after the epoch.
	target := time.Date(2019, time.December, 31, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, int64(631151999), CloseTimeFromTime(target))
	assert.Equal(t, target, CloseTimeToUTC(631151999))
}

func TestCloseTimeZero(t *testing.T) {
	assert.Equal(t, Epoch, CloseTimeToUTC(0))
	assert.Equal(t, int64(0), CloseTimeFromTime(Epoch))
}

func TestCloseTimeFromTimeTruncates(t *testing.T) {
	withMillis := Epoch.Add(5*time.Second + 700*time.Millisecond)
	assert.Equal(t, int64(5), CloseTimeFromTime(withMillis))
}
