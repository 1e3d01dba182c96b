package xrpl

import "time"

// Epoch is the Ripple epoch: ledger close times count seconds from
// 2000-01-01T00:00:00Z, not from the Unix epoch.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// CloseTimeToUTC converts a ledger close time to a UTC wall-clock time.
func CloseTimeToUTC(closeTime int64) time.Time {
	return Epoch.Add(time.Duration(closeTime) * time.Second)
}

// CloseTimeFromTime converts a wall-clock time to seconds since the Ripple
// epoch, truncating sub-second precision.
func CloseTimeFromTime(t time.Time) int64 {
	return int64(t.Sub(Epoch) / time.Second)
}
