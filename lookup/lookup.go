// Package lookup defines the capability the searcher consumes: resolving a
// ledger sequence to its close time via a single expensive remote call.
//
// The search core never talks to the network directly. It receives a Provider
// and nothing else, which keeps the algorithm deterministic under test (a
// table-backed fake satisfies Provider) and keeps transport policy (retry,
// rate limiting, memoization) out of the bracket logic. Decorators in this
// package compose around any Provider.
package lookup

import (
	"context"
	"fmt"
)

// Sample is a single confirmed point of the sequence → close-time relation.
type Sample struct {
	// Seq is the ledger sequence number.
	Seq int64
	// CloseTime is the ledger's close time in seconds since the Ripple epoch.
	CloseTime int64
}

// Provider resolves ledger sequences to close times.
//
// Implementations must be deterministic for a given sequence: the backing
// relation is append-only, so a sequence's close time never changes once it
// exists. Failures must be reported as errors, never as zero values.
type Provider interface {
	// Latest returns the most recent validated ledger and its close time.
	Latest(ctx context.Context) (Sample, error)

	// CloseTime returns the close time of the ledger with the given sequence.
	CloseTime(ctx context.Context, seq int64) (int64, error)
}

// ErrNotFound indicates the requested sequence does not exist on the backing
// relation (before genesis, or beyond the latest validated ledger).
//
// Callers can detect it via errors.As.
type ErrNotFound struct {
	Seq int64
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("ledger %d not found", e.Seq)
}
