package ledgerseek_test

import (
	"context"
	"fmt"

	"github.com/ledgerseek/ledgerseek"
	"github.com/ledgerseek/ledgerseek/lookup"
)

// steadyLedger is a deterministic stand-in for a rippled endpoint: one
// ledger every 4 seconds.
type steadyLedger struct{}

func (steadyLedger) Latest(ctx context.Context) (lookup.Sample, error) {
	return lookup.Sample{Seq: 90_000, CloseTime: 360_000}, nil
}

func (steadyLedger) CloseTime(ctx context.Context, seq int64) (int64, error) {
	if seq < 1 || seq > 90_000 {
		return 0, &lookup.ErrNotFound{Seq: seq}
	}
	return 4 * seq, nil
}

func ExampleFromProvider() {
	sk, err := ledgerseek.FromProvider(steadyLedger{}).
		Memoize().
		Build()
	if err != nil {
		panic(err)
	}

	result, err := sk.SeekCloseTime(context.Background(), 100_000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("exact=%v seq=%d lookups=%d\n", result.Exact, result.Seq, result.Lookups)
	// Output: exact=true seq=25000 lookups=3
}
