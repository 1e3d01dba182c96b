// Package ledgerseek finds the XRP Ledger sequence closed at a given time.
//
// The relation between ledger sequence and close time is strictly increasing
// and roughly linear, but irregularly spaced, and evaluating one point costs
// a remote query. Ledgerseek runs a bracketing inverse-interpolation search
// over that relation: it keeps a shrinking bracket of two confirmed samples
// and predicts the target's sequence from the line through them, so a ledger
// is typically located in a handful of queries even across tens of millions
// of sequences.
//
// The result is either an exact hit (a sequence whose close time equals the
// target) or the tightest possible bracket: two adjacent sequences whose
// close times straddle the target.
//
// # Quick Start
//
// Seek against a public full-history server:
//
//	sk, err := ledgerseek.XRPL(xrpl.DefaultURL).
//	    Memoize().
//	    RateLimit(4, 1).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
//	result, err := sk.SeekTime(ctx, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
//	if err != nil {
//	    panic(err)
//	}
//
//	if result.Exact {
//	    fmt.Printf("ledger %d closed exactly at the target\n", result.Seq)
//	} else {
//	    fmt.Printf("closest ledgers: %d and %d\n", result.Lower.Seq, result.Upper.Seq)
//	}
//
// Any monotone sequence → timestamp source works: implement lookup.Provider
// and build with FromProvider. The search core performs no I/O of its own,
// so a table-backed fake provider gives fully deterministic tests.
//
// # Packages
//
//   - search: the bracketing interpolation algorithm
//   - lookup: the provider capability plus memoizing and rate-limiting decorators
//   - xrpl: the JSON-RPC provider for rippled's "ledger" method
package ledgerseek
