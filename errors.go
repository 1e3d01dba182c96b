package ledgerseek

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerseek/ledgerseek/search"
)

var (
	// ErrNoProvider is returned by Build when no lookup source was configured.
	ErrNoProvider = errors.New("no provider or endpoint configured")

	// ErrInvalidSeedOffset is returned by Build when the seed offset is not positive.
	ErrInvalidSeedOffset = errors.New("seed offset must be positive")

	// ErrInvalidMaxIterations is returned by Build when the iteration cap is not positive.
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")

	// ErrLookup unifies provider failures: transport errors, malformed
	// replies, and non-success statuses from the remote side. The original
	// underlying error can be accessed via errors.Unwrap or errors.As.
	ErrLookup = errors.New("lookup failed")
)

// translateError unifies errors surfaced by a seek into the package taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Cancellation and deadlines pass through untouched.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	// Invariant violations from the core keep their types.
	var degenerate *search.ErrDegenerateBracket
	if errors.As(err, &degenerate) {
		return err
	}
	var nonMonotonic *search.ErrNonMonotonic
	if errors.As(err, &nonMonotonic) {
		return err
	}
	var limit *search.ErrIterationLimit
	if errors.As(err, &limit) {
		return err
	}

	// Everything else came out of the provider.
	return fmt.Errorf("%w: %w", ErrLookup, err)
}
