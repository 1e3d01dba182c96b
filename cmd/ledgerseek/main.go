// Command ledgerseek finds the XRP Ledger sequence closed at (or tightest
// around) a target time, querying a rippled JSON-RPC endpoint.
//
// Logging:
//   - Base logger is created here with output format and level
//   - Logger is passed in via dependency injection, never set globally
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerseek/ledgerseek"
	"github.com/ledgerseek/ledgerseek/xrpl"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		targetArg     string
		url           string
		seedOffset    int64
		maxIterations int
		lookupsPerSec float64
		retries       int
		timeout       time.Duration
		jsonLogs      bool
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:           "ledgerseek",
		Short:         "Find the XRP Ledger sequence closed at a given time",
		Long:          "Locate the ledger whose close time equals a target time, or the two adjacent ledgers bracketing it, using a bracketing interpolation search that needs only a handful of queries.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseTarget(targetArg)
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			var logger *ledgerseek.Logger
			if jsonLogs {
				logger = ledgerseek.NewJSONLogger(level)
			} else {
				logger = ledgerseek.NewTextLogger(level)
			}

			sk, err := ledgerseek.XRPL(url,
				xrpl.WithMaxRetries(retries),
				xrpl.WithLogger(logger.Logger),
			).
				Memoize().
				RateLimit(lookupsPerSec, 1).
				SeedOffset(seedOffset).
				MaxIterations(maxIterations).
				OnStep(printStep(cmd)).
				WithLogger(logger).
				Build()
			if err != nil {
				return err
			}

			closeTime := xrpl.CloseTimeFromTime(target)
			cmd.Printf("Looking for {ledger at, %d, %s}\n", closeTime, target.UTC().Format(time.RFC3339))

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			result, err := sk.SeekCloseTime(ctx, closeTime)
			if err != nil {
				return err
			}

			cmd.Println("---")
			if result.Exact {
				cmd.Printf("ledger %d closed exactly at %s\n",
					result.Seq, xrpl.CloseTimeToUTC(result.CloseTime).Format(time.RFC3339))
			} else {
				cmd.Printf("no ledger closed exactly at the target; tightest bracket:\n")
				cmd.Printf("  {%d, %d, %s}\n", result.Lower.Seq, result.Lower.CloseTime,
					xrpl.CloseTimeToUTC(result.Lower.CloseTime).Format(time.RFC3339))
				cmd.Printf("  {%d, %d, %s}\n", result.Upper.Seq, result.Upper.CloseTime,
					xrpl.CloseTimeToUTC(result.Upper.CloseTime).Format(time.RFC3339))
			}
			cmd.Printf("%d lookups, %d iterations\n", result.Lookups, result.Iterations)

			return nil
		},
	}

	cmd.Flags().StringVarP(&targetArg, "target", "t", "", "target time, RFC3339 or YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&url, "url", xrpl.DefaultURL, "rippled JSON-RPC endpoint")
	cmd.Flags().Int64Var(&seedOffset, "seed-offset", 10, "sequences before the latest ledger for the second seed")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 64, "iteration cap for the search loop")
	cmd.Flags().Float64Var(&lookupsPerSec, "rate", 4, "max lookups per second (0 = unlimited)")
	cmd.Flags().IntVar(&retries, "retries", 3, "transport-level retries per query")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the search (0 = none)")
	cmd.Flags().BoolVar(&jsonLogs, "json", false, "JSON log output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// printStep renders each confirmed sample the way the classic tool did:
// {sequence, close time, calendar date}.
func printStep(cmd *cobra.Command) func(ledgerseek.Step) {
	return func(s ledgerseek.Step) {
		cmd.Printf("{%d, %d, %s}\n", s.Seq, s.CloseTime,
			xrpl.CloseTimeToUTC(s.CloseTime).Format(time.RFC3339))
	}
}

// parseTarget accepts an RFC3339 timestamp or a bare date (midnight UTC).
func parseTarget(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("target time is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse target %q: want RFC3339 or YYYY-MM-DD", s)
}
