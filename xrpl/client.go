// Package xrpl provides a lookup.Provider backed by the XRP Ledger JSON-RPC
// API, querying the "ledger" method for ledger headers.
//
// The public full-history servers are a best-effort service with no
// particular reliability guarantee, so the client retries transport-level
// failures with capped backoff. Query-level failures (a non-success status
// in the reply) are terminal and surface as typed errors; they are never
// coerced to zero values.
package xrpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerseek/ledgerseek/lookup"
)

// DefaultURL is the public full-history cluster the original tool queried.
const DefaultURL = "http://s2.ripple.com:51234"

const (
	defaultMaxRetries    = 3
	defaultRetryInterval = 250 * time.Millisecond
	defaultTimeout       = 30 * time.Second
)

// Client queries ledger headers over JSON-RPC. It implements
// lookup.Provider and is safe for concurrent use.
type Client struct {
	url           string
	httpClient    *http.Client
	maxRetries    int
	retryInterval time.Duration
	userAgent     string
	logger        *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client. The default client has a
// 30s timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxRetries sets how many times a transport-level failure is retried.
// Zero disables retries.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryInterval sets the initial backoff between retries. The interval
// doubles after each attempt.
func WithRetryInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.retryInterval = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the given JSON-RPC endpoint. An empty url
// selects DefaultURL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:           url,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultRetryInterval,
		userAgent:     "ledgerseek",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if c.url == "" {
		c.url = DefaultURL
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Latest returns the most recent validated ledger and its close time.
func (c *Client) Latest(ctx context.Context) (lookup.Sample, error) {
	header, err := c.ledger(ctx, "validated")
	if err != nil {
		return lookup.Sample{}, err
	}
	return lookup.Sample{Seq: int64(header.LedgerIndex), CloseTime: header.CloseTime}, nil
}

// CloseTime returns the close time of the ledger with the given sequence.
func (c *Client) CloseTime(ctx context.Context, seq int64) (int64, error) {
	header, err := c.ledger(ctx, seq)
	if err != nil {
		return 0, err
	}
	return header.CloseTime, nil
}

// ledgerParams is the single params object of a "ledger" query.
// LedgerIndex is either a sequence number or the string "validated".
type ledgerParams struct {
	LedgerIndex any `json:"ledger_index"`
}

type rpcRequest struct {
	Method string         `json:"method"`
	Params []ledgerParams `json:"params"`
}

// ledgerHeader is the subset of the ledger header the searcher needs.
// rippled returns ledger_index as a string inside the header.
type ledgerHeader struct {
	LedgerIndex flexInt64 `json:"ledger_index"`
	CloseTime   int64     `json:"close_time"`
}

type rpcResult struct {
	Status       string        `json:"status"`
	Error        string        `json:"error"`
	ErrorMessage string        `json:"error_message"`
	Ledger       *ledgerHeader `json:"ledger"`
}

type rpcEnvelope struct {
	Result *rpcResult `json:"result"`
}

// flexInt64 decodes a JSON number or a numeric string.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse ledger_index %q: %w", s, err)
	}
	*f = flexInt64(v)
	return nil
}

func (c *Client) ledger(ctx context.Context, ledgerIndex any) (*ledgerHeader, error) {
	body, err := json.Marshal(rpcRequest{
		Method: "ledger",
		Params: []ledgerParams{{LedgerIndex: ledgerIndex}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	reply, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}

	var envelope rpcEnvelope
	if err := json.Unmarshal(reply, &envelope); err != nil {
		return nil, &ErrMalformedResponse{Reason: "reply is not valid JSON", cause: err}
	}
	if envelope.Result == nil {
		return nil, &ErrMalformedResponse{Reason: "reply has no result object"}
	}

	result := envelope.Result
	if result.Status != "success" {
		rpcErr := &ErrRPC{Status: result.Status, Code: result.Error, Message: result.ErrorMessage}
		if result.Error == "lgrNotFound" {
			if seq, ok := ledgerIndex.(int64); ok {
				return nil, fmt.Errorf("%w: %w", &lookup.ErrNotFound{Seq: seq}, rpcErr)
			}
		}
		return nil, rpcErr
	}

	if result.Ledger == nil {
		return nil, &ErrMalformedResponse{Reason: "result has no ledger header"}
	}

	return result.Ledger, nil
}

// post sends the query, retrying transport errors and 5xx replies with
// doubling backoff.
func (c *Client) post(ctx context.Context, body []byte) ([]byte, error) {
	requestID := uuid.NewString()
	interval := c.retryInterval

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying query",
				"request_id", requestID,
				"attempt", attempt,
				"backoff", interval,
				"error", lastErr,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(interval):
			}
			interval *= 2
		}

		reply, retryable, err := c.postOnce(ctx, body, requestID)
		if err == nil {
			return reply, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("query failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) postOnce(ctx context.Context, body []byte, requestID string) (reply []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("post %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	reply, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read reply: %w", err)
	}

	c.logger.Debug("query completed",
		"request_id", requestID,
		"status_code", resp.StatusCode,
		"duration", time.Since(start),
		"reply_bytes", len(reply),
	)

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("server replied %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("server replied %s", resp.Status)
	}

	return reply, false, nil
}
