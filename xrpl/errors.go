package xrpl

import "fmt"

// ErrRPC indicates the server answered but reported a non-success status
// for the query (for example "lgrNotFound" for a sequence that does not
// exist). These are terminal for the request and never retried.
type ErrRPC struct {
	Status  string // the reported status, e.g. "error"
	Code    string // the server's error code, e.g. "lgrNotFound"
	Message string // the server's human-readable message, may be empty
}

func (e *ErrRPC) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rpc status %q: %s (%s)", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("rpc status %q: %s", e.Status, e.Code)
}

// ErrMalformedResponse indicates the server's reply could not be decoded
// into the expected ledger header shape.
type ErrMalformedResponse struct {
	Reason string
	cause  error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.cause }
