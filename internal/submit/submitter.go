// Package submit delivers completed applications to their final destination.
//
// The form session only sees the Submitter contract. SimulatedSubmitter is
// the default delivery: a fixed delay that always succeeds, useful until a
// real intake endpoint exists. HTTPSubmitter posts the JSON record to a
// configured endpoint and maps failures to a typed *SubmitError.
package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muurk/sanad/internal/form"
)

const (
	// DefaultSimulatedDelay mirrors the reference submission behavior
	DefaultSimulatedDelay = 2 * time.Second

	// DefaultTimeout is the HTTP submission deadline
	DefaultTimeout = 30 * time.Second
)

// SubmitError represents a failed application submission. It is transient
// from the user's perspective: the form state is preserved for retry.
type SubmitError struct {
	StatusCode int    // HTTP status code (if applicable)
	Message    string // Human-readable error message
	Err        error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain inspection
func (e *SubmitError) Unwrap() error {
	return e.Err
}

// IsSubmitError checks if an error is a submission error
func IsSubmitError(err error) bool {
	_, ok := err.(*SubmitError)
	return ok
}

// SimulatedSubmitter pretends to deliver the application: it waits for a
// fixed delay and reports success. It honors context cancellation.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter creates a simulated submitter with the default delay.
func NewSimulatedSubmitter() *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: DefaultSimulatedDelay}
}

// Submit waits for the configured delay and succeeds.
func (s *SimulatedSubmitter) Submit(ctx context.Context, _ form.Record) error {
	delay := s.Delay
	if delay < 0 {
		delay = 0
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return &SubmitError{Message: "submission canceled", Err: ctx.Err()}
	}
}

// HTTPSubmitter delivers the application as a JSON POST to an intake
// endpoint.
type HTTPSubmitter struct {
	// Endpoint is the full URL the record is posted to
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewHTTPSubmitter creates an HTTP submitter for the given endpoint.
func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Submit posts the record. Any transport failure or non-2xx response comes
// back as a *SubmitError; the caller keeps the form state and may retry.
func (s *HTTPSubmitter) Submit(ctx context.Context, record form.Record) error {
	blob, err := record.Marshal()
	if err != nil {
		return &SubmitError{Message: "failed to serialize application", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint,
		bytes.NewReader([]byte(blob)))
	if err != nil {
		return &SubmitError{Message: "failed to build submission request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return &SubmitError{Message: "submission request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the error message; intake services
		// tend to explain rejections in plain text.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("submission rejected with status %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
		}
	}

	return nil
}
