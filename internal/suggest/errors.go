package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Error types for suggestion requests

// ErrorKind represents the category of suggestion failure
type ErrorKind int

const (
	// ErrKindNotConfigured indicates no API credential was available
	ErrKindNotConfigured ErrorKind = iota
	// ErrKindUnauthorized indicates the provider rejected the credential
	ErrKindUnauthorized
	// ErrKindRateLimited indicates the provider signaled quota exhaustion
	ErrKindRateLimited
	// ErrKindTimeout indicates no response arrived within the deadline
	ErrKindTimeout
	// ErrKindProvider indicates any other transport or non-2xx failure
	ErrKindProvider
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindNotConfigured:
		return "Not Configured"
	case ErrKindUnauthorized:
		return "Unauthorized"
	case ErrKindRateLimited:
		return "Rate Limited"
	case ErrKindTimeout:
		return "Timeout"
	case ErrKindProvider:
		return "Provider Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// SuggestError represents a failed suggestion request
type SuggestError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int   // HTTP status code (if applicable)
	Err        error // Underlying error (if any)
}

// Error implements the error interface
func (e *SuggestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SuggestError) Unwrap() error {
	return e.Err
}

// NewNotConfiguredError creates the error returned when no credential is set
func NewNotConfiguredError() *SuggestError {
	return &SuggestError{
		Kind:    ErrKindNotConfigured,
		Message: "no API key configured",
	}
}

// Classify maps a provider or transport error onto the suggestion taxonomy.
func Classify(err error) *SuggestError {
	if err == nil {
		return nil
	}

	var se *SuggestError
	if errors.As(err, &se) {
		return se
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &SuggestError{
			Kind:    ErrKindTimeout,
			Message: "request timed out",
			Err:     err,
		}
	}

	// go-openai reports non-2xx responses as APIError and lower-level
	// failures as RequestError; both carry the HTTP status when known.
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return &SuggestError{
			Kind:       ErrKindUnauthorized,
			Message:    "API key rejected",
			StatusCode: status,
			Err:        err,
		}
	case http.StatusTooManyRequests:
		return &SuggestError{
			Kind:       ErrKindRateLimited,
			Message:    "rate limit exceeded",
			StatusCode: status,
			Err:        err,
		}
	}

	return &SuggestError{
		Kind:       ErrKindProvider,
		Message:    "suggestion request failed",
		StatusCode: status,
		Err:        err,
	}
}

// errorOfKind checks if an error is a SuggestError of the given kind
func errorOfKind(err error, kind ErrorKind) bool {
	var se *SuggestError
	return errors.As(err, &se) && se.Kind == kind
}

// IsNotConfigured checks if an error means no credential was available
func IsNotConfigured(err error) bool {
	return errorOfKind(err, ErrKindNotConfigured)
}

// IsUnauthorized checks if an error means the credential was rejected
func IsUnauthorized(err error) bool {
	return errorOfKind(err, ErrKindUnauthorized)
}

// IsRateLimited checks if an error means the provider throttled the request
func IsRateLimited(err error) bool {
	return errorOfKind(err, ErrKindRateLimited)
}

// IsTimeout checks if an error means the request deadline expired
func IsTimeout(err error) bool {
	return errorOfKind(err, ErrKindTimeout)
}

// IsProviderError checks if an error is an unclassified provider failure
func IsProviderError(err error) bool {
	return errorOfKind(err, ErrKindProvider)
}

// UserMessage returns a concise, user-facing message for a suggestion error.
// The message is shown inline in the open suggestion dialog and never aborts
// the wizard.
func UserMessage(err error) string {
	var se *SuggestError
	if !errors.As(err, &se) {
		return "Failed to generate text suggestion. Please try again."
	}

	switch se.Kind {
	case ErrKindNotConfigured:
		return "OpenAI API key not configured. Please set OPENAI_API_KEY in your environment."
	case ErrKindUnauthorized:
		return "Invalid API key. Please check your OpenAI API key."
	case ErrKindRateLimited:
		return "Rate limit exceeded. Please try again later."
	case ErrKindTimeout:
		return "Request timeout. Please try again."
	default:
		return "Failed to generate text suggestion. Please try again."
	}
}
