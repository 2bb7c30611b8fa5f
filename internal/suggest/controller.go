package suggest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/muurk/sanad/internal/logging"
)

// Status is the state of the active suggestion session.
type Status int

const (
	StatusIdle Status = iota
	StatusGenerating
	StatusReady
	StatusError
)

// String returns a human-readable name for the status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusGenerating:
		return "generating"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// WorkflowErrorKind categorizes illegal workflow operations.
type WorkflowErrorKind int

const (
	// ErrKindNoSession indicates an operation without an open session.
	ErrKindNoSession WorkflowErrorKind = iota
	// ErrKindIllegalTransition indicates an operation not legal from the
	// session's current status.
	ErrKindIllegalTransition
	// ErrKindGenerationInFlight indicates a generate call while a request
	// is already pending.
	ErrKindGenerationInFlight
)

// WorkflowError reports an illegal controller operation. Session state is
// unchanged when one is returned.
type WorkflowError struct {
	Kind    WorkflowErrorKind
	Message string
}

// Error implements the error interface
func (e *WorkflowError) Error() string {
	return e.Message
}

// WorkflowErrorOfKind checks if an error is a workflow error of the given
// kind
func WorkflowErrorOfKind(err error, kind WorkflowErrorKind) bool {
	we, ok := err.(*WorkflowError)
	return ok && we.Kind == kind
}

// Provider generates suggestion text. Client implements it; tests use fakes.
type Provider interface {
	Suggest(ctx context.Context, seed string, kind FieldKind, language string) (string, error)
}

// FormAccess is the slice of the form session the controller needs: reading
// a field's current value as the prompt seed, and writing accepted text back
// through the same path as a manual edit.
type FormAccess interface {
	Field(name string) string
	SubmitField(name, value string) error
}

// session is the transient state for one in-progress suggestion.
type session struct {
	field  string
	seed   string
	kind   FieldKind
	status Status
	text   string
	errMsg string
}

// Controller mediates between a field's current value, the suggestion
// provider, and the form session. At most one session is active at a time;
// opening a session for another field implicitly discards the current one.
//
// Methods are safe for concurrent use: Generate blocks on the network and is
// expected to run off the event loop, and its result is applied only if the
// session it belongs to is still the active one.
type Controller struct {
	mu       sync.Mutex
	provider Provider
	record   FormAccess
	language string

	active *session
	// gen increments whenever the active session changes. A completion
	// carrying a stale generation is dropped.
	gen uint64
}

// NewController creates a controller bound to a provider and a form session.
func NewController(provider Provider, record FormAccess, language string) *Controller {
	return &Controller{
		provider: provider,
		record:   record,
		language: language,
	}
}

// SetLanguage changes the language used for subsequent sessions.
func (c *Controller) SetLanguage(language string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = language
}

// Open starts a suggestion session for the given field, seeded with the
// field's current value, or with DefaultSeed if the field is still empty.
// Any previously active session is discarded, including one whose request is
// still in flight; its eventual response will be ignored.
func (c *Controller) Open(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	seed := c.record.Field(field)
	if strings.TrimSpace(seed) == "" {
		seed = DefaultSeed
	}
	c.active = &session{
		field:  field,
		seed:   seed,
		kind:   KindForField(field),
		status: StatusIdle,
	}
}

// Generate requests a suggestion for the open session. Legal only from idle.
// The call blocks until the provider responds; run it off the event loop.
// On success the session becomes ready with the generated text; on failure it
// becomes error with a user-facing message, and the error is also returned.
// If the session was discarded while the request was in flight, the response
// is dropped and Generate returns nil.
func (c *Controller) Generate(ctx context.Context) error {
	c.mu.Lock()
	if c.active == nil {
		c.mu.Unlock()
		return &WorkflowError{Kind: ErrKindNoSession, Message: "no suggestion session open"}
	}
	switch c.active.status {
	case StatusGenerating:
		c.mu.Unlock()
		return &WorkflowError{
			Kind:    ErrKindGenerationInFlight,
			Message: "a suggestion request is already in flight",
		}
	case StatusIdle:
		// proceed
	default:
		status := c.active.status
		c.mu.Unlock()
		return &WorkflowError{
			Kind:    ErrKindIllegalTransition,
			Message: fmt.Sprintf("cannot generate from %s", status),
		}
	}

	c.active.status = StatusGenerating
	gen := c.gen
	field, seed, kind, language := c.active.field, c.active.seed, c.active.kind, c.language
	c.mu.Unlock()

	logging.LogSuggestionRequest(field, language, len(seed))
	text, err := c.provider.Suggest(ctx, seed, kind, language)
	logging.LogSuggestionResult(field, err)

	c.mu.Lock()
	defer c.mu.Unlock()

	// The session may have been discarded or replaced while the request was
	// pending; a stale response must not touch the new session.
	if c.gen != gen || c.active == nil || c.active.status != StatusGenerating {
		return nil
	}

	if err != nil {
		c.active.status = StatusError
		c.active.errMsg = UserMessage(err)
		return err
	}

	c.active.status = StatusReady
	c.active.text = text
	return nil
}

// Edit overwrites the suggestion text without another provider call. Legal
// only while the session is ready.
func (c *Controller) Edit(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return &WorkflowError{Kind: ErrKindNoSession, Message: "no suggestion session open"}
	}
	if c.active.status != StatusReady {
		return &WorkflowError{
			Kind:    ErrKindIllegalTransition,
			Message: fmt.Sprintf("cannot edit from %s", c.active.status),
		}
	}

	c.active.text = text
	return nil
}

// Accept writes the (possibly edited) suggestion into the form session under
// the target field - the same path as a manual edit, so it persists - and
// closes the session. Legal only while the session is ready.
func (c *Controller) Accept() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return &WorkflowError{Kind: ErrKindNoSession, Message: "no suggestion session open"}
	}
	if c.active.status != StatusReady {
		return &WorkflowError{
			Kind:    ErrKindIllegalTransition,
			Message: fmt.Sprintf("cannot accept from %s", c.active.status),
		}
	}

	if err := c.record.SubmitField(c.active.field, c.active.text); err != nil {
		return err
	}

	c.closeLocked()
	return nil
}

// Discard closes the session without touching the record.
func (c *Controller) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// Close is an alias for Discard: the workflow returns to idle and the record
// is untouched.
func (c *Controller) Close() {
	c.Discard()
}

// closeLocked resets to idle. Must be called with c.mu held.
func (c *Controller) closeLocked() {
	c.active = nil
	c.gen++
}

// Status returns the state of the active session, or idle when none is open.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return StatusIdle
	}
	return c.active.status
}

// ActiveField returns the field the open session targets, or "".
func (c *Controller) ActiveField() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return ""
	}
	return c.active.field
}

// Seed returns the prompt seed of the open session, or "".
func (c *Controller) Seed() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return ""
	}
	return c.active.seed
}

// Suggestion returns the current (possibly edited) suggestion text.
func (c *Controller) Suggestion() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return ""
	}
	return c.active.text
}

// ErrorMessage returns the user-facing message of a failed generation, or "".
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return ""
	}
	return c.active.errMsg
}
