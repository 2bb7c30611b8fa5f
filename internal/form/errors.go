package form

import "fmt"

// Error types for session transitions

// StateErrorKind categorizes why a transition was rejected.
type StateErrorKind int

const (
	// ErrKindWrongStep indicates a step submission for a step other than
	// the current one.
	ErrKindWrongStep StateErrorKind = iota
	// ErrKindFirstStep indicates GoBack was called on the first step.
	ErrKindFirstStep
	// ErrKindNotLastStep indicates final submission from a non-terminal step.
	ErrKindNotLastStep
	// ErrKindSubmitInProgress indicates a final submission while one is
	// already running.
	ErrKindSubmitInProgress
	// ErrKindUnknownField indicates a field name outside the record schema.
	ErrKindUnknownField
	// ErrKindClosed indicates an operation on a closed session.
	ErrKindClosed
)

// String returns a human-readable name for the error kind
func (k StateErrorKind) String() string {
	switch k {
	case ErrKindWrongStep:
		return "Wrong Step"
	case ErrKindFirstStep:
		return "First Step"
	case ErrKindNotLastStep:
		return "Not Last Step"
	case ErrKindSubmitInProgress:
		return "Submit In Progress"
	case ErrKindUnknownField:
		return "Unknown Field"
	case ErrKindClosed:
		return "Session Closed"
	default:
		return fmt.Sprintf("StateErrorKind(%d)", k)
	}
}

// StateError reports an illegal session transition. The session state is
// guaranteed unchanged when a StateError is returned.
type StateError struct {
	Kind    StateErrorKind
	Message string
}

// Error implements the error interface
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newStateError(kind StateErrorKind, format string, args ...any) *StateError {
	return &StateError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsStateError checks if an error is a session transition error
func IsStateError(err error) bool {
	_, ok := err.(*StateError)
	return ok
}

// StateErrorOfKind checks if an error is a session transition error of the
// given kind
func StateErrorOfKind(err error, kind StateErrorKind) bool {
	se, ok := err.(*StateError)
	return ok && se.Kind == kind
}
