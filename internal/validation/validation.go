// Package validation implements the per-step validation contract for the
// application form.
//
// Validation runs strictly before a step submission reaches the session state
// machine: any error blocks the submission entirely, so the session never
// sees a partial merge. Errors are field-scoped and carry a message key the
// UI localizes before display.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/muurk/sanad/internal/form"
)

// validate is the shared validator instance. Only format rules (email) go
// through it; presence checks are explicit so whitespace-only values fail.
var validate = validator.New()

// Message keys understood by the i18n layer.
const (
	MsgRequired     = "validation.required"
	MsgInvalidEmail = "validation.invalidEmail"
)

// ErrorKind distinguishes presence failures from format failures.
type ErrorKind int

const (
	// ErrKindRequired indicates a required field was empty.
	ErrKindRequired ErrorKind = iota
	// ErrKindFormat indicates a present value failed a format rule.
	ErrKindFormat
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindRequired:
		return "Required"
	case ErrKindFormat:
		return "Format"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// FieldError is a validation failure scoped to a single field.
type FieldError struct {
	Field      string
	Kind       ErrorKind
	MessageKey string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Kind, e.MessageKey)
}

// IsFieldError checks if an error is a field validation error
func IsFieldError(err error) bool {
	_, ok := err.(*FieldError)
	return ok
}

// optionalFields are record fields that may be left blank.
var optionalFields = map[string]bool{
	form.FieldAdditionalInfo: true,
}

// ValidateField validates a single field value against its rules.
// Returns nil when the value is acceptable.
func ValidateField(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		if optionalFields[field] {
			return nil
		}
		return &FieldError{Field: field, Kind: ErrKindRequired, MessageKey: MsgRequired}
	}

	if field == form.FieldEmail {
		if err := validate.Var(value, "email"); err != nil {
			return &FieldError{Field: field, Kind: ErrKindFormat, MessageKey: MsgInvalidEmail}
		}
	}

	return nil
}

// ValidateStep validates every field of the given step, reading values from
// fields (a missing key counts as empty). Errors come back in the step's
// field order. An empty slice means the step may be submitted.
func ValidateStep(step form.Step, fields map[string]string) []error {
	var errs []error
	for _, f := range step.Fields() {
		if ferr := ValidateField(f, fields[f]); ferr != nil {
			errs = append(errs, ferr)
		}
	}
	return errs
}

// ErrorsByField flattens a ValidateStep result into a field -> message-key
// map for display next to each input.
func ErrorsByField(errs []error) map[string]string {
	out := make(map[string]string, len(errs))
	for _, err := range errs {
		if ferr, ok := err.(*FieldError); ok {
			out[ferr.Field] = ferr.MessageKey
		}
	}
	return out
}
