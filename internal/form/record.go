package form

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field names for the application record. These are also the JSON keys in the
// persisted blob, so they must stay stable across releases.
const (
	// Step 1: Personal Details
	FieldFullName    = "fullName"
	FieldDateOfBirth = "dateOfBirth"
	FieldAddress     = "address"
	FieldNationalID  = "nationalId"
	FieldPhoneNumber = "phoneNumber"
	FieldEmail       = "email"

	// Step 2: Financial Information
	FieldEmploymentStatus = "employmentStatus"
	FieldMonthlyIncome    = "monthlyIncome"
	FieldDependents       = "dependents"

	// Step 3: Assistance Details
	FieldFinancialHardship = "financialHardship"
	FieldAssistanceNeeded  = "assistanceNeeded"
	FieldAdditionalInfo    = "additionalInfo"
)

// Step identifies one of the three fixed sections of the application.
type Step int

const (
	StepPersonal   Step = 1
	StepFinancial  Step = 2
	StepAssistance Step = 3
)

// FirstStep and LastStep bound the wizard's step range.
const (
	FirstStep = StepPersonal
	LastStep  = StepAssistance
)

// stepFields holds group membership and intra-group field order. Both are
// fixed constants of the application, not runtime configuration.
var stepFields = map[Step][]string{
	StepPersonal: {
		FieldFullName,
		FieldDateOfBirth,
		FieldAddress,
		FieldNationalID,
		FieldPhoneNumber,
		FieldEmail,
	},
	StepFinancial: {
		FieldEmploymentStatus,
		FieldMonthlyIncome,
		FieldDependents,
	},
	StepAssistance: {
		FieldFinancialHardship,
		FieldAssistanceNeeded,
		FieldAdditionalInfo,
	},
}

// Valid reports whether s is one of the three defined steps.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Fields returns the ordered field names belonging to this step.
// The returned slice is a copy; callers may mutate it freely.
func (s Step) Fields() []string {
	fields := stepFields[s]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Contains reports whether the named field belongs to this step's schema.
func (s Step) Contains(field string) bool {
	for _, f := range stepFields[s] {
		if f == field {
			return true
		}
	}
	return false
}

// String returns a human-readable name for the step.
func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "Personal Details"
	case StepFinancial:
		return "Financial Information"
	case StepAssistance:
		return "Assistance Details"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// AllFields returns every record field in step order.
func AllFields() []string {
	var out []string
	for s := FirstStep; s <= LastStep; s++ {
		out = append(out, stepFields[s]...)
	}
	return out
}

// StepForField returns the step whose schema contains the named field.
// The second return value is false for unknown fields.
func StepForField(field string) (Step, bool) {
	for s := FirstStep; s <= LastStep; s++ {
		if s.Contains(field) {
			return s, true
		}
	}
	return 0, false
}

// Record is the complete application in progress: a mapping from field name
// to string value. All known field keys are always present.
type Record map[string]string

// NewRecord creates a record with every field present and empty.
func NewRecord() Record {
	r := make(Record, len(AllFields()))
	for _, f := range AllFields() {
		r[f] = ""
	}
	return r
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether every field of the record is blank.
func (r Record) IsEmpty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Marshal serializes the record as the JSON blob stored by the persistence
// layer.
func (r Record) Marshal() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}
	return string(data), nil
}

// ParseRecord parses a persisted blob and shallow-merges it over a fresh
// default record: unknown keys are ignored, missing keys keep their default
// empty value. A malformed blob is an error; callers treat that the same as
// "no saved data".
func ParseRecord(blob string) (Record, error) {
	var saved map[string]string
	if err := json.Unmarshal([]byte(blob), &saved); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	r := NewRecord()
	for k, v := range saved {
		if _, known := r[k]; known {
			r[k] = v
		}
	}
	return r, nil
}
