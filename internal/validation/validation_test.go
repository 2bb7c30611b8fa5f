package validation

import (
	"testing"

	"github.com/muurk/sanad/internal/form"
)

func TestValidateFieldRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		kind    ErrorKind
	}{
		{"filled name", form.FieldFullName, "Jane Doe", false, 0},
		{"empty name", form.FieldFullName, "", true, ErrKindRequired},
		{"whitespace name", form.FieldFullName, "   ", true, ErrKindRequired},
		{"empty optional", form.FieldAdditionalInfo, "", false, 0},
		{"filled optional", form.FieldAdditionalInfo, "extra context", false, 0},
		{"empty hardship", form.FieldFinancialHardship, "", true, ErrKindRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateField(%q, %q) = %v, wantErr %v", tt.field, tt.value, err, tt.wantErr)
			}
			if err != nil && err.Kind != tt.kind {
				t.Errorf("error kind = %v, want %v", err.Kind, tt.kind)
			}
		})
	}
}

func TestValidateFieldEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		kind    ErrorKind
	}{
		{"valid", "jane@example.com", false, 0},
		{"valid with subdomain", "jane@mail.example.co.uk", false, 0},
		{"missing at", "janeexample.com", true, ErrKindFormat},
		{"missing domain", "jane@", true, ErrKindFormat},
		{"empty", "", true, ErrKindRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(form.FieldEmail, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateField(email, %q) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				if err.Kind != tt.kind {
					t.Errorf("error kind = %v, want %v", err.Kind, tt.kind)
				}
				wantKey := MsgRequired
				if tt.kind == ErrKindFormat {
					wantKey = MsgInvalidEmail
				}
				if err.MessageKey != wantKey {
					t.Errorf("message key = %q, want %q", err.MessageKey, wantKey)
				}
			}
		})
	}
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name      string
		step      form.Step
		fields    map[string]string
		wantCount int
	}{
		{
			name: "step 1 complete",
			step: form.StepPersonal,
			fields: map[string]string{
				form.FieldFullName:    "Jane Doe",
				form.FieldDateOfBirth: "1990-01-01",
				form.FieldAddress:     "1 Main St",
				form.FieldNationalID:  "X123",
				form.FieldPhoneNumber: "555-0100",
				form.FieldEmail:       "jane@example.com",
			},
			wantCount: 0,
		},
		{
			name:      "step 1 all empty",
			step:      form.StepPersonal,
			fields:    map[string]string{},
			wantCount: 6,
		},
		{
			name: "step 1 bad email only",
			step: form.StepPersonal,
			fields: map[string]string{
				form.FieldFullName:    "Jane Doe",
				form.FieldDateOfBirth: "1990-01-01",
				form.FieldAddress:     "1 Main St",
				form.FieldNationalID:  "X123",
				form.FieldPhoneNumber: "555-0100",
				form.FieldEmail:       "not-an-email",
			},
			wantCount: 1,
		},
		{
			name: "step 2 complete",
			step: form.StepFinancial,
			fields: map[string]string{
				form.FieldEmploymentStatus: "unemployed",
				form.FieldMonthlyIncome:    "0",
				form.FieldDependents:       "2",
			},
			wantCount: 0,
		},
		{
			name:      "step 2 all empty",
			step:      form.StepFinancial,
			fields:    map[string]string{},
			wantCount: 3,
		},
		{
			name: "step 3 optional field may be empty",
			step: form.StepAssistance,
			fields: map[string]string{
				form.FieldFinancialHardship: "No income since March.",
				form.FieldAssistanceNeeded:  "Help with rent.",
			},
			wantCount: 0,
		},
		{
			name:      "step 3 required fields empty",
			step:      form.StepAssistance,
			fields:    map[string]string{form.FieldAdditionalInfo: "only the optional one"},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStep(tt.step, tt.fields)
			if len(errs) != tt.wantCount {
				t.Errorf("ValidateStep() returned %d errors, want %d: %v", len(errs), tt.wantCount, errs)
			}
			for _, err := range errs {
				if !IsFieldError(err) {
					t.Errorf("expected FieldError, got %T", err)
				}
			}
		})
	}
}

func TestErrorsByField(t *testing.T) {
	errs := ValidateStep(form.StepAssistance, map[string]string{})
	byField := ErrorsByField(errs)

	if len(byField) != 2 {
		t.Fatalf("ErrorsByField() has %d entries, want 2", len(byField))
	}
	if byField[form.FieldFinancialHardship] != MsgRequired {
		t.Errorf("financialHardship message = %q, want %q",
			byField[form.FieldFinancialHardship], MsgRequired)
	}
	if _, ok := byField[form.FieldAdditionalInfo]; ok {
		t.Error("optional field reported an error")
	}
}
