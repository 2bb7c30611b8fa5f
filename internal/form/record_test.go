package form

import (
	"testing"
)

func TestNewRecordHasAllFields(t *testing.T) {
	r := NewRecord()

	if len(r) != 12 {
		t.Errorf("NewRecord() has %d fields, want 12", len(r))
	}
	for _, f := range AllFields() {
		v, ok := r[f]
		if !ok {
			t.Errorf("NewRecord() missing field %q", f)
		}
		if v != "" {
			t.Errorf("NewRecord()[%q] = %q, want empty", f, v)
		}
	}
}

func TestStepFields(t *testing.T) {
	tests := []struct {
		step  Step
		count int
		first string
	}{
		{StepPersonal, 6, FieldFullName},
		{StepFinancial, 3, FieldEmploymentStatus},
		{StepAssistance, 3, FieldFinancialHardship},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			fields := tt.step.Fields()
			if len(fields) != tt.count {
				t.Errorf("%v.Fields() has %d fields, want %d", tt.step, len(fields), tt.count)
			}
			if fields[0] != tt.first {
				t.Errorf("%v.Fields()[0] = %q, want %q", tt.step, fields[0], tt.first)
			}
		})
	}
}

func TestStepContains(t *testing.T) {
	if !StepPersonal.Contains(FieldEmail) {
		t.Error("StepPersonal should contain email")
	}
	if StepPersonal.Contains(FieldMonthlyIncome) {
		t.Error("StepPersonal should not contain monthlyIncome")
	}
	if StepAssistance.Contains("nonexistent") {
		t.Error("Contains() accepted an unknown field")
	}
}

func TestStepForField(t *testing.T) {
	step, ok := StepForField(FieldDependents)
	if !ok || step != StepFinancial {
		t.Errorf("StepForField(dependents) = %v, %v, want StepFinancial, true", step, ok)
	}

	if _, ok := StepForField("bogus"); ok {
		t.Error("StepForField() resolved an unknown field")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := NewRecord()
	r[FieldFullName] = "Jane Doe"
	r[FieldEmail] = "jane@example.com"
	r[FieldFinancialHardship] = "Lost my job in March."

	blob, err := r.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	restored, err := ParseRecord(blob)
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}

	if len(restored) != len(r) {
		t.Fatalf("round trip changed field count: got %d, want %d", len(restored), len(r))
	}
	for k, want := range r {
		if restored[k] != want {
			t.Errorf("restored[%q] = %q, want %q", k, restored[k], want)
		}
	}
}

func TestParseRecordIgnoresUnknownKeys(t *testing.T) {
	blob := `{"fullName":"Jane","legacyField":"x","email":"jane@example.com"}`

	r, err := ParseRecord(blob)
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}

	if _, ok := r["legacyField"]; ok {
		t.Error("unknown key survived ParseRecord()")
	}
	if r[FieldFullName] != "Jane" {
		t.Errorf("fullName = %q, want %q", r[FieldFullName], "Jane")
	}
	// Missing keys keep their defaults
	if v, ok := r[FieldMonthlyIncome]; !ok || v != "" {
		t.Errorf("monthlyIncome = %q, %v, want present and empty", v, ok)
	}
}

func TestParseRecordMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "garbage"},
		{"wrong shape", `[1,2,3]`},
		{"truncated", `{"fullName":"Ja`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord(tt.blob); err == nil {
				t.Errorf("ParseRecord(%q) accepted malformed blob", tt.blob)
			}
		})
	}
}

func TestRecordCloneIsIndependent(t *testing.T) {
	r := NewRecord()
	r[FieldFullName] = "Jane"

	c := r.Clone()
	c[FieldFullName] = "Ahmed"

	if r[FieldFullName] != "Jane" {
		t.Error("mutating clone changed the original")
	}
}

func TestRecordIsEmpty(t *testing.T) {
	r := NewRecord()
	if !r.IsEmpty() {
		t.Error("fresh record should be empty")
	}

	r[FieldAddress] = "   "
	if !r.IsEmpty() {
		t.Error("whitespace-only values should count as empty")
	}

	r[FieldAddress] = "1 Main St"
	if r.IsEmpty() {
		t.Error("record with a value should not be empty")
	}
}
