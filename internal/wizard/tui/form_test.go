package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/muurk/sanad/internal/form"
	"github.com/muurk/sanad/internal/storage"
)

type noopSubmitter struct{}

func (noopSubmitter) Submit(ctx context.Context, _ form.Record) error { return nil }

func newTestSession(t *testing.T) *form.Session {
	t.Helper()
	s, err := form.NewSession(storage.NewMemStore(), noopSubmitter{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestBuildInputsMatchesStepSchema(t *testing.T) {
	record := form.NewRecord()
	record[form.FieldFullName] = "Jane Doe"

	inputs := buildInputs(form.StepPersonal, record)

	fields := form.StepPersonal.Fields()
	if len(inputs) != len(fields) {
		t.Fatalf("got %d inputs, want %d", len(inputs), len(fields))
	}
	for i, fi := range inputs {
		if fi.field != fields[i] {
			t.Errorf("input %d is %q, want %q", i, fi.field, fields[i])
		}
		if fi.kind != inputLine {
			t.Errorf("input %q should be single-line", fi.field)
		}
	}
	if got := inputs[0].Value(); got != "Jane Doe" {
		t.Errorf("fullName input seeded with %q, want Jane Doe", got)
	}
}

func TestBuildInputsAssistanceStepUsesTextareas(t *testing.T) {
	inputs := buildInputs(form.StepAssistance, form.NewRecord())

	if len(inputs) != 3 {
		t.Fatalf("got %d inputs, want 3", len(inputs))
	}
	for _, fi := range inputs {
		if fi.kind != inputArea {
			t.Errorf("input %q should be multi-line", fi.field)
		}
	}
}

func TestValidatePopulatesErrors(t *testing.T) {
	m := NewFormModel(newTestSession(t), "en")

	if m.Validate() {
		t.Fatal("empty personal step should not validate")
	}
	if _, ok := m.Errors[form.FieldFullName]; !ok {
		t.Error("expected a validation message for fullName")
	}

	for i := range m.Inputs {
		m.Inputs[i].SetValue("x")
	}
	for i := range m.Inputs {
		if m.Inputs[i].field == form.FieldEmail {
			m.Inputs[i].SetValue("not-an-email")
		}
	}
	if m.Validate() {
		t.Fatal("bad email should not validate")
	}
	if _, ok := m.Errors[form.FieldEmail]; !ok {
		t.Error("expected a validation message for email")
	}

	for i := range m.Inputs {
		if m.Inputs[i].field == form.FieldEmail {
			m.Inputs[i].SetValue("jane@example.com")
		}
	}
	if !m.Validate() {
		t.Fatalf("step should validate, got errors %v", m.Errors)
	}
	if len(m.Errors) != 0 {
		t.Errorf("expected errors cleared, got %v", m.Errors)
	}
}

func TestSuggestAvailableOnlyOnAssistanceStep(t *testing.T) {
	session := newTestSession(t)
	m := NewFormModel(session, "en")

	if m.SuggestAvailable() {
		t.Error("suggestions should not be offered on the personal step")
	}

	m.Step = form.StepAssistance
	m.Inputs = buildInputs(form.StepAssistance, form.NewRecord())
	m.Focus = 0
	if !m.SuggestAvailable() {
		t.Error("suggestions should be offered on the assistance step")
	}
}

func TestSyncFieldsWritesEditsToSession(t *testing.T) {
	session := newTestSession(t)
	m := NewFormModel(session, "en")

	for i := range m.Inputs {
		if m.Inputs[i].field == form.FieldFullName {
			m.Inputs[i].SetValue("Jane Doe")
		}
	}
	m.SyncFields()
	session.Flush()

	if got := session.Field(form.FieldFullName); got != "Jane Doe" {
		t.Errorf("session has fullName %q, want Jane Doe", got)
	}
}

func TestRenderProgressMarksCurrentStep(t *testing.T) {
	m := NewFormModel(newTestSession(t), "en")
	out := m.renderProgress()

	if !strings.Contains(out, "● Personal Details") {
		t.Error("current step should carry the current marker")
	}
	if !strings.Contains(out, "· Financial Information") {
		t.Error("future steps should carry the pending marker")
	}
}

func TestStepTitleKeysCoverAllSteps(t *testing.T) {
	for step := form.FirstStep; step <= form.LastStep; step++ {
		if _, ok := stepTitleKeys[step]; !ok {
			t.Errorf("no title key for step %d", step)
		}
	}
}
