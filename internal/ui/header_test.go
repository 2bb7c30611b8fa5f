package ui

import (
	"strings"
	"testing"
)

func TestHeaderRenderContainsTitleAndSubtitle(t *testing.T) {
	h := NewHeader("Social Support Application", "Apply for financial assistance").SetWidth(80)
	out := h.Render()

	if !strings.Contains(out, "Social Support Application") {
		t.Error("rendered header missing title")
	}
	if !strings.Contains(out, "Apply for financial assistance") {
		t.Error("rendered header missing subtitle")
	}
}

func TestRenderStepProgressMarkers(t *testing.T) {
	labels := []string{"Personal", "Financial", "Assistance"}
	out := RenderStepProgress(2, labels)

	if !strings.Contains(out, StepMarkerComplete+" Personal") {
		t.Error("completed step should use the complete marker")
	}
	if !strings.Contains(out, StepMarkerCurrent+" Financial") {
		t.Error("current step should use the current marker")
	}
	if !strings.Contains(out, StepMarkerPending+" Assistance") {
		t.Error("pending step should use the pending marker")
	}
}
