package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner shown above every wizard screen. It carries the
// application title and subtitle inside a rounded border.
type Header struct {
	Title    string // e.g., "Social Support Application"
	Subtitle string // e.g., "Apply for financial assistance"
	Width    int    // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, subtitle string) *Header {
	return &Header{
		Title:    title,
		Subtitle: subtitle,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := TitleStyle.Render(h.Title)
	subtitleLine := SubtitleStyle.Render(h.Subtitle)

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, subtitleLine)
	return HeaderBorderStyle(width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// RenderStepProgress renders the three-step progress line, e.g.
//
//	✓ Personal Details   ● Financial Information   · Assistance Details
//
// current is 1-based; labels are already localized by the caller.
func RenderStepProgress(current int, labels []string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		step := i + 1
		switch {
		case step < current:
			parts = append(parts, StepCompleteStyle.Render(StepMarkerComplete+" "+label))
		case step == current:
			parts = append(parts, StepCurrentStyle.Render(StepMarkerCurrent+" "+label))
		default:
			parts = append(parts, StepPendingStyle.Render(StepMarkerPending+" "+label))
		}
	}
	return "  " + strings.Join(parts, "   ")
}
