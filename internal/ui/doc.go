// Package ui provides shared terminal UI building blocks for the sanad
// wizard.
//
// This package uses Lipgloss to render the application header, the step
// progress line, and the styled boxes the wizard screens are composed of.
// The interactive flow itself lives in internal/wizard/tui; ui holds only
// the stateless rendering pieces so styling stays consistent across
// screens.
//
// # Components
//
//   - Header: application banner with title and subtitle
//   - RenderStepProgress: the three-step progress line
//   - Styles and box helpers used by every screen
//
// # Logging Integration
//
// This package expects logging to be controlled via the SANAD_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent,
// allowing the curated UI output to be displayed cleanly.
package ui
