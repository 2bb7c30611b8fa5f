// Package tui implements the terminal user interface for the sanad
// application wizard.
//
// This package provides an interactive, full-screen TUI for filling in and
// submitting a social support application. Built using the Bubble Tea
// framework, it follows the Elm architecture with immutable state updates
// and a clean Model-Update-View pattern.
//
// # Architecture
//
// The TUI is organized into four screens coordinated by AppModel:
//   - Form: one screen per wizard step, with inline validation
//   - Submitting: spinner while the application is sent
//   - Success/Failure: display the submission result
//
// All screens use a unified container pattern (RenderApplicationContainer)
// for consistent layout with header, content area, and context-sensitive
// footer. The suggestion dialog renders as a centered modal over the form.
//
// # Framework Components
//
// The TUI leverages Bubble Tea framework components throughout:
//   - bubbles/textinput: short answer fields on steps one and two
//   - bubbles/textarea: narrative answers on the assistance step and the
//     suggestion editor
//   - bubbles/spinner: generation and submission progress
//   - bubbles/help + bubbles/key: context-aware key hints
//   - lipgloss: styling and layout
//
// # Screen Flow
//
//  1. Form screens: the wizard resumes at the saved step, fields are
//     pre-filled from the saved record. Ctrl+N advances (after validation),
//     Ctrl+B goes back, typed text survives navigation.
//  2. On the assistance step, Ctrl+G opens the assisted-writing dialog for
//     the focused field. The dialog is a view over suggest.Controller:
//     generate, edit inline, then accept (Ctrl+Y) or discard (Esc).
//  3. Ctrl+S on the last step validates and submits. Success clears the
//     saved draft; failure keeps everything so the user can retry.
//
// Ctrl+L flips the interface between English and Arabic at any point; the
// choice is persisted to the config file and carried into suggestion
// prompts.
//
// # State Management
//
// Form state lives in form.Session and suggestion state in
// suggest.Controller; the models here hold only view state (focus, input
// components, terminal size). Blocking work (the provider call, the
// submission) runs in commands off the event loop and reports back via
// messages.
package tui
