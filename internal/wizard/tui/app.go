package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sanad/internal/config"
	"github.com/muurk/sanad/internal/form"
	"github.com/muurk/sanad/internal/i18n"
	"github.com/muurk/sanad/internal/suggest"
	"github.com/muurk/sanad/internal/ui"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm       Screen = "form"
	ScreenSubmitting Screen = "submitting"
	ScreenSuccess    Screen = "success"
	ScreenFailure    Screen = "failure"
)

// submitResultMsg reports the outcome of the final submission
type submitResultMsg struct {
	err error
}

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	StartOver key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartOver, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartOver, k.Quit},
	}
}

// failureKeyMap defines key bindings for the failure screen
type failureKeyMap struct {
	Retry key.Binding
	Edit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k failureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k failureKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Retry, k.Edit, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Screen models
	FormModel       FormModel
	SuggestionModel SuggestionModel
	SuggestOpen     bool

	// Shared application state
	Session    *form.Session
	Controller *suggest.Controller
	Settings   *config.Settings
	ConfigPath string // where language changes are persisted; empty disables saving
	Language   string
	LastError  error

	// Submitting spinner
	Spinner spinner.Model

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	SuccessKeys successKeyMap
	FailureKeys failureKeyMap
}

// NewAppModel creates the wizard starting at the session's saved step
func NewAppModel(session *form.Session, controller *suggest.Controller, settings *config.Settings) AppModel {
	h := help.New()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	successKeys := successKeyMap{
		StartOver: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new application"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "enter"),
			key.WithHelp("q", "quit"),
		),
	}

	failureKeys := failureKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	// Seed the layout from the real terminal; WindowSizeMsg takes over once
	// the program is running.
	width, height := ui.GetTerminalSize()

	language := settings.Language
	model := AppModel{
		CurrentScreen:   ScreenForm,
		FormModel:       NewFormModel(session, language),
		SuggestionModel: NewSuggestionModel(controller, language),
		Session:         session,
		Controller:      controller,
		Settings:        settings,
		Language:        language,
		Spinner:         s,
		Width:           width,
		Height:          height,
		Help:            h,
		SuccessKeys:     successKeys,
		FailureKeys:     failureKeys,
	}
	model.FormModel.SetSize(width, height)
	model.SuggestionModel.SetSize(width, height)
	return model
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.FormModel.SetSize(msg.Width, msg.Height)
		m.SuggestionModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			m.Session.Flush()
			return m, tea.Quit
		}

	case submitResultMsg:
		if msg.err != nil {
			m.LastError = msg.err
			m.CurrentScreen = ScreenFailure
			return m, nil
		}
		m.LastError = nil
		m.CurrentScreen = ScreenSuccess
		return m, nil
	}

	// The suggestion dialog swallows input while open
	if m.SuggestOpen {
		return m.updateSuggestion(msg)
	}

	switch m.CurrentScreen {
	case ScreenForm:
		return m.updateFormScreen(msg)
	case ScreenSubmitting:
		if tick, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(tick)
			return m, cmd
		}
		return m, nil
	case ScreenSuccess:
		return m.handleSuccessScreen(msg)
	case ScreenFailure:
		return m.handleFailureScreen(msg)
	}

	return m, nil
}

// updateSuggestion routes messages to the suggestion dialog
func (m AppModel) updateSuggestion(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd, done := m.SuggestionModel.Update(msg)
	m.SuggestionModel = updated
	if done {
		m.SuggestOpen = false
	}
	return m, cmd
}

// updateFormScreen handles navigation keys, then forwards input to the form
func (m AppModel) updateFormScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(suggestionAcceptedMsg); ok {
		// An accepted suggestion was written to the session; refresh the
		// inputs so the step shows it.
		cmd := m.FormModel.Reload()
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		keys := m.FormModel.Keys
		switch {
		case key.Matches(keyMsg, keys.NextStep):
			return m.advanceStep()

		case key.Matches(keyMsg, keys.Back):
			return m.goBackStep()

		case key.Matches(keyMsg, keys.Submit):
			return m.beginSubmit()

		case key.Matches(keyMsg, keys.Suggest):
			if m.FormModel.SuggestAvailable() {
				m.FormModel.SyncFields()
				m.SuggestOpen = true
				cmd := m.SuggestionModel.Open(m.FormModel.FocusedField())
				return m, cmd
			}
			return m, nil

		case key.Matches(keyMsg, keys.Language):
			return m.toggleLanguage()
		}
	}

	updated, cmd := m.FormModel.Update(msg)
	m.FormModel = updated
	return m, cmd
}

// advanceStep validates the current step and moves to the next one
func (m AppModel) advanceStep() (tea.Model, tea.Cmd) {
	if m.FormModel.Step == form.LastStep {
		return m.beginSubmit()
	}
	if !m.FormModel.Validate() {
		cmd := m.FormModel.focusFirstError()
		return m, cmd
	}
	if err := m.Session.SubmitStep(m.FormModel.Step, m.FormModel.Values()); err != nil {
		m.LastError = err
		return m, nil
	}
	cmd := m.FormModel.Reload()
	return m, cmd
}

// goBackStep saves typed text and returns to the previous step
func (m AppModel) goBackStep() (tea.Model, tea.Cmd) {
	m.FormModel.SyncFields()
	if err := m.Session.GoBack(); err != nil {
		// Already on the first step
		return m, nil
	}
	cmd := m.FormModel.Reload()
	return m, cmd
}

// beginSubmit validates the final step and starts the submission
func (m AppModel) beginSubmit() (tea.Model, tea.Cmd) {
	if m.FormModel.Step != form.LastStep {
		return m, nil
	}
	if !m.FormModel.Validate() {
		cmd := m.FormModel.focusFirstError()
		return m, cmd
	}
	if err := m.Session.SubmitStep(form.LastStep, m.FormModel.Values()); err != nil {
		m.LastError = err
		return m, nil
	}

	m.CurrentScreen = ScreenSubmitting
	return m, tea.Batch(m.Spinner.Tick, m.submitCmd())
}

// submitCmd runs the blocking submission off the event loop
func (m AppModel) submitCmd() tea.Cmd {
	session := m.Session
	return func() tea.Msg {
		return submitResultMsg{err: session.FinalSubmit(context.Background())}
	}
}

// toggleLanguage flips between English and Arabic and persists the choice
func (m AppModel) toggleLanguage() (tea.Model, tea.Cmd) {
	m.FormModel.SyncFields()
	m.Language = i18n.Toggle(m.Language)
	m.Controller.SetLanguage(m.Language)
	m.FormModel.Language = m.Language
	m.SuggestionModel.Language = m.Language

	m.Settings.Language = m.Language
	if m.ConfigPath != "" {
		// Best effort; the in-memory choice still applies
		m.Settings.Save(m.ConfigPath)
	}
	cmd := m.FormModel.Reload()
	return m, cmd
}

// handleSuccessScreen handles user input on the success screen
func (m AppModel) handleSuccessScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.SuccessKeys.StartOver):
			m.Session.Reset()
			m.CurrentScreen = ScreenForm
			cmd := m.FormModel.Reload()
			return m, cmd

		case key.Matches(keyMsg, m.SuccessKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleFailureScreen handles user input on the failure screen
func (m AppModel) handleFailureScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.FailureKeys.Retry):
			m.CurrentScreen = ScreenSubmitting
			return m, tea.Batch(m.Spinner.Tick, m.submitCmd())

		case key.Matches(keyMsg, m.FailureKeys.Edit):
			m.CurrentScreen = ScreenForm
			cmd := m.FormModel.Reload()
			return m, cmd

		case key.Matches(keyMsg, m.FailureKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current screen inside the shared application container
func (m AppModel) View() string {
	if m.SuggestOpen {
		return RenderModal(m.SuggestionModel.View(), m.Width, m.Height)
	}

	switch m.CurrentScreen {
	case ScreenForm:
		helpText := m.Help.View(m.FormModel.Keys)
		return RenderApplicationContainer(m.FormModel.View(), helpText, m.Width, m.Height)
	case ScreenSubmitting:
		content := m.Spinner.View() + " " + i18n.T(m.Language, "submit.inProgress")
		return RenderApplicationContainer(content, "", m.Width, m.Height)
	case ScreenSuccess:
		return m.renderSuccessScreen()
	case ScreenFailure:
		return m.renderFailureScreen()
	default:
		return "Unknown screen"
	}
}

// renderSuccessScreen renders the submitted screen
func (m AppModel) renderSuccessScreen() string {
	var b strings.Builder
	b.WriteString(SuccessBoxStyle.Render("✓ " + i18n.T(m.Language, "success.applicationSubmitted")))
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("n: " + i18n.T(m.Language, "buttons.startOver") +
		"  q: " + i18n.T(m.Language, "buttons.quit")))

	helpText := m.Help.View(m.SuccessKeys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}

// renderFailureScreen renders the failed-submission screen
func (m AppModel) renderFailureScreen() string {
	var b strings.Builder
	b.WriteString(ErrorBoxStyle.Render("✗ " + i18n.T(m.Language, "error.submissionFailed")))
	b.WriteString("\n\n")
	if m.LastError != nil {
		b.WriteString(FieldErrorStyle.Render(m.LastError.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(HelpStyle.Render("r: " + i18n.T(m.Language, "buttons.retry") +
		"  e: " + i18n.T(m.Language, "buttons.back") +
		"  q: " + i18n.T(m.Language, "buttons.quit")))

	helpText := m.Help.View(m.FailureKeys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}
