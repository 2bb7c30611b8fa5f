package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sanad/internal/i18n"
	"github.com/muurk/sanad/internal/suggest"
)

// suggestionFinishedMsg reports that a generation request completed. The
// dialog re-reads the controller for the outcome; a request whose session
// was discarded mid-flight has already been dropped by the controller.
type suggestionFinishedMsg struct {
	err error
}

// suggestionAcceptedMsg tells the form screen to reload the accepted text
type suggestionAcceptedMsg struct {
	field string
}

// suggestionKeyMap defines key bindings for the suggestion dialog
type suggestionKeyMap struct {
	Accept  key.Binding
	Retry   key.Binding
	Discard key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k suggestionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Retry, k.Discard}
}

// FullHelp returns keybindings for the expanded help view
func (k suggestionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.Retry, k.Discard},
	}
}

func newSuggestionKeyMap() suggestionKeyMap {
	return suggestionKeyMap{
		Accept: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "accept"),
		),
		Retry: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "retry"),
		),
		Discard: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard"),
		),
	}
}

// SuggestionModel is the modal dialog for the assisted-writing workflow. It
// is a thin view over suggest.Controller: the controller owns the state
// machine, the dialog owns the spinner and the editing textarea.
type SuggestionModel struct {
	Controller *suggest.Controller
	Language   string

	Editor  textarea.Model
	Spinner spinner.Model
	Keys    suggestionKeyMap

	Width  int
	Height int
}

// NewSuggestionModel creates the dialog shell; Open starts a session
func NewSuggestionModel(controller *suggest.Controller, language string) SuggestionModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(6)

	return SuggestionModel{
		Controller: controller,
		Language:   language,
		Editor:     ta,
		Spinner:    s,
		Keys:       newSuggestionKeyMap(),
	}
}

// Open starts a suggestion session for the field and fires the generation
// request. The returned command keeps the spinner ticking while the request
// is in flight.
func (m *SuggestionModel) Open(field string) tea.Cmd {
	m.Controller.Open(field)
	m.Editor.SetValue("")
	m.Editor.Blur()
	return tea.Batch(m.Spinner.Tick, m.generateCmd())
}

// generateCmd runs the blocking provider call off the event loop
func (m *SuggestionModel) generateCmd() tea.Cmd {
	c := m.Controller
	return func() tea.Msg {
		err := c.Generate(context.Background())
		return suggestionFinishedMsg{err: err}
	}
}

// SetSize propagates the terminal size to the dialog
func (m *SuggestionModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height

	editorWidth := CalculateBoxWidth(width) - 12
	if editorWidth < 30 {
		editorWidth = 30
	}
	m.Editor.SetWidth(editorWidth)
}

// Update drives the dialog. It returns done=true when the dialog closed,
// either by accepting or discarding.
func (m SuggestionModel) Update(msg tea.Msg) (SuggestionModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.Controller.Status() == suggest.StatusGenerating {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			return m, cmd, false
		}
		return m, nil, false

	case suggestionFinishedMsg:
		if m.Controller.Status() == suggest.StatusReady {
			m.Editor.SetValue(m.Controller.Suggestion())
			cmd := m.Editor.Focus()
			return m, cmd, false
		}
		// Error state renders the controller's message; a stale result
		// after a discard leaves the controller idle and there is
		// nothing to show.
		return m, nil, false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Discard):
			m.Controller.Discard()
			m.Editor.Blur()
			return m, nil, true

		case key.Matches(msg, m.Keys.Accept):
			if m.Controller.Status() != suggest.StatusReady {
				return m, nil, false
			}
			field := m.Controller.ActiveField()
			if err := m.Controller.Edit(m.Editor.Value()); err != nil {
				return m, nil, false
			}
			if err := m.Controller.Accept(); err != nil {
				return m, nil, false
			}
			m.Editor.Blur()
			return m, func() tea.Msg { return suggestionAcceptedMsg{field: field} }, true

		case key.Matches(msg, m.Keys.Retry):
			if m.Controller.Status() != suggest.StatusError {
				return m, nil, false
			}
			// Re-open the session so generation starts from idle with
			// a fresh seed.
			cmd := m.Open(m.Controller.ActiveField())
			return m, cmd, false
		}
	}

	// Everything else edits the suggestion text while ready
	if m.Controller.Status() == suggest.StatusReady {
		var cmd tea.Cmd
		m.Editor, cmd = m.Editor.Update(msg)
		return m, cmd, false
	}
	return m, nil, false
}

// View renders the dialog box for the current controller state
func (m SuggestionModel) View() string {
	var b strings.Builder

	b.WriteString(SpinnerStyle.Render(i18n.T(m.Language, "ai.suggestedText")))
	b.WriteString("\n\n")

	switch m.Controller.Status() {
	case suggest.StatusGenerating:
		b.WriteString(m.Spinner.View())
		b.WriteString(" ")
		b.WriteString(i18n.T(m.Language, "ai.generating"))

	case suggest.StatusReady:
		b.WriteString(m.Editor.View())
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render(i18n.T(m.Language, "ai.editHint")))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(
			"ctrl+y: " + i18n.T(m.Language, "buttons.accept") +
				"  esc: " + i18n.T(m.Language, "buttons.discard")))

	case suggest.StatusError:
		b.WriteString(FieldErrorStyle.Render("✗ " + m.Controller.ErrorMessage()))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render(
			"ctrl+r: " + i18n.T(m.Language, "buttons.retry") +
				"  esc: " + i18n.T(m.Language, "buttons.discard")))

	default:
		b.WriteString(i18n.T(m.Language, "ai.generating"))
	}

	return SuggestionBoxStyle.Render(b.String())
}
