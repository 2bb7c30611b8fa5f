package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sanad/internal/form"
	"github.com/muurk/sanad/internal/i18n"
	"github.com/muurk/sanad/internal/ui"
	"github.com/muurk/sanad/internal/validation"
)

// inputKind distinguishes single-line inputs from multi-line ones
type inputKind int

const (
	inputLine inputKind = iota
	inputArea
)

// fieldInput pairs a record field name with the bubbles component editing it.
// Short fields use textinput, the free-text assistance fields use textarea.
type fieldInput struct {
	field string
	kind  inputKind
	line  textinput.Model
	area  textarea.Model
}

// Value returns the current text of the input
func (fi *fieldInput) Value() string {
	if fi.kind == inputArea {
		return fi.area.Value()
	}
	return fi.line.Value()
}

// SetValue replaces the text of the input
func (fi *fieldInput) SetValue(v string) {
	if fi.kind == inputArea {
		fi.area.SetValue(v)
	} else {
		fi.line.SetValue(v)
	}
}

// Focus gives the input keyboard focus
func (fi *fieldInput) Focus() tea.Cmd {
	if fi.kind == inputArea {
		return fi.area.Focus()
	}
	return fi.line.Focus()
}

// Blur removes keyboard focus
func (fi *fieldInput) Blur() {
	if fi.kind == inputArea {
		fi.area.Blur()
	} else {
		fi.line.Blur()
	}
}

// Update forwards a message to the underlying component
func (fi *fieldInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if fi.kind == inputArea {
		fi.area, cmd = fi.area.Update(msg)
	} else {
		fi.line, cmd = fi.line.Update(msg)
	}
	return cmd
}

// SetWidth resizes the input to the available content width
func (fi *fieldInput) SetWidth(width int) {
	if fi.kind == inputArea {
		fi.area.SetWidth(width)
	} else {
		fi.line.Width = width
	}
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	NextStep  key.Binding
	Back      key.Binding
	Submit    key.Binding
	Suggest   key.Binding
	Language  key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextStep, k.Back, k.Submit, k.Suggest, k.Language, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.NextStep, k.Back},
		{k.Submit, k.Suggest, k.Language, k.Quit},
	}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help me write"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "EN/AR"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FormModel renders one step of the application form: the progress line, the
// step's inputs with inline validation messages, and the key hints.
type FormModel struct {
	Session  *form.Session
	Language string

	Step   form.Step
	Inputs []fieldInput
	Focus  int
	Errors map[string]string

	Width  int
	Height int
	Keys   formKeyMap
}

// NewFormModel builds the form screen for the session's current step, with
// inputs seeded from the saved record.
func NewFormModel(session *form.Session, language string) FormModel {
	m := FormModel{
		Session:  session,
		Language: language,
		Keys:     newFormKeyMap(),
		Errors:   map[string]string{},
	}
	m.Step = session.CurrentStep()
	m.Inputs = buildInputs(m.Step, session.Record())
	return m
}

// buildInputs creates one input per field of the step, seeded from the record
func buildInputs(step form.Step, record form.Record) []fieldInput {
	fields := step.Fields()
	inputs := make([]fieldInput, 0, len(fields))

	for _, field := range fields {
		fi := fieldInput{field: field, kind: kindForInput(step)}
		if fi.kind == inputArea {
			ta := textarea.New()
			ta.ShowLineNumbers = false
			ta.CharLimit = 2000
			ta.SetHeight(4)
			ta.SetValue(record[field])
			fi.area = ta
		} else {
			ti := textinput.New()
			ti.CharLimit = 200
			ti.SetValue(record[field])
			if field == form.FieldDateOfBirth {
				ti.Placeholder = "YYYY-MM-DD"
			}
			fi.line = ti
		}
		inputs = append(inputs, fi)
	}

	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return inputs
}

// The assistance step collects narrative answers; everything else is short
func kindForInput(step form.Step) inputKind {
	if step == form.StepAssistance {
		return inputArea
	}
	return inputLine
}

// Values collects the current input texts keyed by field name
func (m *FormModel) Values() map[string]string {
	values := make(map[string]string, len(m.Inputs))
	for i := range m.Inputs {
		values[m.Inputs[i].field] = m.Inputs[i].Value()
	}
	return values
}

// FocusedField returns the field name of the focused input, or ""
func (m *FormModel) FocusedField() string {
	if m.Focus < 0 || m.Focus >= len(m.Inputs) {
		return ""
	}
	return m.Inputs[m.Focus].field
}

// SuggestAvailable reports whether the focused field supports suggestions
func (m *FormModel) SuggestAvailable() bool {
	return m.Step == form.StepAssistance && m.FocusedField() != ""
}

// moveFocus shifts focus by delta, wrapping around the step's inputs
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	if len(m.Inputs) == 0 {
		return nil
	}
	m.Inputs[m.Focus].Blur()
	m.Focus = (m.Focus + delta + len(m.Inputs)) % len(m.Inputs)
	return m.Inputs[m.Focus].Focus()
}

// focusFirstError moves focus to the first field with a validation message
func (m *FormModel) focusFirstError() tea.Cmd {
	for i := range m.Inputs {
		if _, bad := m.Errors[m.Inputs[i].field]; bad {
			m.Inputs[m.Focus].Blur()
			m.Focus = i
			return m.Inputs[i].Focus()
		}
	}
	return nil
}

// Validate gates step advancement: it runs the step's validation rules over
// the current input texts and records per-field messages for the view.
// It returns true when the step may advance.
func (m *FormModel) Validate() bool {
	errs := validation.ValidateStep(m.Step, m.Values())
	m.Errors = validation.ErrorsByField(errs)
	return len(errs) == 0
}

// SyncFields writes every edited input back into the session so typed text
// survives navigation and seeds the suggestion dialog. Values are saved
// as-is; validation only gates step advancement.
func (m *FormModel) SyncFields() {
	record := m.Session.Record()
	for i := range m.Inputs {
		field, value := m.Inputs[i].field, m.Inputs[i].Value()
		if record[field] != value {
			m.Session.SubmitField(field, value)
		}
	}
}

// Reload rebuilds the inputs from the session after a step change or an
// accepted suggestion.
func (m *FormModel) Reload() tea.Cmd {
	m.Step = m.Session.CurrentStep()
	m.Inputs = buildInputs(m.Step, m.Session.Record())
	m.Focus = 0
	m.Errors = map[string]string{}
	m.applyWidth()
	if len(m.Inputs) > 0 {
		return textinput.Blink
	}
	return nil
}

// SetSize propagates the terminal size to the inputs
func (m *FormModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.applyWidth()
}

func (m *FormModel) applyWidth() {
	inputWidth := CalculateBoxWidth(m.Width) - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range m.Inputs {
		m.Inputs[i].SetWidth(inputWidth)
	}
}

// Update forwards keyboard input to the focused component. Navigation and
// step transitions are handled by the AppModel; this only edits text and
// moves focus between fields.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.NextField):
			cmd := m.moveFocus(1)
			return m, cmd
		case key.Matches(keyMsg, m.Keys.PrevField):
			cmd := m.moveFocus(-1)
			return m, cmd
		}

		// Up/down move between single-line fields; textareas keep them
		// for cursor movement.
		if len(m.Inputs) > 0 && m.Inputs[m.Focus].kind == inputLine {
			switch keyMsg.String() {
			case "down", "enter":
				cmd := m.moveFocus(1)
				return m, cmd
			case "up":
				cmd := m.moveFocus(-1)
				return m, cmd
			}
		}
	}

	if len(m.Inputs) == 0 {
		return m, nil
	}
	cmd := m.Inputs[m.Focus].Update(msg)
	return m, cmd
}

// stepTitleKeys maps each step to its localized title key
var stepTitleKeys = map[form.Step]string{
	form.StepPersonal:   "steps.personalDetails",
	form.StepFinancial:  "steps.financialInformation",
	form.StepAssistance: "steps.assistanceDetails",
}

// renderProgress renders the three-step progress line
func (m *FormModel) renderProgress() string {
	labels := make([]string, 0, int(form.LastStep))
	for step := form.FirstStep; step <= form.LastStep; step++ {
		labels = append(labels, i18n.T(m.Language, stepTitleKeys[step]))
	}
	return ui.RenderStepProgress(int(m.Step), labels)
}

// View renders the step content without the application container; the
// AppModel wraps it.
func (m FormModel) View() string {
	var b strings.Builder

	banner := ui.NewHeader(
		i18n.T(m.Language, "app.title"),
		i18n.T(m.Language, "app.subtitle"),
	).SetWidth(CalculateBoxWidth(m.Width)).Render()
	b.WriteString(banner)
	b.WriteString("\n")

	b.WriteString(m.renderProgress())
	b.WriteString("\n")

	title := fmt.Sprintf("%s  (%d/%d)",
		i18n.T(m.Language, stepTitleKeys[m.Step]), int(m.Step), int(form.LastStep))
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	for i := range m.Inputs {
		fi := &m.Inputs[i]
		label := i18n.T(m.Language, "form."+fi.field)

		if i == m.Focus {
			b.WriteString(FocusedLabelStyle.Render("▸ " + label))
		} else {
			b.WriteString(LabelStyle.Render("  " + label))
		}
		b.WriteString("\n")

		if fi.kind == inputArea {
			b.WriteString(fi.area.View())
		} else {
			b.WriteString(fi.line.View())
		}
		b.WriteString("\n")

		if msg, bad := m.Errors[fi.field]; bad {
			b.WriteString(FieldErrorStyle.Render("  ✗ " + i18n.T(m.Language, msg)))
			b.WriteString("\n")
		}
	}

	if m.SuggestAvailable() {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("ctrl+g: " + i18n.T(m.Language, "buttons.helpMeWrite")))
	}

	return b.String()
}
