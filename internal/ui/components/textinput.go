package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/ui/theme"
)

// Feedback is the mark shown next to an input after a submission.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// TextInput wraps bubbles/textinput with the game's styling.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	feedback    Feedback
}

// NewTextInput creates a focused text input. charLimit <= 0 means no limit.
func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. In numeric mode, printable non-digit keys are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			if txt := kmsg.Text; txt != "" && strings.IndexFunc(txt, notDigit) >= 0 {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != "" {
		t.feedback = FeedbackNone
	}
	return t, cmd
}

// View renders the input with any feedback mark.
func (t TextInput) View() string {
	view := t.Model.View()
	switch t.feedback {
	case FeedbackCorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case FeedbackIncorrect:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Clear empties the input and shows fb next to it until the next keystroke.
func (t *TextInput) Clear(fb Feedback) {
	t.Model.SetValue("")
	t.feedback = fb
}

// Feedback returns the current feedback mark.
func (t TextInput) Feedback() Feedback {
	return t.feedback
}

func notDigit(r rune) bool { return r < '0' || r > '9' }
