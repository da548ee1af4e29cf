package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learngrid/learngrid/internal/ui/theme"
)

// ChoiceMsg is emitted when the learner picks an option.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a keyboard-driven option list. It only reports the
// pick; whether the pick is accepted is decided by the owner, which then
// calls Lock.
type MultiChoice struct {
	Options     []string
	Cursor      int
	Locked      bool
	ChosenIndex int
	AnswerIndex int
}

// NewMultiChoice creates an unlocked option list.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:     options,
		ChosenIndex: -1,
		AnswerIndex: -1,
	}
}

// Update handles arrow navigation, Enter and number keys.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter", "space":
		return m, choose(m.Cursor)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(m.Options) {
			m.Cursor = idx
			return m, choose(idx)
		}
	}

	return m, nil
}

func choose(idx int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: idx} }
}

// Lock freezes the list after an accepted answer.
func (m *MultiChoice) Lock(chosen, answer int) {
	m.Locked = true
	m.ChosenIndex = chosen
	m.AnswerIndex = answer
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.AnswerIndex:
			style = theme.Correct
		case m.Locked && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
