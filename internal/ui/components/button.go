package components

import (
	"github.com/learngrid/learngrid/internal/ui/theme"
)

// Button is an inline trigger, highlighted when its row has focus.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("[" + b.Label + "]")
}
