package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learngrid/learngrid/internal/resources"
	"github.com/learngrid/learngrid/internal/screen"
	"github.com/learngrid/learngrid/internal/ui/layout"
	"github.com/learngrid/learngrid/internal/ui/theme"
)

// Section groups related key bindings.
type Section struct {
	Title string
	Keys  []layout.KeyHint
}

// Sections is the key reference shown by the screen.
var Sections = []Section{
	{
		Title: "Skill input",
		Keys: []layout.KeyHint{
			{Key: "Enter", Description: "Generate a roadmap for the typed skill"},
			{Key: "Tab", Description: "Move to the roadmap"},
		},
	},
	{
		Title: "Roadmap",
		Keys: []layout.KeyHint{
			{Key: "↑ ↓ / k j", Description: "Move between modules and subtopics"},
			{Key: "Enter / Space", Description: "Expand or collapse a module"},
			{Key: "Enter", Description: "Quiz Me! on the selected subtopic"},
			{Key: "Tab / Esc", Description: "Back to the skill input"},
		},
	},
	{
		Title: "Quiz",
		Keys: []layout.KeyHint{
			{Key: "1-9", Description: "Answer with that option"},
			{Key: "↑ ↓ + Enter", Description: "Choose and answer"},
			{Key: "Esc", Description: "Close the quiz"},
		},
	},
}

// HelpScreen lists key bindings and the supported resource platforms.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(16)

	var b strings.Builder
	for _, sec := range Sections {
		b.WriteString(theme.Title.Render(sec.Title))
		b.WriteString("\n")
		for _, k := range sec.Keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(k.Key))
			b.WriteString(theme.Subtitle.Render(k.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Title.Render("Resource platforms"))
	b.WriteString("\n  ")
	labels := make([]string, 0, len(resources.Platforms()))
	for _, p := range resources.Platforms() {
		labels = append(labels, theme.PlatformStyle(p).Render(resources.Label(p)))
	}
	b.WriteString(strings.Join(labels, "  "))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
