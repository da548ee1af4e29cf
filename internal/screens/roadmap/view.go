package roadmap

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/learngrid/learngrid/internal/quiz"
	rmap "github.com/learngrid/learngrid/internal/roadmap"
	"github.com/learngrid/learngrid/internal/resources"
	"github.com/learngrid/learngrid/internal/ui/components"
	"github.com/learngrid/learngrid/internal/ui/layout"
	"github.com/learngrid/learngrid/internal/ui/theme"
)

const idleHint = `Type a skill (e.g. "python") and press Enter to generate a learning path.`

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *RoadmapScreen) spinner() string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(spinnerFrames[s.frame%len(spinnerFrames)])
}

func (s *RoadmapScreen) View(width, height int) string {
	if s.modal.Visible() {
		return layout.RenderModal(s.renderModal(), width, height)
	}

	var b strings.Builder
	if s.state.Status == rmap.StatusIdle {
		b.WriteString(renderBanner(width))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	used := 4
	switch s.state.Status {
	case rmap.StatusIdle:
		b.WriteString(theme.Hint.Render("  " + idleHint))
	case rmap.StatusLoading:
		b.WriteString("  " + s.spinner() + " ")
		b.WriteString(theme.Subtitle.Render("Generating your roadmap..."))
	case rmap.StatusFailed:
		b.WriteString("  ")
		b.WriteString(theme.ErrorText.Render(s.state.Err))
	case rmap.StatusLoaded:
		b.WriteString("  ")
		b.WriteString(theme.Body.Render("Learning Path for "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.state.Skill))
		b.WriteString("\n\n")
		used += 2

		lines, first, last := s.renderTree()
		var visible []string
		visible, s.scroll = layout.Window(lines, first, last, s.scroll, height-used)
		for i, line := range visible {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(ansi.Truncate(line, width-1, "…"))
		}
	}

	return b.String()
}

// renderTree renders every module block and returns the first and last
// line index of the row under the cursor, links and quiz button included.
func (s *RoadmapScreen) renderTree() (lines []string, first, last int) {
	rows := s.state.Rows()
	treeFocused := s.focus == focusTree

	for i, r := range rows {
		selected := treeFocused && i == s.cursor
		start := len(lines)

		switch r.Kind {
		case rmap.RowModule:
			lines = append(lines, s.renderModuleLine(r.Module, selected))
		case rmap.RowSubtopic:
			lines = append(lines, s.renderSubtopic(r, selected)...)
		}

		if i == s.cursor {
			first, last = start, len(lines)-1
		}
	}
	return lines, first, last
}

func (s *RoadmapScreen) renderModuleLine(idx int, selected bool) string {
	m := s.state.Modules[idx]

	marker := "▸"
	style := theme.Unselected
	if m.Expanded {
		marker = "▾"
		style = theme.ModuleActive
	}
	if selected {
		style = theme.Selected
	}

	cursor := "  "
	if selected {
		cursor = "❯ "
	}
	return "  " + cursor + style.Render(marker+" "+m.Module.Title)
}

func (s *RoadmapScreen) renderSubtopic(r rmap.Row, selected bool) []string {
	st, ok := s.state.Subtopic(r)
	if !ok {
		return nil
	}

	titleStyle := theme.Body
	cursor := "  "
	if selected {
		titleStyle = theme.Selected
		cursor = "❯ "
	}

	lines := []string{"      " + cursor + titleStyle.Render("• "+st.Title)}
	for _, link := range resources.ForSubtopic(st.Resources) {
		lines = append(lines, "          "+
			theme.PlatformStyle(link.Platform).Render(link.Label+":")+" "+
			renderLink(link.URL))
	}
	lines = append(lines, "          "+components.NewButton("Quiz Me!", selected).View())
	return lines
}

// renderLink styles url as a single run so it stays selectable as one
// string, wrapped in an OSC 8 hyperlink for terminals that support it.
func renderLink(url string) string {
	styled := lipgloss.NewStyle().Foreground(theme.TextDim).Render(url)
	return ansi.SetHyperlink(url) + styled + ansi.ResetHyperlink()
}

// renderModal renders the quiz dialog body.
func (s *RoadmapScreen) renderModal() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(s.modal.Label()))
	b.WriteString("\n\n")

	switch s.modal.Phase {
	case quiz.PhaseLoading:
		b.WriteString(s.spinner() + " ")
		b.WriteString(theme.Subtitle.Render(s.modal.Question))
	case quiz.PhaseFailed:
		b.WriteString(theme.ErrorText.Render(s.modal.Question))
	default:
		b.WriteString(theme.Body.Bold(true).Render(s.modal.Question))
		b.WriteString("\n\n")
		b.WriteString(s.choices.View())
	}

	if s.modal.FeedbackVisible() {
		style := theme.Incorrect
		if s.modal.Phase == quiz.PhaseAnsweredCorrect {
			style = theme.Correct
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.modal.Feedback))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Esc to close"))
	return b.String()
}
