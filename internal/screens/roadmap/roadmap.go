package roadmap

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/quiz"
	rmap "github.com/learngrid/learngrid/internal/roadmap"
	"github.com/learngrid/learngrid/internal/router"
	"github.com/learngrid/learngrid/internal/screen"
	"github.com/learngrid/learngrid/internal/screens/help"
	"github.com/learngrid/learngrid/internal/ui/components"
	"github.com/learngrid/learngrid/internal/ui/layout"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusTree
)

const spinnerInterval = 100 * time.Millisecond

// RoadmapScreen is the main view: a skill prompt, the fetched roadmap and
// the quiz modal drawn over it.
type RoadmapScreen struct {
	client  api.Client
	input   components.TextInput
	state   rmap.State
	modal   quiz.Modal
	choices components.MultiChoice

	focus  focusArea
	cursor int
	scroll int

	spinning bool
	frame    int

	cancelRoadmap context.CancelFunc
	cancelQuiz    context.CancelFunc
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.EscapeHandler = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen backed by client.
func New(client api.Client) *RoadmapScreen {
	return &RoadmapScreen{
		client:  client,
		input:   components.NewTextInput("Skill:", "e.g. python, machine learning, guitar", 120),
		choices: components.NewMultiChoice(nil),
	}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

// HandlesEscape reports whether Esc has a meaning in the current state.
func (s *RoadmapScreen) HandlesEscape() bool {
	return s.modal.Visible() || s.focus == focusTree
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.modal.Visible() {
		if s.modal.Phase == quiz.PhaseReady {
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Choose"},
				{Key: "Enter/1-9", Description: "Answer"},
				{Key: "Esc", Description: "Close"},
			}
		}
		return []layout.KeyHint{
			{Key: "Esc", Description: "Close"},
		}
	}
	if s.focus == focusTree {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Expand / Quiz Me!"},
			{Key: "Tab", Description: "Skill input"},
			{Key: "?", Description: "Help"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Generate roadmap"},
	}
	if len(s.state.Rows()) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Roadmap"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		s.handleRoadmapLoaded(msg)
		return s, nil

	case quizLoadedMsg:
		s.handleQuizLoaded(msg)
		return s, nil

	case components.ChoiceMsg:
		s.selectOption(msg.Index)
		return s, nil

	case spinnerTickMsg:
		return s, s.handleSpinnerTick()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	// Cursor blink and friends.
	if s.focus == focusInput && !s.modal.Visible() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RoadmapScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// The modal captures all input while open.
	if s.modal.Visible() {
		if key == "esc" {
			s.closeQuizModal()
			return nil
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		return cmd
	}

	if key == "tab" || key == "shift+tab" {
		return s.toggleFocus()
	}

	if s.focus == focusInput {
		if key == "enter" {
			return s.submitSkill(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch key {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter", "space":
		return s.activate()
	case "esc":
		return s.toggleFocus()
	case "?":
		return func() tea.Msg { return router.PushScreenMsg{Screen: help.New()} }
	}
	return nil
}

// submitSkill starts a roadmap fetch for raw. Blank input does nothing.
func (s *RoadmapScreen) submitSkill(raw string) tea.Cmd {
	req, ok := s.state.Submit(raw)
	if !ok {
		return nil
	}

	if s.cancelRoadmap != nil {
		s.cancelRoadmap()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelRoadmap = cancel
	s.cursor, s.scroll = 0, 0

	return tea.Batch(fetchRoadmap(ctx, s.client, req), s.startSpinner())
}

func (s *RoadmapScreen) handleRoadmapLoaded(msg roadmapLoadedMsg) {
	if !s.state.Resolve(msg.Seq, msg.Roadmap, msg.Err) {
		return
	}
	if s.cancelRoadmap != nil {
		s.cancelRoadmap()
		s.cancelRoadmap = nil
	}
	s.cursor, s.scroll = 0, 0

	if len(s.state.Rows()) > 0 {
		s.focus = focusTree
		s.input.Blur()
	}
}

// openQuiz shows the modal for topic and fetches its question.
func (s *RoadmapScreen) openQuiz(topic string) tea.Cmd {
	req := s.modal.Open(topic)
	s.choices = components.NewMultiChoice(nil)

	if s.cancelQuiz != nil {
		s.cancelQuiz()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelQuiz = cancel

	return tea.Batch(fetchQuiz(ctx, s.client, req), s.startSpinner())
}

func (s *RoadmapScreen) handleQuizLoaded(msg quizLoadedMsg) {
	if !s.modal.Resolve(msg.Seq, msg.Quiz, msg.Err) {
		return
	}
	if s.cancelQuiz != nil {
		s.cancelQuiz()
		s.cancelQuiz = nil
	}
	if s.modal.Phase == quiz.PhaseReady {
		s.choices = components.NewMultiChoice(s.modal.Options)
	}
}

// selectOption answers the open quiz. Only the first answer is accepted.
func (s *RoadmapScreen) selectOption(idx int) {
	if s.modal.SelectIndex(idx) {
		s.choices.Lock(idx, s.modal.AnswerIndex())
	}
}

func (s *RoadmapScreen) closeQuizModal() {
	s.modal.Close()
	if s.cancelQuiz != nil {
		s.cancelQuiz()
		s.cancelQuiz = nil
	}
}

// activate toggles the module under the cursor or opens the quiz for the
// subtopic under it.
func (s *RoadmapScreen) activate() tea.Cmd {
	rows := s.state.Rows()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return nil
	}

	r := rows[s.cursor]
	switch r.Kind {
	case rmap.RowModule:
		s.state.Toggle(r.Module)
	case rmap.RowSubtopic:
		if st, ok := s.state.Subtopic(r); ok {
			return s.openQuiz(st.Title)
		}
	}
	return nil
}

func (s *RoadmapScreen) moveCursor(delta int) {
	n := len(s.state.Rows())
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
}

func (s *RoadmapScreen) toggleFocus() tea.Cmd {
	if s.focus == focusTree {
		s.focus = focusInput
		return s.input.Focus()
	}
	if len(s.state.Rows()) == 0 {
		return nil
	}
	s.focus = focusTree
	s.input.Blur()
	return nil
}

func (s *RoadmapScreen) startSpinner() tea.Cmd {
	if s.spinning {
		return nil
	}
	s.spinning = true
	return spinnerTick()
}

func (s *RoadmapScreen) handleSpinnerTick() tea.Cmd {
	if s.state.Loading() || s.modal.Phase == quiz.PhaseLoading {
		s.frame++
		return spinnerTick()
	}
	s.spinning = false
	return nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func fetchRoadmap(ctx context.Context, client api.Client, req rmap.Request) tea.Cmd {
	return func() tea.Msg {
		rm, err := client.Roadmap(ctx, req.Skill)
		return roadmapLoadedMsg{Seq: req.Seq, Roadmap: rm, Err: err}
	}
}

func fetchQuiz(ctx context.Context, client api.Client, req quiz.Request) tea.Cmd {
	return func() tea.Msg {
		q, err := client.Quiz(ctx, req.Topic)
		return quizLoadedMsg{Seq: req.Seq, Quiz: q, Err: err}
	}
}
