// Package quiz implements the quiz modal: a single multiple-choice
// question fetched on demand, answered once, then dismissed.
package quiz

import "github.com/learngrid/learngrid/internal/api"

const (
	LoadingText     = "Loading question..."
	CorrectText     = "Correct!"
	IncorrectPrefix = "Incorrect. The right answer is: "
	FailurePrefix   = "Could not load quiz. "
)

// Phase is the modal's position in its lifecycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseLoading
	PhaseReady
	PhaseAnsweredCorrect
	PhaseAnsweredIncorrect
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseAnsweredCorrect:
		return "answered-correct"
	case PhaseAnsweredIncorrect:
		return "answered-incorrect"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request identifies one quiz fetch.
type Request struct {
	Seq   uint64
	Topic string
}

// Modal is the quiz overlay. Closing hides it but keeps its content; the
// next Open overwrites everything.
type Modal struct {
	Phase    Phase
	Topic    string
	Question string
	Options  []string
	Feedback string
	Chosen   int

	answer string
	seq    uint64
}

// Open shows the modal for topic in the loading state and returns the
// request to issue.
func (m *Modal) Open(topic string) Request {
	m.seq++
	m.Phase = PhaseLoading
	m.Topic = topic
	m.Question = LoadingText
	m.Options = nil
	m.Feedback = ""
	m.Chosen = -1
	m.answer = ""
	return Request{Seq: m.seq, Topic: topic}
}

// Close hides the modal.
func (m *Modal) Close() {
	m.Phase = PhaseClosed
}

// Visible reports whether the modal is shown.
func (m *Modal) Visible() bool {
	return m.Phase != PhaseClosed
}

// Label is the modal's title line.
func (m *Modal) Label() string {
	return "Quiz: " + m.Topic
}

// FeedbackVisible reports whether an answer has been given.
func (m *Modal) FeedbackVisible() bool {
	return m.Phase == PhaseAnsweredCorrect || m.Phase == PhaseAnsweredIncorrect
}

// Answered reports whether the one allowed selection has been made.
func (m *Modal) Answered() bool {
	return m.FeedbackVisible()
}

// Resolve applies the outcome of request seq. It returns false when the
// request was superseded or the modal is no longer waiting for it.
func (m *Modal) Resolve(seq uint64, q *api.Quiz, err error) bool {
	if seq != m.seq || m.Phase != PhaseLoading {
		return false
	}

	if err == nil && q == nil {
		err = &api.DecodeError{Endpoint: api.EndpointQuiz, Err: errEmptyQuiz}
	}
	if err != nil {
		m.Phase = PhaseFailed
		m.Question = FailurePrefix + api.Message(err)
		m.Options = nil
		return true
	}

	m.Phase = PhaseReady
	m.Question = q.Question
	m.Options = append([]string(nil), q.Options...)
	m.answer = q.Answer
	return true
}

// Select answers the question with option. Only the first selection
// counts; later ones are ignored and return false.
func (m *Modal) Select(option string) bool {
	if m.Phase != PhaseReady {
		return false
	}

	m.Chosen = indexOf(m.Options, option)
	if option == m.answer {
		m.Phase = PhaseAnsweredCorrect
		m.Feedback = CorrectText
	} else {
		m.Phase = PhaseAnsweredIncorrect
		m.Feedback = IncorrectPrefix + m.answer
	}
	return true
}

// SelectIndex answers with the i-th option.
func (m *Modal) SelectIndex(i int) bool {
	if i < 0 || i >= len(m.Options) {
		return false
	}
	return m.Select(m.Options[i])
}

// AnswerIndex returns the position of the correct answer among the
// options, or -1 when the server's answer matches none of them.
func (m *Modal) AnswerIndex() int {
	return indexOf(m.Options, m.answer)
}

func indexOf(opts []string, s string) int {
	for i, o := range opts {
		if o == s {
			return i
		}
	}
	return -1
}
