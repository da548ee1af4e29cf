package roadmap

import (
	"time"

	"github.com/learngrid/learngrid/internal/api"
)

// roadmapLoadedMsg carries the outcome of a roadmap fetch.
type roadmapLoadedMsg struct {
	Seq     uint64
	Roadmap *api.Roadmap
	Err     error
}

// quizLoadedMsg carries the outcome of a quiz fetch.
type quizLoadedMsg struct {
	Seq  uint64
	Quiz *api.Quiz
	Err  error
}

// spinnerTickMsg animates the loading indicators.
type spinnerTickMsg time.Time
