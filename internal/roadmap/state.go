// Package roadmap holds the render state of the roadmap view: the
// submitted skill, the fetched modules and which of them are expanded.
package roadmap

import (
	"strings"

	"github.com/learngrid/learngrid/internal/api"
)

// ErrorPrefix precedes every roadmap failure shown to the user.
const ErrorPrefix = "Failed to generate roadmap. "

// Status is the lifecycle of the roadmap region.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ModuleState is a rendered module and its collapse state.
type ModuleState struct {
	Module   api.Module
	Expanded bool
}

// Request identifies one roadmap fetch. Seq orders requests so that only
// the latest one may render.
type Request struct {
	Seq   uint64
	Skill string
}

// State is the roadmap region. The zero value is idle and empty.
type State struct {
	Status  Status
	Skill   string
	Modules []ModuleState
	Err     string

	seq uint64
}

// Submit starts a fetch for raw. Whitespace-only input is a no-op and
// returns false without touching the state.
func (s *State) Submit(raw string) (Request, bool) {
	skill := strings.TrimSpace(raw)
	if skill == "" {
		return Request{}, false
	}

	s.seq++
	s.Status = StatusLoading
	s.Skill = ""
	s.Modules = nil
	s.Err = ""

	return Request{Seq: s.seq, Skill: skill}, true
}

// Latest returns the sequence number of the most recent request.
func (s *State) Latest() uint64 {
	return s.seq
}

// Loading reports whether a request is outstanding.
func (s *State) Loading() bool {
	return s.Status == StatusLoading
}

// Resolve applies the outcome of request seq. Outcomes of superseded
// requests are dropped and Resolve returns false.
func (s *State) Resolve(seq uint64, rm *api.Roadmap, err error) bool {
	if seq != s.seq || s.Status != StatusLoading {
		return false
	}

	if err == nil && rm == nil {
		err = &api.DecodeError{Endpoint: api.EndpointRoadmap, Err: errEmptyRoadmap}
	}
	if err != nil {
		s.Status = StatusFailed
		s.Err = ErrorPrefix + api.Message(err)
		return true
	}

	s.Status = StatusLoaded
	s.Skill = rm.Skill
	s.Modules = make([]ModuleState, len(rm.Modules))
	for i, m := range rm.Modules {
		s.Modules[i] = ModuleState{Module: m}
	}
	return true
}

// Toggle flips module i between collapsed and expanded.
func (s *State) Toggle(i int) bool {
	if i < 0 || i >= len(s.Modules) {
		return false
	}
	s.Modules[i].Expanded = !s.Modules[i].Expanded
	return true
}

// Header is the title line shown above the modules.
func (s *State) Header() string {
	return "Learning Path for " + s.Skill
}
