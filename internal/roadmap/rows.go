package roadmap

import (
	"errors"

	"github.com/learngrid/learngrid/internal/api"
)

var errEmptyRoadmap = errors.New("empty roadmap")

// RowKind distinguishes navigable rows.
type RowKind int

const (
	RowModule RowKind = iota
	RowSubtopic
)

// Row is one navigable line of the rendered roadmap.
type Row struct {
	Kind     RowKind
	Module   int
	Subtopic int
}

// Rows flattens the loaded roadmap into navigable rows: every module
// header, followed by its subtopics when expanded.
func (s *State) Rows() []Row {
	if s.Status != StatusLoaded {
		return nil
	}

	var rows []Row
	for mi, m := range s.Modules {
		rows = append(rows, Row{Kind: RowModule, Module: mi, Subtopic: -1})
		if !m.Expanded {
			continue
		}
		for si := range m.Module.Subtopics {
			rows = append(rows, Row{Kind: RowSubtopic, Module: mi, Subtopic: si})
		}
	}
	return rows
}

// Subtopic returns the subtopic a row points at.
func (s *State) Subtopic(r Row) (api.Subtopic, bool) {
	if r.Kind != RowSubtopic || r.Module < 0 || r.Module >= len(s.Modules) {
		return api.Subtopic{}, false
	}
	subs := s.Modules[r.Module].Module.Subtopics
	if r.Subtopic < 0 || r.Subtopic >= len(subs) {
		return api.Subtopic{}, false
	}
	return subs[r.Subtopic], true
}
