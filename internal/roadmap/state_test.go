package roadmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learngrid/learngrid/internal/api"
)

func sampleRoadmap(n int) *api.Roadmap {
	rm := &api.Roadmap{Skill: "go"}
	for i := 0; i < n; i++ {
		rm.Modules = append(rm.Modules, api.Module{
			Title: string(rune('A' + i)),
			Subtopics: []api.Subtopic{
				{Title: "first"},
				{Title: "second"},
			},
		})
	}
	return rm
}

func TestSubmitBlankIsNoop(t *testing.T) {
	s := State{Status: StatusLoaded, Skill: "prev", Modules: []ModuleState{{}}}

	for _, in := range []string{"", "   ", "\t\n"} {
		_, ok := s.Submit(in)
		assert.False(t, ok)
	}
	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, "prev", s.Skill)
	assert.Len(t, s.Modules, 1)
	assert.Equal(t, uint64(0), s.Latest())
}

func TestSubmitTrimsAndClears(t *testing.T) {
	s := State{Status: StatusFailed, Err: "old"}
	req, ok := s.Submit("  rust  ")
	require.True(t, ok)

	assert.Equal(t, "rust", req.Skill)
	assert.Equal(t, uint64(1), req.Seq)
	assert.True(t, s.Loading())
	assert.Empty(t, s.Err)
	assert.Nil(t, s.Modules)
}

func TestResolveRendersModulesCollapsedInOrder(t *testing.T) {
	var s State
	req, _ := s.Submit("go")

	require.True(t, s.Resolve(req.Seq, sampleRoadmap(3), nil))
	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, "Learning Path for go", s.Header())
	require.Len(t, s.Modules, 3)
	for i, m := range s.Modules {
		assert.Equal(t, string(rune('A'+i)), m.Module.Title)
		assert.False(t, m.Expanded)
	}
}

func TestResolveError(t *testing.T) {
	var s State
	req, _ := s.Submit("go")

	err := &api.ServerError{Endpoint: api.EndpointRoadmap, Status: 500, Message: "boom"}
	require.True(t, s.Resolve(req.Seq, nil, err))
	assert.Equal(t, StatusFailed, s.Status)
	assert.False(t, s.Loading())
	assert.Contains(t, s.Err, "boom")
	assert.Equal(t, ErrorPrefix+"boom", s.Err)
}

func TestResolveNilRoadmapFails(t *testing.T) {
	var s State
	req, _ := s.Submit("go")
	require.True(t, s.Resolve(req.Seq, nil, nil))
	assert.Equal(t, StatusFailed, s.Status)
}

func TestResolveDropsSupersededResponse(t *testing.T) {
	var s State
	first, _ := s.Submit("go")
	second, _ := s.Submit("rust")

	// The older response arrives last and must not overwrite.
	assert.True(t, s.Resolve(second.Seq, &api.Roadmap{Skill: "rust"}, nil))
	assert.False(t, s.Resolve(first.Seq, &api.Roadmap{Skill: "go"}, nil))
	assert.Equal(t, "rust", s.Skill)

	// A stale failure while the newer request is loading keeps loading.
	third, _ := s.Submit("zig")
	assert.False(t, s.Resolve(second.Seq, nil, errors.New("late")))
	assert.True(t, s.Loading())
	assert.True(t, s.Resolve(third.Seq, &api.Roadmap{Skill: "zig"}, nil))
}

func TestToggleIsIndependent(t *testing.T) {
	var s State
	req, _ := s.Submit("go")
	s.Resolve(req.Seq, sampleRoadmap(2), nil)

	assert.True(t, s.Toggle(0))
	assert.True(t, s.Modules[0].Expanded)
	assert.False(t, s.Modules[1].Expanded)

	assert.True(t, s.Toggle(0))
	assert.False(t, s.Modules[0].Expanded)

	assert.False(t, s.Toggle(5))
	assert.False(t, s.Toggle(-1))
}

func TestToggleStateDoesNotSurviveRerender(t *testing.T) {
	var s State
	req, _ := s.Submit("go")
	s.Resolve(req.Seq, sampleRoadmap(2), nil)
	s.Toggle(1)

	req, _ = s.Submit("go")
	s.Resolve(req.Seq, sampleRoadmap(2), nil)
	assert.False(t, s.Modules[1].Expanded)
}

func TestRows(t *testing.T) {
	var s State
	assert.Nil(t, s.Rows())

	req, _ := s.Submit("go")
	s.Resolve(req.Seq, sampleRoadmap(2), nil)
	assert.Len(t, s.Rows(), 2)

	s.Toggle(0)
	rows := s.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, Row{Kind: RowModule, Module: 0, Subtopic: -1}, rows[0])
	assert.Equal(t, Row{Kind: RowSubtopic, Module: 0, Subtopic: 0}, rows[1])
	assert.Equal(t, Row{Kind: RowSubtopic, Module: 0, Subtopic: 1}, rows[2])
	assert.Equal(t, Row{Kind: RowModule, Module: 1, Subtopic: -1}, rows[3])

	st, ok := s.Subtopic(rows[2])
	assert.True(t, ok)
	assert.Equal(t, "second", st.Title)

	_, ok = s.Subtopic(rows[0])
	assert.False(t, ok)
}
