package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/router"
	"github.com/learngrid/learngrid/internal/screens/help"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Client: api.NewMockClient()})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newAppModel(Options{Client: api.NewMockClient()})
	m, _ = update(t, m, router.PushScreenMsg{Screen: help.New()})
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscOnRootIsNoop(t *testing.T) {
	m := newAppModel(Options{Client: api.NewMockClient()})
	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestViewRendersFrame(t *testing.T) {
	m := newAppModel(Options{Client: api.NewMockClient(), Status: "http://127.0.0.1:5000"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	content := m.render()
	assert.Contains(t, content, "LearnGrid")
	assert.Contains(t, content, "Roadmap")
	assert.Contains(t, content, "http://127.0.0.1:5000")
	assert.Contains(t, content, "Generate roadmap")
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Client: api.NewMockClient()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.True(t, strings.Contains(m.render(), "Terminal too small!"))
}
