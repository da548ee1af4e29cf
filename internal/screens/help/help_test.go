package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpScreen_ListsBindingsAndPlatforms(t *testing.T) {
	h := New()
	view := h.View(80, 30)

	for _, want := range []string{"Skill input", "Roadmap", "Quiz", "Quiz Me!", "Youtube", "Udemy", "Coursera", "Articles"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, "Help", h.Title())
	assert.Nil(t, h.Init())
}

func TestHelpScreen_KeyHints(t *testing.T) {
	hints := New().KeyHints()
	if assert.Len(t, hints, 1) {
		assert.Equal(t, "Esc", hints[0].Key)
	}
}
