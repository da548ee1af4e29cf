package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeaderContainsParts(t *testing.T) {
	h := RenderHeader("Roadmap", "127.0.0.1:5000", 100)
	assert.Contains(t, h, "LearnGrid")
	assert.Contains(t, h, "Roadmap")
	assert.Contains(t, h, "127.0.0.1:5000")
}

func TestRenderFooterContainsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Close"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Submit")
	assert.Contains(t, f, "Close")
}

func TestRenderModalContainsBody(t *testing.T) {
	out := RenderModal("Quiz: Channels", 80, 20)
	assert.Contains(t, out, "Quiz: Channels")
}

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat("x", i+1)
	}
	return out
}

func TestWindow(t *testing.T) {
	all := lines(10)

	got, off := Window(all, 0, 0, 0, 4)
	assert.Equal(t, all[0:4], got)
	assert.Equal(t, 0, off)

	got, off = Window(all, 6, 6, 0, 4)
	assert.Equal(t, all[3:7], got)
	assert.Equal(t, 3, off)

	got, off = Window(all, 2, 2, 3, 4)
	assert.Equal(t, all[2:6], got)
	assert.Equal(t, 2, off)

	got, off = Window(all[:3], 1, 1, 5, 4)
	assert.Equal(t, all[:3], got)
	assert.Equal(t, 0, off)

	got, _ = Window(all, 0, 0, 0, 0)
	assert.Nil(t, got)
}

func TestWindow_KeepsRangeVisible(t *testing.T) {
	all := lines(10)

	// Block 5..7 below a window at the top scrolls until 7 is the last row.
	got, off := Window(all, 5, 7, 0, 4)
	assert.Equal(t, all[4:8], got)
	assert.Equal(t, 4, off)

	// Already visible range leaves the offset alone.
	got, off = Window(all, 5, 7, 4, 4)
	assert.Equal(t, all[4:8], got)
	assert.Equal(t, 4, off)

	// Range taller than the window pins its first line to the top.
	got, off = Window(all, 2, 8, 0, 4)
	assert.Equal(t, all[2:6], got)
	assert.Equal(t, 2, off)

	// Scrolling back up to a range above the window.
	got, off = Window(all, 1, 2, 6, 4)
	assert.Equal(t, all[1:5], got)
	assert.Equal(t, 1, off)
}
