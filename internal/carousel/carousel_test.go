package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_ArrowVisibility(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		wantLeft  bool
		wantRight bool
	}{
		{"At start", State{Offset: 0, ScrollWidth: 1000, ClientWidth: 400}, false, true},
		{"In the middle", State{Offset: 300, ScrollWidth: 1000, ClientWidth: 400}, true, true},
		{"At the end", State{Offset: 600, ScrollWidth: 1000, ClientWidth: 400}, true, false},
		{"Within tolerance of end", State{Offset: 591, ScrollWidth: 1000, ClientWidth: 400}, true, false},
		{"Just outside tolerance", State{Offset: 589, ScrollWidth: 1000, ClientWidth: 400}, true, true},
		{"Content fits", State{Offset: 0, ScrollWidth: 300, ClientWidth: 400}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLeft, tt.state.CanScrollLeft())
			assert.Equal(t, tt.wantRight, tt.state.CanScrollRight())
		})
	}
}

func TestState_Scroll(t *testing.T) {
	s := State{ScrollWidth: 1000, ClientWidth: 400}

	s = s.Scroll(Right)
	assert.Equal(t, 300, s.Offset)

	s = s.Scroll(Right)
	assert.Equal(t, 600, s.Offset, "clamped to scrollWidth-clientWidth")
	assert.False(t, s.CanScrollRight())

	s = s.Scroll(Right)
	assert.Equal(t, 600, s.Offset)

	s = s.Scroll(Left).Scroll(Left).Scroll(Left)
	assert.Equal(t, 0, s.Offset)
	assert.False(t, s.CanScrollLeft())
}

func TestState_ScrollWhenContentFits(t *testing.T) {
	s := State{ScrollWidth: 200, ClientWidth: 400}
	assert.Equal(t, 0, s.MaxOffset())
	assert.Equal(t, 0, s.Scroll(Right).Offset)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("left")
	assert.True(t, ok)
	assert.Equal(t, Left, d)

	d, ok = ParseDirection("right")
	assert.True(t, ok)
	assert.Equal(t, Right, d)

	_, ok = ParseDirection("up")
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	l := Layout{CardWidth: 280, Gap: 16, ViewportWidth: 1200}

	assert.Equal(t, 0, l.ScrollWidth(0))
	assert.Equal(t, 280, l.ScrollWidth(1))
	assert.Equal(t, 8*280+7*16, l.ScrollWidth(8))

	s := l.Mount(8)
	assert.Equal(t, State{Offset: 0, ScrollWidth: 2352, ClientWidth: 1200}, s)
	assert.True(t, s.CanScrollRight())

	restored := l.Restore(8, 99999)
	assert.Equal(t, s.MaxOffset(), restored.Offset)

	assert.Equal(t, 0, l.Restore(8, -50).Offset)
}

func TestLayout_Visible(t *testing.T) {
	l := Layout{CardWidth: 280, Gap: 16, ViewportWidth: 600}

	first, last := l.Visible(l.Mount(8), 8)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last) // cards at 0, 296 and 592 intersect [0,600)

	first, last = l.Visible(l.Restore(8, 290), 8)
	assert.Equal(t, 1, first) // card 0 ends at 280
	assert.Equal(t, 4, last)

	s := l.Restore(8, 1e6)
	first, last = l.Visible(s, 8)
	assert.Equal(t, 5, first) // card 5 spans [1480,1760)
	assert.Equal(t, 8, last)

	first, last = l.Visible(State{}, 0)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}
