// Package carousel tracks the scroll position of the featured-products strip
// and decides which navigation arrows to show.
package carousel

const (
	// Tolerance keeps the right arrow from flickering at the end of the strip.
	Tolerance = 10
	// Step is the distance one arrow click scrolls.
	Step = 300
)

type Direction int

const (
	Left Direction = iota
	Right
)

func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Left, false
}

// State is the scroll metrics of the strip, all in pixels.
type State struct {
	Offset      int `json:"offset"`
	ScrollWidth int `json:"scrollWidth"`
	ClientWidth int `json:"clientWidth"`
}

func (s State) CanScrollLeft() bool {
	return s.Offset > 0
}

func (s State) CanScrollRight() bool {
	return s.Offset < s.ScrollWidth-s.ClientWidth-Tolerance
}

// MaxOffset is the furthest the strip can scroll.
func (s State) MaxOffset() int {
	if m := s.ScrollWidth - s.ClientWidth; m > 0 {
		return m
	}
	return 0
}

// Scroll moves by one Step in d, clamped to the scrollable range.
func (s State) Scroll(d Direction) State {
	next := s
	if d == Left {
		next.Offset -= Step
	} else {
		next.Offset += Step
	}
	return next.Clamp()
}

// Clamp pulls Offset back into [0, MaxOffset].
func (s State) Clamp() State {
	switch {
	case s.Offset < 0:
		s.Offset = 0
	case s.Offset > s.MaxOffset():
		s.Offset = s.MaxOffset()
	}
	return s
}
