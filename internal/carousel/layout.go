package carousel

// Layout describes the fixed card geometry used to derive scroll metrics on
// the server, where no real DOM exists.
type Layout struct {
	CardWidth     int
	Gap           int
	ViewportWidth int
}

func DefaultLayout(viewport int) Layout {
	return Layout{CardWidth: 280, Gap: 16, ViewportWidth: viewport}
}

func (l Layout) ScrollWidth(cards int) int {
	if cards <= 0 {
		return 0
	}
	return cards*l.CardWidth + (cards-1)*l.Gap
}

// Mount returns the initial state for a strip of n cards.
func (l Layout) Mount(cards int) State {
	return State{ScrollWidth: l.ScrollWidth(cards), ClientWidth: l.ViewportWidth}
}

// Restore rebuilds a state from a submitted offset, clamping stale values.
func (l Layout) Restore(cards, offset int) State {
	s := l.Mount(cards)
	s.Offset = offset
	return s.Clamp()
}

// Visible returns the half-open index range [first, last) of cards that
// intersect the viewport at the state's offset.
func (l Layout) Visible(s State, cards int) (first, last int) {
	if cards <= 0 {
		return 0, 0
	}
	pitch := l.CardWidth + l.Gap
	if pitch <= 0 {
		return 0, cards
	}

	if s.Offset >= l.CardWidth {
		first = (s.Offset-l.CardWidth)/pitch + 1
	}
	end := s.Offset + s.ClientWidth
	if end > 0 {
		last = (end + pitch - 1) / pitch
	}

	if first > cards {
		first = cards
	}
	if last > cards {
		last = cards
	}
	if last < first {
		last = first
	}
	return first, last
}
