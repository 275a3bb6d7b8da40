package view

import (
	"fmt"

	"artgie-web/internal/carousel"
)

type HomeState struct {
	Navbar   NavbarState
	Carousel carousel.State
}

func (s HomeState) Apply(a Action) (HomeState, error) {
	next := s

	if nav, ok := s.Navbar.apply(a); ok {
		next.Navbar = nav
		return next, nil
	}

	if a.Kind != ActionScroll {
		return s, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	d, ok := carousel.ParseDirection(a.Value)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownAction, a)
	}
	next.Carousel = s.Carousel.Scroll(d)
	return next, nil
}
