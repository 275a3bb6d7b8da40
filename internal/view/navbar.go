package view

type NavItem struct {
	Name string
	Href string
}

var NavItems = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "Products", Href: "/products"},
}

// NavbarState is the mobile menu disclosure.
type NavbarState struct {
	MenuOpen bool
}

func (n NavbarState) ToggleMenu() NavbarState {
	return NavbarState{MenuOpen: !n.MenuOpen}
}

func (n NavbarState) CloseMenu() NavbarState {
	return NavbarState{}
}

// apply handles the navbar actions shared by every page.
func (n NavbarState) apply(a Action) (NavbarState, bool) {
	switch a.Kind {
	case ActionToggleMenu:
		return n.ToggleMenu(), true
	case ActionCloseMenu:
		return n.CloseMenu(), true
	case ActionToggleTheme:
		// theme lives in the session, not in page state
		return n, true
	}
	return n, false
}
