// Package theme holds the light/dark appearance flag shared by every page of a session.
package theme

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggle flips the flag. Toggle(Toggle(t)) == t for every valid t.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "light" or "dark"; anything else is Light.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) IsDark() bool { return t == Dark }

func (t Theme) String() string {
	if t == Dark {
		return string(Dark)
	}
	return string(Light)
}
