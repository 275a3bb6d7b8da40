package view

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

// Action kinds submitted by page forms as "kind" or "kind:value".
const (
	ActionToggleCategory = "toggle-category"
	ActionSetInStock     = "set-in-stock"
	ActionClearFilters   = "clear"
	ActionSort           = "sort"
	ActionOpenFilters    = "open-filters"
	ActionCloseFilters   = "close-filters"
	ActionToggleFilters  = "toggle-filters"
	ActionToggleMenu     = "toggle-menu"
	ActionCloseMenu      = "close-menu"
	ActionScroll         = "scroll"
	ActionToggleTheme    = "toggle-theme"
)

type Action struct {
	Kind  string
	Value string
}

func (a Action) String() string {
	if a.Value == "" {
		return a.Kind
	}
	return a.Kind + ":" + a.Value
}

// ParseAction reads the "action" form field. A value embedded after the
// first colon wins over a separate "value" field (used by <select> forms).
func ParseAction(form url.Values) (Action, error) {
	raw := strings.TrimSpace(form.Get("action"))
	if raw == "" {
		return Action{}, fmt.Errorf("%w: missing action", ErrUnknownAction)
	}
	kind, value, _ := strings.Cut(raw, ":")
	if value == "" {
		value = form.Get("value")
	}
	return Action{Kind: kind, Value: value}, nil
}
