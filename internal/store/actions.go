package store

import "github.com/unkn0wn-root/themekit/internal/theme"

// Action is a state transition request. The concrete types below are the
// only actions Reduce understands; anything else leaves the state as is.
type Action interface {
	Kind() string
}

// UpdateTheme replaces the current theme and its collection entry.
type UpdateTheme struct{ Doc *theme.Document }

// ChangeTheme makes another collection entry current, saving the
// outgoing current theme first.
type ChangeTheme struct{ Name string }

// SaveTheme stores Doc under Name, overwriting any existing entry.
type SaveTheme struct {
	Name string
	Doc  *theme.Document
}

// LoadTheme behaves like ChangeTheme; it is recorded separately.
type LoadTheme struct{ Name string }

// DeleteTheme removes Name from the collection. The current theme is kept
// even when it was the deleted entry.
type DeleteTheme struct{ Name string }

type ToggleDarkMode struct{ Dark bool }

type SetLanguage struct{ Code string }

// ResetDefaults restores the built-in collection and the default theme.
type ResetDefaults struct{}

func (UpdateTheme) Kind() string    { return "update" }
func (ChangeTheme) Kind() string    { return "change" }
func (SaveTheme) Kind() string      { return "save" }
func (LoadTheme) Kind() string      { return "load" }
func (DeleteTheme) Kind() string    { return "delete" }
func (ToggleDarkMode) Kind() string { return "dark" }
func (SetLanguage) Kind() string    { return "language" }
func (ResetDefaults) Kind() string  { return "reset" }

// target names the theme or value an action is about, for audit records.
func target(a Action, s State) string {
	switch a := a.(type) {
	case UpdateTheme:
		return s.CurrentName
	case ChangeTheme:
		return a.Name
	case SaveTheme:
		return a.Name
	case LoadTheme:
		return a.Name
	case DeleteTheme:
		return a.Name
	case ToggleDarkMode:
		if a.Dark {
			return "on"
		}
		return "off"
	case SetLanguage:
		return a.Code
	case ResetDefaults:
		return theme.DefaultThemeName
	}
	return ""
}
