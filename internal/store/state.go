// Package store holds the theme editor state: the current theme, the named
// collection and the display preferences. Transitions are pure functions
// of (State, Action); Store serializes them and keeps an audit trail.
package store

import (
	"sort"

	"github.com/unkn0wn-root/themekit/internal/theme"
)

const DefaultLanguage = "en-US"

// Languages lists the language codes the editor ships strings for.
var Languages = []string{"en-US", "nl-NL", "de-DE", "es-ES"}

type State struct {
	Current     *theme.Document
	CurrentName string
	DarkMode    bool
	Collection  map[string]*theme.Document
	Language    string
}

// Initial is the state of a fresh editor: the built-in collection with the
// default theme current.
func Initial() State {
	return State{
		Current:     theme.Cashable(),
		CurrentName: theme.DefaultThemeName,
		Collection:  theme.Builtins(),
		Language:    DefaultLanguage,
	}
}

// Names returns the collection keys, sorted.
func (s State) Names() []string {
	names := make([]string, 0, len(s.Collection))
	for name := range s.Collection {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is in the collection.
func (s State) Has(name string) bool {
	_, ok := s.Collection[name]
	return ok
}

// snapshot returns s with every document cloned, so holders of the copy
// cannot reach the store's documents.
func (s State) snapshot() State {
	out := s
	out.Current = theme.Clone(s.Current)
	out.Collection = make(map[string]*theme.Document, len(s.Collection))
	for name, doc := range s.Collection {
		out.Collection[name] = theme.Clone(doc)
	}
	return out
}

func IsSupportedLanguage(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}
