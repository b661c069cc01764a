package store

import "github.com/unkn0wn-root/themekit/internal/theme"

// Reduce returns the state that follows s after a. It never mutates s: the
// result always carries a new collection map, and every document it stores
// is a fresh clone, so no document instance is shared between the current
// slot and a collection entry.
func Reduce(s State, a Action) State {
	next := s
	next.Collection = copyCollection(s.Collection)

	switch a := a.(type) {
	case UpdateTheme:
		if a.Doc == nil {
			break
		}
		next.Current = theme.Clone(a.Doc)
		next.Collection[s.CurrentName] = theme.Clone(a.Doc)
	case ChangeTheme:
		next = switchTo(next, a.Name)
	case LoadTheme:
		next = switchTo(next, a.Name)
	case SaveTheme:
		if a.Doc == nil {
			break
		}
		next.Collection[a.Name] = theme.Clone(a.Doc)
	case DeleteTheme:
		delete(next.Collection, a.Name)
	case ToggleDarkMode:
		next.DarkMode = a.Dark
	case SetLanguage:
		next.Language = a.Code
	case ResetDefaults:
		next.Collection = theme.Builtins()
		next.Current = theme.Cashable()
		next.CurrentName = theme.DefaultThemeName
	}
	return next
}

// switchTo flushes the outgoing current theme into the collection and then
// makes name current. Unknown names leave the state alone.
func switchTo(s State, name string) State {
	if _, ok := s.Collection[name]; !ok {
		return s
	}
	if s.Current != nil {
		s.Collection[s.CurrentName] = theme.Clone(s.Current)
	}
	s.Current = theme.Clone(s.Collection[name])
	s.CurrentName = name
	return s
}

func copyCollection(in map[string]*theme.Document) map[string]*theme.Document {
	out := make(map[string]*theme.Document, len(in))
	for name, doc := range in {
		out[name] = doc
	}
	return out
}
