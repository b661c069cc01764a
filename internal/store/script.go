package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

// Script is a list of steps replayed through a Store:
//
//	steps:
//	  - action: change
//	    name: Cool Minimal Theme
//	  - action: set
//	    path: paletteLight.Primary
//	    value: "#1E88E5"
//	  - action: save
//	    name: Ocean
type Script struct {
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Action string `yaml:"action"`
	Name   string `yaml:"name,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Value  string `yaml:"value,omitempty"`
	File   string `yaml:"file,omitempty"`
	Format string `yaml:"format,omitempty"`
	Dark   *bool  `yaml:"dark,omitempty"`
	Code   string `yaml:"code,omitempty"`
}

// Loader reads a theme file named by an update or save step.
type Loader func(file, format string) (*theme.Document, error)

func ParseScript(data []byte) (Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, errdef.New(errdef.CodeStore, "script is empty")
		}
		return Script{}, errdef.Wrap(errdef.CodeStore, err, "parse script")
	}
	if len(script.Steps) == 0 {
		return Script{}, errdef.New(errdef.CodeStore, "script has no steps")
	}
	for i := range script.Steps {
		step := &script.Steps[i]
		step.Action = strings.ToLower(strings.TrimSpace(step.Action))
		if err := step.check(); err != nil {
			return Script{}, errdef.Wrap(errdef.CodeStore, err, "step %d", i+1)
		}
	}
	return script, nil
}

func (s Step) check() error {
	switch s.Action {
	case "update":
		if s.File == "" {
			return errors.New("update needs a file")
		}
	case "set":
		if s.Path == "" {
			return errors.New("set needs a path")
		}
	case "change", "load", "delete", "save":
		if strings.TrimSpace(s.Name) == "" {
			return errors.New(s.Action + " needs a name")
		}
	case "dark":
		if s.Dark == nil {
			return errors.New("dark needs true or false")
		}
	case "language":
		if !IsSupportedLanguage(s.Code) {
			return fmt.Errorf("language %q is not one of %s", s.Code, strings.Join(Languages, ", "))
		}
	case "reset":
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// Play dispatches every step in order and stops at the first failure.
// Steps that were already applied stay applied. Each step is built from the
// state it is applied to, so steps interleave safely with other dispatches.
func Play(st *Store, script Script, load Loader) (State, error) {
	for i, step := range script.Steps {
		var doc *theme.Document
		if step.needsFile() {
			var err error
			if doc, err = step.load(load); err != nil {
				return st.State(), errdef.Wrap(errdef.CodeOf(err), err, "step %d (%s)", i+1, step.Action)
			}
		}
		_, err := st.Apply(func(current State) (Action, error) {
			return step.action(current, doc)
		})
		if err != nil {
			return st.State(), errdef.Wrap(errdef.CodeOf(err), err, "step %d (%s)", i+1, step.Action)
		}
	}
	return st.State(), nil
}

func (s Step) needsFile() bool {
	return s.Action == "update" || (s.Action == "save" && s.File != "")
}

// action builds the step's action against current. loaded is the file
// read for update and save steps.
func (s Step) action(current State, loaded *theme.Document) (Action, error) {
	switch s.Action {
	case "update":
		return UpdateTheme{Doc: loaded}, nil
	case "set":
		doc, err := theme.NewBuilder(current.Current).Set(s.Path, s.Value).Build()
		if err != nil {
			return nil, err
		}
		return UpdateTheme{Doc: doc}, nil
	case "change", "load":
		if !current.Has(s.Name) {
			return nil, errdef.New(errdef.CodeNotFound, "theme %q is not in the collection", s.Name)
		}
		if s.Action == "load" {
			return LoadTheme{Name: s.Name}, nil
		}
		return ChangeTheme{Name: s.Name}, nil
	case "save":
		doc := current.Current
		if loaded != nil {
			doc = loaded
		}
		return SaveTheme{Name: s.Name, Doc: doc}, nil
	case "delete":
		return DeleteTheme{Name: s.Name}, nil
	case "dark":
		return ToggleDarkMode{Dark: *s.Dark}, nil
	case "language":
		return SetLanguage{Code: s.Code}, nil
	case "reset":
		return ResetDefaults{}, nil
	}
	return nil, errdef.New(errdef.CodeStore, "unknown action %q", s.Action)
}

func (s Step) load(load Loader) (*theme.Document, error) {
	if load == nil {
		return nil, errdef.New(errdef.CodeStore, "no loader for %s", s.File)
	}
	doc, err := load(s.File, s.Format)
	if err != nil {
		return nil, err
	}
	if err := theme.Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
