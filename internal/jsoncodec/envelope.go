package jsoncodec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

const envelopeKey = "themes"

// Envelope is the result of a multi-theme import.
type Envelope struct {
	Themes map[string]*theme.Document
	// Skipped holds the names of entries that failed to decode or
	// validate, sorted.
	Skipped []string
	// Problems maps each skipped name to its error.
	Problems map[string]error
}

// Names returns the accepted theme names, sorted.
func (e Envelope) Names() []string {
	names := make([]string, 0, len(e.Themes))
	for name := range e.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary is the one-line outcome shown to users.
func (e Envelope) Summary() string {
	msg := fmt.Sprintf("Imported %d %s.", len(e.Themes), plural(len(e.Themes), "theme"))
	if len(e.Skipped) == 0 {
		return msg
	}
	return fmt.Sprintf("%s Skipped %d invalid %s: %s",
		msg, len(e.Skipped), plural(len(e.Skipped), "theme"), strings.Join(e.Skipped, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// DecodeEnvelope reads {"themes": {"<name>": <document>, ...}}. Every entry
// is decoded and validated on its own; invalid entries are skipped and the
// call fails only when none survive.
func DecodeEnvelope(text string) (Envelope, error) {
	clean := Strip(text)
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		return Envelope{}, errdef.Wrap(errdef.CodeInvalidFormat, err, "Invalid theme collection format")
	}
	raw, ok := top[envelopeKey]
	if !ok {
		return Envelope{}, errdef.New(errdef.CodeInvalidFormat, "Invalid theme collection format")
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Envelope{}, errdef.Wrap(errdef.CodeInvalidFormat, err, "Invalid theme collection format")
	}
	if entries == nil {
		return Envelope{}, errdef.New(errdef.CodeInvalidFormat, "Invalid theme collection format")
	}

	env := Envelope{
		Themes:   make(map[string]*theme.Document, len(entries)),
		Problems: make(map[string]error),
	}
	for name, body := range entries {
		doc, err := Decode(string(body))
		if err == nil {
			err = theme.Validate(doc)
		}
		if err != nil {
			env.Skipped = append(env.Skipped, name)
			env.Problems[name] = err
			continue
		}
		env.Themes[name] = doc
	}
	sort.Strings(env.Skipped)
	if len(env.Themes) == 0 {
		return env, errdef.New(errdef.CodeInvalidFormat, "No valid themes found in the import file")
	}
	return env, nil
}

// EncodeEnvelope writes docs in the format DecodeEnvelope reads. Keys are
// emitted in sorted order.
func EncodeEnvelope(docs map[string]*theme.Document) (string, error) {
	for name, doc := range docs {
		if doc == nil {
			return "", errdef.New(errdef.CodeInvalidFormat, "theme %q is null", name)
		}
	}
	if docs == nil {
		docs = map[string]*theme.Document{}
	}
	return marshal(map[string]map[string]*theme.Document{envelopeKey: docs})
}
