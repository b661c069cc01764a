// Package jsoncodec converts theme documents to and from JSON. Input may
// carry comments and trailing commas; keys match case-insensitively.
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

// Encode writes doc as two-space indented JSON with camelCase keys.
func Encode(doc *theme.Document) (string, error) {
	if doc == nil {
		return "", errdef.New(errdef.CodeInvalidFormat, "theme is null")
	}
	return marshal(doc)
}

// Decode reads a single theme document. Sections missing from a present
// object keep baseline values; absent palettes and typography stay nil so
// that theme.Validate reports them. Decode itself does not validate.
func Decode(text string) (*theme.Document, error) {
	clean := Strip(text)
	if strings.TrimSpace(clean) == "" {
		return nil, errdef.New(errdef.CodeInvalidFormat, "theme JSON is empty")
	}
	var top map[string]any
	if err := json.Unmarshal([]byte(clean), &top); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "parse theme JSON")
	}
	if len(top) == 0 {
		return nil, errdef.New(errdef.CodeInvalidFormat, "theme JSON has no content")
	}

	doc := theme.Baseline()
	if err := json.Unmarshal([]byte(clean), doc); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "decode theme JSON")
	}
	theme.DropAbsent(doc, theme.PresentKeys(top))
	theme.FillOptional(doc)
	theme.FitShadows(doc)
	return doc, nil
}

func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "encode JSON")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
