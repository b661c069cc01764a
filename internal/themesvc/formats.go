package themesvc

import (
	"bytes"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/jsoncodec"
	"github.com/unkn0wn-root/themekit/internal/source"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatSource Format = "source"
	FormatTOML   Format = "toml"
	FormatYAML   Format = "yaml"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatSource, FormatTOML, FormatYAML}
}

// ParseFormat accepts a format name or one of its common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "source", "cs", "csharp", "c#":
		return FormatSource, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errdef.New(errdef.CodeInvalidFormat, "unknown format %q (want json, source, toml or yaml)", name)
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, true
	case ".cs":
		return FormatSource, true
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// Extension is the file extension written for f.
func (f Format) Extension() string {
	switch f {
	case FormatSource:
		return ".cs"
	case FormatTOML:
		return ".toml"
	case FormatYAML:
		return ".yaml"
	}
	return ".json"
}

func decode(format Format, text string) (*theme.Document, error) {
	switch format {
	case FormatJSON:
		return jsoncodec.Decode(text)
	case FormatSource:
		return source.Decode(text)
	case FormatTOML:
		return decodeTOML(text)
	case FormatYAML:
		return decodeYAML(text)
	}
	return nil, errdef.New(errdef.CodeInvalidFormat, "unknown format %q", format)
}

func encode(format Format, doc *theme.Document, name string, opts source.Options) (string, error) {
	switch format {
	case FormatJSON:
		return jsoncodec.Encode(doc)
	case FormatSource:
		return source.Encode(doc, name, opts)
	case FormatTOML:
		return encodeTOML(doc)
	case FormatYAML:
		return encodeYAML(doc)
	}
	return "", errdef.New(errdef.CodeInvalidFormat, "unknown format %q", format)
}

// TOML and YAML follow the JSON rules: absent palettes and typography stay
// nil for validation to report, absent optional sections take baselines.

func decodeTOML(text string) (*theme.Document, error) {
	var top map[string]any
	if err := toml.Unmarshal([]byte(text), &top); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "parse theme TOML")
	}
	if len(top) == 0 {
		return nil, errdef.New(errdef.CodeInvalidFormat, "theme TOML has no content")
	}
	doc := theme.Baseline()
	if err := toml.Unmarshal([]byte(text), doc); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "decode theme TOML")
	}
	return finish(doc, top), nil
}

func decodeYAML(text string) (*theme.Document, error) {
	var top map[string]any
	if err := yaml.Unmarshal([]byte(text), &top); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "parse theme YAML")
	}
	if len(top) == 0 {
		return nil, errdef.New(errdef.CodeInvalidFormat, "theme YAML has no content")
	}
	doc := theme.Baseline()
	if err := yaml.Unmarshal([]byte(text), doc); err != nil {
		return nil, errdef.Wrap(errdef.CodeInvalidFormat, err, "decode theme YAML")
	}
	return finish(doc, top), nil
}

func finish(doc *theme.Document, top map[string]any) *theme.Document {
	theme.DropAbsent(doc, theme.PresentKeys(top))
	theme.FillOptional(doc)
	theme.FitShadows(doc)
	return doc
}

func encodeTOML(doc *theme.Document) (string, error) {
	if doc == nil {
		return "", errdef.New(errdef.CodeInvalidFormat, "theme is null")
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(filled(doc)); err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "encode TOML")
	}
	return buf.String(), nil
}

func encodeYAML(doc *theme.Document) (string, error) {
	if doc == nil {
		return "", errdef.New(errdef.CodeInvalidFormat, "theme is null")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(filled(doc)); err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "encode YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errdef.Wrap(errdef.CodeParse, err, "encode YAML")
	}
	return buf.String(), nil
}

// filled returns a copy of doc with nil optional sections replaced, since
// neither TOML nor YAML has a null to write for them.
func filled(doc *theme.Document) *theme.Document {
	out := theme.Clone(doc)
	theme.FillOptional(out)
	return out
}
