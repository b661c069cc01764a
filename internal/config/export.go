package config

import "strings"

const (
	ExportFormatDefault    = "json"
	ExportNamespaceDefault = "Themes"
	HighlightStyleDefault  = "monokai"
)

var exportFormats = map[string]string{
	"json":   "json",
	"jsonc":  "json",
	"source": "source",
	"cs":     "source",
	"csharp": "source",
	"toml":   "toml",
	"yaml":   "yaml",
	"yml":    "yaml",
}

type ExportSettings struct {
	Format         string `json:"format"          toml:"format"`
	Namespace      string `json:"namespace"       toml:"namespace"`
	HighlightStyle string `json:"highlight_style" toml:"highlight_style"`
	Timestamp      bool   `json:"timestamp"       toml:"timestamp"`
}

func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		Format:         ExportFormatDefault,
		Namespace:      ExportNamespaceDefault,
		HighlightStyle: HighlightStyleDefault,
	}
}

// NormaliseExportSettings maps format aliases to their canonical names and
// fills blank or unknown values with defaults.
func NormaliseExportSettings(e ExportSettings) ExportSettings {
	def := DefaultExportSettings()
	if canonical, ok := exportFormats[strings.ToLower(strings.TrimSpace(e.Format))]; ok {
		e.Format = canonical
	} else {
		e.Format = def.Format
	}
	e.Namespace = strings.TrimSpace(e.Namespace)
	if e.Namespace == "" {
		e.Namespace = def.Namespace
	}
	e.HighlightStyle = strings.TrimSpace(e.HighlightStyle)
	if e.HighlightStyle == "" {
		e.HighlightStyle = def.HighlightStyle
	}
	return e
}
