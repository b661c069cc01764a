package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

const (
	markerPaletteLight = "PaletteLight = new"
	markerPaletteDark  = "PaletteDark = new"
	markerTypography   = "Default = new DefaultTypography"
	markerLayout       = "LayoutProperties = new"
	markerZIndex       = "ZIndex = new"
	markerElevation    = "Elevation = new"
)

// Report describes how much of a source text a decode actually used.
type Report struct {
	// Missing lists the section markers that were not found; those
	// sections kept their baseline values.
	Missing []string
	// Applied counts scalar and array values taken from the text.
	Applied int
}

// Decode reads a theme from object-initializer source. It never fails on
// missing or malformed values: anything it cannot read keeps the baseline.
func Decode(text string) (*theme.Document, error) {
	doc, _, err := DecodeWithReport(text)
	return doc, err
}

func DecodeWithReport(text string) (doc *theme.Document, report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = errdef.Wrap(errdef.CodeParse, fmt.Errorf("%v", r), "decode source")
		}
	}()

	d := &decoder{text: text, doc: theme.Baseline()}
	d.palette(markerPaletteLight, d.doc.PaletteLight)
	d.palette(markerPaletteDark, d.doc.PaletteDark)
	d.typography()
	d.layout()
	d.zIndex()
	d.shadows()
	return d.doc, d.report, nil
}

type decoder struct {
	text   string
	doc    *theme.Document
	report Report
}

func (d *decoder) section(marker string) (string, bool) {
	block, err := ExtractSection(d.text, marker)
	if err != nil {
		d.report.Missing = append(d.report.Missing, marker)
		return "", false
	}
	return block, true
}

func (d *decoder) palette(marker string, p *theme.Palette) {
	section, ok := d.section(marker)
	if !ok {
		return
	}
	for _, field := range theme.PaletteFields {
		raw, ok := ExtractScalar(section, field.Name)
		if !ok {
			continue
		}
		if field.Set(p, raw) == nil {
			d.report.Applied++
		}
	}
}

func (d *decoder) typography() {
	t := d.doc.Typography
	if section, ok := d.section(markerTypography); ok {
		if fonts, ok := ExtractArray(section, "FontFamily"); ok && len(fonts) > 0 {
			t.Default.FontFamily = fonts
			d.report.Applied++
		}
		d.scalar(section, "FontSize", &t.Default.FontSize)
		d.scalar(section, "FontWeight", &t.Default.FontWeight)
		d.scalar(section, "LineHeight", &t.Default.LineHeight)
		d.scalar(section, "LetterSpacing", &t.Default.LetterSpacing)
	}

	styles := []struct {
		name   string
		weight *string
	}{
		{"H1", &t.H1.FontWeight},
		{"H2", &t.H2.FontWeight},
		{"H3", &t.H3.FontWeight},
		{"H4", &t.H4.FontWeight},
		{"H5", &t.H5.FontWeight},
		{"H6", &t.H6.FontWeight},
		{"Subtitle1", &t.Subtitle1.FontWeight},
		{"Subtitle2", &t.Subtitle2.FontWeight},
		{"Button", &t.Button.FontWeight},
	}
	for _, s := range styles {
		if v, ok := ExtractNestedScalar(d.text, s.name, "FontWeight"); ok {
			*s.weight = v
			d.report.Applied++
		}
	}
	if v, ok := ExtractNestedScalar(d.text, "Button", "TextTransform"); ok {
		t.Button.TextTransform = v
		d.report.Applied++
	}
}

func (d *decoder) scalar(section, name string, dst *string) {
	if v, ok := ExtractScalar(section, name); ok {
		*dst = v
		d.report.Applied++
	}
}

func (d *decoder) layout() {
	section, ok := d.section(markerLayout)
	if !ok {
		return
	}
	for _, name := range theme.LayoutNames {
		raw, ok := ExtractScalar(section, name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if theme.SetField(d.doc, "layoutProperties."+name, raw) == nil {
			d.report.Applied++
		}
	}
}

func (d *decoder) zIndex() {
	section, ok := d.section(markerZIndex)
	if !ok {
		return
	}
	for _, name := range theme.ZIndexNames {
		raw, ok := ExtractScalar(section, name)
		if !ok {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(raw)); err != nil {
			continue
		}
		if theme.SetField(d.doc, "zIndex."+name, raw) == nil {
			d.report.Applied++
		}
	}
}

func (d *decoder) shadows() {
	section, ok := d.section(markerElevation)
	if !ok {
		return
	}
	items := splitItems(inner(section))
	elevation := d.doc.Shadows.Elevation
	n := min(len(items), len(elevation))
	for i := 0; i < n; i++ {
		elevation[i] = items[i]
	}
	d.report.Applied += n
}

