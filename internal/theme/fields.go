package theme

import (
	"strconv"
	"strings"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

// Field paths are dotted and case-insensitive:
//
//	paletteLight.Primary
//	paletteDark.HoverOpacity
//	typography.H1.FontWeight
//	typography.Default.FontFamily   (comma separated)
//	layoutProperties.AppbarHeight   (alias: layout)
//	zIndex.Drawer
//	shadows.3

// TypographySections lists the typography styles in declaration order.
var TypographySections = []string{
	"Default", "H1", "H2", "H3", "H4", "H5", "H6", "Subtitle1", "Subtitle2", "Button",
}

var LayoutNames = []string{
	"DefaultBorderRadius",
	"AppbarHeight",
	"DrawerWidthLeft",
	"DrawerWidthRight",
	"DrawerMiniWidthLeft",
	"DrawerMiniWidthRight",
}

var ZIndexNames = []string{"Drawer", "AppBar", "Dialog", "Popover", "Snackbar", "Tooltip"}

// GetField returns the value at path formatted as SetField accepts it.
// Missing layout and z-index sections report their defaults.
func GetField(d *Document, path string) (string, error) {
	if d == nil {
		return "", errdef.New(errdef.CodeNotFound, "document is nil")
	}
	section, rest, err := splitPath(path)
	if err != nil {
		return "", err
	}
	switch section {
	case "palettelight", "palettedark":
		p := d.Palette(section == "palettedark")
		if p == nil {
			return "", missingSection(section)
		}
		f, ok := LookupPaletteField(rest)
		if !ok {
			return "", unknownField(path)
		}
		return f.Get(p), nil
	case "typography":
		if d.Typography == nil {
			return "", missingSection(section)
		}
		style, prop, ok := strings.Cut(rest, ".")
		if !ok {
			return "", unknownField(path)
		}
		return typographyGet(d.Typography, style, prop)
	case "layoutproperties", "layout":
		if d.Layout == nil {
			return DefaultLayoutValue(rest), nil
		}
		return layoutGet(d.Layout, rest)
	case "zindex":
		if d.ZIndex == nil {
			return strconv.Itoa(DefaultZIndexValue(rest)), nil
		}
		v, err := zIndexGet(d.ZIndex, rest)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case "shadows":
		if d.Shadows == nil {
			return "", missingSection(section)
		}
		i, err := shadowIndex(rest, len(d.Shadows.Elevation))
		if err != nil {
			return "", err
		}
		return d.Shadows.Elevation[i], nil
	}
	return "", unknownField(path)
}

// SetField parses value for the field at path and stores it on d.
// Colors are normalized, layout dimensions gain "px" when bare.
func SetField(d *Document, path, value string) error {
	if d == nil {
		return errdef.New(errdef.CodeNotFound, "document is nil")
	}
	section, rest, err := splitPath(path)
	if err != nil {
		return err
	}
	switch section {
	case "palettelight", "palettedark":
		p := d.Palette(section == "palettedark")
		if p == nil {
			return missingSection(section)
		}
		f, ok := LookupPaletteField(rest)
		if !ok {
			return unknownField(path)
		}
		if err := f.Set(p, value); err != nil {
			return errdef.Wrap(errdef.CodeValidation, err, "%s", section)
		}
		return nil
	case "typography":
		if d.Typography == nil {
			return missingSection(section)
		}
		style, prop, ok := strings.Cut(rest, ".")
		if !ok {
			return unknownField(path)
		}
		return typographySet(d.Typography, style, prop, value)
	case "layoutproperties", "layout":
		if d.Layout == nil {
			return missingSection(section)
		}
		return layoutSet(d.Layout, rest, NormalizeDimension(rest, value))
	case "zindex":
		if d.ZIndex == nil {
			return missingSection(section)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errdef.Invalid(path, "z-index %q is not an integer", value)
		}
		return zIndexSet(d.ZIndex, rest, n)
	case "shadows":
		if d.Shadows == nil {
			return missingSection(section)
		}
		i, err := shadowIndex(rest, len(d.Shadows.Elevation))
		if err != nil {
			return err
		}
		d.Shadows.Elevation[i] = strings.TrimSpace(value)
		return nil
	}
	return unknownField(path)
}

// NormalizeDimension appends "px" to a bare number when name refers to a
// width, height or radius. Other values are returned trimmed.
func NormalizeDimension(name, value string) string {
	trimmed := strings.TrimSpace(value)
	if !isDimension(name) || trimmed == "" {
		return trimmed
	}
	if strings.HasSuffix(trimmed, "px") || strings.HasSuffix(trimmed, "em") {
		return trimmed
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return trimmed + "px"
	}
	return trimmed
}

func isDimension(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "width") ||
		strings.Contains(lower, "height") ||
		strings.Contains(lower, "radius")
}

func splitPath(path string) (string, string, error) {
	section, rest, ok := strings.Cut(strings.TrimSpace(path), ".")
	if !ok || section == "" || rest == "" {
		return "", "", errdef.New(errdef.CodeNotFound, "field path %q must be section.name", path)
	}
	return strings.ToLower(section), rest, nil
}

func typographyGet(t *Typography, style, prop string) (string, error) {
	switch strings.ToLower(style) {
	case "default":
		switch strings.ToLower(prop) {
		case "fontfamily":
			return strings.Join(t.Default.FontFamily, ", "), nil
		case "fontsize":
			return t.Default.FontSize, nil
		case "fontweight":
			return t.Default.FontWeight, nil
		case "lineheight":
			return t.Default.LineHeight, nil
		case "letterspacing":
			return t.Default.LetterSpacing, nil
		}
	case "button":
		switch strings.ToLower(prop) {
		case "fontweight":
			return t.Button.FontWeight, nil
		case "texttransform":
			return t.Button.TextTransform, nil
		}
	default:
		fs := fontStyle(t, style)
		if fs != nil && strings.EqualFold(prop, "FontWeight") {
			return fs.FontWeight, nil
		}
	}
	return "", unknownField("typography." + style + "." + prop)
}

func typographySet(t *Typography, style, prop, value string) error {
	switch strings.ToLower(style) {
	case "default":
		switch strings.ToLower(prop) {
		case "fontfamily":
			t.Default.FontFamily = SplitFontFamily(value)
		case "fontsize":
			t.Default.FontSize = strings.TrimSpace(value)
		case "fontweight":
			t.Default.FontWeight = strings.TrimSpace(value)
		case "lineheight":
			t.Default.LineHeight = strings.TrimSpace(value)
		case "letterspacing":
			t.Default.LetterSpacing = strings.TrimSpace(value)
		default:
			return unknownField("typography." + style + "." + prop)
		}
		return nil
	case "button":
		switch strings.ToLower(prop) {
		case "fontweight":
			t.Button.FontWeight = strings.TrimSpace(value)
		case "texttransform":
			t.Button.TextTransform = strings.TrimSpace(value)
		default:
			return unknownField("typography." + style + "." + prop)
		}
		return nil
	}
	fs := fontStyle(t, style)
	if fs == nil || !strings.EqualFold(prop, "FontWeight") {
		return unknownField("typography." + style + "." + prop)
	}
	fs.FontWeight = strings.TrimSpace(value)
	return nil
}

// SplitFontFamily splits a comma separated list, dropping blanks and quotes.
func SplitFontFamily(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fontStyle(t *Typography, style string) *FontStyle {
	switch strings.ToLower(style) {
	case "h1":
		return &t.H1
	case "h2":
		return &t.H2
	case "h3":
		return &t.H3
	case "h4":
		return &t.H4
	case "h5":
		return &t.H5
	case "h6":
		return &t.H6
	case "subtitle1":
		return &t.Subtitle1
	case "subtitle2":
		return &t.Subtitle2
	}
	return nil
}

func layoutField(l *LayoutProperties, name string) *string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "defaultborderradius":
		return &l.DefaultBorderRadius
	case "appbarheight":
		return &l.AppbarHeight
	case "drawerwidthleft":
		return &l.DrawerWidthLeft
	case "drawerwidthright":
		return &l.DrawerWidthRight
	case "drawerminiwidthleft":
		return &l.DrawerMiniWidthLeft
	case "drawerminiwidthright":
		return &l.DrawerMiniWidthRight
	}
	return nil
}

func layoutGet(l *LayoutProperties, name string) (string, error) {
	ptr := layoutField(l, name)
	if ptr == nil {
		return "", unknownField("layoutProperties." + name)
	}
	return *ptr, nil
}

func layoutSet(l *LayoutProperties, name, value string) error {
	ptr := layoutField(l, name)
	if ptr == nil {
		return unknownField("layoutProperties." + name)
	}
	*ptr = value
	return nil
}

func zIndexField(z *ZIndex, name string) *int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "drawer":
		return &z.Drawer
	case "appbar":
		return &z.AppBar
	case "dialog":
		return &z.Dialog
	case "popover":
		return &z.Popover
	case "snackbar":
		return &z.Snackbar
	case "tooltip":
		return &z.Tooltip
	}
	return nil
}

func zIndexGet(z *ZIndex, name string) (int, error) {
	ptr := zIndexField(z, name)
	if ptr == nil {
		return 0, unknownField("zIndex." + name)
	}
	return *ptr, nil
}

func zIndexSet(z *ZIndex, name string, v int) error {
	ptr := zIndexField(z, name)
	if ptr == nil {
		return unknownField("zIndex." + name)
	}
	*ptr = v
	return nil
}

func shadowIndex(raw string, size int) (int, error) {
	raw = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "elevation.")
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= size {
		return 0, errdef.New(errdef.CodeNotFound, "shadow level %q is out of range 0-%d", raw, size-1)
	}
	return i, nil
}

func missingSection(section string) error {
	return errdef.New(errdef.CodeNotFound, "section %s is missing", section)
}

func unknownField(path string) error {
	return errdef.New(errdef.CodeNotFound, "unknown field %q", path)
}
