package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/themekit/internal/color"
)

type FieldKind int

const (
	KindColor FieldKind = iota
	KindOpacity
)

func (k FieldKind) String() string {
	if k == KindOpacity {
		return "opacity"
	}
	return "color"
}

// PaletteField describes one palette member and how to reach it.
type PaletteField struct {
	Name string
	Kind FieldKind

	color   func(*Palette) *color.Value
	opacity func(*Palette) *float64
}

func colorField(name string, at func(*Palette) *color.Value) PaletteField {
	return PaletteField{Name: name, Kind: KindColor, color: at}
}

func opacityField(name string, at func(*Palette) *float64) PaletteField {
	return PaletteField{Name: name, Kind: KindOpacity, opacity: at}
}

// PaletteFields lists every palette member in declaration order.
var PaletteFields = []PaletteField{
	colorField("Primary", func(p *Palette) *color.Value { return &p.Primary }),
	colorField("PrimaryContrastText", func(p *Palette) *color.Value { return &p.PrimaryContrastText }),
	colorField("Secondary", func(p *Palette) *color.Value { return &p.Secondary }),
	colorField("SecondaryContrastText", func(p *Palette) *color.Value { return &p.SecondaryContrastText }),
	colorField("Tertiary", func(p *Palette) *color.Value { return &p.Tertiary }),
	colorField("TertiaryContrastText", func(p *Palette) *color.Value { return &p.TertiaryContrastText }),
	colorField("Success", func(p *Palette) *color.Value { return &p.Success }),
	colorField("SuccessContrastText", func(p *Palette) *color.Value { return &p.SuccessContrastText }),
	colorField("Info", func(p *Palette) *color.Value { return &p.Info }),
	colorField("InfoContrastText", func(p *Palette) *color.Value { return &p.InfoContrastText }),
	colorField("Warning", func(p *Palette) *color.Value { return &p.Warning }),
	colorField("WarningContrastText", func(p *Palette) *color.Value { return &p.WarningContrastText }),
	colorField("Error", func(p *Palette) *color.Value { return &p.Error }),
	colorField("ErrorContrastText", func(p *Palette) *color.Value { return &p.ErrorContrastText }),
	colorField("Dark", func(p *Palette) *color.Value { return &p.Dark }),
	colorField("DarkContrastText", func(p *Palette) *color.Value { return &p.DarkContrastText }),
	colorField("Background", func(p *Palette) *color.Value { return &p.Background }),
	colorField("BackgroundGray", func(p *Palette) *color.Value { return &p.BackgroundGray }),
	colorField("Surface", func(p *Palette) *color.Value { return &p.Surface }),
	colorField("AppbarBackground", func(p *Palette) *color.Value { return &p.AppbarBackground }),
	colorField("AppbarText", func(p *Palette) *color.Value { return &p.AppbarText }),
	colorField("DrawerBackground", func(p *Palette) *color.Value { return &p.DrawerBackground }),
	colorField("DrawerText", func(p *Palette) *color.Value { return &p.DrawerText }),
	colorField("DrawerIcon", func(p *Palette) *color.Value { return &p.DrawerIcon }),
	colorField("TextPrimary", func(p *Palette) *color.Value { return &p.TextPrimary }),
	colorField("TextSecondary", func(p *Palette) *color.Value { return &p.TextSecondary }),
	colorField("TextDisabled", func(p *Palette) *color.Value { return &p.TextDisabled }),
	colorField("ActionDefault", func(p *Palette) *color.Value { return &p.ActionDefault }),
	colorField("ActionDisabled", func(p *Palette) *color.Value { return &p.ActionDisabled }),
	colorField("ActionDisabledBackground", func(p *Palette) *color.Value { return &p.ActionDisabledBackground }),
	colorField("LinesDefault", func(p *Palette) *color.Value { return &p.LinesDefault }),
	colorField("LinesInputs", func(p *Palette) *color.Value { return &p.LinesInputs }),
	colorField("TableLines", func(p *Palette) *color.Value { return &p.TableLines }),
	colorField("TableStriped", func(p *Palette) *color.Value { return &p.TableStriped }),
	colorField("TableHover", func(p *Palette) *color.Value { return &p.TableHover }),
	colorField("Divider", func(p *Palette) *color.Value { return &p.Divider }),
	colorField("DividerLight", func(p *Palette) *color.Value { return &p.DividerLight }),
	colorField("OverlayDark", func(p *Palette) *color.Value { return &p.OverlayDark }),
	colorField("OverlayLight", func(p *Palette) *color.Value { return &p.OverlayLight }),
	colorField("Black", func(p *Palette) *color.Value { return &p.Black }),
	colorField("White", func(p *Palette) *color.Value { return &p.White }),
	colorField("GrayDefault", func(p *Palette) *color.Value { return &p.GrayDefault }),
	colorField("GrayLight", func(p *Palette) *color.Value { return &p.GrayLight }),
	colorField("GrayLighter", func(p *Palette) *color.Value { return &p.GrayLighter }),
	colorField("GrayDark", func(p *Palette) *color.Value { return &p.GrayDark }),
	colorField("GrayDarker", func(p *Palette) *color.Value { return &p.GrayDarker }),
	colorField("Skeleton", func(p *Palette) *color.Value { return &p.Skeleton }),
	opacityField("HoverOpacity", func(p *Palette) *float64 { return &p.HoverOpacity }),
	opacityField("RippleOpacity", func(p *Palette) *float64 { return &p.RippleOpacity }),
	opacityField("RippleOpacitySecondary", func(p *Palette) *float64 { return &p.RippleOpacitySecondary }),
	opacityField("BorderOpacity", func(p *Palette) *float64 { return &p.BorderOpacity }),
}

var paletteIndex = func() map[string]int {
	index := make(map[string]int, len(PaletteFields))
	for i, f := range PaletteFields {
		index[strings.ToLower(f.Name)] = i
	}
	return index
}()

// LookupPaletteField finds a field by name, ignoring case.
func LookupPaletteField(name string) (PaletteField, bool) {
	i, ok := paletteIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PaletteField{}, false
	}
	return PaletteFields[i], true
}

// Get renders the field as text; opacities use the shortest decimal form.
func (f PaletteField) Get(p *Palette) string {
	if p == nil {
		return ""
	}
	if f.Kind == KindOpacity {
		return strconv.FormatFloat(*f.opacity(p), 'f', -1, 64)
	}
	return string(*f.color(p))
}

func (f PaletteField) Color(p *Palette) color.Value {
	if p == nil || f.Kind != KindColor {
		return ""
	}
	return *f.color(p)
}

func (f PaletteField) Opacity(p *Palette) float64 {
	if p == nil || f.Kind != KindOpacity {
		return 0
	}
	return *f.opacity(p)
}

// Set parses raw according to the field kind and stores it on p.
func (f PaletteField) Set(p *Palette, raw string) error {
	if p == nil {
		return fmt.Errorf("%s: palette is missing", f.Name)
	}
	if f.Kind == KindOpacity {
		v, err := ParseOpacity(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		*f.opacity(p) = v
		return nil
	}
	v, err := color.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	*f.color(p) = v
	return nil
}

// SetOpacity stores v directly; it is only valid for opacity fields.
func (f PaletteField) SetOpacity(p *Palette, v float64) {
	if p == nil || f.Kind != KindOpacity {
		return
	}
	*f.opacity(p) = v
}

// SetColor stores v without re-parsing it.
func (f PaletteField) SetColor(p *Palette, v color.Value) {
	if p == nil || f.Kind != KindColor {
		return
	}
	*f.color(p) = v
}

// ParseOpacity accepts a decimal in [0,1].
func ParseOpacity(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("opacity %q is not a number", raw)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("opacity %v is outside 0-1", v)
	}
	return v, nil
}
