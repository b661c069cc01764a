// Package theme holds the theme document model together with its defaults,
// deep copy, validation and by-name field access.
package theme

import "github.com/unkn0wn-root/themekit/internal/color"

// ShadowLevels is the number of elevation slots every document carries.
const ShadowLevels = 26

// Document is the root aggregate. Sections are pointers so that a decoder can
// tell an absent section from one holding zero values.
type Document struct {
	PaletteLight *Palette          `json:"paletteLight"     toml:"paletteLight"     yaml:"paletteLight"`
	PaletteDark  *Palette          `json:"paletteDark"      toml:"paletteDark"      yaml:"paletteDark"`
	Typography   *Typography       `json:"typography"       toml:"typography"       yaml:"typography"`
	Layout       *LayoutProperties `json:"layoutProperties" toml:"layoutProperties" yaml:"layoutProperties"`
	ZIndex       *ZIndex           `json:"zIndex"           toml:"zIndex"           yaml:"zIndex"`
	Shadows      *Shadows          `json:"shadows"          toml:"shadows"          yaml:"shadows"`
}

// Palette holds one color variant. Light and dark palettes share the same shape.
type Palette struct {
	Primary                  color.Value `json:"primary"                  toml:"primary"                  yaml:"primary"`
	PrimaryContrastText      color.Value `json:"primaryContrastText"      toml:"primaryContrastText"      yaml:"primaryContrastText"`
	Secondary                color.Value `json:"secondary"                toml:"secondary"                yaml:"secondary"`
	SecondaryContrastText    color.Value `json:"secondaryContrastText"    toml:"secondaryContrastText"    yaml:"secondaryContrastText"`
	Tertiary                 color.Value `json:"tertiary"                 toml:"tertiary"                 yaml:"tertiary"`
	TertiaryContrastText     color.Value `json:"tertiaryContrastText"     toml:"tertiaryContrastText"     yaml:"tertiaryContrastText"`
	Success                  color.Value `json:"success"                  toml:"success"                  yaml:"success"`
	SuccessContrastText      color.Value `json:"successContrastText"      toml:"successContrastText"      yaml:"successContrastText"`
	Info                     color.Value `json:"info"                     toml:"info"                     yaml:"info"`
	InfoContrastText         color.Value `json:"infoContrastText"         toml:"infoContrastText"         yaml:"infoContrastText"`
	Warning                  color.Value `json:"warning"                  toml:"warning"                  yaml:"warning"`
	WarningContrastText      color.Value `json:"warningContrastText"      toml:"warningContrastText"      yaml:"warningContrastText"`
	Error                    color.Value `json:"error"                    toml:"error"                    yaml:"error"`
	ErrorContrastText        color.Value `json:"errorContrastText"        toml:"errorContrastText"        yaml:"errorContrastText"`
	Dark                     color.Value `json:"dark"                     toml:"dark"                     yaml:"dark"`
	DarkContrastText         color.Value `json:"darkContrastText"         toml:"darkContrastText"         yaml:"darkContrastText"`
	Background               color.Value `json:"background"               toml:"background"               yaml:"background"`
	BackgroundGray           color.Value `json:"backgroundGray"           toml:"backgroundGray"           yaml:"backgroundGray"`
	Surface                  color.Value `json:"surface"                  toml:"surface"                  yaml:"surface"`
	AppbarBackground         color.Value `json:"appbarBackground"         toml:"appbarBackground"         yaml:"appbarBackground"`
	AppbarText               color.Value `json:"appbarText"               toml:"appbarText"               yaml:"appbarText"`
	DrawerBackground         color.Value `json:"drawerBackground"         toml:"drawerBackground"         yaml:"drawerBackground"`
	DrawerText               color.Value `json:"drawerText"               toml:"drawerText"               yaml:"drawerText"`
	DrawerIcon               color.Value `json:"drawerIcon"               toml:"drawerIcon"               yaml:"drawerIcon"`
	TextPrimary              color.Value `json:"textPrimary"              toml:"textPrimary"              yaml:"textPrimary"`
	TextSecondary            color.Value `json:"textSecondary"            toml:"textSecondary"            yaml:"textSecondary"`
	TextDisabled             color.Value `json:"textDisabled"             toml:"textDisabled"             yaml:"textDisabled"`
	ActionDefault            color.Value `json:"actionDefault"            toml:"actionDefault"            yaml:"actionDefault"`
	ActionDisabled           color.Value `json:"actionDisabled"           toml:"actionDisabled"           yaml:"actionDisabled"`
	ActionDisabledBackground color.Value `json:"actionDisabledBackground" toml:"actionDisabledBackground" yaml:"actionDisabledBackground"`
	LinesDefault             color.Value `json:"linesDefault"             toml:"linesDefault"             yaml:"linesDefault"`
	LinesInputs              color.Value `json:"linesInputs"              toml:"linesInputs"              yaml:"linesInputs"`
	TableLines               color.Value `json:"tableLines"               toml:"tableLines"               yaml:"tableLines"`
	TableStriped             color.Value `json:"tableStriped"             toml:"tableStriped"             yaml:"tableStriped"`
	TableHover               color.Value `json:"tableHover"               toml:"tableHover"               yaml:"tableHover"`
	Divider                  color.Value `json:"divider"                  toml:"divider"                  yaml:"divider"`
	DividerLight             color.Value `json:"dividerLight"             toml:"dividerLight"             yaml:"dividerLight"`
	OverlayDark              color.Value `json:"overlayDark"              toml:"overlayDark"              yaml:"overlayDark"`
	OverlayLight             color.Value `json:"overlayLight"             toml:"overlayLight"             yaml:"overlayLight"`
	Black                    color.Value `json:"black"                    toml:"black"                    yaml:"black"`
	White                    color.Value `json:"white"                    toml:"white"                    yaml:"white"`
	GrayDefault              color.Value `json:"grayDefault"              toml:"grayDefault"              yaml:"grayDefault"`
	GrayLight                color.Value `json:"grayLight"                toml:"grayLight"                yaml:"grayLight"`
	GrayLighter              color.Value `json:"grayLighter"              toml:"grayLighter"              yaml:"grayLighter"`
	GrayDark                 color.Value `json:"grayDark"                 toml:"grayDark"                 yaml:"grayDark"`
	GrayDarker               color.Value `json:"grayDarker"               toml:"grayDarker"               yaml:"grayDarker"`
	Skeleton                 color.Value `json:"skeleton"                 toml:"skeleton"                 yaml:"skeleton"`
	HoverOpacity             float64     `json:"hoverOpacity"             toml:"hoverOpacity"             yaml:"hoverOpacity"`
	RippleOpacity            float64     `json:"rippleOpacity"            toml:"rippleOpacity"            yaml:"rippleOpacity"`
	RippleOpacitySecondary   float64     `json:"rippleOpacitySecondary"   toml:"rippleOpacitySecondary"   yaml:"rippleOpacitySecondary"`
	BorderOpacity            float64     `json:"borderOpacity"            toml:"borderOpacity"            yaml:"borderOpacity"`
}

type Typography struct {
	Default   DefaultTypography `json:"default"   toml:"default"   yaml:"default"`
	H1        FontStyle         `json:"h1"        toml:"h1"        yaml:"h1"`
	H2        FontStyle         `json:"h2"        toml:"h2"        yaml:"h2"`
	H3        FontStyle         `json:"h3"        toml:"h3"        yaml:"h3"`
	H4        FontStyle         `json:"h4"        toml:"h4"        yaml:"h4"`
	H5        FontStyle         `json:"h5"        toml:"h5"        yaml:"h5"`
	H6        FontStyle         `json:"h6"        toml:"h6"        yaml:"h6"`
	Subtitle1 FontStyle         `json:"subtitle1" toml:"subtitle1" yaml:"subtitle1"`
	Subtitle2 FontStyle         `json:"subtitle2" toml:"subtitle2" yaml:"subtitle2"`
	Button    ButtonStyle       `json:"button"    toml:"button"    yaml:"button"`
}

type DefaultTypography struct {
	FontFamily    []string `json:"fontFamily"    toml:"fontFamily"    yaml:"fontFamily"`
	FontSize      string   `json:"fontSize"      toml:"fontSize"      yaml:"fontSize"`
	FontWeight    string   `json:"fontWeight"    toml:"fontWeight"    yaml:"fontWeight"`
	LineHeight    string   `json:"lineHeight"    toml:"lineHeight"    yaml:"lineHeight"`
	LetterSpacing string   `json:"letterSpacing" toml:"letterSpacing" yaml:"letterSpacing"`
}

type FontStyle struct {
	FontWeight string `json:"fontWeight" toml:"fontWeight" yaml:"fontWeight"`
}

type ButtonStyle struct {
	FontWeight    string `json:"fontWeight"    toml:"fontWeight"    yaml:"fontWeight"`
	TextTransform string `json:"textTransform" toml:"textTransform" yaml:"textTransform"`
}

type LayoutProperties struct {
	DefaultBorderRadius  string `json:"defaultBorderRadius"  toml:"defaultBorderRadius"  yaml:"defaultBorderRadius"`
	AppbarHeight         string `json:"appbarHeight"         toml:"appbarHeight"         yaml:"appbarHeight"`
	DrawerWidthLeft      string `json:"drawerWidthLeft"      toml:"drawerWidthLeft"      yaml:"drawerWidthLeft"`
	DrawerWidthRight     string `json:"drawerWidthRight"     toml:"drawerWidthRight"     yaml:"drawerWidthRight"`
	DrawerMiniWidthLeft  string `json:"drawerMiniWidthLeft"  toml:"drawerMiniWidthLeft"  yaml:"drawerMiniWidthLeft"`
	DrawerMiniWidthRight string `json:"drawerMiniWidthRight" toml:"drawerMiniWidthRight" yaml:"drawerMiniWidthRight"`
}

type ZIndex struct {
	Drawer   int `json:"drawer"   toml:"drawer"   yaml:"drawer"`
	AppBar   int `json:"appBar"   toml:"appBar"   yaml:"appBar"`
	Dialog   int `json:"dialog"   toml:"dialog"   yaml:"dialog"`
	Popover  int `json:"popover"  toml:"popover"  yaml:"popover"`
	Snackbar int `json:"snackbar" toml:"snackbar" yaml:"snackbar"`
	Tooltip  int `json:"tooltip"  toml:"tooltip"  yaml:"tooltip"`
}

// Shadows holds one CSS box-shadow per elevation level, index 0 first.
type Shadows struct {
	Elevation []string `json:"elevation" toml:"elevation" yaml:"elevation"`
}

// Palette returns the light or dark variant.
func (d *Document) Palette(dark bool) *Palette {
	if d == nil {
		return nil
	}
	if dark {
		return d.PaletteDark
	}
	return d.PaletteLight
}
