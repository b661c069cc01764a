package theme

import "fmt"

const (
	DefaultThemeName = "CashableTheme"
	CoolMinimalName  = "Cool Minimal Theme"
	UltraMinimalName = "Ultra Minimal Theme"
	WarmMinimalName  = "Warm Minimal Theme"
)

// BuiltinNames lists the built-in collection in display order.
var BuiltinNames = []string{DefaultThemeName, CoolMinimalName, UltraMinimalName, WarmMinimalName}

var defaultLayout = LayoutProperties{
	DefaultBorderRadius:  "0.313rem",
	AppbarHeight:         "64px",
	DrawerWidthLeft:      "280px",
	DrawerWidthRight:     "320px",
	DrawerMiniWidthLeft:  "56px",
	DrawerMiniWidthRight: "56px",
}

var defaultZIndex = ZIndex{
	Drawer:   1200,
	AppBar:   1100,
	Dialog:   1300,
	Popover:  1400,
	Snackbar: 1500,
	Tooltip:  1600,
}

// Baseline is the document every source decode starts from: stock palettes,
// stock typography, stock layout and a generated shadow ramp.
func Baseline() *Document {
	light := stockLight
	dark := stockDark
	layout := defaultLayout
	z := defaultZIndex
	return &Document{
		PaletteLight: &light,
		PaletteDark:  &dark,
		Typography: &Typography{
			Default: DefaultTypography{
				FontFamily:    []string{"Inter", "sans-serif"},
				FontSize:      ".875rem",
				FontWeight:    "400",
				LineHeight:    "1.43",
				LetterSpacing: ".01071em",
			},
			H1:        FontStyle{FontWeight: "600"},
			H2:        FontStyle{FontWeight: "600"},
			H3:        FontStyle{FontWeight: "600"},
			H4:        FontStyle{FontWeight: "600"},
			H5:        FontStyle{FontWeight: "600"},
			H6:        FontStyle{FontWeight: "600"},
			Subtitle1: FontStyle{FontWeight: "500"},
			Subtitle2: FontStyle{FontWeight: "500"},
			Button:    ButtonStyle{FontWeight: "500", TextTransform: "uppercase"},
		},
		Layout:  &layout,
		ZIndex:  &z,
		Shadows: &Shadows{Elevation: DefaultShadows()},
	}
}

// DefaultShadows returns the generated ramp: "none" then 0px Npx 2Npx 0px.
func DefaultShadows() []string {
	out := make([]string, ShadowLevels)
	for i := range out {
		if i == 0 {
			out[i] = "none"
			continue
		}
		out[i] = fmt.Sprintf("0px %dpx %dpx 0px rgba(0,0,0,0.2)", i, i*2)
	}
	return out
}

// DefaultLayoutValue is the fallback for a layout property name, or "" when unknown.
func DefaultLayoutValue(name string) string {
	v, err := layoutGet(&defaultLayout, name)
	if err != nil {
		return ""
	}
	return v
}

// DefaultZIndexValue is the fallback for a z-index name; unknown names get 1000.
func DefaultZIndexValue(name string) int {
	v, err := zIndexGet(&defaultZIndex, name)
	if err != nil {
		return 1000
	}
	return v
}

// Cashable builds a fresh copy of the default named theme.
func Cashable() *Document {
	light := cashableLight
	dark := cashableDark
	return &Document{
		PaletteLight: &light,
		PaletteDark:  &dark,
		Typography: &Typography{
			Default: DefaultTypography{
				FontFamily: []string{
					"Inter",
					"SF Pro Display",
					"Helvetica Neue",
					"-apple-system",
					"BlinkMacSystemFont",
					"sans-serif",
				},
				FontSize:      "0.875rem",
				FontWeight:    "400",
				LineHeight:    "1.5",
				LetterSpacing: "-0.006em",
			},
			H1:        FontStyle{FontWeight: "700"},
			H2:        FontStyle{FontWeight: "600"},
			H3:        FontStyle{FontWeight: "600"},
			H4:        FontStyle{FontWeight: "500"},
			H5:        FontStyle{FontWeight: "500"},
			H6:        FontStyle{FontWeight: "500"},
			Subtitle1: FontStyle{FontWeight: "500"},
			Subtitle2: FontStyle{FontWeight: "400"},
			Button:    ButtonStyle{FontWeight: "500", TextTransform: "none"},
		},
		Layout: &LayoutProperties{
			DefaultBorderRadius:  "8px",
			AppbarHeight:         "56px",
			DrawerWidthLeft:      "260px",
			DrawerWidthRight:     "300px",
			DrawerMiniWidthLeft:  "64px",
			DrawerMiniWidthRight: "64px",
		},
		ZIndex: &ZIndex{
			Drawer:   1100,
			AppBar:   1000,
			Dialog:   1300,
			Popover:  1400,
			Snackbar: 1500,
			Tooltip:  1600,
		},
		Shadows: &Shadows{Elevation: append([]string(nil), cashableShadows...)},
	}
}

func CoolMinimal() *Document {
	return Customize(Cashable(), func(d *Document) {
		d.PaletteLight.Primary = "#3498DB"
		d.PaletteLight.Secondary = "#9B59B6"
		d.PaletteLight.Background = "#F8FAFB"
		d.PaletteLight.Surface = "#FFFFFF"
		d.PaletteLight.TextPrimary = "#1E3A8A"
	})
}

func UltraMinimal() *Document {
	return Customize(Cashable(), func(d *Document) {
		d.PaletteLight.LinesDefault = "rgba(44,62,80,0.02)"
		d.PaletteLight.Divider = "rgba(44,62,80,0.03)"
		d.Layout.DefaultBorderRadius = "12px"
	})
}

func WarmMinimal() *Document {
	return Customize(Cashable(), func(d *Document) {
		d.PaletteLight.Primary = "#E67E22"
		d.PaletteLight.Secondary = "#8E44AD"
		d.PaletteLight.Background = "#FDF6E3"
		d.PaletteLight.Surface = "#FFFBF0"
		d.PaletteLight.TextPrimary = "#5D4037"
	})
}

// Builtins returns freshly built copies of the built-in collection.
func Builtins() map[string]*Document {
	return map[string]*Document{
		DefaultThemeName: Cashable(),
		CoolMinimalName:  CoolMinimal(),
		UltraMinimalName: UltraMinimal(),
		WarmMinimalName:  WarmMinimal(),
	}
}

// Builtin returns a fresh copy of one built-in theme.
func Builtin(name string) (*Document, bool) {
	switch name {
	case DefaultThemeName:
		return Cashable(), true
	case CoolMinimalName:
		return CoolMinimal(), true
	case UltraMinimalName:
		return UltraMinimal(), true
	case WarmMinimalName:
		return WarmMinimal(), true
	}
	return nil, false
}

var stockLight = Palette{
	Primary:                  "#594AE2",
	PrimaryContrastText:      "#FFFFFF",
	Secondary:                "#FF4081",
	SecondaryContrastText:    "#FFFFFF",
	Tertiary:                 "#1EC8A5",
	TertiaryContrastText:     "#FFFFFF",
	Success:                  "#00C853",
	SuccessContrastText:      "#FFFFFF",
	Info:                     "#2196F3",
	InfoContrastText:         "#FFFFFF",
	Warning:                  "#FF9800",
	WarningContrastText:      "#FFFFFF",
	Error:                    "#F44336",
	ErrorContrastText:        "#FFFFFF",
	Dark:                     "#424242",
	DarkContrastText:         "#FFFFFF",
	Background:               "#FFFFFF",
	BackgroundGray:           "#F5F5F5",
	Surface:                  "#FFFFFF",
	AppbarBackground:         "#594AE2",
	AppbarText:               "#FFFFFF",
	DrawerBackground:         "#FFFFFF",
	DrawerText:               "rgba(66,66,66,1)",
	DrawerIcon:               "rgba(97,97,97,1)",
	TextPrimary:              "rgba(66,66,66,1)",
	TextSecondary:            "rgba(0,0,0,0.54)",
	TextDisabled:             "rgba(0,0,0,0.38)",
	ActionDefault:            "rgba(0,0,0,0.54)",
	ActionDisabled:           "rgba(0,0,0,0.26)",
	ActionDisabledBackground: "rgba(0,0,0,0.12)",
	LinesDefault:             "rgba(0,0,0,0.12)",
	LinesInputs:              "rgba(189,189,189,1)",
	TableLines:               "rgba(224,224,224,1)",
	TableStriped:             "rgba(0,0,0,0.02)",
	TableHover:               "rgba(0,0,0,0.04)",
	Divider:                  "rgba(224,224,224,1)",
	DividerLight:             "rgba(0,0,0,0.8)",
	OverlayDark:              "rgba(33,33,33,0.5)",
	OverlayLight:             "rgba(255,255,255,0.5)",
	Black:                    "#272C34",
	White:                    "#FFFFFF",
	GrayDefault:              "#9E9E9E",
	GrayLight:                "#BDBDBD",
	GrayLighter:              "#E0E0E0",
	GrayDark:                 "#757575",
	GrayDarker:               "#616161",
	Skeleton:                 "rgba(0,0,0,0.11)",
	HoverOpacity:             0.06,
	RippleOpacity:            0.1,
	RippleOpacitySecondary:   0.2,
	BorderOpacity:            1,
}

var stockDark = Palette{
	Primary:                  "#776BE7",
	PrimaryContrastText:      "#FFFFFF",
	Secondary:                "#FF4081",
	SecondaryContrastText:    "#FFFFFF",
	Tertiary:                 "#1EC8A5",
	TertiaryContrastText:     "#FFFFFF",
	Success:                  "#0BBA83",
	SuccessContrastText:      "#FFFFFF",
	Info:                     "#3299FF",
	InfoContrastText:         "#FFFFFF",
	Warning:                  "#FFA800",
	WarningContrastText:      "#FFFFFF",
	Error:                    "#F64E62",
	ErrorContrastText:        "#FFFFFF",
	Dark:                     "#27272F",
	DarkContrastText:         "#FFFFFF",
	Background:               "#32333D",
	BackgroundGray:           "#27272F",
	Surface:                  "#373740",
	AppbarBackground:         "rgba(39,39,47,0.8)",
	AppbarText:               "rgba(255,255,255,0.7)",
	DrawerBackground:         "#27272F",
	DrawerText:               "rgba(255,255,255,0.5)",
	DrawerIcon:               "rgba(255,255,255,0.5)",
	TextPrimary:              "rgba(255,255,255,0.7)",
	TextSecondary:            "rgba(255,255,255,0.5)",
	TextDisabled:             "rgba(255,255,255,0.2)",
	ActionDefault:            "#ADADB1",
	ActionDisabled:           "rgba(255,255,255,0.26)",
	ActionDisabledBackground: "rgba(255,255,255,0.12)",
	LinesDefault:             "rgba(255,255,255,0.12)",
	LinesInputs:              "rgba(255,255,255,0.3)",
	TableLines:               "rgba(255,255,255,0.12)",
	TableStriped:             "rgba(255,255,255,0.2)",
	TableHover:               "rgba(255,255,255,0.04)",
	Divider:                  "rgba(255,255,255,0.12)",
	DividerLight:             "rgba(255,255,255,0.06)",
	OverlayDark:              "rgba(33,33,33,0.5)",
	OverlayLight:             "rgba(255,255,255,0.1)",
	Black:                    "#27272F",
	White:                    "#FFFFFF",
	GrayDefault:              "#9E9E9E",
	GrayLight:                "#2A2833",
	GrayLighter:              "#1E1E2D",
	GrayDark:                 "#757575",
	GrayDarker:               "#616161",
	Skeleton:                 "rgba(255,255,255,0.11)",
	HoverOpacity:             0.06,
	RippleOpacity:            0.1,
	RippleOpacitySecondary:   0.2,
	BorderOpacity:            1,
}

var cashableLight = Palette{
	Primary:                  "#2ECC71",
	PrimaryContrastText:      "#FFFFFF",
	Secondary:                "#6C7B7F",
	SecondaryContrastText:    "#FFFFFF",
	Tertiary:                 "#56C596",
	TertiaryContrastText:     "#FFFFFF",
	Success:                  "#27AE60",
	SuccessContrastText:      "#FFFFFF",
	Info:                     "#3498DB",
	InfoContrastText:         "#FFFFFF",
	Warning:                  "#F39C12",
	WarningContrastText:      "#FFFFFF",
	Error:                    "#E74C3C",
	ErrorContrastText:        "#FFFFFF",
	Dark:                     "#2C3E50",
	DarkContrastText:         "#FFFFFF",
	Background:               "#FEFEFE",
	BackgroundGray:           "#F8F9FA",
	Surface:                  "#FFFFFF",
	AppbarBackground:         "#FFFFFF",
	AppbarText:               "#2C3E50",
	DrawerBackground:         "#FDFDFD",
	DrawerText:               "#2C3E50",
	DrawerIcon:               "#2ECC71",
	TextPrimary:              "#2C3E50",
	TextSecondary:            "#7F8C8D",
	TextDisabled:             "#BDC3C7",
	ActionDefault:            "#95A5A6",
	ActionDisabled:           "#ECF0F1",
	ActionDisabledBackground: "#F8F9FA",
	LinesDefault:             "#ECF0F1",
	LinesInputs:              "#D5DBDB",
	TableLines:               "#F4F6F7",
	TableStriped:             "#FDFDFE",
	TableHover:               "#F8F9FA",
	Divider:                  "#ECEFF1",
	DividerLight:             "#F5F7FA",
	OverlayDark:              "rgba(44,62,80,0.3)",
	OverlayLight:             "rgba(255,255,255,0.8)",
	Black:                    "#2C3E50",
	White:                    "#FFFFFF",
	GrayDefault:              "#95A5A6",
	GrayLight:                "#D5DBDB",
	GrayLighter:              "#ECF0F1",
	GrayDark:                 "#7F8C8D",
	GrayDarker:               "#34495E",
	Skeleton:                 "rgba(149,165,166,0.08)",
	HoverOpacity:             0.04,
	RippleOpacity:            0.08,
	RippleOpacitySecondary:   0.12,
	BorderOpacity:            0.8,
}

var cashableDark = Palette{
	Primary:                  "#58D68D",
	PrimaryContrastText:      "#1B2631",
	Secondary:                "#D5DBDB",
	SecondaryContrastText:    "#1B2631",
	Tertiary:                 "#7DCEA0",
	TertiaryContrastText:     "#1B2631",
	Success:                  "#58D68D",
	SuccessContrastText:      "#1B2631",
	Info:                     "#5DADE2",
	InfoContrastText:         "#1B2631",
	Warning:                  "#F8C471",
	WarningContrastText:      "#1B2631",
	Error:                    "#EC7063",
	ErrorContrastText:        "#1B2631",
	Dark:                     "#EAEDED",
	DarkContrastText:         "#1B2631",
	Background:               "#1B2631",
	BackgroundGray:           "#212F3D",
	Surface:                  "#283747",
	AppbarBackground:         "#1B2631",
	AppbarText:               "#EAEDED",
	DrawerBackground:         "#1B2631",
	DrawerText:               "#EAEDED",
	DrawerIcon:               "#58D68D",
	TextPrimary:              "#EAEDED",
	TextSecondary:            "#AEB6BF",
	TextDisabled:             "#566573",
	ActionDefault:            "#85929E",
	ActionDisabled:           "#48495A",
	ActionDisabledBackground: "#34495E",
	LinesDefault:             "#34495E",
	LinesInputs:              "#48495A",
	TableLines:               "#2C3E50",
	TableStriped:             "#212F3D",
	TableHover:               "#283747",
	Divider:                  "#34495E",
	DividerLight:             "#2C3E50",
	OverlayDark:              "rgba(0,0,0,0.5)",
	OverlayLight:             "rgba(255,255,255,0.05)",
	Black:                    "#000000",
	White:                    "#FFFFFF",
	GrayDefault:              "#85929E",
	GrayLight:                "#566573",
	GrayLighter:              "#48495A",
	GrayDark:                 "#AEB6BF",
	GrayDarker:               "#D5DBDB",
	Skeleton:                 "rgba(234,237,237,0.1)",
	HoverOpacity:             0.06,
	RippleOpacity:            0.1,
	RippleOpacitySecondary:   0.15,
	BorderOpacity:            0.9,
}

var cashableShadows = []string{
	"none",
	"0 2px 4px 0 rgba(44,62,80,0.15)",
	"0 2px 6px 0 rgba(44,62,80,0.18), 0 1px 3px 0 rgba(44,62,80,0.12)",
	"0 4px 8px 0 rgba(44,62,80,0.20), 0 2px 4px 0 rgba(44,62,80,0.15)",
	"0 6px 12px -2px rgba(44,62,80,0.25), 0 4px 8px -1px rgba(44,62,80,0.15)",
	"0 8px 16px -3px rgba(44,62,80,0.25), 0 4px 8px -1px rgba(44,62,80,0.15)",
	"0 10px 20px -4px rgba(44,62,80,0.25), 0 6px 12px -2px rgba(44,62,80,0.12)",
	"0 12px 24px -5px rgba(44,62,80,0.25), 0 6px 12px -2px rgba(44,62,80,0.12)",
	"0 14px 28px -6px rgba(44,62,80,0.25), 0 6px 12px -2px rgba(44,62,80,0.12)",
	"0 16px 32px -7px rgba(44,62,80,0.25), 0 8px 16px -3px rgba(44,62,80,0.10)",
	"0 18px 36px -8px rgba(44,62,80,0.25), 0 8px 16px -3px rgba(44,62,80,0.10)",
	"0 20px 40px -9px rgba(44,62,80,0.25), 0 10px 20px -4px rgba(44,62,80,0.10)",
	"0 22px 44px -10px rgba(44,62,80,0.25), 0 10px 20px -4px rgba(44,62,80,0.10)",
	"0 24px 48px -11px rgba(44,62,80,0.25), 0 12px 24px -5px rgba(44,62,80,0.10)",
	"0 26px 52px -12px rgba(44,62,80,0.25), 0 12px 24px -5px rgba(44,62,80,0.10)",
	"0 28px 56px -13px rgba(44,62,80,0.25), 0 14px 28px -6px rgba(44,62,80,0.10)",
	"0 30px 60px -14px rgba(44,62,80,0.25), 0 14px 28px -6px rgba(44,62,80,0.10)",
	"0 32px 64px -15px rgba(44,62,80,0.25), 0 16px 32px -7px rgba(44,62,80,0.10)",
	"0 34px 68px -16px rgba(44,62,80,0.25), 0 16px 32px -7px rgba(44,62,80,0.10)",
	"0 36px 72px -17px rgba(44,62,80,0.25), 0 18px 36px -8px rgba(44,62,80,0.10)",
	"0 38px 76px -18px rgba(44,62,80,0.25), 0 18px 36px -8px rgba(44,62,80,0.10)",
	"0 40px 80px -19px rgba(44,62,80,0.25), 0 20px 40px -9px rgba(44,62,80,0.10)",
	"0 42px 84px -20px rgba(44,62,80,0.25), 0 20px 40px -9px rgba(44,62,80,0.10)",
	"0 44px 88px -21px rgba(44,62,80,0.25), 0 22px 44px -10px rgba(44,62,80,0.10)",
	"0 46px 92px -22px rgba(44,62,80,0.25), 0 22px 44px -10px rgba(44,62,80,0.10)",
	"0 48px 96px -23px rgba(44,62,80,0.25), 0 24px 48px -11px rgba(44,62,80,0.10)",
}
