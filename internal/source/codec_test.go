package source

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/themekit/internal/color"
	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

func TestRoundTripBuiltins(t *testing.T) {
	for name, doc := range theme.Builtins() {
		t.Run(name, func(t *testing.T) {
			text, err := Encode(doc, name, Options{})
			require.NoError(t, err)

			got, err := Decode(text)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestRoundTripEveryPaletteField(t *testing.T) {
	doc := theme.Baseline()
	for i, field := range theme.PaletteFields {
		if field.Kind == theme.KindOpacity {
			field.SetOpacity(doc.PaletteDark, float64(i%10)/10)
			continue
		}
		field.SetColor(doc.PaletteDark, color.MustParse("rgb(1,2,"+strconv.Itoa(i)+")"))
	}

	text, err := Encode(doc, "every field", Options{})
	require.NoError(t, err)
	got, err := Decode(text)
	require.NoError(t, err)

	for _, field := range theme.PaletteFields {
		assert.Equal(t, field.Get(doc.PaletteDark), field.Get(got.PaletteDark), field.Name)
	}
}

func TestDecodeNormalizesValues(t *testing.T) {
	text := `
PaletteLight = new PaletteLight
{
    Primary = "#abc",
    Secondary = "rgba(10, 20, 30, 0.5)",
    Background = "not-a-color",
    HoverOpacity = 0.12d,
    BorderOpacity = 7d,
},
LayoutProperties = new LayoutProperties { AppbarHeight = 72, DrawerWidthLeft = "300px" },
ZIndex = new ZIndex { Drawer = 900, Dialog = high },
`
	doc, report, err := DecodeWithReport(text)
	require.NoError(t, err)
	base := theme.Baseline()

	assert.Equal(t, color.Value("#AABBCC"), doc.PaletteLight.Primary)
	assert.Equal(t, color.Value("rgba(10,20,30,0.5)"), doc.PaletteLight.Secondary)
	assert.Equal(t, base.PaletteLight.Background, doc.PaletteLight.Background)
	assert.Equal(t, 0.12, doc.PaletteLight.HoverOpacity)
	assert.Equal(t, base.PaletteLight.BorderOpacity, doc.PaletteLight.BorderOpacity)
	assert.Equal(t, "72px", doc.Layout.AppbarHeight)
	assert.Equal(t, "300px", doc.Layout.DrawerWidthLeft)
	assert.Equal(t, 900, doc.ZIndex.Drawer)
	assert.Equal(t, base.ZIndex.Dialog, doc.ZIndex.Dialog)
	assert.Equal(t, base.PaletteDark, doc.PaletteDark)

	assert.Contains(t, report.Missing, markerPaletteDark)
	assert.Contains(t, report.Missing, markerElevation)
	assert.NotContains(t, report.Missing, markerLayout)
	assert.Equal(t, 6, report.Applied)
}

func TestDecodeToleratesGarbage(t *testing.T) {
	for _, text := range []string{
		"",
		"}}}{{{",
		`PaletteLight = new { Primary = "#fff`,
		"ZIndex = new ZIndex { Drawer = 1e9999 }",
		strings.Repeat("Elevation = new string[] {", 20),
	} {
		doc, err := Decode(text)
		require.NoError(t, err)
		require.NoError(t, theme.Validate(doc))
		assert.Len(t, doc.Shadows.Elevation, theme.ShadowLevels)
	}
}

func TestDecodeShadowsIgnoresExtraEntries(t *testing.T) {
	var b strings.Builder
	b.WriteString("Shadows = new Shadow { Elevation = new string[] {\n")
	for i := 0; i < 30; i++ {
		b.WriteString(`"s` + strconv.Itoa(i) + `" // Elevation ` + strconv.Itoa(i) + ",\n")
	}
	b.WriteString("} }")

	doc, err := Decode(b.String())
	require.NoError(t, err)
	require.Len(t, doc.Shadows.Elevation, theme.ShadowLevels)
	assert.Equal(t, "s0", doc.Shadows.Elevation[0])
	assert.Equal(t, "s25", doc.Shadows.Elevation[25])
}

func TestDecodePartialShadows(t *testing.T) {
	doc, err := Decode(`Elevation = new[] { "none", "0 1px 2px red" }`)
	require.NoError(t, err)
	base := theme.DefaultShadows()
	assert.Equal(t, "0 1px 2px red", doc.Shadows.Elevation[1])
	assert.Equal(t, base[2:], doc.Shadows.Elevation[2:])
}

func TestRoundTripNameContainingMarkers(t *testing.T) {
	doc := theme.Cashable()
	doc.ZIndex.Drawer = 4242
	doc.PaletteLight.Primary = "#123456"

	for _, name := range []string{
		"Plain",
		"ZIndex = new",
		"PaletteLight = new {",
		`Elevation = new[] { "x" }`,
		"H1 = new H1 { FontWeight = 1 }",
	} {
		t.Run(name, func(t *testing.T) {
			text, err := Encode(doc, name, Options{})
			require.NoError(t, err)
			got, err := Decode(text)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestRoundTripKeepsEmptyStrings(t *testing.T) {
	doc := theme.Cashable()
	doc.Shadows.Elevation[4] = ""
	doc.Typography.Default.FontSize = ""
	doc.Typography.H2.FontWeight = ""

	text, err := Encode(doc, "Empty", Options{})
	require.NoError(t, err)
	got, err := Decode(text)
	require.NoError(t, err)

	assert.Equal(t, "", got.Shadows.Elevation[4])
	assert.Equal(t, doc.Shadows.Elevation[5], got.Shadows.Elevation[5])
	assert.Equal(t, "", got.Typography.Default.FontSize)
	assert.Equal(t, "", got.Typography.H2.FontWeight)
	assert.Equal(t, doc, got)
}

func TestEncodeRejectsBlankName(t *testing.T) {
	_, err := Encode(theme.Cashable(), "  ", Options{})
	require.Error(t, err)
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
}

func TestEncodeRejectsInvalidDocument(t *testing.T) {
	doc := theme.Cashable()
	doc.PaletteLight.Primary = "not-a-color"
	_, err := Encode(doc, "Broken", Options{})
	require.Error(t, err)
	assert.Equal(t, errdef.CodeValidation, errdef.CodeOf(err))
	assert.Equal(t, "paletteLight.Primary", errdef.FieldOf(err))
}

func TestEncodeShape(t *testing.T) {
	doc := theme.Cashable()
	doc.Layout = nil

	text, err := Encode(doc, "my theme", Options{Namespace: "Acme.Themes"})
	require.NoError(t, err)
	assert.Contains(t, text, "namespace Acme.Themes;")
	assert.Contains(t, text, "public static class MyThemeTheme")
	assert.Contains(t, text, "HoverOpacity = 0.04d,")
	assert.Contains(t, text, "BorderOpacity = 0.90d,")
	assert.Contains(t, text, `"none", // Elevation 0`)
	assert.Contains(t, text, `// Elevation 25`)
	assert.Contains(t, text, `AppbarHeight = "64px",`)
	assert.Contains(t, text, "CreateCustomized")
	assert.NotContains(t, text, "Generated on")
	assert.Nil(t, doc.Layout)

	again, err := Encode(doc, "my theme", Options{Namespace: "Acme.Themes"})
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestEncodeTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 0, 0, time.FixedZone("CET", 3600))
	text, err := Encode(theme.Cashable(), "Dated", Options{GeneratedAt: at})
	require.NoError(t, err)
	assert.Contains(t, text, "/// Generated on 2024-03-09 13:05:00 UTC.")
}

func TestSanitizeClassName(t *testing.T) {
	cases := map[string]string{
		"CashableTheme":      "CashableTheme",
		"Cool Minimal Theme": "CoolMinimalTheme",
		"my-theme!":          "Mytheme",
		"3D look":            "Custom3Dlook",
		"***":                "Custom",
		"":                   "Custom",
		"émeraude":           "Émeraude",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeClassName(in), in)
	}
}

func TestNameFromHeader(t *testing.T) {
	text, err := Encode(theme.Cashable(), `Ocean "Deep" Blue`, Options{GeneratedAt: time.Now()})
	require.NoError(t, err)
	name, ok := NameFromHeader(text)
	assert.True(t, ok)
	assert.Equal(t, `Ocean "Deep" Blue`, name)

	_, ok = NameFromHeader("PaletteLight = new PaletteLight { }")
	assert.False(t, ok)
}
