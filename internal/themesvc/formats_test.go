package themesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"json":   FormatJSON,
		" JSONC": FormatJSON,
		"cs":     FormatSource,
		"C#":     FormatSource,
		"source": FormatSource,
		"toml":   FormatTOML,
		"yml":    FormatYAML,
		"YAML":   FormatYAML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a/b/theme.JSON": FormatJSON,
		"x.cs":           FormatSource,
		"x.toml":         FormatTOML,
		"x.yml":          FormatYAML,
	} {
		got, ok := FormatForPath(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
		assert.Equal(t, "."+map[Format]string{
			FormatJSON: "json", FormatSource: "cs", FormatTOML: "toml", FormatYAML: "yaml",
		}[want], want.Extension())
	}
	_, ok := FormatForPath("README.md")
	assert.False(t, ok)
}

func TestTOMLAndYAMLKeepMissingSectionsNil(t *testing.T) {
	doc, err := decodeTOML("[paletteDark]\nprimary = \"#123456\"\n[zIndex]\ndrawer = 7\n")
	require.NoError(t, err)
	assert.Nil(t, doc.PaletteLight)
	assert.Nil(t, doc.Typography)
	assert.Equal(t, "#123456", string(doc.PaletteDark.Primary))
	assert.Equal(t, 7, doc.ZIndex.Drawer)
	assert.Equal(t, theme.Baseline().ZIndex.Dialog, doc.ZIndex.Dialog)
	assert.Len(t, doc.Shadows.Elevation, theme.ShadowLevels)

	doc, err = decodeYAML("paletteLight:\n  secondary: '#ABCDEF'\nshadows:\n  elevation: [none, 0 1px red]\n")
	require.NoError(t, err)
	assert.Nil(t, doc.PaletteDark)
	assert.Equal(t, "#ABCDEF", string(doc.PaletteLight.Secondary))
	assert.Equal(t, theme.Baseline().PaletteLight.Primary, doc.PaletteLight.Primary)
	require.Len(t, doc.Shadows.Elevation, theme.ShadowLevels)
	assert.Equal(t, "0 1px red", doc.Shadows.Elevation[1])

	_, err = decodeYAML("null")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
	_, err = decodeYAML("- a\n- b\n")
	assert.Equal(t, errdef.CodeInvalidFormat, errdef.CodeOf(err))
}

func TestEncodeFillsOptionalSections(t *testing.T) {
	doc := theme.Cashable()
	doc.Shadows = nil
	doc.ZIndex = nil

	text, err := encodeTOML(doc)
	require.NoError(t, err)
	assert.Contains(t, text, "[zIndex]")
	assert.Contains(t, text, "elevation = [")
	assert.Nil(t, doc.ZIndex)

	text, err = encodeYAML(doc)
	require.NoError(t, err)
	assert.Contains(t, text, "zIndex:\n")
	assert.Contains(t, text, "- none\n")
}
