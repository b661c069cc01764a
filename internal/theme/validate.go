package theme

import (
	"strings"

	"github.com/unkn0wn-root/themekit/internal/color"
	"github.com/unkn0wn-root/themekit/internal/errdef"
)

// criticalColors are checked on both palettes; every other field is optional.
var criticalColors = []string{"Primary", "Secondary", "Background"}

// Validate checks that the required sections exist and that the critical
// colors, when set, parse. It stops at the first problem.
func Validate(d *Document) error {
	if d == nil {
		return errdef.Invalid("document", "Theme is null")
	}
	if d.PaletteLight == nil {
		return errdef.Invalid("paletteLight", "Light palette is missing")
	}
	if d.PaletteDark == nil {
		return errdef.Invalid("paletteDark", "Dark palette is missing")
	}
	if d.Typography == nil {
		return errdef.Invalid("typography", "Typography is missing")
	}
	for _, variant := range []struct {
		section string
		palette *Palette
	}{
		{"paletteLight", d.PaletteLight},
		{"paletteDark", d.PaletteDark},
	} {
		for _, name := range criticalColors {
			field, _ := LookupPaletteField(name)
			value := string(field.Color(variant.palette))
			if strings.TrimSpace(value) == "" {
				continue
			}
			if !color.IsValid(value) {
				return errdef.Invalid(
					variant.section+"."+name,
					"Invalid color format %q",
					value,
				)
			}
		}
	}
	return nil
}
