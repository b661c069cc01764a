package theme

import "strings"

// DropAbsent clears the required sections whose keys were not present (or
// were null) in the decoded input, so that Validate reports them. Optional
// sections that were absent keep whatever d already held.
//
// present holds lower-cased top-level keys.
func DropAbsent(d *Document, present map[string]bool) {
	if d == nil {
		return
	}
	if !present["palettelight"] {
		d.PaletteLight = nil
	}
	if !present["palettedark"] {
		d.PaletteDark = nil
	}
	if !present["typography"] {
		d.Typography = nil
	}
}

// PresentKeys lower-cases the keys of a generic decoded object, skipping nulls.
func PresentKeys(top map[string]any) map[string]bool {
	out := make(map[string]bool, len(top))
	for k, v := range top {
		if v == nil {
			continue
		}
		out[strings.ToLower(k)] = true
	}
	return out
}

// FillOptional replaces nil optional sections with baseline values.
func FillOptional(d *Document) {
	if d == nil {
		return
	}
	base := Baseline()
	if d.Layout == nil {
		d.Layout = base.Layout
	}
	if d.ZIndex == nil {
		d.ZIndex = base.ZIndex
	}
	if d.Shadows == nil {
		d.Shadows = base.Shadows
	}
}

// FitShadows pads or truncates the elevation list to ShadowLevels entries,
// filling gaps from the generated ramp.
func FitShadows(d *Document) {
	if d == nil || d.Shadows == nil {
		return
	}
	ramp := DefaultShadows()
	out := make([]string, ShadowLevels)
	for i := range out {
		if i < len(d.Shadows.Elevation) {
			out[i] = d.Shadows.Elevation[i]
			continue
		}
		out[i] = ramp[i]
	}
	d.Shadows.Elevation = out
}
