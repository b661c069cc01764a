package theme

// Clone returns a deep copy of d. No section, slice or palette of the
// result is shared with d.
func Clone(d *Document) *Document {
	if d == nil {
		return nil
	}
	out := &Document{}
	if d.PaletteLight != nil {
		p := *d.PaletteLight
		out.PaletteLight = &p
	}
	if d.PaletteDark != nil {
		p := *d.PaletteDark
		out.PaletteDark = &p
	}
	if d.Typography != nil {
		t := *d.Typography
		t.Default.FontFamily = cloneStrings(d.Typography.Default.FontFamily)
		out.Typography = &t
	}
	if d.Layout != nil {
		l := *d.Layout
		out.Layout = &l
	}
	if d.ZIndex != nil {
		z := *d.ZIndex
		out.ZIndex = &z
	}
	if d.Shadows != nil {
		out.Shadows = &Shadows{Elevation: cloneStrings(d.Shadows.Elevation)}
	}
	return out
}

// Customize clones base and applies fn to the copy; base is left untouched.
func Customize(base *Document, fn func(*Document)) *Document {
	out := Clone(base)
	if fn != nil && out != nil {
		fn(out)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
