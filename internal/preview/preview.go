// Package preview renders a theme palette as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/themekit/internal/color"
	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

const (
	defaultWidth = 72
	minWidth     = 24
	swatchText   = " Aa "
	contrastTag  = "ContrastText"
)

type Options struct {
	Dark bool
	// Width caps every rendered line. Zero means 72 columns.
	Width int
	// Profile selects the color depth. termenv.Ascii renders without color.
	Profile termenv.Profile
}

// Terminal reports the color profile of w and whether its background is
// dark. Writers without color support never report a dark background.
func Terminal(w io.Writer) (termenv.Profile, bool) {
	out := termenv.NewOutput(w)
	profile := out.EnvColorProfile()
	if profile == termenv.Ascii {
		return profile, false
	}
	return profile, out.HasDarkBackground()
}

// Render draws the selected palette followed by a short summary of the
// non-color sections.
func Render(doc *theme.Document, opts Options) (string, error) {
	if doc == nil {
		return "", errdef.New(errdef.CodeInvalidFormat, "theme document is nil")
	}
	palette := doc.Palette(opts.Dark)
	variant, field := "light", "paletteLight"
	if opts.Dark {
		variant, field = "dark", "paletteDark"
	}
	if palette == nil {
		return "", errdef.Invalid(field, "palette is missing")
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	width = max(width, minWidth)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(opts.Profile)
	p := painter{r: r, width: width, bg: palette.Background}

	var lines []string
	lines = append(lines, p.heading(fmt.Sprintf("Palette (%s)", variant)))
	nameWidth := nameColumn()
	for _, f := range theme.PaletteFields {
		if f.Kind != theme.KindColor || strings.HasSuffix(f.Name, contrastTag) {
			continue
		}
		lines = append(lines, p.swatch(palette, f, nameWidth))
	}

	lines = append(lines, "", p.heading("Opacity"))
	for _, f := range theme.PaletteFields {
		if f.Kind != theme.KindOpacity {
			continue
		}
		lines = append(lines, p.row(f.Name, f.Get(palette), nameWidth))
	}

	if summary := summarise(doc); len(summary) > 0 {
		lines = append(lines, "", p.heading("Theme"))
		for _, kv := range summary {
			lines = append(lines, p.row(kv[0], kv[1], nameWidth))
		}
	}

	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return strings.Join(lines, "\n") + "\n", nil
}

type painter struct {
	r     *lipgloss.Renderer
	width int
	bg    color.Value
}

func (p painter) heading(text string) string {
	return p.r.NewStyle().Bold(true).Underline(true).Render(text)
}

func (p painter) row(name, value string, nameWidth int) string {
	label := p.r.NewStyle().Faint(true).Render(runewidth.FillRight(name, nameWidth))
	return "     " + label + " " + value
}

// swatch paints the field on the palette background. Fields with a
// matching contrast-text partner show sample text in that color.
func (p painter) swatch(palette *theme.Palette, f theme.PaletteField, nameWidth int) string {
	value := f.Color(palette)
	fill := value.Over(p.bg)
	style := p.r.NewStyle()
	if fill != "" {
		style = style.Background(lipgloss.Color(fill)).Foreground(lipgloss.Color(textColor(palette, f, value)))
	}
	block := style.Render(swatchText)
	return block + " " + runewidth.FillRight(f.Name, nameWidth) + " " + string(value)
}

func textColor(palette *theme.Palette, f theme.PaletteField, value color.Value) string {
	if partner, ok := theme.LookupPaletteField(f.Name + contrastTag); ok {
		if hex := partner.Color(palette).Over(value); hex != "" {
			return hex
		}
	}
	if value.Luminance() > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

func nameColumn() int {
	w := 0
	for _, f := range theme.PaletteFields {
		if strings.HasSuffix(f.Name, contrastTag) {
			continue
		}
		w = max(w, runewidth.StringWidth(f.Name))
	}
	return w
}

func summarise(doc *theme.Document) [][2]string {
	var out [][2]string
	if t := doc.Typography; t != nil {
		if len(t.Default.FontFamily) > 0 {
			out = append(out, [2]string{"FontFamily", strings.Join(t.Default.FontFamily, ", ")})
		}
		if t.Default.FontSize != "" {
			out = append(out, [2]string{"FontSize", t.Default.FontSize})
		}
	}
	if l := doc.Layout; l != nil && l.DefaultBorderRadius != "" {
		out = append(out, [2]string{"BorderRadius", l.DefaultBorderRadius})
	}
	if z := doc.ZIndex; z != nil {
		out = append(out, [2]string{
			"ZIndex",
			fmt.Sprintf("drawer %d, appbar %d, dialog %d", z.Drawer, z.AppBar, z.Dialog),
		})
	}
	if s := doc.Shadows; s != nil {
		out = append(out, [2]string{"Shadows", fmt.Sprintf("%d levels", len(s.Elevation))})
	}
	return out
}
