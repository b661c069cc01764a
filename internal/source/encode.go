package source

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

const DefaultNamespace = "Themes"

type Options struct {
	// Namespace of the generated class; DefaultNamespace when blank.
	Namespace string
	// GeneratedAt adds a timestamp line to the header when non-zero.
	GeneratedAt time.Time
}

// Encode renders doc as a static class whose Create method builds the
// theme. The output is deterministic for a zero GeneratedAt and decodes
// back to the same document.
func Encode(doc *theme.Document, name string, opts Options) (out string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", errdef.New(errdef.CodeInvalidFormat, "theme name is required for source export")
	}
	if err := theme.Validate(doc); err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = errdef.Wrap(errdef.CodeParse, fmt.Errorf("%v", r), "encode source")
		}
	}()

	doc = theme.Clone(doc)
	theme.FillOptional(doc)

	ns := strings.TrimSpace(opts.Namespace)
	if ns == "" {
		ns = DefaultNamespace
	}

	w := &writer{}
	w.line(0, "using MudBlazor;")
	w.blank()
	w.line(0, "namespace %s;", ns)
	w.blank()
	w.line(0, "/// <summary>")
	w.line(0, "/// Theme %q.", singleLine(name))
	if !opts.GeneratedAt.IsZero() {
		w.line(0, "/// Generated on %s UTC.", opts.GeneratedAt.UTC().Format("2006-01-02 15:04:05"))
	}
	w.line(0, "/// </summary>")
	w.line(0, "public static class %sTheme", SanitizeClassName(name))
	w.line(0, "{")
	w.line(1, "public static MudTheme Create() => new MudTheme")
	w.line(1, "{")
	writePalette(w, "PaletteLight", doc.PaletteLight)
	writePalette(w, "PaletteDark", doc.PaletteDark)
	writeTypography(w, doc.Typography)
	writeLayout(w, doc.Layout)
	writeShadows(w, doc.Shadows)
	writeZIndex(w, doc.ZIndex)
	w.line(1, "};")
	w.blank()
	w.line(1, "public static MudTheme CreateCustomized(Action<MudTheme> customize)")
	w.line(1, "{")
	w.line(2, "var theme = Create();")
	w.line(2, "customize?.Invoke(theme);")
	w.line(2, "return theme;")
	w.line(1, "}")
	w.line(0, "}")
	return w.String(), nil
}

func writePalette(w *writer, section string, p *theme.Palette) {
	w.open(2, "%s = new %s", section, section)
	for _, field := range theme.PaletteFields {
		if field.Kind == theme.KindOpacity {
			w.line(3, "%s = %.2fd,", field.Name, field.Opacity(p))
			continue
		}
		w.line(3, "%s = %s,", field.Name, quote(string(field.Color(p))))
	}
	w.close(2)
}

func writeTypography(w *writer, t *theme.Typography) {
	w.open(2, "Typography = new Typography")

	w.open(3, "Default = new DefaultTypography")
	fonts := make([]string, len(t.Default.FontFamily))
	for i, f := range t.Default.FontFamily {
		fonts[i] = quote(f)
	}
	w.line(4, "FontFamily = new[] { %s },", strings.Join(fonts, ", "))
	w.line(4, "FontSize = %s,", quote(t.Default.FontSize))
	w.line(4, "FontWeight = %s,", quote(t.Default.FontWeight))
	w.line(4, "LineHeight = %s,", quote(t.Default.LineHeight))
	w.line(4, "LetterSpacing = %s,", quote(t.Default.LetterSpacing))
	w.close(3)

	for _, s := range []struct {
		name  string
		style theme.FontStyle
	}{
		{"H1", t.H1}, {"H2", t.H2}, {"H3", t.H3},
		{"H4", t.H4}, {"H5", t.H5}, {"H6", t.H6},
		{"Subtitle1", t.Subtitle1}, {"Subtitle2", t.Subtitle2},
	} {
		w.open(3, "%s = new %sTypography", s.name, s.name)
		w.line(4, "FontWeight = %s,", quote(s.style.FontWeight))
		w.close(3)
	}

	w.open(3, "Button = new ButtonTypography")
	w.line(4, "FontWeight = %s,", quote(t.Button.FontWeight))
	w.line(4, "TextTransform = %s,", quote(t.Button.TextTransform))
	w.close(3)

	w.close(2)
}

func writeLayout(w *writer, l *theme.LayoutProperties) {
	w.open(2, "LayoutProperties = new LayoutProperties")
	for _, name := range theme.LayoutNames {
		v, _ := theme.GetField(&theme.Document{Layout: l}, "layoutProperties."+name)
		w.line(3, "%s = %s,", name, quote(v))
	}
	w.close(2)
}

func writeShadows(w *writer, s *theme.Shadows) {
	w.open(2, "Shadows = new Shadow")
	w.line(3, "Elevation = new string[]")
	w.line(3, "{")
	last := len(s.Elevation) - 1
	for i, v := range s.Elevation {
		sep := ","
		if i == last {
			sep = ""
		}
		w.line(4, "%s%s // Elevation %d", quote(v), sep, i)
	}
	w.line(3, "},")
	w.close(2)
}

func writeZIndex(w *writer, z *theme.ZIndex) {
	w.open(2, "ZIndex = new ZIndex")
	for _, name := range theme.ZIndexNames {
		v, _ := theme.GetField(&theme.Document{ZIndex: z}, "zIndex."+name)
		w.line(3, "%s = %s,", name, v)
	}
	w.close(2)
}

// SanitizeClassName turns a display name into an identifier: letters and
// digits only, never starting with a digit, first letter upper-cased.
func SanitizeClassName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || unicode.IsDigit([]rune(s)[0]) {
		return "Custom" + s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func quote(s string) string {
	return `"` + escape(s) + `"`
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type writer struct {
	b strings.Builder
}

func (w *writer) line(depth int, format string, args ...any) {
	w.b.WriteString(strings.Repeat("    ", depth))
	if len(args) == 0 {
		w.b.WriteString(format)
	} else {
		fmt.Fprintf(&w.b, format, args...)
	}
	w.b.WriteByte('\n')
}

func (w *writer) open(depth int, format string, args ...any) {
	w.line(depth, format, args...)
	w.line(depth, "{")
}

func (w *writer) close(depth int) {
	w.line(depth, "},")
}

func (w *writer) blank() {
	w.b.WriteByte('\n')
}

func (w *writer) String() string {
	return w.b.String()
}


// NameFromHeader returns the display name recorded in the header comment of
// text produced by Encode.
func NameFromHeader(text string) (string, bool) {
	const prefix = "/// Theme "
	for _, line := range strings.SplitN(text, "\n", 12) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		quoted := strings.TrimSuffix(strings.TrimPrefix(line, prefix), ".")
		name, err := strconv.Unquote(quoted)
		if err != nil || strings.TrimSpace(name) == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}
