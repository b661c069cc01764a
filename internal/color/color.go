// Package color parses and normalizes the color notations accepted in theme
// documents: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r,g,b) and rgba(r,g,b,a).
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Value is a color in normalized textual form. The zero value means unset.
type Value string

type notation int

const (
	notationHex notation = iota
	notationRGB
	notationRGBA
)

// Parse validates s and returns it in normalized form: upper-case hex with
// the alpha pair dropped when opaque, or rgb()/rgba() without whitespace.
func Parse(s string) (Value, error) {
	c, err := parse(s)
	if err != nil {
		return "", err
	}
	return c.normalized(), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func IsValid(s string) bool {
	_, err := parse(s)
	return err == nil
}

// Normalize returns the normalized form of s, or s unchanged when it does not parse.
func Normalize(s string) string {
	v, err := Parse(s)
	if err != nil {
		return s
	}
	return string(v)
}

func (v Value) String() string { return string(v) }

func (v Value) IsZero() bool { return strings.TrimSpace(string(v)) == "" }

// RGBA returns the channels of v. Unparseable values yield opaque black and false.
func (v Value) RGBA() (r, g, b uint8, a float64, ok bool) {
	c, err := parse(string(v))
	if err != nil {
		return 0, 0, 0, 1, false
	}
	return c.r, c.g, c.b, c.a, true
}

// Hex returns v as #RRGGBB, ignoring alpha.
func (v Value) Hex() string {
	c, err := parse(string(v))
	if err != nil {
		return ""
	}
	return strings.ToUpper(c.colorful().Hex())
}

// Over composites v onto an opaque background and returns the visible #RRGGBB.
func (v Value) Over(background Value) string {
	fg, err := parse(string(v))
	if err != nil {
		return ""
	}
	if fg.a >= 1 {
		return strings.ToUpper(fg.colorful().Hex())
	}
	bg, err := parse(string(background))
	if err != nil {
		bg = rgba{r: 255, g: 255, b: 255, a: 1}
	}
	mixed := bg.colorful().BlendRgb(fg.colorful(), fg.a).Clamped()
	return strings.ToUpper(mixed.Hex())
}

// Luminance reports the relative lightness of v in [0,1].
func (v Value) Luminance() float64 {
	c, err := parse(string(v))
	if err != nil {
		return 0
	}
	_, _, l := c.colorful().Hcl()
	return l
}

type rgba struct {
	r, g, b uint8
	a       float64
	form    notation
}

func (c rgba) colorful() colorful.Color {
	return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
}

func (c rgba) normalized() Value {
	switch c.form {
	case notationRGB:
		return Value(fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b))
	case notationRGBA:
		return Value(fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatAlpha(c.a)))
	}
	hex := strings.ToUpper(c.colorful().Hex())
	if c.a < 1 {
		hex += fmt.Sprintf("%02X", uint8(math.Round(c.a*255)))
	}
	return Value(hex)
}

func parse(raw string) (rgba, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return rgba{}, fmt.Errorf("color: value may not be empty")
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], notationRGBA, raw)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], notationRGB, raw)
	}
	return rgba{}, fmt.Errorf("color: unsupported notation %q", raw)
}

func parseHex(s string) (rgba, error) {
	digits := s[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return rgba{}, fmt.Errorf("color: invalid hex digit in %q", s)
		}
	}
	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return rgba{}, fmt.Errorf("color: hex value %q must have 3, 4, 6 or 8 digits", s)
	}

	base, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return rgba{}, fmt.Errorf("color: %w", err)
	}
	r, g, b := base.RGB255()
	out := rgba{r: r, g: g, b: b, a: 1, form: notationHex}
	if len(digits) == 8 {
		alpha, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return rgba{}, fmt.Errorf("color: invalid alpha in %q", s)
		}
		out.a = float64(alpha) / 255
	}
	return out, nil
}

func parseFunc(body string, form notation, raw string) (rgba, error) {
	parts := strings.Split(body, ",")
	want := 3
	if form == notationRGBA {
		want = 4
	}
	if len(parts) != want {
		return rgba{}, fmt.Errorf("color: %q needs %d components", raw, want)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return rgba{}, fmt.Errorf("color: channel %d of %q is not in 0-255", i+1, raw)
		}
		channels[i] = uint8(n)
	}
	out := rgba{r: channels[0], g: channels[1], b: channels[2], a: 1, form: form}
	if form == notationRGBA {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 || math.IsNaN(a) {
			return rgba{}, fmt.Errorf("color: alpha of %q is not in 0-1", raw)
		}
		out.a = a
	}
	return out, nil
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
