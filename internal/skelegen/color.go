package skelegen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AlphaSteps are the transparency percentages emitted as -t-{percent}
var AlphaSteps = []int{5, 10, 20, 30, 40, 50, 60, 70, 80, 90}

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([\d.]+%?)\s*[,\s]\s*([\d.]+%?)\s*[,\s]\s*([\d.]+%?)\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(-?[\d.]+)(?:deg)?\s*[,\s]\s*([\d.]+)%\s*[,\s]\s*([\d.]+)%\s*(?:[,/]\s*([\d.]+%?)\s*)?\)$`)
)

// rgba is a parsed sRGB color with straight alpha
type rgba struct {
	c colorful.Color
	a float64
}

// parseColor reads hex, rgb(), rgba(), hsl(), hsla() and "transparent"
func parseColor(value string) (rgba, bool) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case v == "transparent":
		return rgba{a: 0}, true
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgb"):
		m := rgbPattern.FindStringSubmatch(v)
		if m == nil {
			return rgba{}, false
		}
		r, okR := parseChannel(m[1], 255)
		g, okG := parseChannel(m[2], 255)
		b, okB := parseChannel(m[3], 255)
		a, okA := parseAlpha(m[4])
		if !okR || !okG || !okB || !okA {
			return rgba{}, false
		}
		return rgba{c: colorful.Color{R: r / 255, G: g / 255, B: b / 255}, a: a}, true
	case strings.HasPrefix(v, "hsl"):
		m := hslPattern.FindStringSubmatch(v)
		if m == nil {
			return rgba{}, false
		}
		h, errH := strconv.ParseFloat(m[1], 64)
		s, errS := strconv.ParseFloat(m[2], 64)
		l, errL := strconv.ParseFloat(m[3], 64)
		a, okA := parseAlpha(m[4])
		if errH != nil || errS != nil || errL != nil || !okA {
			return rgba{}, false
		}
		h = math.Mod(math.Mod(h, 360)+360, 360)
		return rgba{c: colorful.Hsl(h, clamp01(s/100), clamp01(l/100)), a: a}, true
	}

	return rgba{}, false
}

func parseHex(v string) (rgba, bool) {
	digits := strings.TrimPrefix(v, "#")
	alpha := 1.0

	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 255
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return rgba{}, false
	}
	return rgba{c: c, a: alpha}, true
}

func parseChannel(s string, scale float64) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return math.Min(math.Max(f, 0), 100) / 100 * scale, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return math.Min(math.Max(f, 0), scale), true
}

func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	if strings.HasSuffix(s, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clamp01(f / 100), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp01(f), true
}

func clamp01(f float64) float64 {
	return math.Min(math.Max(f, 0), 1)
}

// FormatColor re-serializes value in the given format. Values that do not
// parse as a color are returned unchanged.
func FormatColor(value string, format ColorFormat) string {
	col, ok := parseColor(value)
	if !ok {
		return value
	}
	return col.format(format)
}

// WithAlpha serializes value at the given alpha using an alpha-capable form
// of the format's family: HSL family -> hsla, RGB family -> rgba, anything
// else -> 8-digit hex.
func WithAlpha(value string, format ColorFormat, alpha float64) string {
	col, ok := parseColor(value)
	if !ok {
		return value
	}
	col.a = clamp01(alpha)

	switch format {
	case FormatHSL, FormatHSLA:
		return col.format(FormatHSLA)
	case FormatRGB, FormatRGBA:
		return col.format(FormatRGBA)
	default:
		return col.format(FormatHexA)
	}
}

func (col rgba) format(format ColorFormat) string {
	c := col.c.Clamped()

	switch format {
	case FormatHexA:
		return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(col.a*255)))
	case FormatRGB:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case FormatRGBA:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(col.a))
	case FormatHSL:
		h, s, l := hslParts(c)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
	case FormatHSLA:
		h, s, l := hslParts(c)
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, formatNumber(col.a))
	default:
		return c.Hex()
	}
}

func hslParts(c colorful.Color) (int, int, int) {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	hue := int(math.Round(h)) % 360
	return hue, int(math.Round(s * 100)), int(math.Round(l * 100))
}

// ColorVariables expands one token into its declarations: the base color,
// then shades (-d-n), tints (-l-n) and alpha variants (-t-percent).
// The token name is normalized to a custom property name first.
func ColorVariables(token ColorToken) []Declaration {
	name := NormalizeVariableName(token.Name)
	if name == "" {
		return nil
	}
	decls := []Declaration{{Name: name, Value: FormatColor(token.Value, token.Format)}}

	for i, shade := range paletteEntries(token.ShadesConfig) {
		decls = append(decls, Declaration{
			Name:  fmt.Sprintf("%s-d-%d", name, i+1),
			Value: FormatColor(shade, token.Format),
		})
	}

	for i, tint := range paletteEntries(token.TintsConfig) {
		decls = append(decls, Declaration{
			Name:  fmt.Sprintf("%s-l-%d", name, i+1),
			Value: FormatColor(tint, token.Format),
		})
	}

	if token.TransparentConfig != nil && token.TransparentConfig.Enabled {
		for _, percent := range AlphaSteps {
			decls = append(decls, Declaration{
				Name:  fmt.Sprintf("%s-t-%d", name, percent),
				Value: WithAlpha(token.Value, token.Format, float64(percent)/100),
			})
		}
	}

	return decls
}

// paletteEntries returns the enabled palette, trimmed to Count when set
func paletteEntries(cfg *PaletteConfig) []string {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	if cfg.Count > 0 && cfg.Count < len(cfg.Palette) {
		return cfg.Palette[:cfg.Count]
	}
	return cfg.Palette
}
