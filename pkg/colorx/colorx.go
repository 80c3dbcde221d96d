// Package colorx normalizes heterogeneous color inputs (hex strings, named
// colors, rgb()/rgba() expressions, palette names) into 8-bit RGBA values.
package colorx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var named = map[string]color.RGBA{
	"white":       {255, 255, 255, 255},
	"black":       {0, 0, 0, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"transparent": {0, 0, 0, 0},
}

// Parse resolves a color token and falls back silently on anything it cannot
// understand. Callers pass black as the fallback for foregrounds and white for
// backgrounds.
func Parse(token string, fallback color.RGBA) color.RGBA {
	c, err := ParseStrict(token)
	if err != nil {
		return fallback
	}
	return c
}

// ParseStrict resolves a color token or reports why it could not.
//
// Accepted forms: "#RGB", "#RRGGBB", the same without "#", a known color
// name, "rgb(r,g,b)" and "rgba(r,g,b,a)" where channels are integers and the
// alpha is a 0-1 fraction when it is <= 1.0, otherwise a direct 0-255 value.
func ParseStrict(token string) (color.RGBA, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color token")
	}

	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 6 {
		return parseHex(hex)
	}

	return color.RGBA{}, fmt.Errorf("unrecognized color %q", token)
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

func parseRGBFunc(s string) (color.RGBA, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return color.RGBA{}, fmt.Errorf("malformed rgb() color %q", s)
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("rgb() wants 3 or 4 channels, got %d", len(parts))
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad channel %q: %w", parts[i], err)
		}
		ch[i] = clampChannel(v)
	}

	a := uint8(255)
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad alpha %q: %w", parts[3], err)
		}
		// Alpha <= 1.0 is a fraction, anything larger a direct byte value.
		if v <= 1.0 {
			v *= 255
		}
		a = clampChannel(v)
	}
	return color.RGBA{ch[0], ch[1], ch[2], a}, nil
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Lerp interpolates between two colors; t is clamped to [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
