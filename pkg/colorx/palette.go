package colorx

import "sort"

// Palette is a named (foreground, background) hex pair.
type Palette struct {
	Foreground string
	Background string
}

// Custom is the palette name that means "use the caller's own colors".
const Custom = "Custom"

var palettes = map[string]Palette{
	"Classic":     {"#000000", "#FFFFFF"},
	"Brand Blue":  {"#1FA2D5", "#FFFFFF"},
	"Warm Sunset": {"#FF6B6B", "#FFF1E6"},
	"Forest":      {"#0B8457", "#E8F6EF"},
	"Violet":      {"#6A0DAD", "#F5E9FF"},
	"Slate":       {"#0F172A", "#E6EEF6"},
	"Nord":        {"#2E3440", "#D8DEE9"},
	"Retro":       {"#FF1493", "#00BFFF"},
	"Sunset":      {"#FF4E50", "#F9D423"},
	"Ocean":       {"#1CB5E0", "#000046"},
}

// ResolvePalette returns the foreground/background pair for a palette name.
// An unknown name, the empty string, or Custom falls through to the supplied
// custom colors (defaulting to black on white), normalizing bare hex digits.
func ResolvePalette(name, customFG, customBG string) (fg, bg string) {
	if p, ok := palettes[name]; ok && name != Custom {
		return p.Foreground, p.Background
	}
	fg, bg = customFG, customBG
	if fg == "" {
		fg = "#000000"
	}
	if bg == "" {
		bg = "#FFFFFF"
	}
	return ensureHashPrefix(fg), ensureHashPrefix(bg)
}

func ensureHashPrefix(s string) string {
	if len(s) == 3 || len(s) == 6 {
		for _, c := range s {
			if !isHexDigit(byte(c)) {
				return s
			}
		}
		return "#" + s
	}
	return s
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// PaletteNames lists the known palette names in stable order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
