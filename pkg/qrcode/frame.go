package qr

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	captionMargin      = 16 // horizontal text margin inside a band, split per side
	captionLineSpacing = 4
	captionPadding     = 8
)

// captionLayout is a sized, wrapped caption ready to draw.
type captionLayout struct {
	cap    *Caption
	face   font.Face
	lines  []string
	height int
}

// layoutCaption wraps the caption text to the band width and computes the
// band height. The character width per line approximates the average glyph
// as half the font size. A font loading failure is returned alongside a
// usable fallback layout.
func (c *Config) layoutCaption(cap *Caption, canvasW int) (captionLayout, error) {
	if cap == nil || strings.TrimSpace(cap.Text) == "" {
		return captionLayout{}, nil
	}
	size := cap.FontSize
	if size <= 0 {
		size = 24
	}
	face, err := loadFace(cap.FontPath, float64(size), cap.Bold)

	usable := canvasW - 2*c.Border.Width - captionMargin
	cols := int(float64(usable) / (float64(size) * 0.5))
	if cols < 1 {
		cols = 1
	}
	lines := wrapText(cap.Text, cols)
	return captionLayout{
		cap:    cap,
		face:   face,
		lines:  lines,
		height: len(lines)*(size+captionLineSpacing) + captionPadding,
	}, err
}

// draw renders the wrapped lines into the band starting at yTop.
func (l captionLayout) draw(canvas *image.NRGBA, yTop, canvasW, border int, ink color.RGBA) {
	if l.cap == nil || len(l.lines) == 0 {
		return
	}
	size := l.cap.FontSize
	if size <= 0 {
		size = 24
	}
	ascent := l.face.Metrics().Ascent.Ceil()
	cy := yTop + captionPadding/2
	for _, line := range l.lines {
		width := font.MeasureString(l.face, line).Ceil()
		var x int
		switch l.cap.Align {
		case AlignLeft:
			x = border + captionMargin/2
		case AlignRight:
			x = canvasW - border - captionMargin/2 - width
		default:
			x = (canvasW - width) / 2
		}
		d := font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(ink),
			Face: l.face,
			Dot:  fixed.P(x, cy+ascent),
		}
		d.DrawString(line)
		cy += size + captionLineSpacing
	}
}

// loadFace resolves a font face: explicit TTF path first, then the embedded
// Go fonts matching the bold flag, then the minimal built-in bitmap face.
// The returned error reports an unusable explicit path; the face is always
// valid.
func loadFace(path string, size float64, bold bool) (font.Face, error) {
	var pathErr error
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			f, perr := truetype.Parse(data)
			if perr == nil {
				return truetype.NewFace(f, &truetype.Options{Size: size}), nil
			}
			err = perr
		}
		pathErr = &AssetError{Path: path, Err: err}
	}

	ttf := goregular.TTF
	if bold {
		ttf = gobold.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13, pathErr
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), pathErr
}

// wrapText greedily wraps words to at most cols characters per line,
// hard-splitting words longer than a full line.
func wrapText(s string, cols int) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for len(word) > cols {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:cols])
			word = word[cols:]
		}
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= cols:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// roundedMask builds an opaque rounded-rectangle alpha mask.
func roundedMask(w, h, radius int) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// applyOuterMask multiplies the canvas alpha channel by the mask alpha,
// leaving previously drawn content (including inner QR rounding) intact.
func applyOuterMask(canvas *image.NRGBA, mask *image.RGBA) {
	b := canvas.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := canvas.PixOffset(x, y)
			ma := mask.RGBAAt(x, y).A
			canvas.Pix[i+3] = uint8(uint16(canvas.Pix[i+3]) * uint16(ma) / 255)
		}
	}
}

// pasteMasked draws src onto dst at (ox, oy) through the mask's alpha.
func pasteMasked(dst *image.NRGBA, src image.Image, mask *image.RGBA, ox, oy int) {
	b := src.Bounds()
	rect := image.Rect(ox, oy, ox+b.Dx(), oy+b.Dy())
	draw.DrawMask(dst, rect, src, b.Min, mask, mask.Bounds().Min, draw.Over)
}
