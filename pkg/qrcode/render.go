package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/qrforge/qrforge/pkg/colorx"
)

// DefaultSize is used when a Config does not set a target size.
const DefaultSize = 512

// Render produces the styled QR image and writes it to c.Dest, creating
// parent directories as needed. Validation and encoding failures propagate
// and produce no file; failures in cosmetic layers (logo, captions,
// rounding) are logged and a best-effort image is saved anyway.
func (c *Config) Render() error {
	if c.Dest == "" {
		return &ValidationError{Field: "dest", Reason: "must not be empty"}
	}
	img, err := c.image()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.Dest); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(c.Dest)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Generate returns the styled QR image as PNG bytes.
func (c *Config) Generate() ([]byte, error) {
	img, err := c.image()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Config) image() (*image.NRGBA, error) {
	cc := *c
	if cc.Size <= 0 {
		cc.Size = DefaultSize
	}
	if cc.Level == "" {
		cc.Level = LevelHighest
	}
	log := cc.logger()

	m, err := Encode(cc.Payload, cc.Level)
	if err != nil {
		return nil, err
	}

	fg, bg := cc.resolveFills(m.Size()*moduleScale, log)
	base := cc.compose(m, fg, bg)

	return cc.decorate(base, fg.startColor(), bg, log), nil
}

// resolveFills normalizes color tokens into layer fills at the native
// compose resolution. Unresolvable tokens are logged and fall back to black
// foreground / white background.
func (c *Config) resolveFills(native int, log *zap.SugaredLogger) (fg, bg fill) {
	fg = solidFill(c.parseColor(c.Foreground, color.RGBA{0, 0, 0, 255}, "foreground", log))
	bg = solidFill(c.parseColor(c.Background, color.RGBA{255, 255, 255, 255}, "background", log))

	if c.Mode == ModeGradient && !c.Transparent {
		start := c.parseColor(c.Gradient.Start, color.RGBA{0, 0, 0, 255}, "gradient start", log)
		end := c.parseColor(c.Gradient.End, color.RGBA{255, 255, 255, 255}, "gradient end", log)
		grad := bitmapFill(linearGradient(start, end, c.Gradient.Angle, native))
		if c.Gradient.Target == TargetBackground {
			bg = grad
		} else {
			fg = grad
		}
	}
	return fg, bg
}

// decorate runs the cosmetic pipeline: border canvas, masked QR paste,
// captions, logo, outer corner mask. It never fails the render; on panic the
// most recent complete canvas is returned.
func (c *Config) decorate(base *image.NRGBA, ink color.RGBA, bg fill, log *zap.SugaredLogger) (out *image.NRGBA) {
	out = base
	defer func() {
		if r := recover(); r != nil {
			err := &RenderError{Stage: "decorate", Err: fmt.Errorf("%v", r)}
			log.Errorw("decoration failed, saving best-effort canvas", "error", err)
		}
	}()

	b := c.Border.Width
	if b < 0 {
		b = 0
	}
	nw := c.Size + 2*b

	header, err := c.layoutCaption(c.Header, nw)
	if err != nil {
		log.Warnw("header font unavailable, using fallback", "error", err)
	}
	footer, err := c.layoutCaption(c.Footer, nw)
	if err != nil {
		log.Warnw("footer font unavailable, using fallback", "error", err)
	}

	plain := b == 0 && header.height == 0 && footer.height == 0 &&
		c.QRCornerRadius <= 0 && c.Border.CornerRadius <= 0 && c.Logo == nil
	if plain {
		return base
	}

	nh := c.Size + 2*b + header.height + footer.height
	canvas := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	if !c.Transparent {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(c.borderColor(bg, log)), image.Point{}, draw.Src)
	}

	px, py := b, b+header.height
	qrRect := image.Rect(px, py, px+c.Size, py+c.Size)
	if c.QRCornerRadius > 0 {
		pasteMasked(canvas, base, roundedMask(c.Size, c.Size, c.QRCornerRadius), px, py)
	} else {
		draw.Draw(canvas, qrRect, base, base.Bounds().Min, draw.Src)
	}

	header.draw(canvas, 0, nw, b, ink)
	footer.draw(canvas, py+c.Size+b, nw, b, ink)

	if c.Logo != nil && c.Logo.Path != "" {
		if err := c.embedLogo(canvas, qrRect); err != nil {
			log.Warnw("logo skipped", "error", err)
		}
	}

	if c.Border.CornerRadius > 0 {
		applyOuterMask(canvas, roundedMask(nw, nh, c.Border.CornerRadius))
	}
	return canvas
}

// borderColor picks the border fill: the explicit border color when set,
// otherwise the background color. A gradient background cannot fill an
// L-shaped band, so its start color stands in as a flat approximation.
func (c *Config) borderColor(bg fill, log *zap.SugaredLogger) color.RGBA {
	if c.Border.Color != "" {
		return c.parseColor(c.Border.Color, bg.startColor(), "border", log)
	}
	return bg.startColor()
}

func (c *Config) parseColor(token string, fallback color.RGBA, field string, log *zap.SugaredLogger) color.RGBA {
	if token == "" {
		return fallback
	}
	rgba, err := colorx.ParseStrict(token)
	if err != nil {
		log.Debugw("color fallback", "field", field, "token", token, "error", err)
		return fallback
	}
	return rgba
}
