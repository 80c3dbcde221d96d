package qr

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// embedLogo pastes the configured logo centered over the QR region of the
// canvas. A transparent hole matching the clip mask is cut beneath it first
// so no background color or gradient bleeds around the logo edge.
// Returns an AssetError when the logo file cannot be loaded.
func (c *Config) embedLogo(canvas *image.NRGBA, qrRect image.Rectangle) error {
	lg := c.Logo
	src, err := imaging.Open(lg.Path)
	if err != nil {
		return &AssetError{Path: lg.Path, Err: err}
	}

	scale := lg.Scale
	if scale <= 0 {
		scale = 0.2
	}
	lsz := int(math.Round(float64(c.Size) * scale))
	if lsz < 1 {
		lsz = 1
	}
	logo := toNRGBA(resize.Resize(uint(lsz), uint(lsz), src, resize.Lanczos3))

	opacity := lg.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	if opacity < 1 {
		scaleAlpha(logo, opacity)
	}

	if lg.Clip != ClipNone && lg.Clip != "" {
		// The hole is slightly larger than the logo so the clip edge reads
		// as a clean margin against the modules.
		buffer := lsz / 10
		if buffer < 2 {
			buffer = 2
		}
		csz := lsz + 2*buffer
		hole := clipMask(lg.Clip, csz, float64(buffer)*0.5)
		hx := qrRect.Min.X + (qrRect.Dx()-csz)/2
		hy := qrRect.Min.Y + (qrRect.Dy()-csz)/2
		punchHole(canvas, hole, hx, hy)

		mask := clipMask(lg.Clip, lsz, 0)
		intersectAlpha(logo, mask)
	}

	lx := qrRect.Min.X + (qrRect.Dx()-lsz)/2
	ly := qrRect.Min.Y + (qrRect.Dy()-lsz)/2
	draw.Draw(canvas, image.Rect(lx, ly, lx+lsz, ly+lsz), logo, image.Point{}, draw.Over)
	return nil
}

// clipMask builds an opaque-on-transparent mask for the given clip shape.
// Circles fill the whole square; squares get a small rounded corner radius.
func clipMask(clip ClipShape, size int, radius float64) *image.RGBA {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	if clip == ClipCircle {
		dc.DrawEllipse(float64(size)/2, float64(size)/2, float64(size)/2, float64(size)/2)
	} else {
		if radius < 1 {
			radius = 1
		}
		dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	}
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// punchHole reduces canvas alpha by the mask's alpha at (ox, oy), turning
// fully masked pixels transparent and feathering partially covered edges.
func punchHole(canvas *image.NRGBA, mask *image.RGBA, ox, oy int) {
	mb := mask.Bounds()
	cb := canvas.Bounds()
	for y := 0; y < mb.Dy(); y++ {
		for x := 0; x < mb.Dx(); x++ {
			cx, cy := ox+x, oy+y
			if cx < cb.Min.X || cy < cb.Min.Y || cx >= cb.Max.X || cy >= cb.Max.Y {
				continue
			}
			ma := mask.RGBAAt(mb.Min.X+x, mb.Min.Y+y).A
			if ma == 0 {
				continue
			}
			i := canvas.PixOffset(cx, cy)
			canvas.Pix[i+3] = uint8(uint16(canvas.Pix[i+3]) * uint16(255-ma) / 255)
		}
	}
}

// intersectAlpha multiplies the image's alpha channel by the mask's.
func intersectAlpha(img *image.NRGBA, mask *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			ma := mask.RGBAAt(x, y).A
			img.Pix[i+3] = uint8(uint16(img.Pix[i+3]) * uint16(ma) / 255)
		}
	}
}

func scaleAlpha(img *image.NRGBA, opacity float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+3] = uint8(float64(img.Pix[i+3])*opacity + 0.5)
		}
	}
}
