package qr

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// moduleScale is the native intermediate resolution in pixels per module.
// Styled drawers (circles, bars) need room to curve before the Lanczos
// downscale to the target size.
const moduleScale = 16

// fill is a resolved layer source: either a uniform color or a gradient
// bitmap at native resolution.
type fill struct {
	color  color.RGBA
	bitmap *image.NRGBA
}

func solidFill(c color.RGBA) fill      { return fill{color: c} }
func bitmapFill(img *image.NRGBA) fill { return fill{bitmap: img} }

func (f fill) source() image.Image {
	if f.bitmap != nil {
		return f.bitmap
	}
	return image.NewUniform(f.color)
}

// startColor is the flat approximation of the fill, used for border bands
// and caption ink where a bitmap cannot serve.
func (f fill) startColor() color.RGBA {
	if f.bitmap == nil {
		return f.color
	}
	c := f.bitmap.NRGBAAt(0, 0)
	return color.RGBA{c.R, c.G, c.B, c.A}
}

// compose stencils the foreground fill over the background fill through the
// module matrix and resizes the result to the target size.
func (c *Config) compose(m Matrix, fg, bg fill) *image.NRGBA {
	n := m.Size()
	native := n * moduleScale

	stencil := gg.NewContext(native, native)
	stencil.SetColor(color.White)
	drawer := drawerFor(c.Shape)
	eyeDrawer := drawer
	if c.EyeShape != "" {
		eyeDrawer = drawerFor(c.EyeShape)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m[y][x] {
				continue
			}
			d := drawer
			if c.EyeShape != "" && m.inEye(x, y) {
				d = eyeDrawer
			}
			d.Draw(stencil, float64(x*moduleScale), float64(y*moduleScale), moduleScale)
		}
	}

	bounds := image.Rect(0, 0, native, native)
	out := image.NewNRGBA(bounds)
	if !c.Transparent {
		draw.Draw(out, bounds, bg.source(), image.Point{}, draw.Src)
	}
	// The stencil's alpha channel selects foreground pixels.
	draw.DrawMask(out, bounds, fg.source(), image.Point{}, stencil.Image(), image.Point{}, draw.Over)

	if native == c.Size {
		return out
	}
	return toNRGBA(resize.Resize(uint(c.Size), uint(c.Size), out, resize.Lanczos3))
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
