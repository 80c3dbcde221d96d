package qr

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/qrforge/qrforge/pkg/colorx"
)

// linearGradient builds an n x n bitmap whose color varies linearly from a to
// b along the axis given by angle in degrees: 90 is the canonical top-to-
// bottom gradient, 0 runs horizontally.
//
// The bitmap is built oversized, rotated by (90 - angle) and center-cropped,
// so the corners introduced by rotation carry extended gradient color rather
// than transparency.
func linearGradient(a, b color.RGBA, angle float64, n int) *image.NRGBA {
	if n <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	// 1.5n >= n*sqrt(2): the center crop never leaves the rotated source.
	m := int(math.Ceil(float64(n) * 1.5))
	base := image.NewNRGBA(image.Rect(0, 0, m, m))
	for y := 0; y < m; y++ {
		t := float64(y) / math.Max(1, float64(m-1))
		c := colorx.Lerp(a, b, t)
		for x := 0; x < m; x++ {
			i := base.PixOffset(x, y)
			base.Pix[i] = c.R
			base.Pix[i+1] = c.G
			base.Pix[i+2] = c.B
			base.Pix[i+3] = c.A
		}
	}
	rotated := imaging.Rotate(base, 90-angle, color.NRGBA{})
	return imaging.CropCenter(rotated, n, n)
}
