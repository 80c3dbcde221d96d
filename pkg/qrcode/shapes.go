package qr

import "github.com/fogleman/gg"

// ModuleDrawer draws one dark module into the stencil context at pixel
// position (x, y) with the given module size. Adding a shape means adding a
// drawer here and a case in drawerFor; call sites never change.
type ModuleDrawer interface {
	Draw(dc *gg.Context, x, y, size float64)
}

type squareDrawer struct{}

func (squareDrawer) Draw(dc *gg.Context, x, y, size float64) {
	dc.DrawRectangle(x, y, size, size)
	dc.Fill()
}

// gappedDrawer leaves a thin gutter between neighboring modules.
type gappedDrawer struct{}

func (gappedDrawer) Draw(dc *gg.Context, x, y, size float64) {
	inset := size * 0.1
	dc.DrawRectangle(x+inset, y+inset, size-2*inset, size-2*inset)
	dc.Fill()
}

type circleDrawer struct{}

func (circleDrawer) Draw(dc *gg.Context, x, y, size float64) {
	dc.DrawCircle(x+size/2, y+size/2, size/2)
	dc.Fill()
}

type roundedDrawer struct{}

func (roundedDrawer) Draw(dc *gg.Context, x, y, size float64) {
	dc.DrawRoundedRectangle(x, y, size, size, size*0.35)
	dc.Fill()
}

// barDrawer renders narrow rounded bars, vertical or horizontal.
type barDrawer struct {
	vertical bool
}

func (d barDrawer) Draw(dc *gg.Context, x, y, size float64) {
	inset := size * 0.15
	if d.vertical {
		dc.DrawRoundedRectangle(x+inset, y, size-2*inset, size, (size-2*inset)/2)
	} else {
		dc.DrawRoundedRectangle(x, y+inset, size, size-2*inset, (size-2*inset)/2)
	}
	dc.Fill()
}

func drawerFor(shape Shape) ModuleDrawer {
	switch shape {
	case ShapeGapped:
		return gappedDrawer{}
	case ShapeCircle:
		return circleDrawer{}
	case ShapeRounded:
		return roundedDrawer{}
	case ShapeVertical:
		return barDrawer{vertical: true}
	case ShapeHorizontal:
		return barDrawer{}
	default:
		return squareDrawer{}
	}
}
