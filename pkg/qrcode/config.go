// Package qr renders styled, scannable QR code images: payload to module
// matrix, then colors (solid or gradient), module shapes, logo overlay,
// corner rounding and captioned borders.
package qr

import (
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Level is a QR error-correction level.
type Level string

const (
	LevelLow     Level = "L"
	LevelMedium  Level = "M"
	LevelQuart   Level = "Q"
	LevelHighest Level = "H"
)

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelMedium:
		return qrcode.Medium
	case LevelQuart:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Highest
	}
}

// Shape selects how individual dark modules are drawn.
type Shape string

const (
	ShapeSquare     Shape = "square"
	ShapeGapped     Shape = "gapped"
	ShapeCircle     Shape = "circle"
	ShapeRounded    Shape = "rounded"
	ShapeVertical   Shape = "vertical"
	ShapeHorizontal Shape = "horizontal"
)

// ColorMode chooses between flat colors and a linear gradient fill.
type ColorMode string

const (
	ModeSolid    ColorMode = "solid"
	ModeGradient ColorMode = "gradient"
)

// GradientTarget names the layer a gradient replaces.
type GradientTarget string

const (
	TargetForeground GradientTarget = "foreground"
	TargetBackground GradientTarget = "background"
)

// ClipShape masks the embedded logo.
type ClipShape string

const (
	ClipNone   ClipShape = "none"
	ClipCircle ClipShape = "circle"
	ClipSquare ClipShape = "square"
)

// Align positions caption text inside its band.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Gradient describes a two-color linear gradient. Angle is in degrees:
// 90 runs top to bottom, 0 left to right.
type Gradient struct {
	Start  string
	End    string
	Angle  float64
	Target GradientTarget
}

// Border frames the QR with a solid band. Color empty means "use the
// background color" (or the gradient start color when the background is a
// gradient). CornerRadius rounds the outer canvas corners to transparency.
type Border struct {
	Width        int
	Color        string
	CornerRadius int
}

// Logo embeds a centered image over the code. Scale is relative to the
// target size, Opacity multiplies the logo alpha channel.
type Logo struct {
	Path    string
	Scale   float64
	Opacity float64
	Clip    ClipShape
}

// Caption is a header or footer text band.
type Caption struct {
	Text     string
	FontPath string
	FontSize int
	Bold     bool
	Align    Align
}

// Config is the immutable input to one render. Color fields are raw tokens
// (hex, named, rgb()/rgba(), see the colorx package); they are resolved once
// at the render boundary and internal stages only ever see RGBA values.
type Config struct {
	Payload string
	Dest    string

	Size  int
	Level Level

	Shape Shape
	// EyeShape overrides the drawer for the three finder patterns.
	// Empty means "same as Shape".
	EyeShape Shape

	Mode       ColorMode
	Foreground string
	Background string
	Gradient   Gradient

	Transparent bool

	Border         Border
	QRCornerRadius int

	Logo   *Logo
	Header *Caption
	Footer *Caption

	// Log receives warnings about degraded cosmetic steps. Nil disables
	// logging.
	Log *zap.SugaredLogger
}

func (c *Config) logger() *zap.SugaredLogger {
	if c.Log != nil {
		return c.Log
	}
	return zap.NewNop().Sugar()
}
