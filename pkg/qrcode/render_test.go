package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
)

func decodeImage(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png decode: %v", err)
	}
	return img
}

func scanQR(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatalf("bitmap: %v", err)
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	return result.GetText()
}

func TestGenerateDefaults(t *testing.T) {
	cfg := Default
	cfg.Payload = "hello"
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatalf("not a png: % x", data[:8])
	}
	img := decodeImage(t, data)
	if b := img.Bounds(); b.Dx() != DefaultSize || b.Dy() != DefaultSize {
		t.Fatalf("bounds = %v", b)
	}
	if got := scanQR(t, img); got != "hello" {
		t.Fatalf("scanned %q", got)
	}
}

func TestGenerateEmptyPayload(t *testing.T) {
	cfg := Default
	_, err := cfg.Generate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
	if verr.Field != "payload" {
		t.Fatalf("field = %q", verr.Field)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	cfg := Default
	cfg.Payload = "stable output"
	cfg.Shape = ShapeRounded
	cfg.Border = Border{Width: 24, Color: "#334455", CornerRadius: 32}

	a, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("repeated renders differ")
	}
}

func TestShapesScan(t *testing.T) {
	shapes := []Shape{ShapeSquare, ShapeGapped, ShapeCircle, ShapeRounded, ShapeVertical, ShapeHorizontal}
	for _, shape := range shapes {
		t.Run(string(shape), func(t *testing.T) {
			cfg := Default
			cfg.Payload = "shape check " + string(shape)
			cfg.Shape = shape
			data, err := cfg.Generate()
			if err != nil {
				t.Fatal(err)
			}
			if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
				t.Fatalf("scanned %q", got)
			}
		})
	}
}

func TestEyeShapeScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "custom eyes"
	cfg.Shape = ShapeCircle
	cfg.EyeShape = ShapeSquare
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestGradientForegroundScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "https://example.com/ocean"
	cfg.Mode = ModeGradient
	cfg.Gradient = Gradient{Start: "#000046", End: "#1CB5E0", Angle: 45}
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestGradientBackgroundScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "soft background"
	cfg.Mode = ModeGradient
	cfg.Gradient = Gradient{Start: "#FFF1E6", End: "#E8F6EF", Angle: 90, Target: TargetBackground}
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestBrandBlueScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "Hello"
	cfg.Foreground = "#1FA2D5"
	cfg.Background = "#FFFFFF"
	cfg.Shape = ShapeRounded
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != "Hello" {
		t.Fatalf("scanned %q", got)
	}
}

func TestTransparentBackground(t *testing.T) {
	cfg := Default
	cfg.Payload = "transparent"
	cfg.Transparent = true
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)
	// The quiet zone corner has no module, so it must stay fully clear.
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
		t.Fatalf("corner alpha = %d", a)
	}
}

func TestBorderAndCaptionDimensions(t *testing.T) {
	cfg := Default
	cfg.Payload = "framed"
	cfg.Border = Border{Width: 32, Color: "#CC0000"}
	cfg.Header = &Caption{Text: "HEADER", FontSize: 24, Bold: true, Align: AlignCenter}
	cfg.Footer = &Caption{Text: "FOOTER", FontSize: 18, Align: AlignCenter}

	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)

	wantW := DefaultSize + 2*32
	wantH := DefaultSize + 2*32 + (24 + 4 + 8) + (18 + 4 + 8)
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("bounds = %v, want %dx%d", b, wantW, wantH)
	}

	// The band area around the QR carries the explicit border color.
	r, g, b8, _ := img.At(4, wantH/2).RGBA()
	if uint8(r>>8) != 0xCC || g != 0 || b8 != 0 {
		t.Fatalf("border pixel = %d %d %d", r>>8, g>>8, b8>>8)
	}

	if got := scanQR(t, img); got != "framed" {
		t.Fatalf("scanned %q", got)
	}
}

func TestOuterCornerRadius(t *testing.T) {
	cfg := Default
	cfg.Payload = "rounded frame"
	cfg.Border = Border{Width: 32, CornerRadius: 48}
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("rounded corner alpha = %d", a)
	}
	// Midpoints of the edges stay opaque.
	b := img.Bounds()
	if _, _, _, a := img.At(b.Dx()/2, 0).RGBA(); a == 0 {
		t.Fatal("top edge midpoint transparent")
	}
}

func TestZeroRadiusKeepsCornersOpaque(t *testing.T) {
	cfg := Default
	cfg.Payload = "sharp"
	cfg.Border = Border{Width: 16}
	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xFFFF {
		t.Fatalf("corner alpha = %d", a)
	}
}

func writeLogoFile(t *testing.T, dir string) string {
	t.Helper()
	dc := gg.NewContext(64, 64)
	dc.SetColor(color.RGBA{220, 30, 30, 255})
	dc.Clear()
	path := filepath.Join(dir, "logo.png")
	if err := dc.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLogoScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "https://example.com/with-logo"
	cfg.Logo = &Logo{Path: writeLogoFile(t, t.TempDir()), Scale: 0.2, Opacity: 1, Clip: ClipCircle}

	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)

	// The logo sits dead center.
	b := img.Bounds()
	r, g, _, _ := img.At(b.Dx()/2, b.Dy()/2).RGBA()
	if uint8(r>>8) != 220 || uint8(g>>8) != 30 {
		t.Fatalf("center pixel = %d %d", r>>8, g>>8)
	}

	// Error correction absorbs the covered modules.
	if got := scanQR(t, img); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestMaxLogoScaleDoesNotFail(t *testing.T) {
	cfg := Default
	cfg.Payload = "big"
	cfg.Level = LevelHighest
	cfg.Logo = &Logo{Path: writeLogoFile(t, t.TempDir()), Scale: 0.5, Clip: ClipCircle}

	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeImage(t, data)
	if b := img.Bounds(); b.Dx() != DefaultSize {
		t.Fatalf("bounds = %v", b)
	}
}

func TestGradientDotsScan(t *testing.T) {
	cfg := Default
	cfg.Payload = "gradient dots"
	cfg.Level = LevelQuart
	cfg.Shape = ShapeCircle
	cfg.Mode = ModeGradient
	cfg.Gradient = Gradient{Start: "#1FA2D5", End: "#0A74B1", Angle: 90}

	data, err := cfg.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestDimensionsAcrossSizes(t *testing.T) {
	for _, size := range []int{100, 256, 1200} {
		cfg := Default
		cfg.Payload = "sized"
		cfg.Size = size
		cfg.Border = Border{Width: 12}
		data, err := cfg.Generate()
		if err != nil {
			t.Fatal(err)
		}
		img := decodeImage(t, data)
		if b := img.Bounds(); b.Dx() != size+24 || b.Dy() != size+24 {
			t.Fatalf("size %d: bounds = %v", size, b)
		}
	}
}

func TestMissingLogoIsBestEffort(t *testing.T) {
	cfg := Default
	cfg.Payload = "logo optional"
	cfg.Logo = &Logo{Path: filepath.Join(t.TempDir(), "absent.png")}

	data, err := cfg.Generate()
	if err != nil {
		t.Fatalf("missing logo failed the render: %v", err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != cfg.Payload {
		t.Fatalf("scanned %q", got)
	}
}

func TestRenderWritesFile(t *testing.T) {
	cfg := Default
	cfg.Payload = "to disk"
	cfg.Dest = filepath.Join(t.TempDir(), "nested", "out", "qr.png")

	if err := cfg.Render(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.Dest)
	if err != nil {
		t.Fatal(err)
	}
	if got := scanQR(t, decodeImage(t, data)); got != "to disk" {
		t.Fatalf("scanned %q", got)
	}
}

func TestRenderRequiresDest(t *testing.T) {
	cfg := Default
	cfg.Payload = "nowhere"
	err := cfg.Render()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "dest" {
		t.Fatalf("err = %v", err)
	}
}
