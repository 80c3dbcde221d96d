package service

import (
	"archive/zip"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"go.uber.org/zap"

	"github.com/qrforge/qrforge/internal/adapters/logger"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func scanEntry(t *testing.T, f *zip.File) string {
	t.Helper()
	rc, err := f.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	img, err := png.Decode(rc)
	if err != nil {
		t.Fatal(err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		t.Fatal(err)
	}
	return result.GetText()
}

func TestBatchGenerate(t *testing.T) {
	dir := t.TempDir()
	svc := NewBatchService(testLogger(), qr.Default, 2)

	rows := []Row{
		{Format: "text", Data: "first"},
		{Format: "url", Data: "example.com"},
		{Format: "hologram", Data: "RAW-FALLBACK"},
	}
	zipPath := filepath.Join(dir, "out.zip")
	if err := svc.Generate(context.Background(), rows, zipPath); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if len(zr.File) != 3 {
		t.Fatalf("got %d entries", len(zr.File))
	}
	byName := map[string]*zip.File{}
	for _, f := range zr.File {
		byName[f.Name] = f
	}
	for _, name := range []string{"qr_001.png", "qr_002.png", "qr_003.png"} {
		if byName[name] == nil {
			t.Fatalf("missing entry %s", name)
		}
	}

	if got := scanEntry(t, byName["qr_001.png"]); got != "first" {
		t.Errorf("qr_001 = %q", got)
	}
	if got := scanEntry(t, byName["qr_002.png"]); got != "https://example.com" {
		t.Errorf("qr_002 = %q", got)
	}
	// Unknown format tags degrade to the raw data as literal text.
	if got := scanEntry(t, byName["qr_003.png"]); got != "RAW-FALLBACK" {
		t.Errorf("qr_003 = %q", got)
	}
}

func TestBatchGenerateSamples(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "samples.zip")
	svc := NewBatchService(testLogger(), qr.Default, 1)
	if err := svc.Generate(context.Background(), nil, zipPath); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 2 {
		t.Fatalf("got %d entries", len(zr.File))
	}
}

func TestBatchPlaceholder(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "bad.zip")
	svc := NewBatchService(testLogger(), qr.Default, 1)

	// A row with no usable data cannot encode and gets a placeholder.
	rows := []Row{{Format: "text", Data: "   "}}
	if err := svc.Generate(context.Background(), rows, zipPath); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	if len(zr.File) != 1 {
		t.Fatalf("got %d entries", len(zr.File))
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	img, err := png.Decode(rc)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, qr.DefaultSize, qr.DefaultSize) {
		t.Fatalf("placeholder bounds = %v", img.Bounds())
	}
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	content := "Format,Data\ntext,hello\nwifi,Net|wpa|secret\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewBatchService(testLogger(), qr.Default, 1)
	rows, err := svc.ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Format != "text" || rows[0].Data != "hello" {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if rows[1].Data != "Net|wpa|secret" {
		t.Fatalf("row 1 = %+v", rows[1])
	}
}
