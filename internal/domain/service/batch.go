package service

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/qrforge/qrforge/internal/adapters/logger"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

// Row is one batch item: a format tag plus pipe-delimited builder fields.
type Row struct {
	Format string
	Data   string
}

type BatchService struct {
	log      *logger.Logger
	defaults qr.Config
	workers  int
}

func NewBatchService(log *logger.Logger, defaults qr.Config, workers int) *BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchService{
		log:      log,
		defaults: defaults,
		workers:  workers,
	}
}

// ReadCSV loads batch rows from a CSV file. A first row whose leading cell
// is "format" is treated as a header and skipped.
func (s *BatchService) ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows []Row
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "format") {
				continue
			}
		}
		row := Row{Format: strings.TrimSpace(record[0])}
		if len(record) > 1 {
			row.Data = record[1]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Generate renders one image per row and bundles them into a zip archive at
// zipPath. A malformed row falls back to encoding its raw data as literal
// text; a row that still fails to render gets a placeholder image. One bad
// row never aborts the batch.
func (s *BatchService) Generate(ctx context.Context, rows []Row, zipPath string) error {
	if len(rows) == 0 {
		rows = []Row{
			{Format: "text", Data: "Sample QR 1"},
			{Format: "text", Data: "Sample QR 2"},
		}
	}

	workDir := filepath.Join(os.TempDir(), "qr_batch_"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	dests := make([]string, len(rows))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, row := range rows {
		i, row := i, row
		dests[i] = filepath.Join(workDir, fmt.Sprintf("qr_%03d.png", i+1))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.renderRow(row, dests[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeArchive(zipPath, dests)
}

func (s *BatchService) renderRow(row Row, dest string) {
	parts := strings.Split(row.Data, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	data, err := BuildPayload(row.Format, parts)
	if err != nil {
		// Malformed rows degrade to the raw data as a literal text payload.
		s.log.Warnw("row fell back to literal text", "format", row.Format, "error", err)
		data = strings.TrimSpace(row.Data)
	}

	cfg := s.defaults
	cfg.Payload = data
	cfg.Dest = dest
	cfg.Log = s.log.SugaredLogger

	if err := cfg.Render(); err != nil {
		s.log.Warnw("row failed to render, writing placeholder", "dest", dest, "error", err)
		if perr := writePlaceholder(dest, cfg.Size); perr != nil {
			s.log.Errorw("placeholder write failed", "dest", dest, "error", perr)
		}
	}
}

// writePlaceholder draws a neutral stand-in image so the archive keeps one
// entry per input row.
func writePlaceholder(dest string, size int) error {
	if size <= 0 {
		size = qr.DefaultSize
	}
	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{230, 230, 230, 255})
	dc.Clear()
	dc.SetColor(color.RGBA{120, 120, 120, 255})
	dc.SetLineWidth(float64(size) / 32)
	margin := float64(size) / 4
	dc.DrawLine(margin, margin, float64(size)-margin, float64(size)-margin)
	dc.DrawLine(float64(size)-margin, margin, margin, float64(size)-margin)
	dc.Stroke()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dc.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeArchive(zipPath string, files []string) error {
	if dir := filepath.Dir(zipPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, path := range files {
		if err := addToArchive(zw, path); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func addToArchive(zw *zip.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
