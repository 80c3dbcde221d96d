package service

import (
	"context"

	"github.com/qrforge/qrforge/internal/adapters/logger"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

type RenderService struct {
	log      *logger.Logger
	defaults qr.Config
}

func NewRenderService(log *logger.Logger, defaults qr.Config) *RenderService {
	return &RenderService{
		log:      log,
		defaults: defaults,
	}
}

// Defaults returns a copy of the style defaults for callers that assemble
// their own Config.
func (s *RenderService) Defaults() qr.Config {
	return s.defaults
}

// Render builds the payload for a format tag, then renders it to dest with
// the configured style defaults. It returns the built payload string.
// Validation and encoding failures are returned with no image written.
func (s *RenderService) Render(ctx context.Context, format string, parts []string, dest string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := BuildPayload(format, parts)
	if err != nil {
		return "", err
	}
	return data, s.RenderPayload(ctx, data, dest)
}

// RenderPayload renders an already-built payload string to dest.
func (s *RenderService) RenderPayload(ctx context.Context, data, dest string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := s.defaults
	cfg.Payload = data
	cfg.Dest = dest
	cfg.Log = s.log.SugaredLogger

	if err := cfg.Render(); err != nil {
		s.log.Errorw("render failed", "dest", dest, "error", err)
		return err
	}
	s.log.Infow("render complete", "dest", dest, "size", cfg.Size)
	return nil
}
