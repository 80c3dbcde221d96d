package qr

import "fmt"

// ValidationError reports caller input rejected before any rendering starts.
// No image is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// EncodingError wraps a failure of the QR encoder itself, typically a payload
// that does not fit at the requested error-correction level. It is fatal for
// the request: no image is produced and the caller should shorten the payload
// or lower the level.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string { return "qr encoding failed: " + e.Err.Error() }
func (e *EncodingError) Unwrap() error { return e.Err }

// AssetError reports a missing or unreadable optional asset (logo image,
// font file). Renders recover from it locally and proceed without the asset.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string { return fmt.Sprintf("asset %s: %v", e.Path, e.Err) }
func (e *AssetError) Unwrap() error { return e.Err }

// RenderError reports an unexpected failure inside compositing or layout.
// The orchestrator logs it and still saves whatever canvas state exists.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render stage %s: %v", e.Stage, e.Err) }
func (e *RenderError) Unwrap() error { return e.Err }
