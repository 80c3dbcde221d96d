package qr

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Matrix is the square dark/light module grid produced by the encoder,
// including its quiet zone. It is never mutated after Encode returns.
type Matrix [][]bool

// Size returns the side length in modules.
func (m Matrix) Size() int { return len(m) }

// eyeOffset finds the quiet-zone width by scanning for the first dark module
// of the top-left finder pattern.
func (m Matrix) eyeOffset() int {
	for i, row := range m {
		for _, dark := range row {
			if dark {
				return i
			}
		}
	}
	return 0
}

// inEye reports whether the module at (x, y) belongs to one of the three
// 7x7 finder patterns.
func (m Matrix) inEye(x, y int) bool {
	n := m.Size()
	off := m.eyeOffset()
	in := func(v, start int) bool { return v >= start && v < start+7 }
	topLeft := in(x, off) && in(y, off)
	topRight := in(x, n-off-7) && in(y, off)
	bottomLeft := in(x, off) && in(y, n-off-7)
	return topLeft || topRight || bottomLeft
}

// Encode turns a payload into a module matrix at the requested
// error-correction level, auto-selecting the smallest fitting QR version.
// An empty payload is a ValidationError; encoder failures are
// EncodingErrors.
func Encode(payload string, level Level) (Matrix, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, &ValidationError{Field: "payload", Reason: "must not be empty"}
	}
	code, err := qrcode.New(payload, level.recovery())
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	return Matrix(code.Bitmap()), nil
}
