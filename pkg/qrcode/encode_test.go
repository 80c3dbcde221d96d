package qr

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	m, err := Encode("https://example.com", LevelHighest)
	if err != nil {
		t.Fatal(err)
	}
	n := m.Size()
	if n == 0 {
		t.Fatal("empty matrix")
	}
	for _, row := range m {
		if len(row) != n {
			t.Fatalf("matrix not square: %d vs %d", len(row), n)
		}
	}
	// The encoder includes a quiet zone, so the outermost rows are light.
	for x := 0; x < n; x++ {
		if m[0][x] || m[n-1][x] {
			t.Fatal("quiet zone missing")
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	_, err := Encode("   ", LevelMedium)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
}

func TestMatrixInEye(t *testing.T) {
	m, err := Encode("eye check", LevelHighest)
	if err != nil {
		t.Fatal(err)
	}
	off := m.eyeOffset()
	if off == 0 {
		t.Fatal("no quiet zone offset")
	}
	if !m.inEye(off, off) {
		t.Fatal("top-left finder corner not in eye")
	}
	n := m.Size()
	if m.inEye(n/2, n/2) {
		t.Fatal("center flagged as eye")
	}
}

func TestLevelRecovery(t *testing.T) {
	if LevelLow.recovery() == LevelHighest.recovery() {
		t.Fatal("levels collapsed")
	}
	// Unknown levels default to the highest recovery.
	if Level("X").recovery() != LevelHighest.recovery() {
		t.Fatal("unknown level not defaulted")
	}
}
