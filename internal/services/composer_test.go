package services

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"badgegen/internal/config"
	"badgegen/internal/errors"
)

func testPageConfig() config.PageConfig {
	return config.PageConfig{
		Width:          300,
		Height:         400,
		TitleFont:      "Title",
		TitleFontSize:  16,
		NumberFont:     "Number",
		NumberFontSize: 12,
		QRSize:         150,
		QRYOffset:      10,
		NumberYOffset:  30,
	}
}

func TestComposeUnregisteredFont(t *testing.T) {
	composer := NewComposerService(testPageConfig(), NewFontRegistry(), testLogger())

	err := composer.Compose(filepath.Join(t.TempDir(), "out.pdf"), "Ali", "12345", "qr.png")
	if err == nil {
		t.Fatalf("expected error for unregistered font")
	}
	var unknown *errors.UnknownFontError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("expected UnknownFontError, got %T: %v", err, err)
	}
}

func TestComposeMissingQRImage(t *testing.T) {
	fonts := NewFontRegistry()
	fontPath := writeTempFont(t)
	if err := fonts.Register("Title", fontPath); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := fonts.Register("Number", fontPath); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	composer := NewComposerService(testPageConfig(), fonts, testLogger())

	dir := t.TempDir()
	err := composer.Compose(filepath.Join(dir, "out.pdf"), "Ali", "12345", filepath.Join(dir, "missing.png"))
	if err == nil {
		t.Fatalf("expected error for missing QR image")
	}
	var notFound *errors.AssetNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected AssetNotFoundError, got %T: %v", err, err)
	}
}

func TestComposeMissingBackground(t *testing.T) {
	fonts := NewFontRegistry()
	fontPath := writeTempFont(t)
	if err := fonts.Register("Title", fontPath); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := fonts.Register("Number", fontPath); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	dir := t.TempDir()
	qrPath := filepath.Join(dir, "qr.png")
	if err := os.WriteFile(qrPath, []byte("png"), 0o644); err != nil {
		t.Fatalf("failed to write QR placeholder: %v", err)
	}

	page := testPageConfig()
	page.Background = filepath.Join(dir, "missing-bg.png")
	composer := NewComposerService(page, fonts, testLogger())

	err := composer.Compose(filepath.Join(dir, "out.pdf"), "Ali", "12345", qrPath)
	if err == nil {
		t.Fatalf("expected error for missing background")
	}
	var notFound *errors.AssetNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected AssetNotFoundError, got %T: %v", err, err)
	}
}

func TestColorByte(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
	}
	for _, tc := range cases {
		if got := colorByte(tc.in); got != tc.want {
			t.Fatalf("colorByte(%g) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
