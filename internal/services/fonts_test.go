package services

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"badgegen/internal/errors"
)

func writeTempFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("ttf"), 0o644); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}
	return path
}

func TestFontRegistryRegisterAndLookup(t *testing.T) {
	registry := NewFontRegistry()
	path := writeTempFont(t)

	if err := registry.Register("BNazanin", path); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, err := registry.Path("BNazanin")
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if got != path {
		t.Fatalf("Path = %q, want %q", got, path)
	}
}

func TestFontRegistryRejectsMissingFile(t *testing.T) {
	registry := NewFontRegistry()

	err := registry.Register("Ghost", filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Fatalf("expected error for missing font file")
	}
	var notFound *errors.AssetNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected AssetNotFoundError, got %T: %v", err, err)
	}
}

func TestFontRegistryUnknownName(t *testing.T) {
	registry := NewFontRegistry()

	_, err := registry.Path("Nope")
	if err == nil {
		t.Fatalf("expected error for unregistered font")
	}
	var unknown *errors.UnknownFontError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("expected UnknownFontError, got %T: %v", err, err)
	}
}
