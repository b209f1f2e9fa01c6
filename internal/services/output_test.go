package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllocateCreatesDirectory(t *testing.T) {
	svc := NewOutputService(testLogger())
	base := filepath.Join(t.TempDir(), "QR_codes", "nested")

	path, err := svc.Allocate(base, 1, "Ali", "png")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}

	want := filepath.Join(base, "1-Ali.png")
	if path != want {
		t.Fatalf("Allocate path = %q, want %q", path, want)
	}

	info, err := os.Stat(base)
	if err != nil {
		t.Fatalf("base directory missing after Allocate: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", base)
	}
}

func TestAllocateIsIdempotent(t *testing.T) {
	svc := NewOutputService(testLogger())
	base := filepath.Join(t.TempDir(), "PDF_files")

	first, err := svc.Allocate(base, 2, "Name", "pdf")
	if err != nil {
		t.Fatalf("first Allocate returned error: %v", err)
	}
	second, err := svc.Allocate(base, 2, "Name", "pdf")
	if err != nil {
		t.Fatalf("second Allocate returned error: %v", err)
	}
	if first != second {
		t.Fatalf("repeated allocation disagreed: %q vs %q", first, second)
	}
}

func TestAllocateDistinguishesRowIndexes(t *testing.T) {
	svc := NewOutputService(testLogger())
	base := t.TempDir()

	first, err := svc.Allocate(base, 1, "Name", "pdf")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	second, err := svc.Allocate(base, 2, "Name", "pdf")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if first == second {
		t.Fatalf("identical names with different row indexes collided: %q", first)
	}
}
