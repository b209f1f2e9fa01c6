package rowsource

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"badgegen/internal/config"
	"badgegen/internal/errors"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}
	return path
}

func defaultInput(path string) config.InputConfig {
	return config.InputConfig{
		CSVFile:    path,
		SkipRows:   1,
		NameColumn: 0,
		IDColumn:   1,
	}
}

func TestReadSkipsHeaderAndIndexesRows(t *testing.T) {
	path := writeCSV(t, "name,number\nAli,12345\nSara,67890\n")
	reader := NewCSVReader(defaultInput(path), testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Err != nil {
		t.Fatalf("unexpected row error: %v", first.Err)
	}
	if first.Record.RowIndex != 1 || first.Record.DisplayName != "Ali" || first.Record.Identifier != "12345" {
		t.Fatalf("unexpected first record: %+v", first.Record)
	}
	if rows[1].Record.RowIndex != 2 {
		t.Fatalf("row index = %d, want 2", rows[1].Record.RowIndex)
	}
}

func TestReadHonorsColumnIndices(t *testing.T) {
	path := writeCSV(t, "12345,Ali\n67890,Sara\n")
	cfg := config.InputConfig{CSVFile: path, SkipRows: 0, NameColumn: 1, IDColumn: 0}
	reader := NewCSVReader(cfg, testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if rows[0].Record.DisplayName != "Ali" || rows[0].Record.Identifier != "12345" {
		t.Fatalf("column mapping wrong: %+v", rows[0].Record)
	}
}

func TestReadShortRow(t *testing.T) {
	path := writeCSV(t, "name,number\nAli\nSara,67890\n")
	reader := NewCSVReader(defaultInput(path), testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	var parseErr *errors.RowParseError
	if !stderrors.As(rows[0].Err, &parseErr) {
		t.Fatalf("expected RowParseError for short row, got %v", rows[0].Err)
	}
	if rows[1].Err != nil {
		t.Fatalf("valid row after short row got error: %v", rows[1].Err)
	}
	if rows[1].Record.RowIndex != 2 {
		t.Fatalf("row index after short row = %d, want 2", rows[1].Record.RowIndex)
	}
}

func TestReadInvalidUTF8Name(t *testing.T) {
	path := writeCSV(t, "name,number\n\xff\xfe,12345\n")
	reader := NewCSVReader(defaultInput(path), testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	var parseErr *errors.RowParseError
	if !stderrors.As(rows[0].Err, &parseErr) {
		t.Fatalf("expected RowParseError for invalid UTF-8, got %v", rows[0].Err)
	}
}

func TestReadEmptyName(t *testing.T) {
	path := writeCSV(t, "name,number\n,12345\n")
	reader := NewCSVReader(defaultInput(path), testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	var parseErr *errors.RowParseError
	if !stderrors.As(rows[0].Err, &parseErr) {
		t.Fatalf("expected RowParseError for empty name, got %v", rows[0].Err)
	}
}

func TestReadAllowsEmptyIdentifier(t *testing.T) {
	path := writeCSV(t, "name,number\nAli,\n")
	reader := NewCSVReader(defaultInput(path), testLogger())

	rows, err := reader.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if rows[0].Err != nil {
		t.Fatalf("empty identifier should be accepted, got %v", rows[0].Err)
	}
	if rows[0].Record.Identifier != "" {
		t.Fatalf("identifier = %q, want empty", rows[0].Record.Identifier)
	}
}

func TestReadMissingFile(t *testing.T) {
	reader := NewCSVReader(defaultInput(filepath.Join(t.TempDir(), "nope.csv")), testLogger())

	if _, err := reader.Read(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
