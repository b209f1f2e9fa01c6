package rowsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"badgegen/internal/config"
	"badgegen/internal/errors"
	"badgegen/internal/models"
)

// CSVReader reads the tabular row source: a configurable number of header
// rows is skipped, then the name and identifier columns are pulled out of
// each remaining row by index
type CSVReader struct {
	cfg    config.InputConfig
	logger *logrus.Logger
}

// NewCSVReader creates a new CSV row reader
func NewCSVReader(cfg config.InputConfig, logger *logrus.Logger) *CSVReader {
	return &CSVReader{
		cfg:    cfg,
		logger: logger,
	}
}

// Read parses the configured file into typed rows in file order. RowIndex is
// 1-based, counted after the skipped headers. A malformed row becomes a Row
// with a RowParseError instead of aborting the read, so the pipeline can
// count it as a failure and carry on. An unreadable file is fatal.
func (r *CSVReader) Read() ([]models.Row, error) {
	f, err := os.Open(r.cfg.CSVFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open row source %s: %w", r.cfg.CSVFile, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var rows []models.Row
	line := 0
	rowIndex := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row source %s: %w", r.cfg.CSVFile, err)
		}

		line++
		if line <= r.cfg.SkipRows {
			continue
		}

		rowIndex++
		rows = append(rows, r.parseRow(rowIndex, fields))
	}

	r.logger.Debugf("Read %d rows from %s", len(rows), r.cfg.CSVFile)
	return rows, nil
}

// parseRow validates one raw row into a typed record
func (r *CSVReader) parseRow(rowIndex int, fields []string) models.Row {
	maxColumn := r.cfg.NameColumn
	if r.cfg.IDColumn > maxColumn {
		maxColumn = r.cfg.IDColumn
	}

	if len(fields) <= maxColumn {
		return models.Row{
			Record: models.Record{RowIndex: rowIndex},
			Err: &errors.RowParseError{
				RowIndex: rowIndex,
				Message:  fmt.Sprintf("expected at least %d columns, got %d", maxColumn+1, len(fields)),
			},
		}
	}

	name := strings.TrimSpace(fields[r.cfg.NameColumn])
	identifier := strings.TrimSpace(fields[r.cfg.IDColumn])

	row := models.Row{
		Record: models.Record{
			DisplayName: name,
			Identifier:  identifier,
			RowIndex:    rowIndex,
		},
	}

	switch {
	case name == "":
		row.Err = &errors.RowParseError{RowIndex: rowIndex, Message: "name column is empty"}
	case !utf8.ValidString(name) || !utf8.ValidString(identifier):
		row.Err = &errors.RowParseError{RowIndex: rowIndex, Message: "row contains invalid UTF-8"}
	}

	return row
}
