package models

// Record is one input row, validated at ingestion. RowIndex is 1-based and
// assigned in file order after skipped header rows.
type Record struct {
	DisplayName string
	Identifier  string
	RowIndex    int
}

// Row pairs a parsed record with its ingestion error, if any. Rows with a
// non-nil Err are counted as failures by the pipeline without aborting the
// batch.
type Row struct {
	Record Record
	Err    error
}

// GeneratedArtifact holds the output paths produced for one record. Artifacts
// are written once and never mutated afterward.
type GeneratedArtifact struct {
	QRImagePath string
	PDFPath     string
}

// Summary reports the outcome of one pipeline run.
type Summary struct {
	Processed int
	Succeeded int
	Failed    int
}
