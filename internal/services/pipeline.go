package services

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"badgegen/internal/config"
	"badgegen/internal/constants"
	"badgegen/internal/models"
)

// TextShaper prepares display text for left-to-right rendering
type TextShaper interface {
	Shape(raw string) (string, error)
}

// SymbolEncoder produces and persists QR rasters
type SymbolEncoder interface {
	Encode(data string) (image.Image, error)
	SavePNG(img image.Image, path string) error
}

// PathAllocator derives artifact paths and creates their directories
type PathAllocator interface {
	Allocate(baseDir string, rowIndex int, displayName, ext string) (string, error)
}

// PageComposer renders one finished page document
type PageComposer interface {
	Compose(outputPath, titleText, numberText, qrImagePath string) error
}

// PipelineService runs every record through shape, encode and compose.
// Records are independent and fan out across a bounded worker pool; each
// record's own QR-then-compose ordering is preserved because its whole
// sequence runs on a single worker. A per-record failure is logged and
// counted, never aborting the batch.
type PipelineService struct {
	cfg      *config.Config
	shaper   TextShaper
	encoder  SymbolEncoder
	paths    PathAllocator
	composer PageComposer
	logger   *logrus.Logger
}

// NewPipelineService creates a new pipeline orchestrator
func NewPipelineService(
	cfg *config.Config,
	shaper TextShaper,
	encoder SymbolEncoder,
	paths PathAllocator,
	composer PageComposer,
	logger *logrus.Logger,
) *PipelineService {
	return &PipelineService{
		cfg:      cfg,
		shaper:   shaper,
		encoder:  encoder,
		paths:    paths,
		composer: composer,
		logger:   logger,
	}
}

// Run processes rows in order of submission and returns the final summary.
// Cancelling ctx stops new records from starting; in-flight records finish.
func (s *PipelineService) Run(ctx context.Context, rows []models.Row) models.Summary {
	var processed, succeeded, failed int64

	workers := s.cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, row := range rows {
		if gctx.Err() != nil {
			s.logger.Warn("Stop requested, not starting remaining records")
			break
		}

		row := row
		g.Go(func() error {
			atomic.AddInt64(&processed, 1)

			artifact, err := s.processRecord(row)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				s.logger.Errorf("Record %d (%q) failed: %v", row.Record.RowIndex, row.Record.DisplayName, err)
				return nil
			}

			atomic.AddInt64(&succeeded, 1)
			s.logger.Infof("Generated %s", artifact.PDFPath)
			return nil
		})
	}

	g.Wait()

	summary := models.Summary{
		Processed: int(processed),
		Succeeded: int(succeeded),
		Failed:    int(failed),
	}
	s.logger.Infof("Processed %d records: %d succeeded, %d failed", summary.Processed, summary.Succeeded, summary.Failed)
	return summary
}

// processRecord runs one record through the full shape-encode-compose
// sequence and returns the artifact paths it produced
func (s *PipelineService) processRecord(row models.Row) (*models.GeneratedArtifact, error) {
	if row.Err != nil {
		return nil, row.Err
	}
	rec := row.Record

	title, err := s.shaper.Shape(rec.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("shaping failed: %w", err)
	}

	symbol, err := s.encoder.Encode(rec.Identifier)
	if err != nil {
		return nil, fmt.Errorf("QR encoding failed: %w", err)
	}

	qrPath, err := s.paths.Allocate(s.cfg.Output.QRDir, rec.RowIndex, rec.DisplayName, constants.QRExtension)
	if err != nil {
		return nil, err
	}
	if err := s.encoder.SavePNG(symbol, qrPath); err != nil {
		return nil, fmt.Errorf("saving QR image failed: %w", err)
	}

	pdfPath, err := s.paths.Allocate(s.cfg.Output.PDFDir, rec.RowIndex, rec.DisplayName, constants.PDFExtension)
	if err != nil {
		return nil, err
	}
	if err := s.composer.Compose(pdfPath, title, rec.Identifier, qrPath); err != nil {
		return nil, fmt.Errorf("page composition failed: %w", err)
	}

	return &models.GeneratedArtifact{
		QRImagePath: qrPath,
		PDFPath:     pdfPath,
	}, nil
}
