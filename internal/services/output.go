package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"badgegen/internal/constants"
)

// OutputService derives deterministic artifact paths and makes sure their
// directories exist
type OutputService struct {
	logger *logrus.Logger
}

// NewOutputService creates a new output path service
func NewOutputService(logger *logrus.Logger) *OutputService {
	return &OutputService{
		logger: logger,
	}
}

// Allocate returns baseDir/{rowIndex}-{displayName}.{ext}, creating baseDir
// and any parents if absent. Creation is idempotent and safe under
// concurrent first use. No collision detection is performed: repeated
// allocation with the same inputs names the same path, and writers overwrite
// whatever is already there.
func (s *OutputService) Allocate(baseDir string, rowIndex int, displayName, ext string) (string, error) {
	if err := os.MkdirAll(baseDir, constants.OutputDirPerm); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", baseDir, err)
	}
	return filepath.Join(baseDir, fmt.Sprintf("%d-%s.%s", rowIndex, displayName, ext)), nil
}
