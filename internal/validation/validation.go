package validation

import (
	"fmt"
	"strconv"
	"strings"

	"badgegen/internal/constants"
	"badgegen/internal/errors"
)

// ValidateQRVersion validates a minimum QR symbol version
func ValidateQRVersion(version int) error {
	if version < 1 || version > constants.MaxQRVersion {
		return &errors.InvalidConfigError{
			Field:   "qr.version",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", constants.MaxQRVersion, version),
		}
	}
	return nil
}

// ValidateQRLevel validates an error-correction level name
func ValidateQRLevel(level string) error {
	switch strings.ToUpper(level) {
	case "L", "M", "Q", "H":
		return nil
	}
	return &errors.InvalidConfigError{
		Field:   "qr.level",
		Message: fmt.Sprintf("must be one of L, M, Q, H, got %q", level),
	}
}

// ValidateQRBoxSize validates the pixel size of one QR module
func ValidateQRBoxSize(boxSize int) error {
	if boxSize < 1 {
		return &errors.InvalidConfigError{
			Field:   "qr.box_size",
			Message: fmt.Sprintf("must be positive, got %d", boxSize),
		}
	}
	return nil
}

// ValidateQRBorder validates the quiet-zone width in modules
func ValidateQRBorder(border int) error {
	if border < 0 {
		return &errors.InvalidConfigError{
			Field:   "qr.border",
			Message: fmt.Sprintf("must not be negative, got %d", border),
		}
	}
	return nil
}

// ValidatePageSize validates the page dimensions
func ValidatePageSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return &errors.InvalidConfigError{
			Field:   "page.size",
			Message: fmt.Sprintf("dimensions must be positive, got %gx%g", width, height),
		}
	}
	return nil
}

// ValidateQRPlacement validates the QR square against the page dimensions
func ValidateQRPlacement(qrSize, width, height float64) error {
	if qrSize <= 0 {
		return &errors.InvalidConfigError{
			Field:   "page.qr_size",
			Message: fmt.Sprintf("must be positive, got %g", qrSize),
		}
	}
	if qrSize > width || qrSize > height {
		return &errors.InvalidConfigError{
			Field:   "page.qr_size",
			Message: fmt.Sprintf("%g does not fit on a %gx%g page", qrSize, width, height),
		}
	}
	return nil
}

// ValidateOffset validates a vertical layout offset
func ValidateOffset(field string, offset float64) error {
	if offset < 0 {
		return &errors.InvalidConfigError{
			Field:   field,
			Message: fmt.Sprintf("must not be negative, got %g", offset),
		}
	}
	return nil
}

// ParseColorTriple parses a comma-separated "r,g,b" string with components
// in [0,1] into an RGB triple
func ParseColorTriple(field, value string) ([3]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return [3]float64{}, &errors.InvalidConfigError{
			Field:   field,
			Message: fmt.Sprintf("expected r,g,b got %q", value),
		}
	}

	var triple [3]float64
	for i, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || c < 0 || c > 1 {
			return [3]float64{}, &errors.InvalidConfigError{
				Field:   field,
				Message: fmt.Sprintf("component %q must be a number in [0,1]", part),
			}
		}
		triple[i] = c
	}

	return triple, nil
}

// ValidateHexColor validates a #rrggbb color string
func ValidateHexColor(field, value string) error {
	if len(value) != 7 || value[0] != '#' {
		return &errors.InvalidConfigError{
			Field:   field,
			Message: fmt.Sprintf("expected #rrggbb, got %q", value),
		}
	}
	if _, err := strconv.ParseUint(value[1:], 16, 32); err != nil {
		return &errors.InvalidConfigError{
			Field:   field,
			Message: fmt.Sprintf("expected #rrggbb, got %q", value),
		}
	}
	return nil
}

// ValidateSkipRows validates the number of header rows to skip
func ValidateSkipRows(skipRows int) error {
	if skipRows < 0 {
		return &errors.InvalidConfigError{
			Field:   "input.skip_rows",
			Message: fmt.Sprintf("must not be negative, got %d", skipRows),
		}
	}
	return nil
}

// ValidateColumnIndex validates a zero-based CSV column index
func ValidateColumnIndex(field string, index int) error {
	if index < 0 {
		return &errors.InvalidConfigError{
			Field:   field,
			Message: fmt.Sprintf("must not be negative, got %d", index),
		}
	}
	return nil
}
