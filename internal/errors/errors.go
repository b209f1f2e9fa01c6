package errors

import (
	"fmt"
)

// EncodingCapacityError represents an error when data does not fit into any
// supported QR version at the configured error-correction level
type EncodingCapacityError struct {
	DataLength int
	Version    int
	Level      string
}

// Error returns the error message
func (e *EncodingCapacityError) Error() string {
	return fmt.Sprintf("data of %d bytes exceeds QR capacity at level %s (minimum version %d)", e.DataLength, e.Level, e.Version)
}

// InvalidConfigError represents an error when a configuration value is out of range
type InvalidConfigError struct {
	Field   string
	Message string
}

// Error returns the error message
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Message)
}

// AssetNotFoundError represents an error when a referenced file asset is missing
type AssetNotFoundError struct {
	Path string
}

// Error returns the error message
func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.Path)
}

// UnknownFontError represents an error when a font name was never registered
type UnknownFontError struct {
	Font string
}

// Error returns the error message
func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("font not registered: %s", e.Font)
}

// RowParseError represents an error when an input row cannot be turned into a record
type RowParseError struct {
	RowIndex int
	Message  string
}

// Error returns the error message
func (e *RowParseError) Error() string {
	return fmt.Sprintf("row %d: %s", e.RowIndex, e.Message)
}
