package services

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"badgegen/internal/config"
	"badgegen/internal/constants"
	"badgegen/internal/errors"
)

// QRService turns identifier strings into QR rasters per the configured
// version, error-correction level, module size, quiet zone and colors
type QRService struct {
	cfg    config.QRConfig
	level  qrcode.RecoveryLevel
	fill   color.RGBA
	back   color.RGBA
	logger *logrus.Logger
}

// NewQRService creates a new QR code service
func NewQRService(cfg config.QRConfig, logger *logrus.Logger) (*QRService, error) {
	fill, err := parseHexColor(cfg.FillColor)
	if err != nil {
		return nil, &errors.InvalidConfigError{Field: "qr.fill_color", Message: err.Error()}
	}
	back, err := parseHexColor(cfg.BackColor)
	if err != nil {
		return nil, &errors.InvalidConfigError{Field: "qr.back_color", Message: err.Error()}
	}
	level, err := recoveryLevel(cfg.Level)
	if err != nil {
		return nil, &errors.InvalidConfigError{Field: "qr.level", Message: err.Error()}
	}

	return &QRService{
		cfg:    cfg,
		level:  level,
		fill:   fill,
		back:   back,
		logger: logger,
	}, nil
}

// Encode builds the QR symbol for data at the smallest version that is at
// least the configured one and still fits the payload. The raster has
// (4v+17) modules per side, each BoxSize pixels, surrounded by a Border-wide
// quiet zone. Identical input always yields an identical raster.
func (s *QRService) Encode(data string) (image.Image, error) {
	payload := data
	if payload == "" {
		// The underlying encoder rejects empty payloads; a single space
		// keeps blank identifiers producing a minimal scannable symbol.
		payload = " "
	}

	var q *qrcode.QRCode
	for version := s.cfg.Version; version <= constants.MaxQRVersion; version++ {
		candidate, err := qrcode.NewWithForcedVersion(payload, version, s.level)
		if err == nil {
			q = candidate
			break
		}
	}
	if q == nil {
		return nil, &errors.EncodingCapacityError{
			DataLength: len(payload),
			Version:    s.cfg.Version,
			Level:      s.cfg.Level,
		}
	}

	q.ForegroundColor = s.fill
	q.BackgroundColor = s.back
	q.DisableBorder = true

	s.logger.Debugf("Encoded %d bytes into version %d QR symbol", len(payload), q.VersionNumber)

	// Negative size renders each module as |size| pixels.
	symbol := q.Image(-s.cfg.BoxSize)
	return s.addQuietZone(symbol), nil
}

// SavePNG writes the raster to path as a PNG file
func (s *QRService) SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// addQuietZone surrounds the symbol with Border modules of the background color
func (s *QRService) addQuietZone(symbol image.Image) image.Image {
	margin := s.cfg.Border * s.cfg.BoxSize
	bounds := symbol.Bounds()

	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx()+2*margin, bounds.Dy()+2*margin))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: s.back}, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(margin, margin, margin+bounds.Dx(), margin+bounds.Dy()), symbol, bounds.Min, draw.Src)
	return out
}

// recoveryLevel maps the configured L/M/Q/H level name onto the encoder's tiers
func recoveryLevel(level string) (qrcode.RecoveryLevel, error) {
	switch level {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("unknown error-correction level %q", level)
}

// parseHexColor parses a #rrggbb string into an opaque RGBA color
func parseHexColor(value string) (color.RGBA, error) {
	if len(value) != 7 || value[0] != '#' {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", value)
	}
	n, err := strconv.ParseUint(value[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", value)
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 255,
	}, nil
}
