package services

import (
	"fmt"
	"os"

	"github.com/signintech/gopdf"
	"github.com/sirupsen/logrus"

	"badgegen/internal/config"
	"badgegen/internal/constants"
	"badgegen/internal/errors"
)

// ComposerService renders one badge page per record: optional full-page
// background, the shaped title, the QR raster and the identifier text, all
// centered on the page's vertical axis.
//
// The layout anchor sits a fixed PageTopMargin below the top edge; the
// configured offsets measure downward from it. Later draws occlude earlier
// ones, so the background always goes first.
type ComposerService struct {
	page   config.PageConfig
	fonts  *FontRegistry
	logger *logrus.Logger
}

// NewComposerService creates a new page composer service
func NewComposerService(page config.PageConfig, fonts *FontRegistry, logger *logrus.Logger) *ComposerService {
	return &ComposerService{
		page:   page,
		fonts:  fonts,
		logger: logger,
	}
}

// Compose writes one finished page document to outputPath. It returns only
// after the file is fully written; no partial document is left behind on the
// success path.
func (s *ComposerService) Compose(outputPath, titleText, numberText, qrImagePath string) error {
	titleFontPath, err := s.fonts.Path(s.page.TitleFont)
	if err != nil {
		return err
	}
	numberFontPath, err := s.fonts.Path(s.page.NumberFont)
	if err != nil {
		return err
	}

	if _, err := os.Stat(qrImagePath); err != nil {
		return &errors.AssetNotFoundError{Path: qrImagePath}
	}
	if s.page.Background != "" {
		if _, err := os.Stat(s.page.Background); err != nil {
			return &errors.AssetNotFoundError{Path: s.page.Background}
		}
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: s.page.Width, H: s.page.Height}})
	pdf.AddPage()

	if err := pdf.AddTTFFont(s.page.TitleFont, titleFontPath); err != nil {
		return fmt.Errorf("failed to load font %s: %w", s.page.TitleFont, err)
	}
	if s.page.NumberFont != s.page.TitleFont {
		if err := pdf.AddTTFFont(s.page.NumberFont, numberFontPath); err != nil {
			return fmt.Errorf("failed to load font %s: %w", s.page.NumberFont, err)
		}
	}

	if s.page.Background != "" {
		if err := pdf.Image(s.page.Background, 0, 0, &gopdf.Rect{W: s.page.Width, H: s.page.Height}); err != nil {
			return fmt.Errorf("failed to draw background %s: %w", s.page.Background, err)
		}
	}

	xCenter := s.page.Width / 2

	titleY := constants.PageTopMargin + s.page.TitleYOffset
	if err := s.drawCentered(&pdf, titleText, s.page.TitleFont, s.page.TitleFontSize, s.page.TitleColor, xCenter, titleY); err != nil {
		return err
	}

	qrY := constants.PageTopMargin + s.page.QRYOffset
	if err := pdf.Image(qrImagePath, xCenter-s.page.QRSize/2, qrY, &gopdf.Rect{W: s.page.QRSize, H: s.page.QRSize}); err != nil {
		return fmt.Errorf("failed to draw QR image %s: %w", qrImagePath, err)
	}

	numberY := constants.PageTopMargin + s.page.QRSize + s.page.NumberYOffset
	if err := s.drawCentered(&pdf, numberText, s.page.NumberFont, s.page.NumberFontSize, s.page.NumberColor, xCenter, numberY); err != nil {
		return err
	}

	if err := pdf.WritePdf(outputPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	s.logger.Debugf("Composed page %s", outputPath)
	return nil
}

// drawCentered draws text horizontally centered on x at vertical position y
func (s *ComposerService) drawCentered(pdf *gopdf.GoPdf, text, font string, size float64, rgb [3]float64, x, y float64) error {
	if err := pdf.SetFont(font, "", size); err != nil {
		return fmt.Errorf("failed to select font %s: %w", font, err)
	}
	pdf.SetTextColor(colorByte(rgb[0]), colorByte(rgb[1]), colorByte(rgb[2]))

	width, err := pdf.MeasureTextWidth(text)
	if err != nil {
		return fmt.Errorf("failed to measure text: %w", err)
	}

	pdf.SetX(x - width/2)
	pdf.SetY(y)
	if err := pdf.Cell(nil, text); err != nil {
		return fmt.Errorf("failed to draw text: %w", err)
	}
	return nil
}

// colorByte converts a [0,1] color component to its 8-bit value
func colorByte(c float64) uint8 {
	return uint8(c*255 + 0.5)
}
