package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abdullahdiaa/garabic"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/bidi"
)

// ShaperService prepares display text for a renderer that lays glyphs out
// strictly left to right. Arabic-script input is reshaped into contextual
// joined forms and reordered into visual order; everything else passes
// through unchanged.
type ShaperService struct {
	logger *logrus.Logger
}

// NewShaperService creates a new text shaper service
func NewShaperService(logger *logrus.Logger) *ShaperService {
	return &ShaperService{
		logger: logger,
	}
}

// Shape returns the visual-order form of raw. It is a pure function: the
// same input always yields the same output and nothing is mutated.
func (s *ShaperService) Shape(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("text is not valid UTF-8")
	}

	if !containsArabic(raw) {
		return raw, nil
	}

	// Contextual joining first, then bidirectional reordering of the runs.
	reshaped := garabic.Shape(raw)

	var p bidi.Paragraph
	if _, err := p.SetString(reshaped); err != nil {
		return "", fmt.Errorf("bidi analysis failed: %w", err)
	}
	order, err := p.Order()
	if err != nil {
		return "", fmt.Errorf("bidi reordering failed: %w", err)
	}

	var b strings.Builder
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// containsArabic reports whether the string has at least one Arabic-script rune
func containsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
