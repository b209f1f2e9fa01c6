package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"badgegen/internal/constants"
	"badgegen/internal/validation"
)

// Load loads the configuration from an optional YAML file plus environment
// variables. Every key has a documented default; environment variables use
// the BADGEGEN_ prefix with dots replaced by underscores
// (e.g. BADGEGEN_QR_VERSION overrides qr.version).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BADGEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		LogLevel: v.GetString("log_level"),
		Workers:  v.GetInt("workers"),
		Input: InputConfig{
			CSVFile:    v.GetString("input.csv_file"),
			SkipRows:   v.GetInt("input.skip_rows"),
			NameColumn: v.GetInt("input.name_column"),
			IDColumn:   v.GetInt("input.id_column"),
		},
		Output: OutputConfig{
			QRDir:  v.GetString("output.qr_dir"),
			PDFDir: v.GetString("output.pdf_dir"),
		},
		QR: QRConfig{
			Version:   v.GetInt("qr.version"),
			Level:     strings.ToUpper(v.GetString("qr.level")),
			BoxSize:   v.GetInt("qr.box_size"),
			Border:    v.GetInt("qr.border"),
			FillColor: v.GetString("qr.fill_color"),
			BackColor: v.GetString("qr.back_color"),
		},
		Page: PageConfig{
			Width:          v.GetFloat64("page.width"),
			Height:         v.GetFloat64("page.height"),
			Background:     v.GetString("page.background"),
			TitleFont:      v.GetString("page.title_font"),
			TitleFontFile:  v.GetString("page.title_font_file"),
			TitleFontSize:  v.GetFloat64("page.title_font_size"),
			NumberFont:     v.GetString("page.number_font"),
			NumberFontFile: v.GetString("page.number_font_file"),
			NumberFontSize: v.GetFloat64("page.number_font_size"),
			QRSize:         v.GetFloat64("page.qr_size"),
			TitleYOffset:   v.GetFloat64("page.title_y_offset"),
			QRYOffset:      v.GetFloat64("page.qr_y_offset"),
			NumberYOffset:  v.GetFloat64("page.number_y_offset"),
		},
	}

	titleColor, err := validation.ParseColorTriple("page.title_color", v.GetString("page.title_color"))
	if err != nil {
		return nil, err
	}
	cfg.Page.TitleColor = titleColor

	numberColor, err := validation.ParseColorTriple("page.number_color", v.GetString("page.number_color"))
	if err != nil {
		return nil, err
	}
	cfg.Page.NumberColor = numberColor

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets the documented default for every configuration key
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 0)

	v.SetDefault("input.csv_file", constants.DefaultCSVFile)
	v.SetDefault("input.skip_rows", constants.DefaultSkipRows)
	v.SetDefault("input.name_column", constants.DefaultNameColumn)
	v.SetDefault("input.id_column", constants.DefaultIDColumn)

	v.SetDefault("output.qr_dir", constants.DefaultQRDir)
	v.SetDefault("output.pdf_dir", constants.DefaultPDFDir)

	v.SetDefault("qr.version", constants.DefaultQRVersion)
	v.SetDefault("qr.level", constants.DefaultQRLevel)
	v.SetDefault("qr.box_size", constants.DefaultQRBoxSize)
	v.SetDefault("qr.border", constants.DefaultQRBorder)
	v.SetDefault("qr.fill_color", constants.DefaultQRFillColor)
	v.SetDefault("qr.back_color", constants.DefaultQRBackColor)

	v.SetDefault("page.width", constants.DefaultPageWidth)
	v.SetDefault("page.height", constants.DefaultPageHeight)
	v.SetDefault("page.background", "")
	v.SetDefault("page.title_font", "")
	v.SetDefault("page.title_font_file", "")
	v.SetDefault("page.title_font_size", constants.DefaultTitleFontSize)
	v.SetDefault("page.title_color", "0,0,0")
	v.SetDefault("page.number_font", "")
	v.SetDefault("page.number_font_file", "")
	v.SetDefault("page.number_font_size", constants.DefaultNumberFontSize)
	v.SetDefault("page.number_color", "0,0,0")
	v.SetDefault("page.qr_size", constants.DefaultQRSize)
	v.SetDefault("page.title_y_offset", constants.DefaultTitleYOffset)
	v.SetDefault("page.qr_y_offset", constants.DefaultQRYOffset)
	v.SetDefault("page.number_y_offset", constants.DefaultNumberYOffset)
}

// validateConfig validates the configuration. A failure here is fatal for
// the whole run, since every record would fail identically.
func validateConfig(cfg *Config) error {
	if err := validation.ValidateQRVersion(cfg.QR.Version); err != nil {
		return err
	}
	if err := validation.ValidateQRLevel(cfg.QR.Level); err != nil {
		return err
	}
	if err := validation.ValidateQRBoxSize(cfg.QR.BoxSize); err != nil {
		return err
	}
	if err := validation.ValidateQRBorder(cfg.QR.Border); err != nil {
		return err
	}
	if err := validation.ValidateHexColor("qr.fill_color", cfg.QR.FillColor); err != nil {
		return err
	}
	if err := validation.ValidateHexColor("qr.back_color", cfg.QR.BackColor); err != nil {
		return err
	}

	if err := validation.ValidatePageSize(cfg.Page.Width, cfg.Page.Height); err != nil {
		return err
	}
	if err := validation.ValidateQRPlacement(cfg.Page.QRSize, cfg.Page.Width, cfg.Page.Height); err != nil {
		return err
	}
	if err := validation.ValidateOffset("page.title_y_offset", cfg.Page.TitleYOffset); err != nil {
		return err
	}
	if err := validation.ValidateOffset("page.qr_y_offset", cfg.Page.QRYOffset); err != nil {
		return err
	}
	if err := validation.ValidateOffset("page.number_y_offset", cfg.Page.NumberYOffset); err != nil {
		return err
	}

	if err := validation.ValidateColumnIndex("input.name_column", cfg.Input.NameColumn); err != nil {
		return err
	}
	if err := validation.ValidateColumnIndex("input.id_column", cfg.Input.IDColumn); err != nil {
		return err
	}
	if err := validation.ValidateSkipRows(cfg.Input.SkipRows); err != nil {
		return err
	}

	return nil
}
