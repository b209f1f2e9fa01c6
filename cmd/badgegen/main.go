package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"badgegen/internal/config"
	"badgegen/internal/constants"
	"badgegen/internal/rowsource"
	"badgegen/internal/services"
)

func main() {
	// Setup logger
	logger := setupLogger()

	// Load configuration: optional YAML file (first argument or
	// BADGEGEN_CONFIG), overridable per key via BADGEGEN_* environment
	configFile := os.Getenv("BADGEGEN_CONFIG")
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Fatal("Failed to load configuration:", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Register fonts once, before any record is processed
	if cfg.Page.TitleFont == "" || cfg.Page.TitleFontFile == "" {
		logger.Fatal("page.title_font and page.title_font_file are required")
	}
	if cfg.Page.NumberFont == "" || (cfg.Page.NumberFont != cfg.Page.TitleFont && cfg.Page.NumberFontFile == "") {
		logger.Fatal("page.number_font and page.number_font_file are required")
	}
	fonts := services.NewFontRegistry()
	if err := fonts.Register(cfg.Page.TitleFont, cfg.Page.TitleFontFile); err != nil {
		logger.Fatal("Failed to register title font:", err)
	}
	if cfg.Page.NumberFont != cfg.Page.TitleFont {
		if err := fonts.Register(cfg.Page.NumberFont, cfg.Page.NumberFontFile); err != nil {
			logger.Fatal("Failed to register number font:", err)
		}
	}

	// Initialize services
	shaper := services.NewShaperService(logger)
	encoder, err := services.NewQRService(cfg.QR, logger)
	if err != nil {
		logger.Fatal("Invalid QR configuration:", err)
	}
	outputs := services.NewOutputService(logger)
	composer := services.NewComposerService(cfg.Page, fonts, logger)
	pipeline := services.NewPipelineService(cfg, shaper, encoder, outputs, composer, logger)

	// Read the row source up front
	reader := rowsource.NewCSVReader(cfg.Input, logger)
	rows, err := reader.Read()
	if err != nil {
		logger.Fatal("Failed to read input:", err)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful interruption: in-flight records finish, no new ones start
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	logger.Infof("Starting badge generation for %d records with %d workers", len(rows), cfg.Workers)
	summary := pipeline.Run(ctx, rows)

	if summary.Processed > 0 && summary.Succeeded == 0 {
		os.Exit(1)
	}
}

// setupLogger sets up the logger
func setupLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable or default to info
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Printf("Invalid log level %s, defaulting to info", logLevel)
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)

	// Set formatter
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: constants.TimestampFormat,
	})

	return logger
}
