package main

import (
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"hci-practical/internal/app"
	"hci-practical/internal/config"
	"hci-practical/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := buildLogger(cfg)
	for _, warning := range cfg.Validate() {
		appLogger.Warning("Config", "configuration warning", map[string]interface{}{
			"warning": warning,
		})
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}

// buildLogger constructs the process logger from config and environment
func buildLogger(cfg *config.Config) logger.Logger {
	level := determineLogLevel(cfg)
	if cfg.Logging.Console {
		return logger.NewConsoleLogger(level)
	}
	return logger.NewZerolog(os.Stderr, level)
}

// determineLogLevel picks the log level, environment wins over config
func determineLogLevel(cfg *config.Config) zerolog.Level {
	switch value := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); value {
	case "debug", "info", "warn", "warning", "error":
		return logger.ParseLevel(value)
	default:
		// Unrecognized or unset, fall through to the debug flag
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return logger.ParseLevel(cfg.Logging.Level)
	}
}
