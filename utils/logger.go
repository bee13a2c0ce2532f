package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sharath018/venue-booking-backend/config"
)

// NewLogger builds the root logger: human-readable console output in
// development, JSON lines in production.
func NewLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var logger zerolog.Logger
	if cfg.IsProduction() {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "venue-booking-reports").
		Str("env", cfg.AppEnv).
		Logger()
}
