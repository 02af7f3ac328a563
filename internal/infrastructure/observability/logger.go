package observability

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stayhaven/hotel-booking/backend/pkg/config"
)

// InitLogger configures the global zerolog logger from application
// config. Development gets a human-readable console writer; every
// other environment logs structured JSON to stdout.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	base := zerolog.New(os.Stdout)
	if cfg.Env == "development" {
		base = base.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	log.Logger = base.Level(level).
		With().
		Timestamp().
		Str("service", cfg.OTEL.ServiceName).
		Str("env", cfg.Env).
		Logger()
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}
