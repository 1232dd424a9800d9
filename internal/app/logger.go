// Package app wires process-wide infrastructure shared by the commands.
package app

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cours-de-japonais/katsuyou/internal/config"
)

// NewLogger builds a zap logger from cfg.
//
// Format "json" produces the production JSON encoder with ISO8601 times;
// "console" produces the development console encoder. Level is one of
// debug, info, warn, error (case-insensitive) and defaults to info.
// A disabled config yields a no-op logger.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if strings.EqualFold(cfg.Format, "console") {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	return zc.Build()
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
