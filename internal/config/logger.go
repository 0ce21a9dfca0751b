package config

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a production zap logger at the given level. Format
// "console" switches to the human-readable development encoder.
func NewLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	if strings.EqualFold(format, "console") {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return cfg.Build()
}
