package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/simple2d/core"
)

// Config selects level, encoding and destination of the process logger
type Config struct {
	Level    string // debug, info, warn, error
	Encoding string // json or console
	Output   string // file path, "stderr" or "stdout"
}

// ParseLevel maps a level name to zap, empty means info
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	}
	return zap.InfoLevel, fmt.Errorf("log level %q: %w", name, core.ErrInvalidInput)
}

// New builds a production zap logger
// A terminal frontend owns stdout, so Output should normally be a file
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "json"
	}
	if encoding != "json" && encoding != "console" {
		return nil, fmt.Errorf("log encoding %q: %w", encoding, core.ErrInvalidInput)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		DisableCaller:    true,
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
