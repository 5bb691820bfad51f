package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ioutils "github.com/handiism/magnet-calculator/internal/io"
)

// Config selects where diagnostics are written.
type Config struct {
	// Verbose enables debug logging to stderr.
	Verbose bool

	// Path, if set, receives JSON logs. Verbose takes precedence.
	Path string
}

// New builds a logger for cfg. With neither Verbose nor Path set it
// returns a no-op logger.
func New(cfg Config) (*zap.Logger, error) {
	switch {
	case cfg.Verbose:
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
		return build(zc)

	case cfg.Path != "":
		if err := ioutils.EnsureDir(filepath.Dir(cfg.Path)); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		zc.OutputPaths = []string{cfg.Path}
		zc.ErrorOutputPaths = []string{"stderr"}
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		return build(zc)

	default:
		return zap.NewNop(), nil
	}
}

func build(zc zap.Config) (*zap.Logger, error) {
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
