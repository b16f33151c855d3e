// Package observability builds the zap logger the SDK components
// share. Embedding applications may instead pass their own logger to
// the facade; this package exists so standalone use gets structured
// logging without wiring any of that up.
package observability

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/config"
)

// NewLogger constructs a zap logger from the logger configuration.
// Unknown levels fall back to info rather than failing: logging setup
// should never be the reason a scan cannot run.
func NewLogger(cfg config.LoggerConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("cardscanner")
}
