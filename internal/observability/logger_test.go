package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("console format", func(t *testing.T) {
		t.Parallel()
		logger := NewLogger(config.LoggerConfig{Level: "debug", Format: "console"})
		assert.NotNil(t, logger)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()
		logger := NewLogger(config.LoggerConfig{Level: "warn", Format: "json"})
		assert.NotNil(t, logger)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()
		logger := NewLogger(config.LoggerConfig{Level: "shouting", Format: "console"})
		assert.NotNil(t, logger)
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}
