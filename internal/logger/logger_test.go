package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		log, err := NewLogger("debug", "console")
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
		assert.Equal(t, Name, log.Name())
	})

	t.Run("JSON", func(t *testing.T) {
		log, err := NewLogger("warn", "json")
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		log, err := NewLogger("loud", "console")
		assert.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestNewConfig(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg, err := newConfig("info", format)
			require.NoError(t, err)

			assert.Equal(t, []string{"stderr"}, cfg.OutputPaths, "stdout is reserved for summary lines")
			assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
			assert.Nil(t, cfg.Sampling)
		})
	}

	t.Run("ConsoleHasNoStacktraces", func(t *testing.T) {
		cfg, err := newConfig("info", "console")
		require.NoError(t, err)
		assert.True(t, cfg.DisableStacktrace)
	})
}
