package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"poolhire/config"
	"poolhire/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func newConfig(env, level string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "poolhire"
	cfg.Server.Env = env
	cfg.Server.LogLevel = level

	return cfg
}

func TestConfigure_JSONOutsideDevelopment(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	logger.Configure(newConfig("production", "info"), "scheduler", &buf)

	log.Info().Str("pool_id", "pool-1").Msg("availability synced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "poolhire", entry["app"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, "pool-1", entry["pool_id"])
	assert.Equal(t, "availability synced", entry["message"])
}

func TestConfigure_ConsoleInDevelopment(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	logger.Configure(newConfig("development", "debug"), "api", &buf)

	log.Info().Msg("listening")

	assert.Contains(t, buf.String(), "listening")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
		{name: "unknown falls back to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreLogger(t)

			logger.Configure(newConfig("production", tt.level), "api", &bytes.Buffer{})

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	logger.Configure(newConfig("production", "info"), "api", &buf)

	logger.ErrorWithStack(errors.New("payment row locked"))

	assert.Contains(t, buf.String(), "payment row locked")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
