package logger

import (
	"io"
	"os"
	"poolhire/config"
	"poolhire/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global zerolog logger at stdout. Development gets the console
// writer, every other environment emits JSON lines tagged with app, env and component.
func Setup(cfg *config.Config, component string) {
	Configure(cfg, component, os.Stdout)
}

// Configure is Setup with an explicit writer.
func Configure(cfg *config.Config, component string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Str("component", component).
		Logger()

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("logger ready")
}

// ErrorWithStack logs err with the stack captured at the call site.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
