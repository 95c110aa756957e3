// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mongol-march/internal/config"
)

// New строит корневой логгер по настройкам.
// closeFn закрывает файл лога, если он был открыт.
func New(cfg config.Config) (logger zerolog.Logger, closeFn func() error, err error) {
	closeFn = func() error { return nil }
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), closeFn, eris.Wrapf(err, "bad log level %q", cfg.LogLevel)
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, eris.Wrapf(err, "failed to open log file %s", cfg.LogFile)
		}
		w, closeFn = f, f.Close
	} else if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}
