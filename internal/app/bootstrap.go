// internal/app/bootstrap.go
package app

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/logging"
	"mongol-march/internal/storage"
)

// Runtime — общее окружение бинарников: настройки, логгер, определения и хранилище рекорда
type Runtime struct {
	Config  config.Config
	Logger  zerolog.Logger
	Library *defs.Library
	Store   storage.ScoreStore

	closers []func() error
}

// Bootstrap читает окружение и открывает всё, что нужно для партии.
// overrides правят настройки после чтения окружения.
// Close нужно вызвать даже при ошибке, если Runtime не nil.
func Bootstrap(overrides ...func(*config.Config)) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	logger, closeLog, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{Config: cfg, Logger: logger, closers: []func() error{closeLog}}

	if cfg.DefsDir != "" {
		rt.Library, err = defs.LoadDir(cfg.DefsDir)
	} else {
		rt.Library, err = defs.Default()
	}
	if err != nil {
		return rt, eris.Wrap(err, "failed to load definitions")
	}

	rt.Store, err = storage.Open(cfg)
	if err != nil {
		return rt, err
	}
	rt.closers = append(rt.closers, rt.Store.Close)

	logger.Info().
		Str("store", cfg.ScoreStore).
		Int64("seed", cfg.Seed).
		Int("blocks", len(rt.Library.Blocks)).
		Msg("runtime ready")
	return rt, nil
}

// Options — параметры новой партии в этом окружении
func (rt *Runtime) Options() Options {
	return Options{Library: rt.Library, Store: rt.Store, Seed: rt.Config.Seed, Logger: rt.Logger}
}

// Close закрывает хранилище и лог в обратном порядке
func (rt *Runtime) Close() error {
	var first error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
