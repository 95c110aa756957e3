// internal/state/deps.go
package state

import (
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"mongol-march/internal/app"
	"mongol-march/internal/defs"
	"mongol-march/internal/storage"
)

// Deps — всё, что нужно, чтобы собрать новую партию (в том числе при рестарте)
type Deps struct {
	Library *defs.Library
	Store   storage.ScoreStore
	Seed    int64
	Logger  zerolog.Logger
	Face    font.Face
}

func (d Deps) newGame() *app.Game {
	return app.NewGame(app.Options{
		Library: d.Library,
		Store:   d.Store,
		Seed:    d.Seed,
		Logger:  d.Logger,
	})
}
