// internal/app/events.go
package app

import (
	"github.com/rotisserie/eris"

	"mongol-march/internal/component"
	"mongol-march/internal/event"
)

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch ev := e.(type) {
	case event.BlockUpdated:
		l.game.Board.RefreshPreview(l.game.CurrentBlock())
	case event.GridOver:
		l.game.Hover(ev.Coord)
	case event.BlockPlaced:
		if _, err := l.game.Place(ev.Coord); err != nil && !eris.Is(err, ErrInvalidPlacement) {
			l.game.logger.Warn().Err(err).Msg("placement rejected")
		}
	case event.StateChanged:
		if ev.To == component.DefeatState {
			l.game.persistBest()
		}
	}
}
