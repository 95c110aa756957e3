// internal/app/actions.go
package app

import (
	"github.com/rotisserie/eris"

	"mongol-march/internal/component"
	"mongol-march/internal/event"
	"mongol-march/pkg/grid"
)

var (
	ErrWrongState       = eris.New("action not allowed in current state")
	ErrNoBlock          = eris.New("no block to place")
	ErrInvalidPlacement = eris.New("block does not fit here")
	ErrNoGift           = eris.New("no such gift")
)

func (g *Game) requireState(want component.RoundState, action string) error {
	if s := g.State(); s != want {
		return eris.Wrapf(ErrWrongState, "%s in %s", action, s)
	}
	return nil
}

// Hover подсвечивает след текущего блока под курсором
func (g *Game) Hover(c grid.Coord) {
	g.Board.PreviewHover(c, g.CurrentBlock())
}

// Place ставит текущий блок якорем в клетку c
func (g *Game) Place(c grid.Coord) (component.PlacementID, error) {
	if err := g.requireState(component.PrepareState, "place"); err != nil {
		return "", err
	}
	block := g.Catalog.Current()
	if block == nil {
		return "", ErrNoBlock
	}
	footprint := g.Board.Footprint(c, block)
	if len(footprint) == 0 {
		return "", eris.Wrapf(ErrInvalidPlacement, "block %s at %v", block.ID, c)
	}
	id := g.Board.Commit(footprint, block)
	g.StateSystem.ShiftBlock()
	return id, nil
}

// Rotate поворачивает текущий блок по часовой стрелке
func (g *Game) Rotate() error {
	if err := g.requireState(component.PrepareState, "rotate"); err != nil {
		return err
	}
	if !g.Catalog.RotateCurrent() {
		return ErrNoBlock
	}
	g.EventDispatcher.Dispatch(event.BlockUpdated{})
	return nil
}

// Waive пропускает текущий блок
func (g *Game) Waive() error {
	if err := g.requireState(component.PrepareState, "waive"); err != nil {
		return err
	}
	if g.Catalog.Len() == 0 {
		return ErrNoBlock
	}
	g.StateSystem.ShiftBlock()
	return nil
}

// Start начинает бой
func (g *Game) Start() error {
	if err := g.requireState(component.ReadyState, "start"); err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.StartClicked{})
	return nil
}

// SkipPrologue сразу начинает подготовку
func (g *Game) SkipPrologue() error {
	if err := g.requireState(component.PrologueState, "skip prologue"); err != nil {
		return err
	}
	g.StateSystem.SkipPrologue()
	return nil
}

// ChooseGift применяет i-й подарок (союзникам и врагам) и начинает следующую волну
func (g *Game) ChooseGift(i int) error {
	if err := g.requireState(component.VictoryState, "choose gift"); err != nil {
		return err
	}
	offers := g.Offers()
	if i < 0 || i >= len(offers) {
		return eris.Wrapf(ErrNoGift, "gift %d of %d", i, len(offers))
	}
	offer := offers[i]
	if n := g.Bonus.ApplyAllyGift(offer.Ally); n > 0 {
		g.EventDispatcher.Dispatch(event.FixGrids{Count: n})
	}
	g.Bonus.ApplyEnemyGift(offer.Enemy)
	g.logger.Info().Stringer("gift", offer).Msg("gift chosen")
	g.nextWave()
	return nil
}

// SkipGift начинает следующую волну без подарков
func (g *Game) SkipGift() error {
	if err := g.requireState(component.VictoryState, "skip gift"); err != nil {
		return err
	}
	g.nextWave()
	return nil
}

func (g *Game) nextWave() {
	g.Scoreboard.Wave++
	g.StateSystem.Switch(component.PrepareState)
}
