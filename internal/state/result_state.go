// internal/state/result_state.go
package state

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/ui"
)

var _ State = (*ResultState)(nil)

// ResultState — экран после раунда: выбор подарка после победы или итог после поражения
type ResultState struct {
	sm      *StateMachine
	game    *GameState
	buttons []*ui.Button // подарки, последняя — "skip" (только после победы)
	copied  bool
}

func NewResultState(sm *StateMachine, gs *GameState) *ResultState {
	return &ResultState{sm: sm, game: gs}
}

func (s *ResultState) Enter() {
	s.buttons = s.buttons[:0]
	if s.game.game.State() != component.VictoryState {
		return
	}
	y := float32(config.ScreenHeight/2 - 40)
	for i, offer := range s.game.game.Offers() {
		label := fmt.Sprintf("%d: %s", i+1, offer)
		s.buttons = append(s.buttons, ui.NewButton(120, y+float32(i)*36, config.ScreenWidth-240, 30, label))
	}
	s.buttons = append(s.buttons, ui.NewButton(120, y+float32(len(s.buttons))*36, config.ScreenWidth-240, 30, "x: no gift"))
}

func (s *ResultState) Update() {
	if s.game.game.State() == component.DefeatState {
		s.updateDefeat()
		return
	}
	s.updateVictory()
}

func (s *ResultState) updateVictory() {
	choice := -2 // -1 — без подарка
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		choice = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		choice = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		choice = -1
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range s.buttons {
			if b.IsClicked(x, y, true) {
				choice = i
				if i == len(s.buttons)-1 {
					choice = -1
				}
			}
		}
	}
	if choice == -2 {
		return
	}

	var err error
	if choice == -1 {
		err = s.game.game.SkipGift()
	} else {
		err = s.game.game.ChooseGift(choice)
	}
	if err != nil {
		s.game.deps.Logger.Warn().Err(err).Int("choice", choice).Msg("gift not applied")
		return
	}
	s.sm.SetState(s.game)
}

func (s *ResultState) updateDefeat() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(s.game.game.Summary()); err != nil {
			s.game.deps.Logger.Warn().Err(err).Msg("clipboard unavailable")
		} else {
			s.copied = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.game.deps))
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	g := s.game.game
	if g.State() == component.VictoryState {
		drawCentered(screen, s.game.deps, "VICTORY: choose a gift", config.ScreenHeight/2-70)
		mx, my := ebiten.CursorPosition()
		for _, b := range s.buttons {
			b.Draw(screen, s.game.deps.Face, mx, my)
		}
		return
	}

	drawCentered(screen, s.game.deps, "DEFEAT", config.ScreenHeight/2-50)
	drawCentered(screen, s.game.deps, g.Summary(), config.ScreenHeight/2-20)
	if g.NewRecord {
		drawCentered(screen, s.game.deps, "new record!", config.ScreenHeight/2+10)
	}
	hint := "r: restart   c: copy result"
	if s.copied {
		hint = "r: restart   (copied)"
	}
	drawCentered(screen, s.game.deps, hint, config.ScreenHeight/2+40)
}

func (s *ResultState) Exit() {}
