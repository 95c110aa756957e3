// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"mongol-march/internal/config"
)

// MenuState — титульный экран
type MenuState struct {
	sm   *StateMachine
	deps Deps
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, m.deps, "MONGOL MARCH", config.ScreenHeight/2-20)
	drawCentered(screen, m.deps, "press space", config.ScreenHeight/2+20)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, deps Deps, s string, y int) {
	b := text.BoundString(deps.Face, s)
	text.Draw(screen, s, deps.Face, (config.ScreenWidth-b.Dx())/2, y, config.TextDarkColor)
}
