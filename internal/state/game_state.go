// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mongol-march/internal/app"
	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/event"
	"mongol-march/internal/system"
	"mongol-march/internal/ui"
	"mongol-march/pkg/grid"
	"mongol-march/pkg/render"
)

var speeds = []int{1, 2, 4}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	deps          Deps
	game          *app.Game
	renderer      *render.BoardRenderer
	renderSystem  *system.RenderSystem
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	actionButton  *ui.Button
	speedIdx      int
	hover         grid.Coord
	hasHover      bool
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	g := deps.newGame()

	colors := render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		CellLightColor:  config.CellLightColor,
		CellDarkColor:   config.CellDarkColor,
		LockedColor:     config.LockedColor,
		TimelineColor:   config.TimelineColor,
		TextDarkColor:   config.TextDarkColor,
	}
	renderer := render.NewBoardRenderer(config.BoardRows, config.BoardCols, config.CellSize,
		config.BoardOffsetX, config.BoardOffsetY, deps.Face, colors)

	boardBottom := float32(config.BoardOffsetY + config.CellSize*config.BoardRows)
	return &GameState{
		sm:            sm,
		deps:          deps,
		game:          g,
		renderer:      renderer,
		renderSystem:  system.NewRenderSystem(g.CombatSystem),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-24, 24, 10),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 28),
		actionButton:  ui.NewButton(config.ScreenWidth-config.BoardOffsetX-120, boardBottom+6, 120, 26, ""),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.speedIdx = (g.speedIdx + 1) % len(speeds)
	}

	g.handleKeys()
	g.handleMouse()

	for i := 0; i < speeds[g.speedIdx]; i++ {
		g.game.Update()
		if g.game.State().IsResult() {
			break
		}
	}
	if g.game.State().IsResult() {
		g.sm.SetState(NewResultState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		err = g.game.Rotate()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		err = g.game.Waive()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		err = g.primaryAction()
	}
	if err != nil {
		g.deps.Logger.Debug().Err(err).Msg("key ignored")
	}
}

// primaryAction — то, что делает кнопка действия в текущем состоянии
func (g *GameState) primaryAction() error {
	switch g.game.State() {
	case component.PrologueState:
		return g.game.SkipPrologue()
	case component.PrepareState:
		return g.game.Waive()
	case component.ReadyState:
		return g.game.Start()
	}
	return nil
}

func (g *GameState) actionLabel() string {
	switch g.game.State() {
	case component.PrologueState:
		return "skip"
	case component.PrepareState:
		return "waive"
	case component.ReadyState:
		return "start"
	}
	return "..."
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	ox, oy := g.renderer.Origin()
	c, onBoard := grid.PixelToCoord(float64(x)-ox, float64(y)-oy, config.CellSize, config.BoardRows, config.BoardCols)
	if onBoard && (!g.hasHover || c != g.hover) {
		g.hover, g.hasHover = c, true
		g.game.EventDispatcher.Dispatch(event.GridOver{Coord: c})
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < config.ClickCooldown {
		return
	}
	g.lastClickTime = time.Now()

	switch {
	case g.actionButton.IsClicked(x, y, true):
		if err := g.primaryAction(); err != nil {
			g.deps.Logger.Debug().Err(err).Msg("action ignored")
		}
	case onBoard:
		g.game.EventDispatcher.Dispatch(event.BlockPlaced{Coord: c})
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderSystem.Draw(screen)

	timelineX := -1.0
	if g.game.Timeline.Active {
		timelineX = g.game.Timeline.Position
	}
	g.renderer.Draw(screen, g.game.Board.Cells(), timelineX)

	g.renderer.DrawBlock(screen, g.game.CurrentBlock(), config.DisplayOffset, 60, config.DisplayCell, "now")
	g.renderer.DrawBlock(screen, g.game.NextBlock(), config.DisplayOffset+5*config.DisplayCell, 60, config.DisplayCell, "next")

	g.indicator.Draw(screen, g.game.State())
	g.waveIndicator.Draw(screen, g.deps.Face, &g.game.Scoreboard, g.game.BestScore)

	g.actionButton.Text = g.actionLabel()
	g.actionButton.Disabled = g.game.State() == component.FightState
	mx, my := ebiten.CursorPosition()
	g.actionButton.Draw(screen, g.deps.Face, mx, my)

	status := fmt.Sprintf("blocks %d   x%d", g.game.Catalog.Len(), speeds[g.speedIdx])
	if g.game.State() == component.PrologueState {
		status = fmt.Sprintf("the march begins in %.0fs", g.game.StateSystem.PrologueLeft().Seconds())
	}
	g.renderer.DrawText(screen, status, config.ScreenWidth/2, int(g.actionButton.Y+g.actionButton.H/2), config.TextDarkColor)
}

func (g *GameState) Exit() {}
