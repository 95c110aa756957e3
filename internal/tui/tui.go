// internal/tui/tui.go
package tui

import (
	"fmt"
	"time"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"mongol-march/internal/app"
	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/internal/utils"
	"mongol-march/pkg/grid"
)

const (
	laneWidth  = 80 // символов на всё поле боя
	laneRow    = 3
	boardTop   = 6
	boardLeft  = 2
	cellWidth  = 2
	previewCol = boardLeft + config.BoardCols*cellWidth + 4
)

var unitGlyphs = map[defs.UnitType]rune{
	defs.UnitInfantry: 'i',
	defs.UnitCavalry:  'c',
	defs.UnitArcher:   'a',
	defs.UnitGuarder:  'g',
	defs.UnitGunner:   'u',
	defs.UnitKhan:     'K',
	defs.UnitCastle:   '#',
}

// UI — терминальный фронтенд: та же партия, управление с клавиатуры
type UI struct {
	screen  tcell.Screen
	opts    app.Options
	game    *app.Game
	cursor  grid.Coord
	message string
	quit    bool
	logger  zerolog.Logger
}

func New(screen tcell.Screen, opts app.Options) *UI {
	u := &UI{screen: screen, opts: opts, logger: opts.Logger.With().Str("frontend", "tui").Logger()}
	u.restart()
	return u
}

func (u *UI) restart() {
	u.game = app.NewGame(u.opts)
	u.cursor = grid.Coord{}
	u.message = ""
}

func (u *UI) Game() *app.Game { return u.game }

// Quit — игрок нажал q
func (u *UI) Quit() bool { return u.quit }

// Run крутит партию с фиксированным тиком, пока игрок не выйдет
func (u *UI) Run() error {
	ticker := time.NewTicker(config.TickDuration)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for !u.quit {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				u.HandleKey(ev)
			case *tcell.EventResize:
				u.screen.Sync()
			}
		case <-ticker.C:
			if !u.game.State().IsResult() {
				u.game.Update()
			}
			u.Draw()
		}
	}
	return nil
}

// HandleKey переводит клавишу в действие партии
func (u *UI) HandleKey(ev *tcell.EventKey) {
	var err error
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.quit = true
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, 1)
	case tcell.KeyEnter:
		u.game.EventDispatcher.Dispatch(event.BlockPlaced{Coord: u.cursor})
	case tcell.KeyRune:
		err = u.handleRune(ev.Rune())
	}
	if err != nil {
		u.message = err.Error()
		u.logger.Debug().Err(err).Msg("key ignored")
	}
}

func (u *UI) handleRune(r rune) error {
	g := u.game
	switch r {
	case 'q':
		u.quit = true
	case ' ':
		g.EventDispatcher.Dispatch(event.BlockPlaced{Coord: u.cursor})
	case 'z':
		return g.Rotate()
	case 'w':
		return g.Waive()
	case 's':
		if g.State() == component.PrologueState {
			return g.SkipPrologue()
		}
		return g.Start()
	case '1', '2':
		return g.ChooseGift(int(r - '1'))
	case 'x':
		return g.SkipGift()
	case 'r':
		if g.State() == component.DefeatState {
			u.restart()
		}
	case 'c':
		if err := clipboard.WriteAll(g.Summary()); err != nil {
			return err
		}
		u.message = "copied"
	}
	return nil
}

func (u *UI) moveCursor(dr, dc int) {
	next := grid.Coord{Row: u.cursor.Row + dr, Col: u.cursor.Col + dc}
	if !next.In(config.BoardRows, config.BoardCols) {
		return
	}
	u.cursor = next
	u.game.EventDispatcher.Dispatch(event.GridOver{Coord: next})
}

// Draw перерисовывает экран целиком
func (u *UI) Draw() {
	u.screen.Clear()
	g := u.game
	plain := tcell.StyleDefault

	u.drawText(0, 0, plain.Bold(true), fmt.Sprintf("MONGOL MARCH  wave %d  score %d  castles %d  best %d  [%s]",
		g.Scoreboard.Wave, g.Scoreboard.Score, g.Scoreboard.Conquered, g.BestScore, g.State()))

	u.drawLane()
	u.drawBoard()
	u.drawBlock(previewCol, boardTop, "now", g.CurrentBlock())
	u.drawBlock(previewCol+10, boardTop, "next", g.NextBlock())
	u.drawFooter(boardTop + config.BoardRows + 2)
	u.screen.Show()
}

func laneX(x float64) int {
	return utils.Clamp(int(x/config.PlayfieldWidth*laneWidth), 0, laneWidth-1)
}

// timelineCol переводит положение линии в символ над доской
func timelineCol(pos, maxX float64) int {
	width := config.BoardCols * cellWidth
	if maxX <= 0 {
		return 0
	}
	return utils.Clamp(int(pos/maxX*float64(width)), 0, width-1)
}

func (u *UI) drawLane() {
	ground := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < laneWidth; x++ {
		u.screen.SetContent(x, laneRow+1, '_', nil, ground)
	}
	// враги — заглавными
	enemy := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for _, e := range u.game.CombatSystem.Enemies() {
		if e.Alive() {
			u.screen.SetContent(laneX(e.X), laneRow, unicode.ToUpper(unitGlyphs[e.Type]), nil, enemy)
		}
	}
	ally := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, a := range u.game.CombatSystem.Allies() {
		if a.Alive() {
			u.screen.SetContent(laneX(a.X), laneRow, unitGlyphs[a.Type], nil, ally)
		}
	}
}

func (u *UI) drawBoard() {
	g := u.game
	if g.Timeline.Active {
		col := boardLeft + timelineCol(g.Timeline.Position, g.Timeline.MaxX())
		u.screen.SetContent(col, boardTop-1, 'v', nil, tcell.StyleDefault.Bold(true))
	}
	for _, row := range g.Board.Cells() {
		for _, cell := range row {
			x := boardLeft + cell.Coord.Col*cellWidth
			y := boardTop + cell.Coord.Row
			style := tcell.StyleDefault
			glyph := '.'
			switch {
			case cell.Locked:
				style = style.Foreground(tcell.ColorDarkRed)
				glyph = 'x'
			case cell.Overlay.Opacity > 0:
				style = style.Background(tcell.GetColor(cell.Overlay.Color))
				glyph = ' '
			}
			if cell.Coord == u.cursor && g.State() == component.PrepareState {
				style = style.Reverse(true)
			}
			for i := 0; i < cellWidth; i++ {
				u.screen.SetContent(x+i, y, glyph, nil, style)
			}
		}
	}
}

func (u *UI) drawBlock(x, y int, label string, block *defs.BlockDefinition) {
	u.drawText(x, y-1, tcell.StyleDefault, label)
	if block == nil {
		return
	}
	style := tcell.StyleDefault.Background(tcell.GetColor(block.Color))
	for i, row := range block.Shape {
		for j, filled := range row {
			if !filled {
				continue
			}
			glyph := ' '
			if i == block.Anchor.Row && j == block.Anchor.Col {
				glyph = '*'
			}
			u.screen.SetContent(x+j*cellWidth, y+i, glyph, nil, style)
			u.screen.SetContent(x+j*cellWidth+1, y+i, ' ', nil, style)
		}
	}
	u.drawText(x, y+len(block.Shape), tcell.StyleDefault.Dim(true), string(block.UnitType))
}

func (u *UI) drawFooter(y int) {
	g := u.game
	help := ""
	switch g.State() {
	case component.PrologueState:
		help = fmt.Sprintf("the march begins in %.0fs   s: skip", g.StateSystem.PrologueLeft().Seconds())
	case component.PrepareState:
		help = fmt.Sprintf("blocks %d   arrows: move  space: place  z: rotate  w: waive", g.Catalog.Len())
	case component.ReadyState:
		help = "s: start the fight"
	case component.FightState:
		help = "fight!"
	case component.VictoryState:
		for i, offer := range g.Offers() {
			u.drawText(0, y+1+i, tcell.StyleDefault, fmt.Sprintf("%d: %s", i+1, offer))
		}
		help = "1/2: take a gift   x: no gift"
	case component.DefeatState:
		help = g.Summary() + "   r: restart  c: copy"
	}
	u.drawText(0, y, tcell.StyleDefault.Bold(true), help)
	if u.message != "" {
		u.drawText(0, y+4, tcell.StyleDefault.Foreground(tcell.ColorGray), u.message)
	}
	u.drawText(0, y+5, tcell.StyleDefault.Dim(true), "q: quit")
}

func (u *UI) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
