package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongol-march/internal/app"
	"mongol-march/internal/component"
	"mongol-march/internal/defs"
	"mongol-march/internal/storage"
)

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	lib, err := defs.Default()
	require.NoError(t, err)
	opts := app.Options{Library: lib, Store: storage.NewMemoryStore(), Seed: 5, Logger: zerolog.Nop()}
	return New(screen, opts), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestUI_SkipAndPlace(t *testing.T) {
	u, _ := newTestUI(t)
	g := u.Game()

	u.HandleKey(key('s'))
	require.Equal(t, component.PrepareState, g.State())
	size := g.Catalog.Len()

	// ищем клетку, куда блок помещается
	placed := false
	for row := 0; row < 5 && !placed; row++ {
		for col := 0; col < 20 && !placed; col++ {
			u.cursor.Row, u.cursor.Col = row, col
			u.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
			placed = g.Catalog.Len() == size-1
		}
	}
	assert.True(t, placed)
}

func TestUI_CursorStaysOnBoard(t *testing.T) {
	u, _ := newTestUI(t)
	u.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	u.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 0, u.cursor.Row)
	assert.Equal(t, 0, u.cursor.Col)

	for i := 0; i < 50; i++ {
		u.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	}
	assert.Equal(t, 19, u.cursor.Col)
}

func TestUI_WrongStateShowsMessage(t *testing.T) {
	u, _ := newTestUI(t)
	u.HandleKey(key('w'))
	assert.Contains(t, u.message, "not allowed")
	assert.Equal(t, component.PrologueState, u.Game().State())
}

func TestUI_DrawHeaderAndBoard(t *testing.T) {
	u, screen := newTestUI(t)
	u.HandleKey(key('s'))
	u.Draw()

	assert.Contains(t, rowText(screen, 0, 100), "MONGOL MARCH  wave 1")
	assert.Contains(t, rowText(screen, 0, 100), "[prepare]")
	assert.Equal(t, strings.Repeat(".", 40), strings.TrimSpace(rowText(screen, boardTop+1, boardLeft+40)))
}

func TestUI_Quit(t *testing.T) {
	u, _ := newTestUI(t)
	assert.False(t, u.Quit())
	u.HandleKey(key('q'))
	assert.True(t, u.Quit())
}

func TestLaneX(t *testing.T) {
	assert.Equal(t, 0, laneX(-20))
	assert.Equal(t, 40, laneX(440))
	assert.Equal(t, laneWidth-1, laneX(880))
}

func TestTimelineCol(t *testing.T) {
	width := 20 * cellWidth
	assert.Equal(t, 0, timelineCol(0, 800))
	assert.Equal(t, width/2, timelineCol(400, 800))
	assert.Equal(t, width-1, timelineCol(800, 800), "end of the board stays on the last symbol")
	assert.Equal(t, 0, timelineCol(10, 0))
}
