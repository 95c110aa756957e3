package app

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/internal/storage"
	"mongol-march/internal/system"
	"mongol-march/pkg/grid"
)

func newTestGame(t *testing.T, seed int64) (*Game, *storage.MemoryStore) {
	t.Helper()
	lib, err := defs.Default()
	require.NoError(t, err)
	store := storage.NewMemoryStore()
	return NewGame(Options{Library: lib, Store: store, Seed: seed, Logger: zerolog.Nop()}), store
}

func toPrepare(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000 && g.State() == component.PrologueState; i++ {
		g.Update()
	}
	require.Equal(t, component.PrepareState, g.State())
}

func TestPrologue_EndsAfterEightSeconds(t *testing.T) {
	g, _ := newTestGame(t, 1)
	ticks := 0
	for g.State() == component.PrologueState {
		g.Update()
		ticks++
		require.Less(t, ticks, 1000)
	}
	assert.InDelta(t, config.PrologueDuration.Seconds()*config.TicksPerSecond, ticks, 1)
	assert.Equal(t, system.SizeFor(config.BoardRows*config.BoardCols), g.Catalog.Len())
}

func TestActions_RejectedInWrongState(t *testing.T) {
	g, _ := newTestGame(t, 1)

	_, err := g.Place(grid.Coord{})
	assert.True(t, eris.Is(err, ErrWrongState))
	assert.True(t, eris.Is(g.Start(), ErrWrongState))
	assert.True(t, eris.Is(g.ChooseGift(0), ErrWrongState))
	assert.Equal(t, component.PrologueState, g.State())

	require.NoError(t, g.SkipPrologue())
	assert.True(t, eris.Is(g.Start(), ErrWrongState))
	assert.True(t, eris.Is(g.SkipGift(), ErrWrongState))
	assert.Equal(t, component.PrepareState, g.State())
}

func TestPrepare_ReadyOnlyAfterCatalogIsConsumed(t *testing.T) {
	g, _ := newTestGame(t, 7)
	toPrepare(t, g)
	size := g.Catalog.Len()
	require.Equal(t, 29, size)

	for i := 0; i < size-1; i++ {
		require.NoError(t, g.Waive())
		require.Equal(t, component.PrepareState, g.State(), "waive %d", i+1)
	}
	require.NoError(t, g.Waive())
	assert.Equal(t, component.ReadyState, g.State())
	assert.Nil(t, g.CurrentBlock())

	require.NoError(t, g.Start())
	assert.Equal(t, component.FightState, g.State())
	require.NotNil(t, g.CombatSystem.Castle())
	assert.True(t, g.CombatSystem.Castle().Alive())
	assert.True(t, g.Timeline.Active)
}

func TestPlace_CommitsAndShifts(t *testing.T) {
	g, _ := newTestGame(t, 3)
	toPrepare(t, g)
	size := g.Catalog.Len()
	next := g.Catalog.Next()
	require.NotNil(t, next)
	nextID := next.ID

	var c grid.Coord
	found := false
	for col := 0; col < config.BoardCols && !found; col++ {
		for row := 0; row < config.BoardRows && !found; row++ {
			c = grid.Coord{Row: row, Col: col}
			found = len(g.Board.Footprint(c, g.Catalog.Current())) > 0
		}
	}
	require.True(t, found)

	id, err := g.Place(c)
	require.NoError(t, err)
	p, ok := g.Board.Placement(id)
	require.True(t, ok)
	assert.NotEmpty(t, p.Coords)
	assert.Equal(t, size-1, g.Catalog.Len())
	assert.Equal(t, nextID, g.Catalog.Current().ID)

	_, err = g.Place(c)
	assert.True(t, eris.Is(err, ErrInvalidPlacement), "anchor cell is taken now")
}

func TestPlace_ThroughEvents(t *testing.T) {
	g, _ := newTestGame(t, 3)
	toPrepare(t, g)
	size := g.Catalog.Len()

	g.EventDispatcher.Dispatch(event.BlockPlaced{Coord: grid.Coord{Row: -5, Col: -5}})
	assert.Equal(t, size, g.Catalog.Len())

	g.EventDispatcher.Dispatch(event.GridOver{Coord: grid.Coord{Row: 2, Col: 2}})
	g.EventDispatcher.Dispatch(event.BlockPlaced{Coord: grid.Coord{Row: 2, Col: 2}})
	assert.Equal(t, size-1, g.Catalog.Len())
}

func TestRotate_TurnsCurrentBlock(t *testing.T) {
	g, _ := newTestGame(t, 5)
	toPrepare(t, g)
	before := g.Catalog.Current().Shape
	require.NoError(t, g.Rotate())
	assert.Equal(t, before, g.Catalog.Current().Rotated().Rotated().Rotated().Shape)
}

func TestChooseGift_AppliesBothSidesAndStartsNextWave(t *testing.T) {
	g, _ := newTestGame(t, 11)
	toPrepare(t, g)
	g.Board.ScanColumn(0)
	require.Equal(t, 95, g.Board.FreeCells())

	g.StateSystem.Switch(component.VictoryState)
	offers := g.Offers()
	require.Len(t, offers, config.GiftOffers)
	offers[0] = defs.GiftOffer{
		Ally:  defs.Gift{Text: "repair", Effect: defs.EffectFixGrids, Value: 4},
		Enemy: defs.Gift{Text: "soldier", Effect: defs.EffectAddSoldier, Value: 1},
	}

	assert.True(t, eris.Is(g.ChooseGift(5), ErrNoGift))
	require.NoError(t, g.ChooseGift(0))

	assert.Equal(t, component.PrepareState, g.State())
	assert.Equal(t, 2, g.Scoreboard.Wave)
	assert.Equal(t, 99, g.Board.FreeCells())
	assert.Equal(t, system.SizeFor(99), g.Catalog.Len())
	assert.Equal(t, 1, g.Bonus.Enemy.ExtraSoldiers)
	assert.Equal(t, 0, g.Bonus.Ally.ExtraSoldiers)
	assert.Empty(t, g.Offers())
}

func TestSkipGift(t *testing.T) {
	g, _ := newTestGame(t, 11)
	toPrepare(t, g)
	g.StateSystem.Switch(component.VictoryState)

	require.NoError(t, g.SkipGift())
	assert.Equal(t, component.PrepareState, g.State())
	assert.Equal(t, 2, g.Scoreboard.Wave)
	assert.Equal(t, component.NewBonusState(), g.Bonus)
}

func TestDefeat_PersistsBestScore(t *testing.T) {
	g, store := newTestGame(t, 2)
	toPrepare(t, g)
	g.Scoreboard.Score = 321

	g.StateSystem.Switch(component.DefeatState)
	assert.Equal(t, 321, g.BestScore)
	assert.True(t, g.NewRecord)
	best, err := store.BestScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 321, best)
	assert.Contains(t, g.Summary(), "score 321")
}

func TestNewGame_LoadsBestScore(t *testing.T) {
	lib, err := defs.Default()
	require.NoError(t, err)
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveBestScore(context.Background(), 77))

	g := NewGame(Options{Library: lib, Store: store, Seed: 1, Logger: zerolog.Nop()})
	assert.Equal(t, 77, g.BestScore)
	assert.False(t, g.NewRecord)
}

func TestAutoplayer_FinishesFirstRound(t *testing.T) {
	g, _ := newTestGame(t, 42)
	var visited []component.RoundState
	g.EventDispatcher.Subscribe(event.StateChangeType, event.ListenerFunc(func(e event.Event) {
		visited = append(visited, e.(event.StateChanged).To)
	}))
	bot := NewAutoplayer(g)

	for i := 0; i < 100_000 && !g.State().IsResult(); i++ {
		bot.Step()
		g.Update()
	}
	require.True(t, g.State().IsResult(), "round should end")
	assert.Equal(t, []component.RoundState{
		component.PrepareState, component.ReadyState, component.FightState, g.State(),
	}, visited)

	if g.State() == component.VictoryState {
		assert.Equal(t, 1, g.Scoreboard.Conquered)
		assert.Len(t, g.Offers(), config.GiftOffers)
		return
	}
	assert.GreaterOrEqual(t, g.BestScore, g.Scoreboard.Score)
	assert.Zero(t, g.CombatSystem.LivingAllies())
}

func TestSameSeedSameGame(t *testing.T) {
	a, _ := newTestGame(t, 99)
	b, _ := newTestGame(t, 99)
	NewAutoplayer(a).Play(20_000)
	NewAutoplayer(b).Play(20_000)

	assert.Equal(t, a.Scoreboard, b.Scoreboard)
	assert.Equal(t, a.State(), b.State())
	assert.Equal(t, len(a.CombatSystem.Enemies()), len(b.CombatSystem.Enemies()))
}
