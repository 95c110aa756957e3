package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/event"
	"mongol-march/internal/utils"
)

// stateRound связывает бой с автоматом так же, как это делает сессия
type stateRound struct{ ss *StateSystem }

func (r *stateRound) Round() component.RoundState          { return r.ss.Current() }
func (r *stateRound) EndRound(result component.RoundState) { r.ss.Switch(result) }

type stateFixture struct {
	ss          *StateSystem
	board       *BoardSystem
	catalog     *Catalog
	timeline    *TimelineSystem
	combat      *CombatSystem
	scheduler   *Scheduler
	transitions []event.StateChanged
}

func newStateFixture(t *testing.T) *stateFixture {
	t.Helper()
	lib := testLibrary(t)
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(9)
	bonus := component.NewBonusState()
	round := &stateRound{}

	f := &stateFixture{scheduler: NewScheduler()}
	f.board = NewBoardSystem(config.BoardRows, config.BoardCols, events, f.scheduler, zerolog.Nop())
	f.timeline = NewTimelineSystem(config.BoardCols, config.CellSize, events)
	f.catalog = NewCatalog(lib.Blocks, rng)
	f.combat = NewCombatSystem(lib, &bonus, &component.Scoreboard{}, round, rng, f.scheduler, events, zerolog.Nop())
	f.ss = NewStateSystem(f.board, f.timeline, f.catalog, f.combat, lib.Gifts, rng, f.scheduler, events, zerolog.Nop())
	round.ss = f.ss

	events.Subscribe(event.StateChangeType, event.ListenerFunc(func(e event.Event) {
		f.transitions = append(f.transitions, e.(event.StateChanged))
	}))
	return f
}

func TestStateSystem_PrologueCountsDown(t *testing.T) {
	f := newStateFixture(t)
	require.Equal(t, component.PrologueState, f.ss.Current())

	f.ss.Update(config.PrologueDuration / 2)
	assert.Equal(t, config.PrologueDuration/2, f.ss.PrologueLeft())
	assert.Equal(t, component.PrologueState, f.ss.Current())

	f.ss.Update(config.PrologueDuration / 2)
	assert.Equal(t, component.PrepareState, f.ss.Current())
	assert.Zero(t, f.ss.PrologueLeft())
	assert.Equal(t, []event.StateChanged{{From: component.PrologueState, To: component.PrepareState}}, f.transitions)
}

func TestStateSystem_PrepareRegeneratesAndDropsPendingTasks(t *testing.T) {
	f := newStateFixture(t)
	fired := false
	f.scheduler.After(0, func() { fired = true })

	f.ss.SkipPrologue()
	f.scheduler.Advance(config.TickDuration)

	assert.False(t, fired, "tasks queued before prepare belong to the old round")
	assert.Equal(t, SizeFor(config.BoardRows*config.BoardCols), f.catalog.Len())
	assert.False(t, f.timeline.Active)
}

func TestStateSystem_ShiftToReadyAndStart(t *testing.T) {
	f := newStateFixture(t)
	f.ss.SkipPrologue()

	for f.catalog.Len() > 1 {
		f.ss.ShiftBlock()
		require.Equal(t, component.PrepareState, f.ss.Current())
	}
	f.ss.ShiftBlock()
	require.Equal(t, component.ReadyState, f.ss.Current())

	f.ss.OnEvent(event.StartClicked{})
	assert.Equal(t, component.FightState, f.ss.Current())
	require.NotNil(t, f.combat.Castle())
	assert.True(t, f.timeline.Active)
}

func TestStateSystem_StartIgnoredOutsideReady(t *testing.T) {
	f := newStateFixture(t)
	f.ss.SkipPrologue()
	f.ss.OnEvent(event.StartClicked{})
	assert.Equal(t, component.PrepareState, f.ss.Current())
}

func TestStateSystem_VictoryRollsOffers(t *testing.T) {
	f := newStateFixture(t)
	f.ss.SkipPrologue()
	f.ss.Switch(component.VictoryState)

	offers := f.ss.Offers()
	require.Len(t, offers, config.GiftOffers)
	for _, o := range offers {
		assert.NotEmpty(t, o.Ally.Text)
		assert.NotEmpty(t, o.Enemy.Text)
	}

	f.ss.Switch(component.PrepareState)
	assert.Empty(t, f.ss.Offers())
}
