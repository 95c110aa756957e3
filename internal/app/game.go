// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/internal/storage"
	"mongol-march/internal/system"
	"mongol-march/internal/utils"
)

const storeTimeout = 2 * time.Second

// Options — зависимости сессии. Library и Store обязательны.
type Options struct {
	Library *defs.Library
	Store   storage.ScoreStore
	Seed    int64 // 0 — от текущего времени
	Logger  zerolog.Logger
}

// Game holds one play session: board, catalog, armies and round flow.
// A new Game is built for every restart.
type Game struct {
	Board           *system.BoardSystem
	Timeline        *system.TimelineSystem
	Catalog         *system.Catalog
	CombatSystem    *system.CombatSystem
	StateSystem     *system.StateSystem
	Scheduler       *system.Scheduler
	EventDispatcher *event.Dispatcher
	Library         *defs.Library
	Rng             *utils.PRNGService

	Bonus      component.BonusState
	Scoreboard component.Scoreboard
	BestScore  int
	NewRecord  bool

	store  storage.ScoreStore
	logger zerolog.Logger
	ticks  uint64
}

// NewGame initializes a new session. It starts in the prologue.
func NewGame(opts Options) *Game {
	if opts.Library == nil || opts.Store == nil {
		panic("library and store cannot be nil")
	}

	eventDispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	rng := utils.NewPRNGService(opts.Seed)
	logger := opts.Logger.With().Int64("seed", rng.Seed()).Logger()

	g := &Game{
		Scheduler:       scheduler,
		EventDispatcher: eventDispatcher,
		Library:         opts.Library,
		Rng:             rng,
		Bonus:           component.NewBonusState(),
		Scoreboard:      component.NewScoreboard(),
		store:           opts.Store,
		logger:          logger,
	}
	// порядок подписки важен: доска сканирует колонку раньше, чем бой выпускает врага
	g.Board = system.NewBoardSystem(config.BoardRows, config.BoardCols, eventDispatcher, scheduler, logger)
	g.Timeline = system.NewTimelineSystem(config.BoardCols, config.CellSize, eventDispatcher)
	g.Catalog = system.NewCatalog(opts.Library.Blocks, rng)
	g.CombatSystem = system.NewCombatSystem(opts.Library, &g.Bonus, &g.Scoreboard, g, rng, scheduler, eventDispatcher, logger)
	g.StateSystem = system.NewStateSystem(g.Board, g.Timeline, g.Catalog, g.CombatSystem,
		opts.Library.Gifts, rng, scheduler, eventDispatcher, logger)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.UpdateBlockType, listener)
	eventDispatcher.Subscribe(event.GridOverType, listener)
	eventDispatcher.Subscribe(event.PlaceBlockType, listener)
	eventDispatcher.Subscribe(event.StateChangeType, listener)

	g.loadBest()
	logger.Info().Int("best", g.BestScore).Msg("session started")
	return g
}

// loadBest читает рекорд для показа. Без хранилища рекорд считается нулевым.
func (g *Game) loadBest() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	best, err := g.store.BestScore(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("best score unavailable")
		return
	}
	g.BestScore = best
}

// Update advances the simulation by one fixed tick.
func (g *Game) Update() {
	g.ticks++
	g.StateSystem.Update(config.TickDuration)
	if g.State() == component.FightState {
		g.Timeline.Update()
		g.CombatSystem.Update()
	}
	g.Scheduler.Advance(config.TickDuration)
}

// Round реализует interfaces.RoundContext
func (g *Game) Round() component.RoundState {
	return g.StateSystem.Current()
}

// EndRound реализует interfaces.RoundContext
func (g *Game) EndRound(result component.RoundState) {
	g.StateSystem.Switch(result)
}

func (g *Game) State() component.RoundState {
	return g.StateSystem.Current()
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

// CurrentBlock — блок, который сейчас ставит игрок (nil вне подготовки или при пустом каталоге)
func (g *Game) CurrentBlock() *defs.BlockDefinition {
	if g.State() != component.PrepareState {
		return nil
	}
	return g.Catalog.Current()
}

// NextBlock — следующий блок каталога
func (g *Game) NextBlock() *defs.BlockDefinition {
	if g.State() != component.PrepareState {
		return nil
	}
	return g.Catalog.Next()
}

func (g *Game) Offers() []defs.GiftOffer {
	return g.StateSystem.Offers()
}

// Summary — строка с итогом партии (для буфера обмена и headless-отчёта)
func (g *Game) Summary() string {
	return fmt.Sprintf("Mongol March: wave %d, castles %d, score %d, best %d",
		g.Scoreboard.Wave, g.Scoreboard.Conquered, g.Scoreboard.Score, g.BestScore)
}

// persistBest сохраняет рекорд. Ошибки хранилища не останавливают игру.
func (g *Game) persistBest() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	best, isNew, err := storage.RecordBest(ctx, g.store, g.Scoreboard.Score)
	if err != nil {
		g.logger.Error().Err(err).Msg("best score not persisted")
		g.BestScore = max(g.BestScore, g.Scoreboard.Score)
		return
	}
	g.BestScore, g.NewRecord = best, isNew
	g.logger.Info().
		Int("score", g.Scoreboard.Score).
		Int("best", best).
		Bool("record", isNew).
		Int("conquered", g.Scoreboard.Conquered).
		Msg("defeat")
}
