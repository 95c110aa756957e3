// internal/system/state.go
package system

import (
	"time"

	"github.com/rs/zerolog"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/internal/utils"
)

// StateSystem — конечный автомат раунда: пролог, подготовка, готовность, бой, итог.
type StateSystem struct {
	current  component.RoundState
	prologue time.Duration
	offers   []defs.GiftOffer

	board    *BoardSystem
	timeline *TimelineSystem
	catalog  *Catalog
	combat   *CombatSystem

	gifts           defs.GiftPools
	rng             *utils.PRNGService
	scheduler       *Scheduler
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewStateSystem(
	board *BoardSystem,
	timeline *TimelineSystem,
	catalog *Catalog,
	combat *CombatSystem,
	gifts defs.GiftPools,
	rng *utils.PRNGService,
	scheduler *Scheduler,
	eventDispatcher *event.Dispatcher,
	logger zerolog.Logger,
) *StateSystem {
	ss := &StateSystem{
		current:         component.PrologueState,
		board:           board,
		timeline:        timeline,
		catalog:         catalog,
		combat:          combat,
		gifts:           gifts,
		rng:             rng,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "state").Logger(),
	}
	eventDispatcher.Subscribe(event.StartClickType, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if _, ok := e.(event.StartClicked); ok && s.current == component.ReadyState {
		s.Switch(component.FightState)
	}
}

func (s *StateSystem) Current() component.RoundState {
	return s.current
}

// Offers — подарки, предложенные после победы
func (s *StateSystem) Offers() []defs.GiftOffer {
	return s.offers
}

// PrologueLeft — сколько осталось до конца вступления
func (s *StateSystem) PrologueLeft() time.Duration {
	if s.current != component.PrologueState {
		return 0
	}
	return config.PrologueDuration - s.prologue
}

// Update отсчитывает вступление
func (s *StateSystem) Update(dt time.Duration) {
	if s.current != component.PrologueState {
		return
	}
	s.prologue += dt
	if s.prologue >= config.PrologueDuration {
		s.Switch(component.PrepareState)
	}
}

// SkipPrologue сразу переходит к подготовке
func (s *StateSystem) SkipPrologue() {
	if s.current == component.PrologueState {
		s.Switch(component.PrepareState)
	}
}

// ShiftBlock убирает текущий блок каталога. Пустой каталог переводит раунд в ready.
func (s *StateSystem) ShiftBlock() {
	empty := s.catalog.Shift()
	s.eventDispatcher.Dispatch(event.BlockUpdated{})
	if empty {
		s.Switch(component.ReadyState)
	}
}

// Switch выполняет переход и вход в новое состояние
func (s *StateSystem) Switch(to component.RoundState) {
	from := s.current
	s.current = to
	switch to {
	case component.PrepareState:
		s.enterPrepare()
	case component.FightState:
		s.enterFight()
	case component.VictoryState:
		s.enterVictory()
	}
	s.logger.Info().Stringer("from", from).Stringer("to", to).Msg("round state changed")
	s.eventDispatcher.Dispatch(event.StateChanged{From: from, To: to})
}

func (s *StateSystem) enterPrepare() {
	s.scheduler.NextGeneration()
	s.combat.StopAll()
	s.timeline.Reset()
	s.board.Reset()
	s.offers = nil
	s.catalog.Regenerate(s.board.FreeCells())
	s.logger.Debug().Int("blocks", s.catalog.Len()).Int("free", s.board.FreeCells()).Msg("catalog regenerated")
	s.eventDispatcher.Dispatch(event.BlockUpdated{})
}

func (s *StateSystem) enterFight() {
	if err := s.combat.SpawnCastle(); err != nil {
		s.logger.Error().Err(err).Msg("castle spawn failed")
	}
	s.timeline.Start()
}

func (s *StateSystem) enterVictory() {
	bonus := s.combat.TallyVictory()
	s.offers = make([]defs.GiftOffer, 0, config.GiftOffers)
	for i := 0; i < config.GiftOffers; i++ {
		s.offers = append(s.offers, defs.GiftOffer{
			Ally:  utils.Pick(s.rng, s.gifts.Positive),
			Enemy: utils.Pick(s.rng, s.gifts.Negative),
		})
	}
	s.logger.Info().Int("bonus", bonus).Msg("castle conquered")
}
