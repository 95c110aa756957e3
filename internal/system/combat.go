// internal/system/combat.go
package system

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/internal/interfaces"
	"mongol-march/internal/utils"
)

// CombatSystem управляет двумя армиями: поиск целей, движение, атаки, спавн волн.
type CombatSystem struct {
	allies  []*component.CombatUnit
	enemies []*component.CombatUnit
	castle  *component.CombatUnit

	finalScanned bool

	library         *defs.Library
	bonus           *component.BonusState
	scoreboard      *component.Scoreboard
	round           interfaces.RoundContext
	rng             *utils.PRNGService
	scheduler       *Scheduler
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewCombatSystem(
	library *defs.Library,
	bonus *component.BonusState,
	scoreboard *component.Scoreboard,
	round interfaces.RoundContext,
	rng *utils.PRNGService,
	scheduler *Scheduler,
	eventDispatcher *event.Dispatcher,
	logger zerolog.Logger,
) *CombatSystem {
	cs := &CombatSystem{
		library:         library,
		bonus:           bonus,
		scoreboard:      scoreboard,
		round:           round,
		rng:             rng,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		logger:          logger.With().Str("system", "combat").Logger(),
	}
	eventDispatcher.Subscribe(event.SpawnAllyType, cs)
	eventDispatcher.Subscribe(event.ColumnScannedType, cs)
	eventDispatcher.Subscribe(event.FinalColumnScannedType, cs)
	eventDispatcher.Subscribe(event.PerfectMatchType, cs)
	return cs
}

func (s *CombatSystem) OnEvent(e event.Event) {
	if _, final := e.(event.FinalColumnScanned); !final && s.round.Round() != component.FightState {
		return
	}
	switch ev := e.(type) {
	case event.SpawnAlly:
		s.spawnLogged(defs.CampAlly, ev.UnitType)
	case event.ColumnScanned:
		s.spawnWaveEnemy()
		if ev.Col == config.ExtraSoldierColumn {
			for i := 0; i < s.bonus.Enemy.ExtraSoldiers; i++ {
				s.spawnWaveEnemy()
			}
		}
	case event.FinalColumnScanned:
		s.finalScanned = true
	case event.PerfectMatch:
		s.spawnLogged(defs.CampAlly, defs.UnitKhan)
	}
}

func (s *CombatSystem) Allies() []*component.CombatUnit  { return s.allies }
func (s *CombatSystem) Enemies() []*component.CombatUnit { return s.enemies }

// Castle — вражеский замок текущего раунда, nil до первого боя
func (s *CombatSystem) Castle() *component.CombatUnit { return s.castle }

func (s *CombatSystem) FinalScanned() bool { return s.finalScanned }

// LivingAllies — число живых союзников
func (s *CombatSystem) LivingAllies() int {
	n := 0
	for _, u := range s.allies {
		if u.Alive() {
			n++
		}
	}
	return n
}

func (s *CombatSystem) roster(camp defs.Camp) *[]*component.CombatUnit {
	if camp == defs.CampEnemy {
		return &s.enemies
	}
	return &s.allies
}

func spawnX(camp defs.Camp, t defs.UnitType) float64 {
	switch {
	case t == defs.UnitCastle:
		return config.PlayfieldWidth - config.CastleWidth
	case camp == defs.CampEnemy:
		return config.PlayfieldWidth
	}
	return 0
}

// Spawn воскрешает мёртвого юнита того же типа или создаёт нового по профилю
func (s *CombatSystem) Spawn(camp defs.Camp, t defs.UnitType) (*component.CombatUnit, error) {
	bonus := *s.bonus.For(camp)
	units := s.roster(camp)
	for _, u := range *units {
		if u.Type == t && !u.Alive() {
			u.Respawn(bonus)
			return u, nil
		}
	}
	p, err := s.library.Profile(camp, t)
	if err != nil {
		return nil, eris.Wrap(err, "failed to spawn unit")
	}
	u := component.NewCombatUnit(p, bonus, spawnX(camp, t), config.GroundY)
	*units = append(*units, u)
	return u, nil
}

func (s *CombatSystem) spawnLogged(camp defs.Camp, t defs.UnitType) {
	if _, err := s.Spawn(camp, t); err != nil {
		s.logger.Error().Err(err).Str("camp", string(camp)).Str("unit", string(t)).Msg("spawn failed")
		return
	}
	s.logger.Debug().Str("camp", string(camp)).Str("unit", string(t)).Msg("unit spawned")
}

func (s *CombatSystem) spawnWaveEnemy() {
	if len(s.library.Wave.Pool) == 0 {
		return
	}
	s.spawnLogged(defs.CampEnemy, utils.Pick(s.rng, s.library.Wave.Pool))
}

// SpawnCastle ставит (или восстанавливает) замок в начале боя
func (s *CombatSystem) SpawnCastle() error {
	u, err := s.Spawn(defs.CampEnemy, defs.UnitCastle)
	if err != nil {
		return err
	}
	s.castle = u
	return nil
}

// StopAll выводит всех юнитов из боя перед подготовкой нового раунда
func (s *CombatSystem) StopAll() {
	for _, u := range s.allies {
		u.Stop(s.bonus.Ally)
	}
	for _, u := range s.enemies {
		u.Stop(s.bonus.Enemy)
	}
	s.finalScanned = false
}

// TallyVictory начисляет половину суммарной ценности выживших союзников
func (s *CombatSystem) TallyVictory() int {
	sum := 0
	for _, u := range s.allies {
		if u.Alive() {
			sum += u.Score(s.bonus.Ally, config.ScoreRateBase)
		}
	}
	points := int(math.Round(float64(sum) / 2))
	s.scoreboard.Add(points)
	return points
}

// Update — один тик боя
func (s *CombatSystem) Update() {
	for _, enemy := range s.enemies {
		if !enemy.Alive() {
			continue
		}
		if !enemy.Target.Set() {
			enemy.Target = firstReachable(enemy, s.allies)
		}
		s.updateUnit(enemy)
	}

	living := 0
	for _, ally := range s.allies {
		if !ally.Alive() {
			continue
		}
		living++
		if !ally.Target.Set() {
			ally.Target = firstReachable(ally, s.enemies)
		}
		s.updateUnit(ally)
	}

	if s.round.Round() == component.FightState && living == 0 && s.finalScanned {
		s.round.EndRound(component.DefeatState)
	}
}

// firstReachable — первый живой юнит противника в зоне атаки (порядок ростера)
func firstReachable(u *component.CombatUnit, opponents []*component.CombatUnit) component.UnitRef {
	for _, o := range opponents {
		if o.Alive() && u.Reaches(o.X) {
			return o.Ref()
		}
	}
	return component.UnitRef{}
}

func (s *CombatSystem) updateUnit(u *component.CombatUnit) {
	u.Timer++
	u.Rig.Update()

	if !u.Target.Set() {
		if u.MoveInterval > 0 && u.Timer%u.MoveInterval == 0 {
			u.X += u.MoveSpeed
			u.Rig.TriggerJump()
		}
	} else if u.Timer%u.AttackCooldown == 0 {
		u.Rig.TriggerJump()
		u.Rig.TriggerAttackAnim()
		s.scheduleHit(u)
	}

	if (u.Camp == defs.CampAlly && u.X >= config.PlayfieldWidth) ||
		(u.Camp == defs.CampEnemy && u.X <= 0) {
		u.Deactivate()
	}
}

// scheduleHit откладывает урон до конца анимации удара.
// К моменту удара атакующий или цель могли погибнуть или воскреснуть.
func (s *CombatSystem) scheduleHit(u *component.CombatUnit) {
	attacker := u.Ref()
	target := u.Target
	delay := config.AttackDelay
	if u.Type == defs.UnitCastle {
		delay = config.CastleAttackDelay
	}
	s.scheduler.After(delay, func() {
		if !attacker.Alive() {
			return
		}
		if !target.Alive() {
			if u.Target == target {
				u.Target = component.UnitRef{}
			}
			return
		}
		if !target.Unit.TakeDamage(u.AttackDamage) {
			return
		}
		if u.Target == target {
			u.Target = component.UnitRef{}
		}
		s.onKilled(target.Unit)
	})
}

func (s *CombatSystem) onKilled(u *component.CombatUnit) {
	s.logger.Debug().Str("camp", string(u.Camp)).Str("unit", string(u.Type)).Msg("unit killed")
	if u.Camp != defs.CampEnemy {
		return
	}
	s.scoreboard.Add(u.Score(s.bonus.Enemy, config.ScoreRateBase))
	if u.Type != defs.UnitCastle {
		return
	}
	s.scoreboard.Conquered++
	if s.round.Round() == component.FightState {
		s.round.EndRound(component.VictoryState)
	}
}
