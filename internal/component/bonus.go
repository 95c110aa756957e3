package component

import "mongol-march/internal/defs"

// Bonus — накопленные модификаторы одной стороны
type Bonus struct {
	AttackUnit    float64 // +урон
	AttackRange   float64 // +дальность (со знаком)
	AttackRate    float64 // *перезарядка, начальное значение 1
	Health        float64 // +здоровье
	ExtraSoldiers int     // +враги на середине доски
}

func NewBonus() Bonus {
	return Bonus{AttackRate: 1}
}

// BonusState — бонусы союзников и врагов. Это две независимые копии.
type BonusState struct {
	Ally  Bonus
	Enemy Bonus
}

func NewBonusState() BonusState {
	return BonusState{Ally: NewBonus(), Enemy: NewBonus()}
}

// For возвращает бонус стороны
func (s *BonusState) For(camp defs.Camp) *Bonus {
	if camp == defs.CampEnemy {
		return &s.Enemy
	}
	return &s.Ally
}

// ApplyAllyGift применяет положительный подарок.
// Возвращает число клеток для ремонта, если подарок — ремонт.
func (s *BonusState) ApplyAllyGift(g defs.Gift) (fixGrids int) {
	switch g.Effect {
	case defs.EffectAddSoldier:
		// союзникам этот эффект не выдаётся
	case defs.EffectFixGrids:
		return int(g.Value)
	default:
		s.Ally.apply(g)
	}
	return 0
}

// ApplyEnemyGift применяет отрицательный подарок (усиление врагов)
func (s *BonusState) ApplyEnemyGift(g defs.Gift) {
	if g.Effect == defs.EffectFixGrids {
		return
	}
	s.Enemy.apply(g)
}

func (b *Bonus) apply(g defs.Gift) {
	switch g.Effect {
	case defs.EffectAttackUnit:
		b.AttackUnit += g.Value
	case defs.EffectAttackRange:
		b.AttackRange += g.Value
	case defs.EffectAttackRate:
		b.AttackRate *= g.Value
	case defs.EffectHealth:
		b.Health += g.Value
	case defs.EffectAddSoldier:
		b.ExtraSoldiers += int(g.Value)
	}
}
