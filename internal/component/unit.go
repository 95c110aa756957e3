package component

import (
	"math"

	"mongol-march/internal/defs"
)

// CombatUnit — боевой юнит одной из сторон. Поведение задаётся профилем, а не типом структуры.
// Слоты переиспользуются: мёртвый юнит того же типа воскрешается вместо создания нового.
type CombatUnit struct {
	Camp    defs.Camp
	Type    defs.UnitType
	Profile defs.UnitProfile

	X, Y   float64
	SpawnX float64

	Health         float64
	MaxHealth      float64
	MoveSpeed      float64
	MoveInterval   int
	AttackRange    float64
	AttackCooldown int
	AttackDamage   float64

	Timer  int // тики с последнего (вос)создания
	Target UnitRef
	Rig    Rig

	alive bool
	life  uint64
}

// UnitRef — ссылка на конкретную "жизнь" юнита. После воскрешения старые ссылки недействительны.
type UnitRef struct {
	Unit *CombatUnit
	Life uint64
}

// Set проверяет, назначена ли ссылка вообще
func (r UnitRef) Set() bool {
	return r.Unit != nil
}

// Alive — ссылка указывает на ту же жизнь и юнит жив
func (r UnitRef) Alive() bool {
	return r.Unit != nil && r.Unit.life == r.Life && r.Unit.Alive()
}

// NewCombatUnit создаёт живого юнита по профилю с учётом бонусов стороны
func NewCombatUnit(p defs.UnitProfile, bonus Bonus, spawnX, y float64) *CombatUnit {
	u := &CombatUnit{
		Camp:    p.Camp,
		Type:    p.Type,
		Profile: p,
		SpawnX:  spawnX,
		Y:       y,
		Rig:     NewRig(p.Anim),
	}
	u.Respawn(bonus)
	return u
}

func (u *CombatUnit) Alive() bool {
	return u.alive && u.Health > 0
}

func (u *CombatUnit) Ref() UnitRef {
	return UnitRef{Unit: u, Life: u.life}
}

// Recompute пересчитывает характеристики: база + бонусы стороны
func (u *CombatUnit) Recompute(b Bonus) {
	p := u.Profile
	u.Health = p.Health + b.Health
	u.MaxHealth = u.Health
	u.MoveSpeed = p.MoveSpeed
	u.MoveInterval = p.MoveInterval
	u.AttackRange = p.AttackRange + b.AttackRange
	u.AttackCooldown = int(math.Floor(float64(p.AttackCooldown) * b.AttackRate))
	if u.AttackCooldown < 1 {
		u.AttackCooldown = 1
	}
	u.AttackDamage = p.AttackDamage + b.AttackUnit
}

func (u *CombatUnit) reset(b Bonus) {
	u.X = u.SpawnX
	u.Recompute(b)
	u.Timer = 0
	u.Target = UnitRef{}
}

// Respawn возвращает юнита в строй на стартовой позиции
func (u *CombatUnit) Respawn(b Bonus) {
	u.alive = true
	u.life++
	u.reset(b)
}

// Stop выводит юнита из боя в конце раунда
func (u *CombatUnit) Stop(b Bonus) {
	u.alive = false
	u.reset(b)
}

// Deactivate — юнит ушёл за край поля, не погибнув в бою
func (u *CombatUnit) Deactivate() {
	u.alive = false
}

// TakeDamage наносит урон. killed == true ровно один раз: когда здоровье перешло через ноль.
func (u *CombatUnit) TakeDamage(damage float64) (killed bool) {
	if !u.Alive() {
		return false
	}
	u.Health -= damage
	if u.Health <= 0 {
		u.alive = false
		return true
	}
	return false
}

// Score — ценность юнита: (здоровье + |дальность| + урон) * 60 / перезарядка
func (u *CombatUnit) Score(b Bonus, rateBase float64) int {
	p := u.Profile
	health := p.Health + b.Health
	attackRange := math.Abs(p.AttackRange + b.AttackRange)
	damage := p.AttackDamage + b.AttackUnit
	cooldown := math.Floor(float64(p.AttackCooldown) * b.AttackRate)
	if cooldown < 1 {
		cooldown = 1
	}
	return int(math.Round((health + attackRange + damage) * rateBase / cooldown))
}

// Reaches проверяет, достаёт ли юнит до позиции x с учётом направления
func (u *CombatUnit) Reaches(x float64) bool {
	if u.Camp == defs.CampAlly {
		return u.X+u.AttackRange > x
	}
	return u.X+u.AttackRange < x
}
