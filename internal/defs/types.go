// internal/defs/types.go
package defs

// UnitType identifies a combat unit kind. Blocks carry one, profiles are keyed by it.
type UnitType string

const (
	UnitInfantry UnitType = "infantry"
	UnitCavalry  UnitType = "cavalry"
	UnitArcher   UnitType = "archer"
	UnitGuarder  UnitType = "guarder"
	UnitGunner   UnitType = "gunner"
	UnitKhan     UnitType = "khan"
	UnitCastle   UnitType = "castle"
)

// Camp is the side a unit fights for.
type Camp string

const (
	CampAlly  Camp = "ally"
	CampEnemy Camp = "enemy"
)

// Opposite returns the other camp.
func (c Camp) Opposite() Camp {
	if c == CampAlly {
		return CampEnemy
	}
	return CampAlly
}

// AnimKind selects the visual rig (and its attack animation) of a unit.
type AnimKind string

const (
	AnimSword  AnimKind = "sword"
	AnimBow    AnimKind = "bow"
	AnimShield AnimKind = "shield"
	AnimGun    AnimKind = "gun"
	AnimCastle AnimKind = "castle"
)

// GiftEffect names the stat a gift modifies.
type GiftEffect string

const (
	EffectAttackUnit  GiftEffect = "attackUnit"
	EffectAttackRange GiftEffect = "attackRange"
	EffectAttackRate  GiftEffect = "attackRate"
	EffectHealth      GiftEffect = "health"
	EffectFixGrids    GiftEffect = "fixGrids"
	EffectAddSoldier  GiftEffect = "addSoldier"
)
