// internal/defs/units.go
package defs

// UnitProfile holds the base stats of one (camp, unit type) pair.
// Ranges and speeds are signed: allies face right (positive), enemies face left (negative).
type UnitProfile struct {
	Camp           Camp     `json:"camp"`
	Type           UnitType `json:"type"`
	MoveSpeed      float64  `json:"move_speed"`
	MoveInterval   int      `json:"move_interval"` // ticks between steps, 0 — never moves
	Health         float64  `json:"health"`
	AttackRange    float64  `json:"attack_range"`
	AttackCooldown int      `json:"attack_cooldown"` // ticks between attacks
	AttackDamage   float64  `json:"attack_damage"`
	Anim           AnimKind `json:"anim"`
	Scale          float64  `json:"scale,omitempty"`
}

// ProfileKey indexes the profile table.
type ProfileKey struct {
	Camp Camp
	Type UnitType
}

func (p UnitProfile) Key() ProfileKey {
	return ProfileKey{Camp: p.Camp, Type: p.Type}
}

// WaveDefinition describes the enemies released while the timeline sweeps.
type WaveDefinition struct {
	Pool []UnitType `json:"pool"` // random pick per scanned column
}
