// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/utils"
)

const unitRadius = 8

var unitColors = map[defs.UnitType]color.RGBA{
	defs.UnitInfantry: {199, 123, 88, 255},
	defs.UnitCavalry:  {174, 93, 64, 255},
	defs.UnitArcher:   {75, 114, 110, 255},
	defs.UnitGuarder:  {146, 116, 65, 255},
	defs.UnitGunner:   {87, 72, 82, 255},
	defs.UnitKhan:     {186, 145, 88, 255},
	defs.UnitCastle:   {121, 68, 74, 255},
}

// RenderSystem рисует юнитов обеих армий над доской
type RenderSystem struct {
	combat *CombatSystem
}

func NewRenderSystem(combat *CombatSystem) *RenderSystem {
	return &RenderSystem{combat: combat}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// земля
	vector.StrokeLine(screen, 0, config.GroundY+unitRadius*2, float32(config.PlayfieldWidth), config.GroundY+unitRadius*2, 2, config.TextDarkColor, false)

	if castle := s.combat.Castle(); castle != nil && castle.Alive() {
		s.drawCastle(screen, castle)
	}
	for _, u := range s.combat.Enemies() {
		if u.Alive() && u.Type != defs.UnitCastle {
			s.drawUnit(screen, u)
		}
	}
	for _, u := range s.combat.Allies() {
		if u.Alive() {
			s.drawUnit(screen, u)
		}
	}
}

func (s *RenderSystem) drawUnit(screen *ebiten.Image, u *component.CombatUnit) {
	pose := u.Rig.Pose()
	scale := u.Profile.Scale
	if scale == 0 {
		scale = 1
	}
	r := float32(unitRadius * scale)
	x := float32(u.X)
	y := float32(u.Y+unitRadius*2) - r - float32(pose.JumpOffset*config.JumpHeight)

	body := unitColors[u.Type]
	vector.DrawFilledCircle(screen, x, y, r+1, config.TextDarkColor, true)
	vector.DrawFilledCircle(screen, x, y, r, body, true)

	dir := float32(1)
	if u.Camp == defs.CampEnemy {
		dir = -1
	}
	// оружие поворачивается на угол замаха
	angle := pose.WeaponAngle
	wx := x + dir*r*1.6*float32(math.Cos(angle))
	wy := y - r*1.6*float32(math.Sin(angle))
	vector.StrokeLine(screen, x+dir*r*0.5, y, wx, wy, 2, config.TextDarkColor, true)

	if pose.ShotT >= 0 && u.Target.Alive() {
		tx := float32(u.Target.Unit.X)
		px := utils.Lerp(x, tx, float32(pose.ShotT))
		vector.DrawFilledCircle(screen, px, y-2, 2, config.TextDarkColor, true)
	}

	s.drawHealth(screen, u, x-r, y-r-6, 2*r)
}

func (s *RenderSystem) drawCastle(screen *ebiten.Image, u *component.CombatUnit) {
	pose := u.Rig.Pose()
	x := float32(u.X)
	top := float32(config.GroundY - 40)
	w := float32(config.CastleWidth)
	vector.DrawFilledRect(screen, x, top, w, 56, unitColors[defs.UnitCastle], false)
	for i := 0; i < 4; i++ {
		vector.DrawFilledRect(screen, x+float32(i)*w/4+4, top-8, w/8, 8, unitColors[defs.UnitCastle], false)
	}
	if pose.ShotT >= 0 && u.Target.Alive() {
		tx := float32(u.Target.Unit.X)
		px := utils.Lerp(x, tx, float32(pose.ShotT))
		vector.DrawFilledCircle(screen, px, top+12, 3, config.TextDarkColor, true)
	}
	s.drawHealth(screen, u, x, top-16, w)
}

func (s *RenderSystem) drawHealth(screen *ebiten.Image, u *component.CombatUnit, x, y, w float32) {
	if u.MaxHealth <= 0 {
		return
	}
	fill := config.AllyHealthColor
	if u.Camp == defs.CampEnemy {
		fill = config.EnemyHealthColor
	}
	ratio := float32(utils.Clamp(u.Health/u.MaxHealth, 0, 1))
	vector.DrawFilledRect(screen, x, y, w, 3, config.HealthBgColor, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, 3, fill, false)
}
