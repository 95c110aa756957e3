package component

import "mongol-march/internal/defs"

// Pose — то, что рендер читает у риги юнита
type Pose struct {
	JumpOffset  float64 // смещение вверх при шаге/ударе
	WeaponAngle float64 // радианы, 0 — покой
	ShotT       float64 // прогресс снаряда/частицы 0..1, <0 — нет
}

// Rig — визуальная обвязка юнита. Разные виды анимации атаки реализуют один интерфейс.
type Rig interface {
	TriggerAttackAnim()
	TriggerJump()
	Update()
	Pose() Pose
}

var rigFactories = map[defs.AnimKind]func() Rig{
	defs.AnimSword:  func() Rig { return &swordRig{} },
	defs.AnimBow:    func() Rig { return &shotRig{flightTicks: 12} },
	defs.AnimGun:    func() Rig { return &shotRig{flightTicks: 4} },
	defs.AnimShield: func() Rig { return &shieldRig{} },
	defs.AnimCastle: func() Rig { return &castleRig{shotRig{flightTicks: 4}} },
}

// NewRig выбирает ригу по тегу профиля. Неизвестный тег получает меч.
func NewRig(kind defs.AnimKind) Rig {
	if f, ok := rigFactories[kind]; ok {
		return f()
	}
	return &swordRig{}
}

const jumpTicks = 6

type jumper struct {
	ticks int
}

func (j *jumper) TriggerJump() { j.ticks = jumpTicks }

func (j *jumper) step() {
	if j.ticks > 0 {
		j.ticks--
	}
}

func (j *jumper) offset() float64 {
	if j.ticks > 0 {
		return 2
	}
	return 0
}

// swordRig — замах мечом (пехота, конница, хан)
type swordRig struct {
	jumper
	swing float64
}

func (r *swordRig) TriggerAttackAnim() { r.swing = 1.2 }

func (r *swordRig) Update() {
	r.step()
	if r.swing > 0 {
		r.swing -= 0.2
		if r.swing < 0 {
			r.swing = 0
		}
	}
}

func (r *swordRig) Pose() Pose {
	return Pose{JumpOffset: r.offset(), WeaponAngle: r.swing, ShotT: -1}
}

// shotRig — выстрел: лук или ружьё
type shotRig struct {
	jumper
	flightTicks int
	elapsed     int
	flying      bool
}

func (r *shotRig) TriggerAttackAnim() {
	r.flying = true
	r.elapsed = 0
}

func (r *shotRig) Update() {
	r.step()
	if !r.flying {
		return
	}
	r.elapsed++
	if r.elapsed >= r.flightTicks {
		r.flying = false
	}
}

func (r *shotRig) Pose() Pose {
	p := Pose{JumpOffset: r.offset(), ShotT: -1}
	if r.flying {
		p.ShotT = float64(r.elapsed) / float64(r.flightTicks)
	}
	return p
}

// shieldRig — удар щитом вперёд
type shieldRig struct {
	jumper
	bash int
}

func (r *shieldRig) TriggerAttackAnim() { r.bash = 6 }

func (r *shieldRig) Update() {
	r.step()
	if r.bash > 0 {
		r.bash--
	}
}

func (r *shieldRig) Pose() Pose {
	return Pose{JumpOffset: r.offset(), WeaponAngle: float64(r.bash) / 6, ShotT: -1}
}

// castleRig — замок не прыгает, стреляет частицей
type castleRig struct {
	shotRig
}

func (r *castleRig) TriggerJump() {}
