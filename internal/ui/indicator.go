// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mongol-march/internal/component"
)

var stateColors = map[component.RoundState]color.RGBA{
	component.PrologueState: {132, 120, 117, 255},
	component.PrepareState:  {75, 114, 110, 255},
	component.ReadyState:    {186, 145, 88, 255},
	component.FightState:    {174, 93, 64, 255},
	component.VictoryState:  {101, 140, 88, 255},
	component.DefeatState:   {121, 68, 74, 255},
}

// StateColor — цвет индикатора для состояния раунда
func StateColor(s component.RoundState) color.RGBA {
	if c, ok := stateColors[s]; ok {
		return c
	}
	return color.RGBA{A: 255}
}

// StateIndicator — круг цвета текущего состояния, пульсирует при смене
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	last       component.RoundState
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, state component.RoundState) {
	if state != i.last {
		i.last = state
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, StateColor(state), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
