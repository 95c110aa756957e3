// internal/app/autoplay.go
package app

import (
	"mongol-march/internal/component"
	"mongol-march/pkg/grid"
)

// Autoplayer — простой бот: ставит блоки жадно слева направо, берёт первый подарок.
type Autoplayer struct {
	game *Game
}

func NewAutoplayer(g *Game) *Autoplayer {
	return &Autoplayer{game: g}
}

// Step делает одно решение за текущее состояние
func (a *Autoplayer) Step() {
	g := a.game
	switch g.State() {
	case component.PrologueState:
		_ = g.SkipPrologue()
	case component.PrepareState:
		if !a.placeCurrent() {
			_ = g.Waive()
		}
	case component.ReadyState:
		_ = g.Start()
	case component.VictoryState:
		_ = g.ChooseGift(0)
	}
}

// placeCurrent перебирает колонки слева направо и все четыре поворота
func (a *Autoplayer) placeCurrent() bool {
	g := a.game
	for turn := 0; turn < 4; turn++ {
		block := g.Catalog.Current()
		if block == nil {
			return false
		}
		for col := 0; col < g.Board.Cols(); col++ {
			for row := 0; row < g.Board.Rows(); row++ {
				c := grid.Coord{Row: row, Col: col}
				if len(g.Board.Footprint(c, block)) == 0 {
					continue
				}
				_, err := g.Place(c)
				return err == nil
			}
		}
		_ = g.Rotate()
	}
	return false
}

// Play гоняет сессию до поражения или до maxTicks тиков. Возвращает число тиков.
func (a *Autoplayer) Play(maxTicks uint64) uint64 {
	g := a.game
	for g.Ticks() < maxTicks && g.State() != component.DefeatState {
		a.Step()
		g.Update()
	}
	return g.Ticks()
}
