package component

import (
	"mongol-march/internal/defs"
	"mongol-march/pkg/grid"
)

// PlacementID — общий идентификатор клеток одного поставленного блока. Пустая строка — клетка свободна.
type PlacementID string

// FreeTally — счётчик незаблокированных клеток доски
type FreeTally struct {
	Count int
}

// Overlay — цвет поверх клетки (превью, поставленный блок, просканированный блок).
// На правила игры не влияет.
type Overlay struct {
	Color   string
	Opacity float64
}

// Cell — клетка доски стратегии
type Cell struct {
	Coord            grid.Coord
	OccupiedBy       PlacementID
	OccupiedUnitType defs.UnitType
	Scanned          bool
	Locked           bool
	Overlay          Overlay

	tally *FreeTally
}

// NewCell создаёт клетку, привязанную к счётчику свободных клеток доски
func NewCell(coord grid.Coord, tally *FreeTally) *Cell {
	return &Cell{Coord: coord, tally: tally}
}

func (c *Cell) Occupied() bool {
	return c.OccupiedBy != ""
}

// Lock блокирует клетку (пробой). Повторная блокировка ничего не меняет.
func (c *Cell) Lock() {
	if c.Locked {
		return
	}
	c.Locked = true
	if c.tally != nil {
		c.tally.Count--
	}
}

// Unlock снимает блокировку (ремонт)
func (c *Cell) Unlock() {
	if !c.Locked {
		return
	}
	c.Locked = false
	if c.tally != nil {
		c.tally.Count++
	}
}

// MarkScanned помечает клетку блока как пройденную линией
func (c *Cell) MarkScanned(color string) {
	c.Scanned = true
	c.Overlay = Overlay{Color: color, Opacity: 1}
}

// Reset очищает занятость и скан. Блокировка сохраняется до ремонта или новой игры.
func (c *Cell) Reset() {
	c.OccupiedBy = ""
	c.OccupiedUnitType = ""
	c.Scanned = false
	c.Overlay = Overlay{}
}

// ClearPreview убирает подсветку, если клетка не занята
func (c *Cell) ClearPreview() {
	if !c.Occupied() && !c.Locked {
		c.Overlay = Overlay{}
	}
}
