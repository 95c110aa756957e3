// internal/event/types.go
package event

import (
	"mongol-march/internal/component"
	"mongol-march/internal/defs"
	"mongol-march/pkg/grid"
)

const (
	UpdateBlockType        EventType = "update-block"         // текущий блок изменился (сдвиг, поворот, новый каталог)
	GridOverType           EventType = "grid-over"            // курсор над клеткой
	PlaceBlockType         EventType = "place-block"          // клик по клетке
	StateChangeType        EventType = "state-change"         // смена фазы раунда
	StartClickType         EventType = "start-click"          // кнопка "start"
	SpawnAllyType          EventType = "spawn-ally"           // блок просканирован, нужен союзник
	ColumnScannedType      EventType = "column-scanned"       // линия дошла до колонки
	FinalColumnScannedType EventType = "final-column-scanned" // линия дошла до конца доски
	PerfectMatchType       EventType = "perfect-match"        // раунд без пробоев
	FixGridsType           EventType = "fix-grids"            // подарок "ремонт клеток"
)

type BlockUpdated struct{}

type GridOver struct{ Coord grid.Coord }

type BlockPlaced struct{ Coord grid.Coord }

type StateChanged struct {
	From, To component.RoundState
}

type StartClicked struct{}

type SpawnAlly struct{ UnitType defs.UnitType }

type ColumnScanned struct{ Col int }

type FinalColumnScanned struct{}

type PerfectMatch struct{}

type FixGrids struct{ Count int }

func (BlockUpdated) Type() EventType       { return UpdateBlockType }
func (GridOver) Type() EventType           { return GridOverType }
func (BlockPlaced) Type() EventType        { return PlaceBlockType }
func (StateChanged) Type() EventType       { return StateChangeType }
func (StartClicked) Type() EventType       { return StartClickType }
func (SpawnAlly) Type() EventType          { return SpawnAllyType }
func (ColumnScanned) Type() EventType      { return ColumnScannedType }
func (FinalColumnScanned) Type() EventType { return FinalColumnScannedType }
func (PerfectMatch) Type() EventType       { return PerfectMatchType }
func (FixGrids) Type() EventType           { return FixGridsType }
