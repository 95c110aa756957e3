// internal/system/board.go
package system

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/pkg/grid"
)

// Placement — один поставленный блок
type Placement struct {
	ID       component.PlacementID
	UnitType defs.UnitType
	Coords   []grid.Coord
}

// BoardSystem — доска стратегии: установка блоков, превью, сканирование колонок, пробои.
type BoardSystem struct {
	rows, cols      int
	cells           [][]*component.Cell
	tally           component.FreeTally
	anyLocked       bool // за текущий проход линии была заблокирована хотя бы одна клетка
	hover           grid.Coord
	hasHover        bool
	eventDispatcher *event.Dispatcher
	scheduler       *Scheduler
	logger          zerolog.Logger
}

func NewBoardSystem(rows, cols int, eventDispatcher *event.Dispatcher, scheduler *Scheduler, logger zerolog.Logger) *BoardSystem {
	b := &BoardSystem{
		rows:            rows,
		cols:            cols,
		tally:           component.FreeTally{Count: rows * cols},
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		logger:          logger.With().Str("system", "board").Logger(),
	}
	b.cells = make([][]*component.Cell, rows)
	for r := 0; r < rows; r++ {
		b.cells[r] = make([]*component.Cell, cols)
		for c := 0; c < cols; c++ {
			b.cells[r][c] = component.NewCell(grid.Coord{Row: r, Col: c}, &b.tally)
		}
	}
	eventDispatcher.Subscribe(event.ColumnScannedType, b)
	eventDispatcher.Subscribe(event.FinalColumnScannedType, b)
	eventDispatcher.Subscribe(event.FixGridsType, b)
	return b
}

func (b *BoardSystem) OnEvent(e event.Event) {
	switch ev := e.(type) {
	case event.ColumnScanned:
		b.ScanColumn(ev.Col)
	case event.FinalColumnScanned:
		b.finishPass()
	case event.FixGrids:
		b.FixGrids(ev.Count)
	}
}

func (b *BoardSystem) Rows() int { return b.rows }
func (b *BoardSystem) Cols() int { return b.cols }

// Cell возвращает клетку или nil за пределами доски
func (b *BoardSystem) Cell(c grid.Coord) *component.Cell {
	if !c.In(b.rows, b.cols) {
		return nil
	}
	return b.cells[c.Row][c.Col]
}

// Cells — строки клеток сверху вниз. Только для чтения.
func (b *BoardSystem) Cells() [][]*component.Cell {
	return b.cells
}

// FreeCells — число незаблокированных клеток
func (b *BoardSystem) FreeCells() int {
	return b.tally.Count
}

// AnyLocked — были ли пробои в текущем проходе
func (b *BoardSystem) AnyLocked() bool {
	return b.anyLocked
}

// Footprint — клетки, которые займёт блок с якорем в hover.
// Пустой результат, если хоть одна клетка вне доски, занята или заблокирована.
func (b *BoardSystem) Footprint(hover grid.Coord, def *defs.BlockDefinition) []grid.Coord {
	if def == nil {
		return nil
	}
	offsets := def.Offsets()
	coords := make([]grid.Coord, 0, len(offsets))
	for _, off := range offsets {
		c := hover.Add(off)
		cell := b.Cell(c)
		if cell == nil || cell.Occupied() || cell.Locked {
			return nil
		}
		coords = append(coords, c)
	}
	return coords
}

// Commit занимает клетки новым блоком
func (b *BoardSystem) Commit(coords []grid.Coord, def *defs.BlockDefinition) component.PlacementID {
	id := component.PlacementID(uuid.NewString())
	for _, c := range coords {
		cell := b.cells[c.Row][c.Col]
		cell.OccupiedBy = id
		cell.OccupiedUnitType = def.UnitType
		cell.Overlay = component.Overlay{Color: def.Color, Opacity: 1}
	}
	b.logger.Debug().
		Str("placement", string(id)).
		Str("block", def.ID).
		Str("unit", string(def.UnitType)).
		Int("cells", len(coords)).
		Msg("block placed")
	return id
}

// Placement собирает клетки блока по его id
func (b *BoardSystem) Placement(id component.PlacementID) (Placement, bool) {
	p := Placement{ID: id}
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.OccupiedBy == id && id != "" {
				p.UnitType = cell.OccupiedUnitType
				p.Coords = append(p.Coords, cell.Coord)
			}
		}
	}
	return p, len(p.Coords) > 0
}

// PreviewHover запоминает клетку под курсором и подсвечивает след блока.
// При def == nil только снимает подсветку.
func (b *BoardSystem) PreviewHover(hover grid.Coord, def *defs.BlockDefinition) {
	b.hover, b.hasHover = hover, true
	b.clearPreview()
	if def == nil {
		return
	}
	for _, c := range b.Footprint(hover, def) {
		b.cells[c.Row][c.Col].Overlay = component.Overlay{Color: def.Color, Opacity: config.PreviewOpacity}
	}
}

// RefreshPreview перерисовывает превью в последней позиции курсора (после смены блока)
func (b *BoardSystem) RefreshPreview(def *defs.BlockDefinition) {
	if !b.hasHover {
		b.clearPreview()
		return
	}
	b.PreviewHover(b.hover, def)
}

func (b *BoardSystem) clearPreview() {
	for _, row := range b.cells {
		for _, cell := range row {
			cell.ClearPreview()
		}
	}
}

// ScanColumn — линия дошла до колонки col.
// Пустые клетки блокируются, по каждому новому блоку планируется спавн союзника.
func (b *BoardSystem) ScanColumn(col int) {
	if col < 0 || col >= b.cols {
		return
	}
	recorded := make(map[component.PlacementID]struct{})
	for row := 0; row < b.rows; row++ {
		cell := b.cells[row][col]
		if cell.Locked {
			// пролом с прошлых раундов тоже лишает идеального раунда
			b.anyLocked = true
			continue
		}
		if cell.Scanned {
			continue
		}
		if _, seen := recorded[cell.OccupiedBy]; seen {
			continue
		}
		if !cell.Occupied() {
			cell.Lock()
			b.anyLocked = true
			b.logger.Debug().Int("row", row).Int("col", col).Msg("cell breached")
			continue
		}
		recorded[cell.OccupiedBy] = struct{}{}
		unitType := cell.OccupiedUnitType
		b.scheduler.After(time.Duration(row)*config.SpawnStagger, func() {
			b.eventDispatcher.Dispatch(event.SpawnAlly{UnitType: unitType})
		})
	}
	if len(recorded) == 0 {
		return
	}
	for row := 0; row < b.rows; row++ {
		for c := col; c < b.cols; c++ {
			cell := b.cells[row][c]
			if cell.Scanned || cell.Locked || !cell.Occupied() {
				continue
			}
			if _, ok := recorded[cell.OccupiedBy]; ok {
				cell.MarkScanned(config.ScannedColor)
			}
		}
	}
}

func (b *BoardSystem) finishPass() {
	perfect := !b.anyLocked
	b.anyLocked = false
	if perfect {
		b.logger.Debug().Msg("perfect match")
		b.eventDispatcher.Dispatch(event.PerfectMatch{})
	}
}

// FixGrids разблокирует до n клеток построчно. Возвращает число разблокированных.
func (b *BoardSystem) FixGrids(n int) int {
	fixed := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if fixed >= n {
				return fixed
			}
			if cell.Locked {
				cell.Unlock()
				fixed++
			}
		}
	}
	return fixed
}

// Reset готовит доску к новому раунду. Блокировки сохраняются.
func (b *BoardSystem) Reset() {
	for _, row := range b.cells {
		for _, cell := range row {
			cell.Reset()
		}
	}
	b.anyLocked = false
}
