// internal/system/timeline.go
package system

import (
	"math"

	"mongol-march/internal/config"
	"mongol-march/internal/event"
)

// TimelineSystem — вертикальная линия, которая идёт по доске во время боя
// и сообщает о каждой новой колонке.
type TimelineSystem struct {
	Position float64
	Active   bool
	Finished bool

	step, maxX, cellSize float64
	cols                 int
	scanned              map[int]struct{}
	eventDispatcher      *event.Dispatcher
}

func NewTimelineSystem(cols int, cellSize float64, eventDispatcher *event.Dispatcher) *TimelineSystem {
	return &TimelineSystem{
		step:            config.TimelineStep,
		maxX:            cellSize * float64(cols),
		cellSize:        cellSize,
		cols:            cols,
		scanned:         make(map[int]struct{}),
		eventDispatcher: eventDispatcher,
	}
}

// Update сдвигает линию на один тик
func (t *TimelineSystem) Update() {
	if !t.Active {
		return
	}
	if t.Position >= t.maxX {
		if !t.Finished {
			t.Finished = true
			t.eventDispatcher.Dispatch(event.FinalColumnScanned{})
		}
		return
	}
	t.Position += t.step
	col := int(math.Floor(t.Position / t.cellSize))
	if col >= t.cols {
		return
	}
	if _, done := t.scanned[col]; done {
		return
	}
	t.scanned[col] = struct{}{}
	t.eventDispatcher.Dispatch(event.ColumnScanned{Col: col})
}

func (t *TimelineSystem) Start() {
	t.Active = true
}

// Reset останавливает линию и возвращает её в начало доски
func (t *TimelineSystem) Reset() {
	t.Active = false
	t.Finished = false
	t.Position = 0
	clear(t.scanned)
}

// MaxX — правый край доски в пикселях
func (t *TimelineSystem) MaxX() float64 {
	return t.maxX
}
