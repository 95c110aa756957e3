package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mongol-march/pkg/grid"
)

func TestCell_LockUnlockAdjustsTally(t *testing.T) {
	tally := &FreeTally{Count: 10}
	c := NewCell(grid.Coord{Row: 1, Col: 2}, tally)

	c.Lock()
	assert.True(t, c.Locked)
	assert.Equal(t, 9, tally.Count)

	c.Lock()
	assert.Equal(t, 9, tally.Count, "second lock must not decrement again")

	c.Unlock()
	assert.False(t, c.Locked)
	assert.Equal(t, 10, tally.Count)

	c.Unlock()
	assert.Equal(t, 10, tally.Count)
}

func TestCell_ResetKeepsLock(t *testing.T) {
	c := NewCell(grid.Coord{}, &FreeTally{Count: 1})
	c.OccupiedBy = "p1"
	c.OccupiedUnitType = "archer"
	c.MarkScanned("#847875")
	c.Lock()

	c.Reset()
	assert.False(t, c.Occupied())
	assert.Empty(t, c.OccupiedUnitType)
	assert.False(t, c.Scanned)
	assert.True(t, c.Locked)
	assert.Equal(t, Overlay{}, c.Overlay)
}

func TestCell_ClearPreviewSkipsOccupied(t *testing.T) {
	c := NewCell(grid.Coord{}, nil)
	c.Overlay = Overlay{Color: "#fff", Opacity: 0.6}
	c.ClearPreview()
	assert.Equal(t, Overlay{}, c.Overlay)

	c.OccupiedBy = "p"
	c.Overlay = Overlay{Color: "#fff", Opacity: 1}
	c.ClearPreview()
	assert.Equal(t, "#fff", c.Overlay.Color)
}
