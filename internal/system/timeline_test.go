package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongol-march/internal/event"
)

func TestTimeline_ScansEveryColumnOnceThenFinishes(t *testing.T) {
	d := event.NewDispatcher()
	var cols []int
	finals := 0
	d.Subscribe(event.ColumnScannedType, event.ListenerFunc(func(e event.Event) {
		cols = append(cols, e.(event.ColumnScanned).Col)
	}))
	d.Subscribe(event.FinalColumnScannedType, event.ListenerFunc(func(event.Event) { finals++ }))

	tl := NewTimelineSystem(3, 40, d)
	tl.Update()
	assert.Zero(t, tl.Position, "inactive timeline does not move")

	tl.Start()
	for i := 0; i < 1000 && !tl.Finished; i++ {
		tl.Update()
	}
	require.True(t, tl.Finished)
	assert.Equal(t, 120.0, tl.MaxX())
	assert.GreaterOrEqual(t, tl.Position, tl.MaxX())
	assert.Equal(t, []int{0, 1, 2}, cols)
	assert.Equal(t, 1, finals)

	tl.Update()
	assert.Equal(t, 1, finals, "final column is reported once")

	tl.Reset()
	assert.False(t, tl.Active)
	assert.False(t, tl.Finished)
	assert.Zero(t, tl.Position)

	tl.Start()
	tl.Update()
	assert.Equal(t, []int{0, 1, 2, 0}, cols, "reset clears the scanned set")
}
