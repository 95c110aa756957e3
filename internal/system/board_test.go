package system

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongol-march/internal/config"
	"mongol-march/internal/defs"
	"mongol-march/internal/event"
	"mongol-march/pkg/grid"
)

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.Default()
	require.NoError(t, err)
	return lib
}

func testBlock(t *testing.T, id string) *defs.BlockDefinition {
	t.Helper()
	b, ok := testLibrary(t).BlockByID(id)
	require.True(t, ok, "block %s", id)
	return &b
}

type boardFixture struct {
	board     *BoardSystem
	events    *event.Dispatcher
	scheduler *Scheduler
	spawned   []defs.UnitType
	perfect   int
}

func newBoardFixture(rows, cols int) *boardFixture {
	f := &boardFixture{events: event.NewDispatcher(), scheduler: NewScheduler()}
	f.board = NewBoardSystem(rows, cols, f.events, f.scheduler, zerolog.Nop())
	f.events.Subscribe(event.SpawnAllyType, event.ListenerFunc(func(e event.Event) {
		f.spawned = append(f.spawned, e.(event.SpawnAlly).UnitType)
	}))
	f.events.Subscribe(event.PerfectMatchType, event.ListenerFunc(func(event.Event) {
		f.perfect++
	}))
	return f
}

func coords(pairs ...[2]int) []grid.Coord {
	out := make([]grid.Coord, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, grid.Coord{Row: p[0], Col: p[1]})
	}
	return out
}

func TestFootprint_SquareBlockAroundAnchor(t *testing.T) {
	f := newBoardFixture(4, 4)
	got := f.board.Footprint(grid.Coord{Row: 1, Col: 1}, testBlock(t, "d"))
	assert.ElementsMatch(t, coords([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}), got)
}

func edgeCoords(rows, cols int) []grid.Coord {
	var out []grid.Coord
	for c := -1; c <= cols; c++ {
		out = append(out, grid.Coord{Row: -1, Col: c}, grid.Coord{Row: rows, Col: c})
	}
	for r := 0; r < rows; r++ {
		out = append(out, grid.Coord{Row: r, Col: -1}, grid.Coord{Row: r, Col: cols})
	}
	return out
}

func TestFootprint_EmptyOutsideBoardForEveryRotation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"4x4", 4, 4},
		{"default", config.BoardRows, config.BoardCols},
	}
	lib := testLibrary(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBoardFixture(tt.rows, tt.cols)
			for _, tmpl := range lib.Blocks {
				block := tmpl
				for rot := 0; rot < 4; rot++ {
					for _, c := range edgeCoords(tt.rows, tt.cols) {
						assert.Empty(t, f.board.Footprint(c, &block), "block %s rotation %d at %v", tmpl.ID, rot, c)
					}
					block = block.Rotated()
				}
			}
		})
	}
}

func TestFootprint_RejectsOutOfBoundsAndOverlap(t *testing.T) {
	f := newBoardFixture(4, 4)
	d := testBlock(t, "d")

	assert.Empty(t, f.board.Footprint(grid.Coord{Row: 3, Col: 3}, d))
	assert.Empty(t, f.board.Footprint(grid.Coord{Row: 1, Col: 1}, nil))

	f.board.Commit(f.board.Footprint(grid.Coord{Row: 1, Col: 1}, d), d)
	assert.Empty(t, f.board.Footprint(grid.Coord{Row: 2, Col: 2}, d), "partial overlap rejects the whole block")

	locked := newBoardFixture(4, 4)
	locked.board.Cell(grid.Coord{Row: 0, Col: 0}).Lock()
	assert.Empty(t, locked.board.Footprint(grid.Coord{Row: 0, Col: 0}, d), "locked cell rejects the block")
}

func TestCommit_TagsCellsWithSharedID(t *testing.T) {
	f := newBoardFixture(4, 4)
	d := testBlock(t, "d")
	fp := f.board.Footprint(grid.Coord{Row: 1, Col: 1}, d)
	require.Len(t, fp, 4)

	id := f.board.Commit(fp, d)
	require.NotEmpty(t, id)
	for _, c := range fp {
		cell := f.board.Cell(c)
		assert.Equal(t, id, cell.OccupiedBy)
		assert.Equal(t, defs.UnitGuarder, cell.OccupiedUnitType)
		assert.Equal(t, 1.0, cell.Overlay.Opacity)
	}

	p, ok := f.board.Placement(id)
	require.True(t, ok)
	assert.ElementsMatch(t, fp, p.Coords)
	assert.Equal(t, defs.UnitGuarder, p.UnitType)

	a := testBlock(t, "a")
	other := f.board.Commit(f.board.Footprint(grid.Coord{Row: 1, Col: 0}, a), a)
	assert.NotEqual(t, id, other)
}

func TestPreviewHover(t *testing.T) {
	f := newBoardFixture(4, 4)
	d := testBlock(t, "d")

	f.board.PreviewHover(grid.Coord{Row: 1, Col: 1}, d)
	for _, c := range coords([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}) {
		assert.Equal(t, config.PreviewOpacity, f.board.Cell(c).Overlay.Opacity)
	}

	f.board.PreviewHover(grid.Coord{Row: 1, Col: 1}, nil)
	assert.Zero(t, f.board.Cell(grid.Coord{Row: 1, Col: 1}).Overlay.Opacity)

	a := testBlock(t, "a")
	f.board.Commit(f.board.Footprint(grid.Coord{Row: 1, Col: 0}, a), a)
	f.board.RefreshPreview(nil)
	assert.Equal(t, 1.0, f.board.Cell(grid.Coord{Row: 0, Col: 0}).Overlay.Opacity, "committed cells keep their color")
}

func TestScanColumn_SpawnsOncePerPlacement(t *testing.T) {
	f := newBoardFixture(4, 4)
	a := testBlock(t, "a")
	f.board.Commit(f.board.Footprint(grid.Coord{Row: 1, Col: 1}, a), a)

	f.events.Dispatch(event.ColumnScanned{Col: 1})
	f.scheduler.Advance(0)
	assert.Equal(t, []defs.UnitType{defs.UnitCavalry}, f.spawned)
	assert.Equal(t, 16, f.board.FreeCells())
	for r := 0; r < 4; r++ {
		assert.True(t, f.board.Cell(grid.Coord{Row: r, Col: 1}).Scanned)
	}

	f.board.ScanColumn(1)
	f.scheduler.Advance(time.Second)
	assert.Len(t, f.spawned, 1, "scanning the same column twice emits nothing")
	assert.False(t, f.board.AnyLocked())
}

func TestScanColumn_EmptyCellsAreLockedOnce(t *testing.T) {
	f := newBoardFixture(4, 4)

	f.board.ScanColumn(0)
	assert.Equal(t, 12, f.board.FreeCells())
	assert.True(t, f.board.AnyLocked())

	f.board.ScanColumn(0)
	assert.Equal(t, 12, f.board.FreeCells(), "already locked cells stay counted once")
	assert.Empty(t, f.spawned)
}

func TestScanColumn_StaggersSpawnByRow(t *testing.T) {
	f := newBoardFixture(4, 4)
	d := testBlock(t, "d")
	f.board.Commit(f.board.Footprint(grid.Coord{Row: 1, Col: 1}, d), d)

	f.board.ScanColumn(1)
	assert.True(t, f.board.Cell(grid.Coord{Row: 2, Col: 2}).Scanned, "sweep marks the rest of the block")
	assert.Equal(t, 14, f.board.FreeCells())

	f.scheduler.Advance(config.SpawnStagger - time.Millisecond)
	assert.Empty(t, f.spawned)
	f.scheduler.Advance(time.Millisecond)
	assert.Equal(t, []defs.UnitType{defs.UnitGuarder}, f.spawned)

	f.board.ScanColumn(2)
	f.scheduler.Advance(time.Second)
	assert.Len(t, f.spawned, 1)
	assert.Equal(t, 12, f.board.FreeCells())
}

func TestFinalColumn_PerfectMatchOnlyWithoutBreach(t *testing.T) {
	f := newBoardFixture(1, 1)
	f.board.Cell(grid.Coord{}).OccupiedBy = "x"

	f.events.Dispatch(event.ColumnScanned{Col: 0})
	f.events.Dispatch(event.FinalColumnScanned{})
	assert.Equal(t, 1, f.perfect)

	f.board.Reset()
	f.board.ScanColumn(0)
	f.events.Dispatch(event.FinalColumnScanned{})
	assert.Equal(t, 1, f.perfect)
	assert.False(t, f.board.AnyLocked(), "flag is cleared after the pass")
}

func TestFinalColumn_CarriedLockPreventsPerfectMatch(t *testing.T) {
	f := newBoardFixture(1, 2)
	f.board.Cell(grid.Coord{Row: 0, Col: 0}).OccupiedBy = "x"
	f.board.ScanColumn(0)
	f.board.ScanColumn(1)
	f.events.Dispatch(event.FinalColumnScanned{})
	require.Equal(t, 0, f.perfect)
	require.Equal(t, 1, f.board.FreeCells())

	f.board.Reset()
	f.board.Cell(grid.Coord{Row: 0, Col: 0}).OccupiedBy = "y"
	f.board.ScanColumn(0)
	f.board.ScanColumn(1)
	f.events.Dispatch(event.FinalColumnScanned{})

	assert.Equal(t, 0, f.perfect, "unrepaired breach rules out a perfect round")
	assert.Equal(t, 1, f.board.FreeCells(), "carried lock is not counted twice")
	assert.True(t, f.board.Cell(grid.Coord{Row: 0, Col: 1}).Locked)

	f.board.Reset()
	require.Equal(t, 1, f.board.FixGrids(1))
	f.board.Cell(grid.Coord{Row: 0, Col: 0}).OccupiedBy = "z"
	f.board.Cell(grid.Coord{Row: 0, Col: 1}).OccupiedBy = "z"
	f.board.ScanColumn(0)
	f.board.ScanColumn(1)
	f.events.Dispatch(event.FinalColumnScanned{})
	assert.Equal(t, 1, f.perfect, "repaired board can be perfect again")
}

func TestFixGrids_RowMajorAndBounded(t *testing.T) {
	f := newBoardFixture(2, 4)
	for c := 0; c < 3; c++ {
		f.board.ScanColumn(c)
	}
	require.Equal(t, 2, f.board.FreeCells())

	assert.Equal(t, 4, f.board.FixGrids(4))
	assert.Equal(t, 6, f.board.FreeCells())
	assert.False(t, f.board.Cell(grid.Coord{Row: 0, Col: 0}).Locked)
	assert.False(t, f.board.Cell(grid.Coord{Row: 0, Col: 2}).Locked)
	assert.False(t, f.board.Cell(grid.Coord{Row: 1, Col: 0}).Locked)
	assert.True(t, f.board.Cell(grid.Coord{Row: 1, Col: 1}).Locked)

	f.events.Dispatch(event.FixGrids{Count: 10})
	assert.Equal(t, 8, f.board.FreeCells())
	assert.Equal(t, 0, f.board.FixGrids(1))
}

func TestReset_KeepsLocks(t *testing.T) {
	f := newBoardFixture(2, 2)
	d := testBlock(t, "d")
	f.board.ScanColumn(0)
	f.board.Reset()

	assert.True(t, f.board.Cell(grid.Coord{Row: 0, Col: 0}).Locked)
	assert.Equal(t, 2, f.board.FreeCells())
	assert.Empty(t, f.board.Footprint(grid.Coord{Row: 0, Col: 0}, d))
}
