// internal/defs/blocks.go
package defs

import (
	"mongol-march/pkg/grid"
)

// BlockDefinition is an immutable block template: a square occupancy matrix,
// the anchor cell that aligns with the hovered board cell, a color and the unit it spawns.
type BlockDefinition struct {
	ID       string
	Shape    [][]bool
	Anchor   grid.Coord
	Color    string
	UnitType UnitType
}

// blockJSON mirrors the on-disk format, where the matrix is 0/1 and the anchor is [row, col].
type blockJSON struct {
	ID     string   `json:"id"`
	Map    [][]int  `json:"map"`
	Anchor [2]int   `json:"anchor"`
	Color  string   `json:"color"`
	Type   UnitType `json:"type"`
}

func (b blockJSON) toDefinition() BlockDefinition {
	shape := make([][]bool, len(b.Map))
	for i, row := range b.Map {
		shape[i] = make([]bool, len(row))
		for j, v := range row {
			shape[i][j] = v == 1
		}
	}
	return BlockDefinition{
		ID:       b.ID,
		Shape:    shape,
		Anchor:   grid.Coord{Row: b.Anchor[0], Col: b.Anchor[1]},
		Color:    b.Color,
		UnitType: b.Type,
	}
}

// Rotated returns the block turned 90° clockwise. The receiver is not modified.
func (b BlockDefinition) Rotated() BlockDefinition {
	r := b
	r.Shape = grid.RotateShape(b.Shape)
	r.Anchor = grid.RotateAnchor(b.Anchor, len(b.Shape))
	return r
}

// Offsets returns the filled cells relative to the anchor, row-major.
func (b BlockDefinition) Offsets() []grid.Coord {
	var out []grid.Coord
	for i, row := range b.Shape {
		for j, filled := range row {
			if filled {
				out = append(out, grid.Coord{Row: i - b.Anchor.Row, Col: j - b.Anchor.Col})
			}
		}
	}
	return out
}

// Size returns the number of filled cells.
func (b BlockDefinition) Size() int {
	n := 0
	for _, row := range b.Shape {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}
