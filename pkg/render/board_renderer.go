// pkg/render/board_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"mongol-march/internal/component"
	"mongol-march/internal/defs"
)

// BoardRenderer рисует доску стратегии, линию сканирования и мини-доски блоков
type BoardRenderer struct {
	rows, cols       int
	cellSize         float64
	offsetX, offsetY float64
	colors           BoardColors
	fontFace         font.Face
	boardImage       *ebiten.Image // предрендеренная шахматка
}

func NewBoardRenderer(rows, cols int, cellSize, offsetX, offsetY float64, face font.Face, colors BoardColors) *BoardRenderer {
	r := &BoardRenderer{
		rows:       rows,
		cols:       cols,
		cellSize:   cellSize,
		offsetX:    offsetX,
		offsetY:    offsetY,
		colors:     colors,
		fontFace:   face,
		boardImage: ebiten.NewImage(int(cellSize)*cols, int(cellSize)*rows),
	}
	r.renderBoardImage()
	return r
}

// renderBoardImage рисует шахматку один раз при инициализации
func (r *BoardRenderer) renderBoardImage() {
	r.boardImage.Clear()
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			c := r.colors.CellLightColor
			if (row+col)%2 == 1 {
				c = r.colors.CellDarkColor
			}
			x, y := float32(float64(col)*r.cellSize), float32(float64(row)*r.cellSize)
			vector.DrawFilledRect(r.boardImage, x, y, float32(r.cellSize), float32(r.cellSize), c, false)
		}
	}
}

// Origin — левый верхний угол доски на экране
func (r *BoardRenderer) Origin() (x, y float64) {
	return r.offsetX, r.offsetY
}

// Draw рисует клетки с их состоянием. timelineX < 0 — линию не рисовать.
func (r *BoardRenderer) Draw(screen *ebiten.Image, cells [][]*component.Cell, timelineX float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.offsetX, r.offsetY)
	screen.DrawImage(r.boardImage, op)

	size := float32(r.cellSize)
	for _, row := range cells {
		for _, cell := range row {
			cx, cy := cell.Coord.ToPixel(r.cellSize)
			x, y := float32(cx+r.offsetX), float32(cy+r.offsetY)
			switch {
			case cell.Locked:
				vector.DrawFilledRect(screen, x, y, size, size, r.colors.LockedColor, false)
				vector.StrokeLine(screen, x+6, y+6, x+size-6, y+size-6, 2, r.colors.BackgroundColor, true)
				vector.StrokeLine(screen, x+size-6, y+6, x+6, y+size-6, 2, r.colors.BackgroundColor, true)
			case cell.Overlay.Opacity > 0:
				fill := WithOpacity(ParseHex(cell.Overlay.Color), cell.Overlay.Opacity)
				vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, fill, false)
			}
		}
	}

	if timelineX >= 0 {
		x := float32(r.offsetX + timelineX)
		top := float32(r.offsetY) - 6
		bottom := float32(r.offsetY+r.cellSize*float64(r.rows)) + 6
		vector.StrokeLine(screen, x, top, x, bottom, 2, r.colors.TimelineColor, true)
	}
}

// DrawBlock рисует блок на мини-доске 4x4 с якорем, помеченным точкой
func (r *BoardRenderer) DrawBlock(screen *ebiten.Image, block *defs.BlockDefinition, x, y, cell float64, label string) {
	side := 4
	if block != nil && len(block.Shape) > side {
		side = len(block.Shape)
	}
	span := float32(cell * float64(side))
	vector.DrawFilledRect(screen, float32(x), float32(y), span, span, r.colors.CellDarkColor, false)
	if label != "" {
		text.Draw(screen, label, r.fontFace, int(x), int(y)-4, r.colors.TextDarkColor)
	}
	if block == nil {
		return
	}
	fill := ParseHex(block.Color)
	for i, row := range block.Shape {
		for j, filled := range row {
			if !filled {
				continue
			}
			cx := float32(x + float64(j)*cell)
			cy := float32(y + float64(i)*cell)
			vector.DrawFilledRect(screen, cx+1, cy+1, float32(cell)-2, float32(cell)-2, fill, false)
		}
	}
	ax := float32(x + (float64(block.Anchor.Col)+0.5)*cell)
	ay := float32(y + (float64(block.Anchor.Row)+0.5)*cell)
	vector.DrawFilledCircle(screen, ax, ay, float32(cell)/5, DarkenColor(fill), true)
}

// DrawText рисует строку по центру точки (x, y)
func (r *BoardRenderer) DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	b := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, x-b.Dx()/2, y+b.Dy()/2, clr)
}
