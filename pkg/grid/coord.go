// pkg/grid/coord.go
package grid

// Coord представляет клетку доски в координатах (Row, Col)
type Coord struct {
	Row, Col int
}

// Add возвращает сумму координат
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub возвращает разность координат
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// In проверяет, лежит ли координата внутри прямоугольника rows x cols
func (c Coord) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// PixelToCoord конвертирует пиксельные координаты относительно левого верхнего угла доски в клетку.
// ok == false, если точка вне доски.
func PixelToCoord(x, y, cellSize float64, rows, cols int) (Coord, bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return Coord{}, false
	}
	c := Coord{Row: int(y / cellSize), Col: int(x / cellSize)}
	return c, c.In(rows, cols)
}

// ToPixel возвращает левый верхний угол клетки
func (c Coord) ToPixel(cellSize float64) (x, y float64) {
	return float64(c.Col) * cellSize, float64(c.Row) * cellSize
}
