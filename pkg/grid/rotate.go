// pkg/grid/rotate.go
package grid

// RotateShape поворачивает матрицу на 90° по часовой стрелке.
// Для входа R x C результат имеет размер C x R: out[col][rows-1-row] = in[row][col].
// Исходная матрица не изменяется.
func RotateShape[T any](matrix [][]T) [][]T {
	rows := len(matrix)
	if rows == 0 {
		return [][]T{}
	}
	cols := len(matrix[0])

	rotated := make([][]T, cols)
	for i := range rotated {
		rotated[i] = make([]T, rows)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rotated[col][rows-1-row] = matrix[row][col]
		}
	}
	return rotated
}

// RotateAnchor поворачивает якорь вместе с матрицей.
// sideLength — число строк исходной матрицы.
func RotateAnchor(anchor Coord, sideLength int) Coord {
	return Coord{Row: anchor.Col, Col: sideLength - 1 - anchor.Row}
}
