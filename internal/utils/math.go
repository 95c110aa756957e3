// internal/utils/math.go
package utils

import "cmp"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp[T ~float32 | ~float64](from, to, t T) T {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
