// pkg/render/color.go
package render

import (
	"image/color"
	"strconv"
	"strings"
)

// BoardColors holds the colors needed to render the static board background.
type BoardColors struct {
	BackgroundColor color.RGBA
	CellLightColor  color.RGBA
	CellDarkColor   color.RGBA
	LockedColor     color.RGBA
	TimelineColor   color.RGBA
	TextDarkColor   color.RGBA
}

// ParseHex разбирает "#rrggbb". Некорректная строка даёт непрозрачный чёрный.
func ParseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// WithOpacity возвращает цвет с альфой opacity (0..1), без премультипликации
func WithOpacity(c color.RGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
