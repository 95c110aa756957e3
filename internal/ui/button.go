// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"mongol-march/internal/config"
)

// Button — прямоугольная кнопка с текстом
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.TextDarkColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// IsClicked — кнопка активна и по ней кликнули
func (b *Button) IsClicked(x, y int, pressed bool) bool {
	return pressed && !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, mx, my int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = config.ButtonDisabled
	case b.Contains(mx, my):
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, config.TextDarkColor, false)

	bounds := text.BoundString(face, b.Text)
	tx := int(b.X + (b.W-float32(bounds.Dx()))/2)
	ty := int(b.Y+(b.H+float32(bounds.Dy()))/2) - 1
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
