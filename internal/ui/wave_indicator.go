// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"mongol-march/internal/component"
	"mongol-march/internal/config"
)

// WaveIndicator отображает номер волны римскими цифрами и счёт
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextDarkColor,
		OutlineColor: color.White,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// ScoreLine — строка со счётом под номером волны
func ScoreLine(sb *component.Scoreboard, best int) string {
	return fmt.Sprintf("score %d   castles %d   best %d", sb.Score, sb.Conquered, best)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, sb *component.Scoreboard, best int) {
	if sb.Wave <= 0 {
		return
	}
	wave := toRoman(sb.Wave)
	b := text.BoundString(face, wave)
	x := i.X - b.Dx()/2

	// обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, wave, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, wave, face, x, i.Y, i.Color)

	line := ScoreLine(sb, best)
	lb := text.BoundString(face, line)
	text.Draw(screen, line, face, i.X-lb.Dx()/2, i.Y+b.Dy()+8, i.Color)
}
