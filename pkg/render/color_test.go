package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xc7, G: 0x7b, B: 0x58, A: 255}, ParseHex("#c77b58"))
	assert.Equal(t, color.RGBA{R: 0x4b, G: 0x72, B: 0x6e, A: 255}, ParseHex("4b726e"))
	assert.Equal(t, color.RGBA{A: 255}, ParseHex("#zzz"))
	assert.Equal(t, color.RGBA{A: 255}, ParseHex(""))
}

func TestWithOpacity(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 200}
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 100}, WithOpacity(c, 0.5))
	assert.Equal(t, uint8(200), WithOpacity(c, 3).A)
	assert.Equal(t, uint8(0), WithOpacity(c, -1).A)
}
