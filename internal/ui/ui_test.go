package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mongol-march/internal/component"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestButton_Click(t *testing.T) {
	b := NewButton(10, 10, 100, 30, "start")
	assert.True(t, b.IsClicked(50, 20, true))
	assert.False(t, b.IsClicked(50, 20, false))
	assert.False(t, b.IsClicked(5, 20, true))

	b.Disabled = true
	assert.False(t, b.IsClicked(50, 20, true))
	assert.True(t, b.Contains(110, 40))
}

func TestScoreLine(t *testing.T) {
	sb := &component.Scoreboard{Score: 12, Conquered: 3, Wave: 4}
	assert.Equal(t, "score 12   castles 3   best 40", ScoreLine(sb, 40))
}

func TestStateColor_Distinct(t *testing.T) {
	seen := map[uint32]bool{}
	for _, s := range []component.RoundState{
		component.PrologueState, component.PrepareState, component.ReadyState,
		component.FightState, component.VictoryState, component.DefeatState,
	} {
		c := StateColor(s)
		key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		assert.False(t, seen[key], "state %v", s)
		seen[key] = true
	}
}
