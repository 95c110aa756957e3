package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, float32(-2), Lerp(float32(2), float32(-6), 0.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 9))
	assert.Equal(t, 9, Clamp(12, 0, 9))
	assert.Equal(t, 0.25, Clamp(0.25, 0.0, 1.0))
}

func TestPRNG_SameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(17), NewPRNGService(17)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(17), a.Seed())
}

func TestPickN_WithReplacement(t *testing.T) {
	s := NewPRNGService(3)
	picked := PickN(s, []string{"a", "b"}, 10)
	require.Len(t, picked, 10)
	for _, p := range picked {
		assert.Contains(t, []string{"a", "b"}, p)
	}
	assert.Empty(t, PickN(s, []string{}, 3))
	assert.Equal(t, "only", Pick(s, []string{"only"}))
}
