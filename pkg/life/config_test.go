package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))

	c := FromMap(map[string]string{
		"w":       "80",
		"h":       "bogus",
		"density": "0.5",
		"seed":    "-3",
		"gps":     "500",
		"cell":    "0",
	})
	assert.Equal(t, 80, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, 0.5, c.Density)
	assert.EqualValues(t, -3, c.Seed)
	assert.Equal(t, 60, c.GensPerSecond)
	assert.Equal(t, DefaultConfig().CellSize, c.CellSize)

	c = FromMap(map[string]string{"density": "1.5"})
	assert.Equal(t, 0.25, c.Density)
}

func TestGridSizeForViewport(t *testing.T) {
	c := DefaultConfig()
	w, h := c.GridSizeForViewport(800, 600)
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)

	w, h = c.GridSizeForViewport(50, 50)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestClampGensPerSecond(t *testing.T) {
	assert.Equal(t, 1, ClampGensPerSecond(0))
	assert.Equal(t, 30, ClampGensPerSecond(30))
	assert.Equal(t, 60, ClampGensPerSecond(61))
}
