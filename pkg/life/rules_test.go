package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifebox/pkg/core"
)

func fill(t *testing.T, g *Grid, pts ...Point) {
	t.Helper()
	for _, p := range pts {
		require.NoError(t, g.Set(p.X, p.Y, Alive))
	}
}

func translate(pts []Point, dx, dy int) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func TestCountLiveNeighborsInterior(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Randomize(1, core.NewRNG(1).Source())
	assert.Equal(t, 8, CountLiveNeighbors(g, 1, 1))
}

func TestCountLiveNeighborsHardEdges(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.Randomize(1, core.NewRNG(1).Source())
	assert.Equal(t, 3, CountLiveNeighbors(g, 0, 0))
	assert.Equal(t, 3, CountLiveNeighbors(g, 2, 2))
	assert.Equal(t, 5, CountLiveNeighbors(g, 1, 0))

	// Cells on the opposite edges would be neighbours on a torus.
	h, _ := NewGrid(5, 5)
	fill(t, h, Point{4, 4}, Point{4, 0}, Point{0, 4})
	assert.Zero(t, CountLiveNeighbors(h, 0, 0))
}

func TestBlockIsStill(t *testing.T) {
	g, _ := NewGrid(6, 6)
	block := []Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	fill(t, g, block...)

	for i := 0; i < 10; i++ {
		res := Step(g)
		assert.Zero(t, res.Born(), "step %d", i)
		assert.Zero(t, res.Died(), "step %d", i)
		assert.Equal(t, block, g.LiveCells(), "step %d", i)
	}
}

func TestBlockInCorner(t *testing.T) {
	g, _ := NewGrid(4, 4)
	block := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	fill(t, g, block...)
	Step(g)
	assert.Equal(t, block, g.LiveCells())
}

func TestGliderTranslates(t *testing.T) {
	g, _ := NewGrid(20, 20)
	n, err := Stamp(g, 5, 5, PatternGlider)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	start := g.LiveCells()

	for i := 0; i < 4; i++ {
		Step(g)
	}
	assert.Equal(t, translate(start, 1, 1), g.LiveCells())
}

func TestPulsarPeriodThree(t *testing.T) {
	g, _ := NewGrid(30, 30)
	_, err := Stamp(g, 8, 8, PatternPulsar)
	require.NoError(t, err)
	start := append([]uint8(nil), g.Cells()...)

	Step(g)
	assert.NotEqual(t, start, g.Cells())
	Step(g)
	assert.NotEqual(t, start, g.Cells())
	Step(g)
	assert.Equal(t, start, g.Cells())
}

func TestBlinkerOscillation(t *testing.T) {
	g, _ := NewGrid(5, 5)
	set := func(x, y int) {
		if err := g.Set(x, y, Alive); err != nil {
			t.Fatal(err)
		}
	}
	set(2, 1)
	set(2, 2)
	set(2, 3)

	Step(g)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	Step(g)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestStepReportsBirthsAndDeaths(t *testing.T) {
	g, _ := NewGrid(5, 5)
	fill(t, g, Point{2, 1}, Point{2, 2}, Point{2, 3})

	res := Step(g)
	assert.Equal(t, []Point{{1, 2}, {3, 2}}, res.Births)
	assert.Equal(t, []Point{{2, 1}, {2, 3}}, res.Deaths)
	assert.True(t, res.AnyBirths())
	assert.True(t, res.AnyDeaths())
}

func TestStepLoneCellDies(t *testing.T) {
	g, _ := NewGrid(1, 1)
	fill(t, g, Point{0, 0})
	res := Step(g)
	assert.Equal(t, 1, res.Died())
	assert.False(t, res.AnyBirths())
	assert.Zero(t, g.Population())

	res = Step(g)
	assert.False(t, res.AnyBirths())
	assert.False(t, res.AnyDeaths())
}

func TestStepSwapsBuffers(t *testing.T) {
	g, _ := NewGrid(4, 4)
	prevCur, prevNxt := g.cur, g.nxt
	Step(g)
	assert.Same(t, &prevNxt[0], &g.cur[0])
	assert.Same(t, &prevCur[0], &g.nxt[0])
}
