package life

import (
	"fmt"
	"slices"
)

// Pattern is a named template of live-cell offsets relative to an anchor.
type Pattern struct {
	Name    string
	Offsets []Point
}

// Bounds returns the width and height of the box spanned by the offsets,
// measured from the anchor.
func (p Pattern) Bounds() (w, h int) {
	for _, o := range p.Offsets {
		w = max(w, o.X+1)
		h = max(h, o.Y+1)
	}
	return w, h
}

// Pattern names understood by Lookup and Stamp.
const (
	PatternSingle         = "single"
	PatternGlider         = "glider"
	PatternLWSS           = "lwss"
	PatternMWSS           = "mwss"
	PatternHWSS           = "hwss"
	PatternPulsar         = "pulsar"
	PatternPentadecathlon = "pentadecathlon"
	PatternGliderGun      = "glidergun"
)

var patternOrder = []string{
	PatternSingle,
	PatternGlider,
	PatternLWSS,
	PatternMWSS,
	PatternHWSS,
	PatternPulsar,
	PatternPentadecathlon,
	PatternGliderGun,
}

var patterns = map[string][]Point{
	PatternSingle: {{0, 0}},
	PatternGlider: {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	PatternLWSS: {
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	},
	PatternMWSS: {
		{1, 0}, {4, 0},
		{5, 1},
		{0, 2},
		{0, 3}, {5, 3},
		{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4},
	},
	PatternHWSS: {
		{1, 0}, {4, 0}, {5, 0},
		{6, 1},
		{0, 2},
		{0, 3}, {5, 3}, {6, 3},
		{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 4},
	},
	PatternPulsar: mirrorDiagonal([]Point{
		{2, 0}, {3, 0}, {4, 0}, {8, 0}, {9, 0}, {10, 0},
		{2, 5}, {3, 5}, {4, 5}, {8, 5}, {9, 5}, {10, 5},
		{2, 7}, {3, 7}, {4, 7}, {8, 7}, {9, 7}, {10, 7},
		{2, 12}, {3, 12}, {4, 12}, {8, 12}, {9, 12}, {10, 12},
	}),
	PatternPentadecathlon: {
		{0, 1}, {1, 1}, {2, 1},
		{3, 0}, {3, 2},
		{4, 1},
		{5, 0}, {5, 2},
		{6, 1}, {7, 1}, {8, 1},
	},
	PatternGliderGun: {
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		{10, 4}, {10, 5}, {10, 6},
		{11, 3}, {11, 7},
		{12, 2}, {12, 8},
		{13, 2}, {13, 8},
		{14, 5},
		{15, 3}, {15, 7},
		{16, 4}, {16, 5}, {16, 6},
		{17, 5},
		{20, 2}, {20, 3}, {20, 4},
		{21, 2}, {21, 3}, {21, 4},
		{22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3},
		{35, 2}, {35, 3},
	},
}

// mirrorDiagonal returns every base offset followed by its (dy, dx) reflection.
func mirrorDiagonal(base []Point) []Point {
	out := make([]Point, 0, 2*len(base))
	for _, p := range base {
		out = append(out, p, Point{X: p.Y, Y: p.X})
	}
	return out
}

// Names lists the library patterns in display order.
func Names() []string {
	return slices.Clone(patternOrder)
}

// Lookup returns the named pattern. The offsets are a copy the caller may keep.
func Lookup(name string) (Pattern, bool) {
	offsets, ok := patterns[name]
	if !ok {
		return Pattern{}, false
	}
	return Pattern{Name: name, Offsets: slices.Clone(offsets)}, true
}

// Stamp ORs the named pattern onto g with its origin at (x, y) and returns the
// number of offsets that landed inside the grid. Offsets that fall outside are
// skipped; a pattern near an edge is clipped rather than rejected.
func Stamp(g *Grid, x, y int, name string) (int, error) {
	offsets, ok := patterns[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return stampOffsets(g, x, y, offsets), nil
}

// StampPattern ORs an arbitrary pattern onto g. See Stamp.
func StampPattern(g *Grid, x, y int, p Pattern) int {
	return stampOffsets(g, x, y, p.Offsets)
}

func stampOffsets(g *Grid, x, y int, offsets []Point) int {
	applied := 0
	for _, o := range offsets {
		gx, gy := x+o.X, y+o.Y
		if !g.InBounds(gx, gy) {
			continue
		}
		g.cur[g.index(gx, gy)] = 1
		applied++
	}
	return applied
}
