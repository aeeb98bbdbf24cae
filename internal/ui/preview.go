package ui

import "lifebox/pkg/life"

// PreviewCells returns the in-bounds cells a pattern would occupy if stamped
// at (x, y) on a grid of the given size.
func PreviewCells(size life.Size, x, y int, p life.Pattern) []life.Point {
	out := make([]life.Point, 0, len(p.Offsets))
	for _, o := range p.Offsets {
		cx, cy := x+o.X, y+o.Y
		if cx < 0 || cy < 0 || cx >= size.W || cy >= size.H {
			continue
		}
		out = append(out, life.Point{X: cx, Y: cy})
	}
	return out
}
