package life

// StepResult reports the cells that changed during one generation.
type StepResult struct {
	Births []Point
	Deaths []Point
}

// Born returns the number of cells that came alive.
func (r StepResult) Born() int { return len(r.Births) }

// Died returns the number of cells that died.
func (r StepResult) Died() int { return len(r.Deaths) }

// AnyBirths reports whether at least one cell was born.
func (r StepResult) AnyBirths() bool { return len(r.Births) > 0 }

// AnyDeaths reports whether at least one cell died.
func (r StepResult) AnyDeaths() bool { return len(r.Deaths) > 0 }

// CountLiveNeighbors sums the live cells in the Moore neighborhood of (x, y).
// Neighbors outside the grid count as dead; the board does not wrap.
func CountLiveNeighbors(g *Grid, x, y int) int {
	return g.neighbors(x, y)
}

func (g *Grid) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		row := ny * g.w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			n += int(g.cur[row+nx])
		}
	}
	return n
}

// Step advances g by one generation using B3/S23. Every cell is computed from
// the current buffer into the scratch buffer, then the buffers are swapped.
func Step(g *Grid) StepResult {
	var res StepResult
	w, h := g.w, g.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := g.neighbors(x, y)
			if g.cur[idx] != 0 {
				if n == 2 || n == 3 {
					g.nxt[idx] = 1
					continue
				}
				g.nxt[idx] = 0
				res.Deaths = append(res.Deaths, Point{X: x, Y: y})
				continue
			}
			if n == 3 {
				g.nxt[idx] = 1
				res.Births = append(res.Births, Point{X: x, Y: y})
				continue
			}
			g.nxt[idx] = 0
		}
	}
	g.swap()
	return res
}
