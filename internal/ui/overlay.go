//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws a translucent preview of the selected pattern under the cursor.
type Overlay struct {
	pixel *ebiten.Image
	tint  color.RGBA
	cells []life.Point
	scale int
}

// NewOverlay constructs an overlay drawing cells of scale pixels.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, tint: color.RGBA{R: 120, G: 200, B: 255, A: 110}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update recomputes the preview for a pattern anchored at cell (x, y). A
// pattern with no offsets, or ok false, hides the preview.
func (o *Overlay) Update(size life.Size, x, y int, p life.Pattern, ok bool) {
	o.cells = o.cells[:0]
	if !ok {
		return
	}
	o.cells = append(o.cells, PreviewCells(size, x, y, p)...)
}

// Draw renders the preview onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float64(o.scale)
	for _, c := range o.cells {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(c.X)*s, float64(c.Y)*s)
		op.ColorScale.ScaleWithColor(o.tint)
		screen.DrawImage(o.pixel, op)
	}
}
