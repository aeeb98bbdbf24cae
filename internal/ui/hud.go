//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid: read-only session
// values grouped by topic, followed by +/- controls for adjustable ones.
type HUD struct {
	src    core.ParameterProvider
	width  int
	title  string
	panel  *ebiten.Image
	pixel  *ebiten.Image
	height int

	snapshot     core.ParameterSnapshot
	controls     []hudControl
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
}

type hudControl struct {
	control core.ParameterControl
	value   float64
	label   string
	ok      bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD reading from src. Controls and setters are picked up
// when src implements the corresponding core interfaces.
func NewHUD(src core.ParameterProvider, title string, width int) *HUD {
	h := &HUD{src: src, title: title, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := src.(core.ParameterControlsProvider); ok {
		for _, c := range p.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: c, label: "--"})
		}
	}
	h.intSetter, _ = src.(core.IntParameterSetter)
	h.floatSetter, _ = src.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the panel. It reports
// whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.refreshControls()
	return h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
		h.layoutControls()
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	y := h.drawSnapshot()
	h.drawControls(y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControls() {
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.control.Key)
		c.ok = false
		c.label = "--"
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		c.value = v
		c.label = formatControl(c.control, v)
		c.ok = true
	}
}

func formatControl(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	prec := 2
	if ctrl.Step < 0.01 {
		prec = 3
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		c := &h.controls[i]
		if !c.ok {
			continue
		}
		switch {
		case pointInRect(px, my, c.minusRect):
			h.adjust(c, -1)
		case pointInRect(px, my, c.plusRect):
			h.adjust(c, 1)
		}
	}
	return true
}

// target returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from the current value.
func (c *hudControl) target(direction int) (float64, bool) {
	step := c.control.Step
	if step <= 0 {
		step = 1
	}
	t := c.value + float64(direction)*step
	if c.control.HasMin {
		t = math.Max(t, c.control.Min)
	}
	if c.control.HasMax {
		t = math.Min(t, c.control.Max)
	}
	return t, math.Abs(t-c.value) > 1e-9
}

func (h *HUD) adjust(c *hudControl, direction int) {
	t, changed := c.target(direction)
	if !changed {
		return
	}
	switch c.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(c.control.Key, int(math.Round(t))) {
			c.value = math.Round(t)
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(c.control.Key, t) {
			c.value = t
		}
	}
	c.label = formatControl(c.control, c.value)
}

var (
	hudTitleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudGroupColor = color.RGBA{R: 140, G: 170, B: 220, A: 255}
	hudTextColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

func (h *HUD) drawSnapshot() int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, hudTitleColor)
	y += groupSpacing
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, hudGroupColor)
		y += rowHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, hudDimColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-w, y, hudTextColor)
			y += rowHeight
		}
		y += groupSpacing - rowHeight
	}
	return y
}

func (h *HUD) drawControls(top int) {
	if len(h.controls) == 0 {
		return
	}
	if h.controls[0].top != top {
		h.layoutControlsFrom(top)
	}
	face := basicfont.Face7x13
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, y, hudTextColor)
		col := hudTextColor
		if !c.ok {
			col = hudDimColor
		}
		w := text.BoundString(face, c.label).Dx()
		text.Draw(h.panel, c.label, face, c.minusRect.Min.X-buttonGap-w, y, col)

		_, canDown := c.target(-1)
		_, canUp := c.target(1)
		h.drawButton(c.minusRect, "-", c.ok && canDown)
		h.drawButton(c.plusRect, "+", c.ok && canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) > 0 {
		h.layoutControlsFrom(h.controls[0].top)
	}
}

func (h *HUD) layoutControlsFrom(top int) {
	for i := range h.controls {
		t := top + i*lineHeight
		by := t + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.controls[i].top = t
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func pointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	rowHeight      = 18
	groupSpacing   = 28
	indent         = 8
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	labelBaseline  = 24
)
