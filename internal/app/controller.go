package app

import (
	"errors"
	"math"
	"time"

	"lifebox/internal/audio"
	"lifebox/internal/core"
	"lifebox/internal/logging"
	"lifebox/internal/ui"
	"lifebox/pkg/life"
)

// Action is a discrete user command.
type Action int

const (
	ActionToggleRun Action = iota
	ActionStep
	ActionRandomize
	ActionClear
	ActionModeToggle
	ActionModeSingle
	ActionModeGlider
	ActionToggleSound
	ActionFaster
	ActionSlower
)

// HUD parameter keys.
const (
	KeyGeneration = "generation"
	KeyState      = "state"
	KeyTime       = "time"
	KeyPopulation = "population"
	KeyMode       = "mode"
	KeyPattern    = "pattern"
	KeySound      = "sound"
	KeySpeed      = "gps"
	KeyDensity    = "density"
)

// Controller owns the session on behalf of the frame loop. It turns input
// into engine calls, steps at the configured cadence while running and
// forwards engine events to audio feedback.
type Controller struct {
	session  *life.Session
	feedback *audio.Feedback
	timer    *core.FixedStep
	clock    ui.RunClock
	now      func() time.Time
	log      logging.Logger

	gps     int
	density float64
}

// NewController wires a session to feedback. A nil logger discards output.
func NewController(s *life.Session, fb *audio.Feedback, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	if fb == nil {
		fb = audio.NewFeedback(nil)
	}
	cfg := s.Config()
	gps := life.ClampGensPerSecond(cfg.GensPerSecond)
	return &Controller{
		session:  s,
		feedback: fb,
		timer:    core.NewFixedStep(gps),
		now:      time.Now,
		log:      log.With("session", s.ID()),
		gps:      gps,
		density:  cfg.Density,
	}
}

// SetClock replaces the time source for both the cadence and the run clock.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
	c.timer.SetClock(now)
}

// Session returns the controlled session.
func (c *Controller) Session() *life.Session { return c.session }

// Do applies a user action.
func (c *Controller) Do(a Action) {
	switch a {
	case ActionToggleRun:
		running := c.session.ToggleRun()
		c.log.Debug("run toggled", "running", running)
	case ActionStep:
		c.step()
	case ActionRandomize:
		c.session.RandomizeWith(c.density, nil)
	case ActionClear:
		c.session.Pause()
		c.session.Clear()
		c.clock.Reset()
	case ActionModeToggle:
		c.session.SelectToggle()
	case ActionModeSingle:
		c.session.SelectSingle()
	case ActionModeGlider:
		_ = c.session.SelectPattern(life.PatternGlider)
	case ActionToggleSound:
		on := c.feedback.Toggle()
		c.log.Debug("sound toggled", "enabled", on)
	case ActionFaster:
		c.SetSpeed(c.gps + 1)
	case ActionSlower:
		c.SetSpeed(c.gps - 1)
	}
}

// SelectPattern switches to stamping the named pattern.
func (c *Controller) SelectPattern(name string) error {
	return c.session.SelectPattern(name)
}

// Speed returns the cadence in generations per second.
func (c *Controller) Speed() int { return c.gps }

// SetSpeed changes the cadence, clamped to the supported range.
func (c *Controller) SetSpeed(gps int) {
	c.gps = life.ClampGensPerSecond(gps)
	c.timer.SetRate(c.gps)
}

// Tick is called once per frame. It steps when running and the cadence
// allows, and reports whether a generation was computed.
func (c *Controller) Tick() bool {
	running := c.session.Running()
	c.clock.Tick(c.now(), running)
	if !running || !c.timer.ShouldStep() {
		return false
	}
	c.step()
	return true
}

func (c *Controller) step() life.StepResult {
	res := c.session.Step()
	c.feedback.Step(res)
	return res
}

// PressCell applies the current mode at a grid cell.
func (c *Controller) PressCell(x, y int) (life.PressResult, error) {
	res, err := c.session.Press(x, y)
	if err != nil {
		return res, err
	}
	c.feedback.Press(res)
	return res, nil
}

// PressPixel converts a pointer position to a cell and presses it. Positions
// outside the grid are ignored and report false.
func (c *Controller) PressPixel(px, py int) bool {
	x, y, ok := c.CellAt(px, py)
	if !ok {
		return false
	}
	_, err := c.PressCell(x, y)
	if errors.Is(err, life.ErrOutOfBounds) {
		return false
	}
	return err == nil
}

// CellAt maps a pixel position to the grid cell under it.
func (c *Controller) CellAt(px, py int) (x, y int, ok bool) {
	cell := c.session.Config().CellSize
	if px < 0 || py < 0 || cell <= 0 {
		return 0, 0, false
	}
	x, y = px/cell, py/cell
	return x, y, c.session.Grid().InBounds(x, y)
}

// Viewport resizes the grid to fit a viewport of px by py pixels. It reports
// whether the grid was reallocated.
func (c *Controller) Viewport(px, py int) bool {
	w, h := c.session.Config().GridSizeForViewport(px, py)
	if c.session.Grid().Size() == (life.Size{W: w, H: h}) {
		return false
	}
	if err := c.session.Resize(w, h); err != nil {
		c.log.Error("resize failed", "error", err)
		return false
	}
	return true
}

// Parameters implements core.ParameterProvider for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	s := c.session
	state := "Paused"
	if s.Running() {
		state = "Running"
	}
	mode, pattern := s.Mode()
	if pattern == "" {
		pattern = "-"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{
			core.IntParam(KeyGeneration, "Generation", int(s.Generation())),
			core.TextParam(KeyState, "State", state),
			core.TextParam(KeyTime, "Time", ui.FormatElapsed(c.clock.Elapsed())),
			core.IntParam(KeyPopulation, "Population", s.Grid().Population()),
		}},
		{Name: "Edit", Params: []core.Parameter{
			core.TextParam(KeyMode, "Mode", mode.String()),
			core.TextParam(KeyPattern, "Pattern", pattern),
			core.BoolParam(KeySound, "Sound", c.feedback.Enabled()),
		}},
		{Name: "Settings", Params: []core.Parameter{
			core.IntParam(KeySpeed, "Speed", c.gps),
			core.FloatParam(KeyDensity, "Density", c.density),
		}},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeySpeed, Label: "Gen/s", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: KeyDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (c *Controller) SetIntParameter(key string, v int) bool {
	if key != KeySpeed {
		return false
	}
	c.SetSpeed(v)
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (c *Controller) SetFloatParameter(key string, v float64) bool {
	if key != KeyDensity || v < 0 || v > 1 {
		return false
	}
	c.density = math.Round(v*100) / 100
	return true
}
