package life

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"lifebox/internal/logging"
	"lifebox/pkg/core"
)

// Mode selects what a pointer press does to the grid.
type Mode int

const (
	// ModeToggle flips the pressed cell.
	ModeToggle Mode = iota
	// ModeSingle forces the pressed cell alive.
	ModeSingle
	// ModePattern stamps the selected pattern anchored at the pressed cell.
	ModePattern
)

func (m Mode) String() string {
	switch m {
	case ModeToggle:
		return "toggle"
	case ModeSingle:
		return "single"
	case ModePattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// PressResult describes the outcome of a manual edit.
type PressResult struct {
	Mode    Mode
	Pattern string
	// Applied is the number of cells written: 1 for toggle and single, the
	// number of in-bounds offsets for a pattern.
	Applied int
	// State is the resulting state of the pressed cell for toggle and single.
	State Cell
}

// Placed reports whether the press set at least one cell alive.
func (r PressResult) Placed() bool {
	if r.Mode == ModeToggle {
		return r.State == Alive
	}
	return r.Applied > 0
}

// Session is the simulation state owned by a single control loop: the grid,
// the generation counter, the run flag and the interaction mode. It performs
// no timing of its own; the driver calls Step at whatever cadence it likes.
type Session struct {
	id  string
	cfg Config
	log logging.Logger
	rng *rand.Rand

	grid       *Grid
	generation uint64
	running    bool
	mode       Mode
	pattern    string
}

// Option customises a Session.
type Option func(*Session)

// WithRNG injects the random source used by Randomize.
func WithRNG(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a paused session in toggle mode with an empty grid of
// cfg.Width by cfg.Height cells.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:   uuid.NewString(),
		cfg:  cfg,
		log:  logging.Nop(),
		rng:  core.NewRNG(cfg.Seed).Source(),
		grid: grid,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)
	s.log.Debug("session created", "width", cfg.Width, "height", cfg.Height)
	return s, nil
}

// ID returns the unique session identifier used in log lines.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Grid exposes the board for rendering.
func (s *Session) Grid() *Grid { return s.grid }

// Generation returns the number of steps since the last clear or randomize.
func (s *Session) Generation() uint64 { return s.generation }

// Running reports whether the driver should be stepping.
func (s *Session) Running() bool { return s.running }

// Start marks the session as running.
func (s *Session) Start() { s.running = true }

// Pause marks the session as paused.
func (s *Session) Pause() { s.running = false }

// ToggleRun flips the run flag and returns the new value.
func (s *Session) ToggleRun() bool {
	s.running = !s.running
	return s.running
}

// Step advances the grid one generation and increments the counter.
func (s *Session) Step() StepResult {
	res := Step(s.grid)
	s.generation++
	return res
}

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.grid.Clear()
	s.generation = 0
	s.log.Debug("grid cleared")
}

// Randomize reseeds the grid at the configured density from the session's
// random source and resets the generation counter.
func (s *Session) Randomize() {
	s.RandomizeWith(s.cfg.Density, s.rng)
}

// RandomizeWith reseeds the grid at density using rng.
func (s *Session) RandomizeWith(density float64, rng *rand.Rand) {
	if rng == nil {
		rng = s.rng
	}
	s.grid.Randomize(density, rng)
	s.generation = 0
	s.log.Debug("grid randomized", "density", density, "population", s.grid.Population())
}

// Resize reallocates the grid with every cell dead. Dimensions below the
// configured minimum are raised to it.
func (s *Session) Resize(w, h int) error {
	w, h = s.cfg.clampSize(w, h)
	if err := s.grid.Resize(w, h); err != nil {
		return err
	}
	s.log.Debug("grid resized", "width", w, "height", h)
	return nil
}

// Mode returns the interaction mode and, in ModePattern, the pattern name.
func (s *Session) Mode() (Mode, string) { return s.mode, s.pattern }

// SelectToggle switches to free toggling.
func (s *Session) SelectToggle() { s.setMode(ModeToggle, "") }

// SelectSingle switches to single-cell placement.
func (s *Session) SelectSingle() { s.setMode(ModeSingle, "") }

// SelectPattern switches to stamping the named pattern. Selecting "single"
// is the same as SelectSingle.
func (s *Session) SelectPattern(name string) error {
	if name == PatternSingle {
		s.SelectSingle()
		return nil
	}
	if _, ok := patterns[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	s.setMode(ModePattern, name)
	return nil
}

func (s *Session) setMode(m Mode, pattern string) {
	s.mode, s.pattern = m, pattern
	s.log.Debug("mode selected", "mode", m.String(), "pattern", pattern)
}

// Press applies the current interaction mode at grid cell (x, y).
func (s *Session) Press(x, y int) (PressResult, error) {
	res := PressResult{Mode: s.mode, Pattern: s.pattern}
	if !s.grid.InBounds(x, y) {
		return res, s.grid.checkBounds(x, y)
	}
	switch s.mode {
	case ModeSingle:
		res.State = Alive
		res.Applied = 1
		return res, s.grid.Set(x, y, Alive)
	case ModePattern:
		n, err := Stamp(s.grid, x, y, s.pattern)
		res.Applied = n
		return res, err
	default:
		state, err := s.grid.Toggle(x, y)
		res.State = state
		res.Applied = 1
		return res, err
	}
}
