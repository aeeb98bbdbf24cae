package life

import "strconv"

// Config holds the externally supplied parameters of a session.
type Config struct {
	Width  int
	Height int

	// MinWidth and MinHeight bound viewport-derived sizes from below.
	MinWidth  int
	MinHeight int

	// Density is the live-cell probability used by Session.Randomize.
	Density float64
	Seed    int64

	// GensPerSecond is the cadence the driver steps at while running.
	GensPerSecond int
	// CellSize is the on-screen edge length of one cell in pixels.
	CellSize int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         64,
		Height:        48,
		MinWidth:      10,
		MinHeight:     10,
		Density:       0.25,
		Seed:          42,
		GensPerSecond: 10,
		CellSize:      12,
	}
}

const (
	minGensPerSecond = 1
	maxGensPerSecond = 60
)

// ClampGensPerSecond bounds a requested cadence to the supported range.
func ClampGensPerSecond(gps int) int {
	return min(max(gps, minGensPerSecond), maxGensPerSecond)
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["gps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.GensPerSecond = ClampGensPerSecond(parsed)
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	return c
}

// GridSizeForViewport converts a viewport in pixels to grid dimensions,
// leaving a two cell margin and never going below the configured minimum.
func (c Config) GridSizeForViewport(px, py int) (w, h int) {
	cell := c.CellSize
	if cell <= 0 {
		cell = 1
	}
	w = px/cell - 2
	h = py/cell - 2
	return c.clampSize(w, h)
}

func (c Config) clampSize(w, h int) (int, int) {
	return max(w, c.MinWidth, 1), max(h, c.MinHeight, 1)
}
