package app

import (
	"flag"
	"image/color"
	"strconv"

	"lifebox/internal/logging"
	"lifebox/internal/render"
	"lifebox/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	CellSize  int
	GPS       int
	Seed      int64
	Density   float64
	Color     string
	Sound     bool
	HUDWidth  int
	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:     d.Width,
		Height:    d.Height,
		CellSize:  d.CellSize,
		GPS:       d.GensPerSecond,
		Seed:      d.Seed,
		Density:   d.Density,
		Color:     "#33cc66",
		HUDWidth:  220,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "initial grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "initial grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for randomize")
	fs.StringVar(&c.Color, "color", c.Color, "live cell color as #rrggbb")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "start with sound enabled")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

// Life converts the flags into an engine configuration.
func (c *Config) Life() life.Config {
	return life.FromMap(map[string]string{
		"w":       itoa(c.Width),
		"h":       itoa(c.Height),
		"cell":    itoa(c.CellSize),
		"gps":     itoa(c.GPS),
		"seed":    itoa64(c.Seed),
		"density": ftoa(c.Density),
	})
}

// Logging converts the flags into a logger configuration.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.LogLevel)
	cfg.Format = c.LogFormat
	return cfg
}

// LiveColor parses Color, falling back to the default green.
func (c *Config) LiveColor() color.Color {
	if col, ok := render.ParseHex(c.Color); ok {
		return col
	}
	col, _ := render.ParseHex(NewConfig().Color)
	return col
}

func itoa(v int) string     { return strconv.Itoa(v) }
func itoa64(v int64) string { return strconv.FormatInt(v, 10) }
func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
