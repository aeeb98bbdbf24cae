// Command life-run drives a session without a window and prints one line per
// generation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifebox/internal/logging"
	"lifebox/pkg/life"
)

type stampList []string

func (l *stampList) String() string {
	return strings.Join(*l, ",")
}

func (l *stampList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type stamp struct {
	name string
	x, y int
}

func parseStamp(s string) (stamp, error) {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return stamp{}, fmt.Errorf("stamp %q: want name@x,y", s)
	}
	xy := strings.Split(parts[1], ",")
	if len(xy) != 2 {
		return stamp{}, fmt.Errorf("stamp %q: want name@x,y", s)
	}
	x, err := strconv.Atoi(xy[0])
	if err != nil {
		return stamp{}, fmt.Errorf("stamp %q: %w", s, err)
	}
	y, err := strconv.Atoi(xy[1])
	if err != nil {
		return stamp{}, fmt.Errorf("stamp %q: %w", s, err)
	}
	return stamp{name: parts[0], x: x, y: y}, nil
}

func main() {
	cfg := life.DefaultConfig()
	width := flag.Int("w", cfg.Width, "grid width")
	height := flag.Int("h", cfg.Height, "grid height")
	steps := flag.Int("steps", 100, "generations to run")
	seed := flag.Int64("seed", cfg.Seed, "seed for randomize")
	density := flag.Float64("density", 0, "randomize at this density before stamping (0 skips)")
	every := flag.Int("every", 1, "print every n-th generation")
	showGrid := flag.Bool("grid", false, "print the final grid")
	level := flag.String("log-level", "warn", "log level")
	var stamps stampList
	flag.Var(&stamps, "stamp", "pattern to stamp as name@x,y (repeatable)")
	flag.Parse()

	logger := logging.New(logging.Config{Level: logging.ParseLevel(*level), Format: "text", Output: os.Stderr})

	cfg.Width, cfg.Height, cfg.Seed = *width, *height, *seed
	cfg.MinWidth, cfg.MinHeight = 1, 1
	session, err := life.NewSession(cfg, life.WithLogger(logger))
	if err != nil {
		logger.Error("cannot create session", "error", err)
		os.Exit(2)
	}
	if *density > 0 {
		session.RandomizeWith(*density, nil)
	}
	for _, raw := range stamps {
		st, err := parseStamp(raw)
		if err != nil {
			logger.Error("bad stamp", "error", err)
			os.Exit(2)
		}
		n, err := life.Stamp(session.Grid(), st.x, st.y, st.name)
		if err != nil {
			logger.Error("stamp failed", "error", err, "names", strings.Join(life.Names(), ","))
			os.Exit(2)
		}
		logger.Info("stamped", "pattern", st.name, "x", st.x, "y", st.y, "cells", n)
	}

	fmt.Printf("gen %d pop %d\n", session.Generation(), session.Grid().Population())
	if *every <= 0 {
		*every = 1
	}
	for i := 0; i < *steps; i++ {
		res := session.Step()
		if session.Generation()%uint64(*every) == 0 {
			fmt.Printf("gen %d pop %d born %d died %d\n", session.Generation(), session.Grid().Population(), res.Born(), res.Died())
		}
	}
	if *showGrid {
		printGrid(session.Grid())
	}
}

func printGrid(g *life.Grid) {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Alive(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
