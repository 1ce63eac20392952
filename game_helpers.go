package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nbockisch/lifers/game"
	"github.com/nbockisch/lifers/model"
	"github.com/nbockisch/lifers/pattern"
	"github.com/nbockisch/lifers/utils"
)

// gameResult is the part of a finished game the final report needs
type gameResult interface {
	Generation() int
	Stats() *utils.Stats
	Status() string
}

// newScreen acquires and initializes the terminal display
func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to initialize screen")
	}
	return screen, nil
}

// runScreen plays the game on the full-screen display until quit. The display
// is released before returning, on every path.
func runScreen(ctx context.Context, config utils.Config) (gameResult, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}
	defer screen.Fini()

	width, height := screen.Size()
	config = config.WithDimensions(height, width)

	g := game.New(config, model.NewScreenRenderer(screen))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		return game.WatchQuit(screen, cancel)
	})
	eg.Go(func() error {
		defer game.StopWatching(screen)
		defer cancel()
		return g.Run(ctx, pattern.File(config.PatternPath))
	})

	return g, eg.Wait()
}

// runPlain plays the game printing whole frames to out; it stops on a signal
// or after the configured number of generations.
func runPlain(ctx context.Context, config utils.Config, out io.Writer) (gameResult, error) {
	config = config.WithDimensions(0, 0)
	g := game.New(config, model.NewTerminalRenderer(out, config.Height, config.Width))
	return g, g.Run(ctx, pattern.File(config.PatternPath))
}

// displayFinalStats shows the summary printed after the display is released
func displayFinalStats(w io.Writer, g gameResult) {
	stats := g.Stats()
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		g.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(w, "Living: %d | Births: %d | Deaths: %d | Status: %s\n",
		stats.Population, stats.Births, stats.Deaths, g.Status())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
