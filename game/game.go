// Package game runs the tick loop: seed the grid, then render, evaluate and
// apply flips until stopped.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/nbockisch/lifers/model"
	"github.com/nbockisch/lifers/utils"
)

// State is the lifecycle state of a Game
type State int

const (
	Seeding State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Seeder produces the initial live cells for a height x width board
type Seeder interface {
	Seed(height, width int) (model.FlipSet, error)
}

// SeederFunc adapts a function to the Seeder interface
type SeederFunc func(height, width int) (model.FlipSet, error)

// Seed calls f(height, width)
func (f SeederFunc) Seed(height, width int) (model.FlipSet, error) {
	return f(height, width)
}

// Game owns the grid and drives it one tick at a time
type Game struct {
	config   utils.Config
	grid     *model.Grid
	topology model.Topology
	renderer model.Renderer
	pool     *model.FlipSetPool
	stats    *utils.Stats
	history  *model.History

	state      State
	generation int
	lastFlips  int
}

// New creates a game for a board sized by config.Height and config.Width
func New(config utils.Config, renderer model.Renderer) *Game {
	g := &Game{
		config:   config,
		grid:     model.NewGrid(config.Height, config.Width),
		topology: model.TopologyFor(config),
		renderer: renderer,
		pool:     model.NewFlipSetPool(),
		stats:    utils.NewStats(),
		state:    Seeding,
	}
	if config.DetectCycles {
		g.history = model.NewHistory(0)
	}
	return g
}

// Run seeds the grid and ticks until ctx is cancelled or the generation limit
// is reached. Cancellation is observed between ticks only. A seeding failure
// is returned before the first tick.
func (g *Game) Run(ctx context.Context, seeder Seeder) error {
	g.state = Seeding
	flips, err := seeder.Seed(g.grid.GetHeight(), g.grid.GetWidth())
	if err != nil {
		g.state = Stopped
		return errors.Wrap(err, "[Run] failed to seed grid")
	}
	g.apply(flips, time.Now())

	g.state = Running
	defer func() { g.state = Stopped }()

	timer := time.NewTimer(g.config.FrameRate)
	defer timer.Stop()

	for {
		frameStart := time.Now()
		g.render(flips)

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			return nil
		}

		next := g.grid.NextFlipSet(flips, g.config, g.pool)
		model.FlipSetToPool(flips, g.pool)
		flips = next
		g.generation++
		g.apply(flips, frameStart)

		timer.Reset(g.config.FrameRate)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}

// apply counts births and deaths, then hands the flips to the update engine
func (g *Game) apply(flips model.FlipSet, frameStart time.Time) {
	births := 0
	for _, f := range flips {
		if g.grid.InBounds(f.Row, f.Col) && !g.grid.Alive(f.Row, f.Col) {
			births++
		}
	}
	deaths := len(flips) - births

	model.ApplyFlips(g.grid, flips, g.topology)
	model.AssertInvariants(g.grid, g.topology)

	g.lastFlips = len(flips)
	g.stats.Update(g.generation, g.grid.Population(), births, deaths, time.Since(frameStart))
	if g.history != nil {
		g.history.Push(g.grid)
	}
}

func (g *Game) render(flips model.FlipSet) {
	for _, f := range flips {
		if cell, ok := g.grid.Get(f.Row, f.Col); ok {
			g.renderer.DrawCell(f.Row, f.Col, cell.Alive())
		}
	}
	g.renderer.Show()
}

// Grid returns the board; it must not be mutated while Run is active
func (g *Game) Grid() *model.Grid { return g.grid }

// State returns the lifecycle state
func (g *Game) State() State { return g.state }

// Generation returns the number of ticks applied since seeding
func (g *Game) Generation() int { return g.generation }

// Stats returns the running statistics
func (g *Game) Stats() *utils.Stats { return g.stats }

// Status describes the board after the last applied tick
func (g *Game) Status() string {
	switch {
	case g.grid.Population() == 0:
		return "Extinct"
	case g.generation > 0 && g.lastFlips == 0:
		return "Stable"
	}
	if g.history != nil {
		if p := g.history.Period(); p > 1 {
			return fmt.Sprintf("Oscillating (period %d)", p)
		}
	}
	return "Active"
}
