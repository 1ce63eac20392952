package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nbockisch/lifers/rules"
	"github.com/nbockisch/lifers/utils"
)

// TopologyFor returns the topology selected by the configuration
func TopologyFor(config utils.Config) Topology {
	return Topology{Wrapping: config.Wrap}
}

// ScanFlipSet scans every cell and appends the ones that must flip to dst, row-major
func (g *Grid) ScanFlipSet(dst FlipSet) FlipSet {
	return g.scanRows(0, g.height, dst)
}

func (g *Grid) scanRows(startRow, endRow int, dst FlipSet) FlipSet {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			c := g.cells[row][col]
			if rules.ShouldFlip(int(c.neighbors), c.alive) {
				dst = append(dst, Coord{Row: row, Col: col})
			}
		}
	}
	return dst
}

// ScanFlipSetParallel scans every cell using one worker per CPU over row bands.
// The result is identical to ScanFlipSet.
func (g *Grid) ScanFlipSetParallel(dst FlipSet) FlipSet {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		chunks        = make([]FlipSet, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		i := i // per-iteration copy captured by the goroutine below
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			chunks[i] = g.scanRows(startRow, endRow, nil)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	for _, chunk := range chunks {
		dst = append(dst, chunk...)
	}
	return dst
}

// FrontierFlipSet examines only the cells in touched and their neighbors,
// the only cells whose state or count could have changed since the last scan.
func (g *Grid) FrontierFlipSet(touched FlipSet, topology Topology, dst FlipSet) FlipSet {
	seen := make(map[Coord]struct{}, len(touched)*9)
	visit := func(row, col int) {
		coord := Coord{Row: row, Col: col}
		if _, ok := seen[coord]; ok {
			return
		}
		seen[coord] = struct{}{}
		c := g.cells[row][col]
		if rules.ShouldFlip(int(c.neighbors), c.alive) {
			dst = append(dst, coord)
		}
	}

	for _, t := range touched {
		if !g.InBounds(t.Row, t.Col) {
			continue
		}
		visit(t.Row, t.Col)
		for _, n := range topology.Neighbors(t.Row, t.Col, g.height, g.width) {
			visit(n.Row, n.Col)
		}
	}

	dst.Sort()
	return dst
}

// NextFlipSet calculates the next flip set based on configuration
func (g *Grid) NextFlipSet(touched FlipSet, config utils.Config, pool *FlipSetPool) FlipSet {
	dst := pool.Get()
	switch {
	case config.UseFrontier:
		return g.FrontierFlipSet(touched, TopologyFor(config), dst)
	case config.UseParallel:
		return g.ScanFlipSetParallel(dst)
	}
	return g.ScanFlipSet(dst)
}
