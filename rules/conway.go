// Package rules holds the B3/S23 birth/survival rule.
package rules

// ApplyConwayRules returns the next state of a cell: a dead cell with exactly
// 3 live neighbors is born, a live cell with 2 or 3 survives, all others die.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// ShouldFlip reports whether a cell in the given state must toggle this tick.
func ShouldFlip(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}
