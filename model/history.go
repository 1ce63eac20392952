package model

const defaultHistoryDepth = 5

// History stores recent grid hashes for cycle detection
type History struct {
	hashes []string
	depth  int
}

// NewHistory keeps the last depth hashes; non-positive depth uses 5
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth}
}

// Push adds the current state of the grid and drops the oldest entry when full
func (h *History) Push(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the smallest p such that the latest state repeats the state
// p generations back, or 0 if no repeat is visible in the history.
func (h *History) Period() int {
	last := len(h.hashes) - 1
	for p := 1; p <= last; p++ {
		if h.hashes[last-p] == h.hashes[last] {
			return p
		}
	}
	return 0
}
