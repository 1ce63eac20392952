package model

// Coord addresses a cell by row and column
type Coord struct {
	Row, Col int
}

// Topology is the neighbor-adjacency policy of a grid
type Topology struct {
	Wrapping bool
}

// Neighbors resolves the neighbor coordinates of (row, col) under this topology
func (t Topology) Neighbors(row, col, height, width int) []Coord {
	return NeighborsOf(row, col, height, width, t.Wrapping)
}

// NeighborsOf returns up to 8 distinct neighbor coordinates of (row, col).
//
// Without wrapping the 3x3 block around the cell is clipped to the grid. With
// wrapping the row and column bands wrap modulo height and width. Bands are
// de-duplicated, so on grids 2 or fewer cells across a physical neighbor is
// reported once and the center never appears.
func NeighborsOf(row, col, height, width int, wrapping bool) []Coord {
	rows, nr := band(row, height, wrapping)
	cols, nc := band(col, width, wrapping)

	out := make([]Coord, 0, 8)
	for _, r := range rows[:nr] {
		for _, c := range cols[:nc] {
			if r == row && c == col {
				continue
			}
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// band selects the distinct indices adjacent to i (inclusive) along an axis of length n
func band(i, n int, wrapping bool) (idx [3]int, k int) {
	if n <= 0 {
		return idx, 0
	}
	if !wrapping {
		for v := max(i-1, 0); v <= min(i+1, n-1); v++ {
			idx[k] = v
			k++
		}
		return idx, k
	}

	var candidates [3]int
	switch {
	case n == 1:
		idx[0] = 0
		return idx, 1
	case i == 0:
		candidates = [3]int{n - 1, 0, 1}
	case i == n-1:
		candidates = [3]int{n - 2, n - 1, 0}
	default:
		candidates = [3]int{i - 1, i, i + 1}
		for j := range candidates {
			candidates[j] = (candidates[j]%n + n) % n
		}
	}

	for _, v := range candidates {
		dup := false
		for _, seen := range idx[:k] {
			if seen == v {
				dup = true
				break
			}
		}
		if !dup {
			idx[k] = v
			k++
		}
	}
	return idx, k
}
