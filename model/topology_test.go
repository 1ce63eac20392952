package model

import (
	"slices"
	"testing"
)

func coordSet(coords []Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func TestNeighborsBounded(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"corner", 0, 0, 3},
		{"opposite corner", 4, 4, 3},
		{"top edge", 0, 2, 5},
		{"left edge", 2, 0, 5},
		{"interior", 2, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeighborsOf(tt.row, tt.col, 5, 5, false)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d: %v", len(got), tt.want, got)
			}
			for _, n := range got {
				if n.Row < 0 || n.Row >= 5 || n.Col < 0 || n.Col >= 5 {
					t.Fatalf("neighbor %v outside the grid", n)
				}
			}
		})
	}
}

func TestNeighborsWrappingCorner(t *testing.T) {
	got := coordSet(NeighborsOf(0, 0, 5, 5, true))
	want := []Coord{{4, 4}, {4, 0}, {4, 1}, {0, 4}, {1, 4}, {0, 1}, {1, 0}, {1, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("missing neighbor %v", c)
		}
	}
}

func TestNeighborsNeverContainCenterOrDuplicates(t *testing.T) {
	for _, wrapping := range []bool{false, true} {
		for height := 1; height <= 6; height++ {
			for width := 1; width <= 6; width++ {
				for row := 0; row < height; row++ {
					for col := 0; col < width; col++ {
						got := NeighborsOf(row, col, height, width, wrapping)
						set := coordSet(got)
						if len(set) != len(got) {
							t.Fatalf("%dx%d wrap=%v (%d,%d): duplicates in %v", height, width, wrapping, row, col, got)
						}
						if set[Coord{row, col}] {
							t.Fatalf("%dx%d wrap=%v (%d,%d): center in %v", height, width, wrapping, row, col, got)
						}
						if wrapping && height > 2 && width > 2 && len(got) != 8 {
							t.Fatalf("%dx%d wrap (%d,%d): %d neighbors, want 8", height, width, row, col, len(got))
						}
					}
				}
			}
		}
	}
}

func TestNeighborsWrappingDegenerate(t *testing.T) {
	tests := []struct {
		height, width int
		want          int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{2, 2, 3},
		{1, 5, 2},
		{2, 5, 5},
	}

	for _, tt := range tests {
		got := NeighborsOf(0, 0, tt.height, tt.width, true)
		if len(got) != tt.want {
			t.Fatalf("%dx%d: %d neighbors %v, want %d", tt.height, tt.width, len(got), got, tt.want)
		}
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	for _, wrapping := range []bool{false, true} {
		for row := 0; row < 4; row++ {
			for col := 0; col < 6; col++ {
				for _, n := range NeighborsOf(row, col, 4, 6, wrapping) {
					back := NeighborsOf(n.Row, n.Col, 4, 6, wrapping)
					if !slices.Contains(back, Coord{row, col}) {
						t.Fatalf("wrap=%v: %v neighbors (%d,%d) but not the reverse", wrapping, n, row, col)
					}
				}
			}
		}
	}
}

func TestTopologyNeighborsMatchesFunction(t *testing.T) {
	topology := Topology{Wrapping: true}
	got := topology.Neighbors(3, 0, 4, 4)
	want := NeighborsOf(3, 0, 4, 4, true)
	if !slices.Equal(got, want) {
		t.Fatalf("Topology.Neighbors = %v, NeighborsOf = %v", got, want)
	}
}
