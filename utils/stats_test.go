package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 10, 10, 0, 0)
	s.Update(1, 8, 1, 3, 10*time.Millisecond)

	if s.TotalGenerations != 1 || s.Population != 8 {
		t.Fatalf("generation/population = %d/%d, want 1/8", s.TotalGenerations, s.Population)
	}
	if s.Births != 11 || s.Deaths != 3 || s.LastFlips != 4 {
		t.Fatalf("births/deaths/last = %d/%d/%d, want 11/3/4", s.Births, s.Deaths, s.LastFlips)
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Fatalf("gen/sec = %f, want 100", s.GenerationsPerSecond)
	}
	if want := 9.8; math.Abs(s.AveragePopulation-want) > 1e-9 {
		t.Fatalf("average population = %f, want %f", s.AveragePopulation, want)
	}
}
