package model

import (
	"slices"
	"sync"
)

// FlipSet is the collection of coordinates that changed, or must change, state in a tick
type FlipSet []Coord

// Sort orders the set row-major
func (f FlipSet) Sort() {
	slices.SortFunc(f, func(a, b Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
}

// FlipSetToPool returns a flip set to the pool for reuse
func FlipSetToPool(flips FlipSet, pool *FlipSetPool) {
	if pool == nil {
		return
	}

	pool.Put(flips)
}

// FlipSetPool recycles flip set backing arrays between ticks
type FlipSetPool struct {
	pool sync.Pool
}

func NewFlipSetPool() *FlipSetPool {
	return &FlipSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(FlipSet)
			},
		},
	}
}

// Get retrieves an empty flip set from the pool
func (p *FlipSetPool) Get() FlipSet {
	if p == nil {
		return nil
	}
	f := p.pool.Get().(*FlipSet)
	return (*f)[:0]
}

// Put returns a flip set to the pool, truncating it
func (p *FlipSetPool) Put(flips FlipSet) {
	if p == nil || flips == nil {
		return
	}
	flips = flips[:0]
	p.pool.Put(&flips)
}
