package model

import "fmt"

// ApplyFlips toggles every coordinate in flips and propagates the ±1
// neighbor-count deltas through the topology. Out-of-bounds coordinates are
// skipped. A coordinate listed twice cancels itself.
func ApplyFlips(g *Grid, flips FlipSet, topology Topology) {
	for _, f := range flips {
		alive, ok := g.Toggle(f.Row, f.Col)
		if !ok {
			continue
		}
		for _, n := range topology.Neighbors(f.Row, f.Col, g.height, g.width) {
			if !g.adjust(n.Row, n.Col, alive) && debugInvariants {
				panic(fmt.Sprintf("neighbor count underflow at (%d,%d) while killing (%d,%d)", n.Row, n.Col, f.Row, f.Col))
			}
		}
	}
}

// AssertInvariants panics if any neighbor count is inconsistent. It only
// checks in builds tagged lifedebug and is a no-op otherwise.
func AssertInvariants(g *Grid, topology Topology) {
	if !debugInvariants {
		return
	}
	if err := g.Verify(topology); err != nil {
		panic(err)
	}
}
