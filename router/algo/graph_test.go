package algo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/transitlab/sitp-routing/geo"
	"github.com/transitlab/sitp-routing/router/algo"
)

// testTimePolicy prices a step as base time plus a penalty on line change.
type testTimePolicy struct {
	penalty float64
}

func (p testTimePolicy) StepCost(prevLine, nextLine int, baseTime float64) (float64, bool) {
	if prevLine != algo.NO_LINE && nextLine != prevLine {
		return baseTime + p.penalty, true
	}
	return baseTime, false
}

type zeroHeuristics struct{}

func (zeroHeuristics) HeuristicRemaining(p, pEnd geo.Point) float64 { return 0 }

func TestSearchGraph(t *testing.T) {
	g := algo.NewSearchGraph[int, int](0)

	n1 := g.InitNode(geo.Point{Lat: 0, Lon: 0}, 1)
	n2 := g.InitNode(geo.Point{Lat: 0, Lon: 0.01}, 2)
	n3 := g.InitNode(geo.Point{Lat: 0.01, Lon: 0}, 3)
	n4 := g.InitNode(geo.Point{Lat: 0.01, Lon: 0.01}, 4)

	g.InitEdge(n1, n2, 0, 1, 12)
	g.InitEdge(n2, n3, 0, 1, 23)
	g.InitEdge(n3, n4, 0, 1, 34)

	length, err := g.EdgeTime(n1, n2, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, length)
	assert.NoError(t, g.SetEdgeTime(n1, n2, 0, 2.0))
	length, err = g.EdgeTime(n1, n2, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, length)
	assert.NoError(t, g.SetEdgeTime(n1, n2, 0, 1.0))
	assert.ErrorIs(t, g.SetEdgeTime(n1, n4, 0, 1.0), algo.ErrNoEdge)

	path, cost, err := g.ShortestPathAStar(n1, n4, testTimePolicy{}, zeroHeuristics{})
	assert.NoError(t, err)
	assert.Len(t, path, 4)
	assert.Equal(t, 1, path[0].NodeAttr)
	assert.Equal(t, 12, path[0].EdgeAttr)
	assert.Equal(t, 2, path[1].NodeAttr)
	assert.Equal(t, 23, path[1].EdgeAttr)
	assert.Equal(t, 3, path[2].NodeAttr)
	assert.Equal(t, 34, path[2].EdgeAttr)
	assert.Equal(t, 4, path[3].NodeAttr)
	assert.Equal(t, algo.NO_LINE, path[3].Line)
	assert.Equal(t, 3.0, cost)

	path, cost, err = g.ShortestPathAStar(n3, n3, testTimePolicy{}, zeroHeuristics{})
	assert.NoError(t, err)
	assert.Len(t, path, 1)
	assert.Equal(t, 3, path[0].NodeAttr)
	assert.Equal(t, 0.0, cost)

	// an isolated node is unreachable, not an error
	n5 := g.InitNode(geo.Point{Lat: 0.02, Lon: 0.02}, 5)
	path, cost, err = g.ShortestPathAStar(n1, n5, testTimePolicy{}, zeroHeuristics{})
	assert.NoError(t, err)
	assert.Nil(t, path)
	assert.Equal(t, math.Inf(0), cost)
}

func TestSearchGraphDetour(t *testing.T) {
	g := algo.NewSearchGraph[int, int](0)

	n1 := g.InitNode(geo.Point{}, 1)
	n2 := g.InitNode(geo.Point{}, 2)
	n3 := g.InitNode(geo.Point{}, 3)

	g.InitEdge(n1, n2, 0, 10, 12)
	g.InitEdge(n1, n3, 0, 2, 13)
	g.InitEdge(n3, n2, 0, 1, 32)

	path, cost, err := g.ShortestPathAStar(n1, n2, testTimePolicy{}, zeroHeuristics{})
	assert.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, 1, path[0].NodeAttr)
	assert.Equal(t, 13, path[0].EdgeAttr)
	assert.Equal(t, 3, path[1].NodeAttr)
	assert.Equal(t, 32, path[1].EdgeAttr)
	assert.Equal(t, 2, path[2].NodeAttr)
	assert.Equal(t, 3.0, cost)
}

// A node-only search would reach the middle stop via the cheaper line and
// then pay the transfer penalty; pricing per (node, line) state must prefer
// the slightly slower line that avoids the transfer.
func TestSearchGraphLineState(t *testing.T) {
	g := algo.NewSearchGraph[int, int](0)

	a := g.InitNode(geo.Point{}, 1)
	b := g.InitNode(geo.Point{}, 2)
	c := g.InitNode(geo.Point{}, 3)

	const line1, line2 = 0, 1
	g.InitEdge(a, b, line1, 1.0, 0)
	g.InitEdge(a, b, line2, 1.1, 0)
	g.InitEdge(b, c, line2, 1.0, 0)

	path, cost, err := g.ShortestPathAStar(a, c, testTimePolicy{penalty: 10}, zeroHeuristics{})
	assert.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, line2, path[0].Line)
	assert.Equal(t, line2, path[1].Line)
	assert.InDelta(t, 2.1, cost, 1e-9)
}

func TestSearchGraphExhausted(t *testing.T) {
	g := algo.NewSearchGraph[int, int](1)

	n1 := g.InitNode(geo.Point{}, 1)
	n2 := g.InitNode(geo.Point{}, 2)
	n3 := g.InitNode(geo.Point{}, 3)
	g.InitEdge(n1, n2, 0, 1, 0)
	g.InitEdge(n2, n3, 0, 1, 0)

	_, _, err := g.ShortestPathAStar(n1, n3, testTimePolicy{}, zeroHeuristics{})
	assert.ErrorIs(t, err, algo.ErrSearchExhausted)
}
