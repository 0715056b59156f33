package algo

import (
	"container/heap"
	"log"
	"math"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"

	"github.com/transitlab/sitp-routing/geo"
)

// state is the search key: a node together with the line used to arrive
// there (NO_LINE for the start state). Two states on the same node with
// different arrival lines are distinct frontier entries; collapsing them
// would misprice transfers.
type state struct {
	node int
	line int
}

type node[NT any] struct {
	p    geo.Point
	attr NT
}

type edge[ET any] struct {
	to   int
	line int
	time float64
	attr ET
}

// ICostPolicy scores a single relaxation step. prevLine is NO_LINE when the
// step leaves the start state. transfer reports whether the step changed
// lines. Implementations must be pure.
type ICostPolicy interface {
	StepCost(prevLine, nextLine int, baseTime float64) (cost float64, transfer bool)
}

// IHeuristics estimates the remaining cost from p to pEnd. The estimate must
// be a lower bound under the active cost policy, otherwise a popped goal
// state is no longer guaranteed optimal.
type IHeuristics interface {
	HeuristicRemaining(p, pEnd geo.Point) float64
}

// SearchGraph is an adjacency-list multigraph with a line id per edge.
// Parallel edges between the same node pair are kept, one per line.
//
// The topology is fixed after construction. Edge times may be updated at
// runtime, so searches take read tokens and updates take the write lock.
type SearchGraph[NT any, ET any] struct {
	edges [][]edge[ET]
	nodes []node[NT]
	// per-search bound on popped states
	maxVisitedStates int

	mu *xsync.RBMutex
}

func NewSearchGraph[NT any, ET any](maxVisitedStates int) *SearchGraph[NT, ET] {
	if maxVisitedStates <= 0 {
		maxVisitedStates = DEFAULT_MAX_VISITED_STATES
	}
	return &SearchGraph[NT, ET]{
		edges:            make([][]edge[ET], 0),
		nodes:            make([]node[NT], 0),
		maxVisitedStates: maxVisitedStates,
		mu:               xsync.NewRBMutex(),
	}
}

func (g *SearchGraph[NT, ET]) InitNode(p geo.Point, attr NT) int {
	g.nodes = append(g.nodes, node[NT]{p: p, attr: attr})
	g.edges = append(g.edges, make([]edge[ET], 0))
	return len(g.nodes) - 1
}

func (g *SearchGraph[NT, ET]) InitEdge(from, to, line int, time float64, attr ET) {
	if from >= len(g.edges) {
		log.Panicf("from node %d >= len(g.edges) %d", from, len(g.edges))
	}
	if to >= len(g.nodes) {
		log.Panicf("to node %d >= len(g.nodes) %d", to, len(g.nodes))
	}
	g.edges[from] = append(g.edges[from], edge[ET]{
		to:   to,
		line: line,
		time: time,
		attr: attr,
	})
}

func (g *SearchGraph[NT, ET]) findEdge(from, to, line int) *edge[ET] {
	for i := range g.edges[from] {
		e := &g.edges[from][i]
		if e.to == to && e.line == line {
			return e
		}
	}
	return nil
}

// EdgeTime returns the base time of the (from, to, line) edge.
func (g *SearchGraph[NT, ET]) EdgeTime(from, to, line int) (float64, error) {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	if e := g.findEdge(from, to, line); e != nil {
		return e.time, nil
	}
	return 0, ErrNoEdge
}

// SetEdgeTime updates the base time of the (from, to, line) edge.
func (g *SearchGraph[NT, ET]) SetEdgeTime(from, to, line int, time float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e := g.findEdge(from, to, line); e != nil {
		e.time = time
		return nil
	}
	return ErrNoEdge
}

// PathItem is one step of a reconstructed path. EdgeAttr, Line and Time
// describe the edge leaving this node; the final item carries only NodeAttr
// with Line set to NO_LINE.
type PathItem[NT any, ET any] struct {
	NodeAttr NT
	EdgeAttr ET
	Line     int
	Time     float64
}

func (g *SearchGraph[NT, ET]) reconstructPath(cameFrom map[state]state, goal state) []PathItem[NT, ET] {
	pathBeforeReversed := []PathItem[NT, ET]{{NodeAttr: g.nodes[goal.node].attr, Line: NO_LINE}}
	cur := goal
	for {
		from, ok := cameFrom[cur]
		if !ok {
			break
		}
		// re-locate the traversed edge to recover its attr and base time
		e := g.findEdge(from.node, cur.node, cur.line)
		if e == nil {
			log.Panicf("no edge %d->%d on line %d during reconstruction", from.node, cur.node, cur.line)
		}
		pathBeforeReversed = append(pathBeforeReversed, PathItem[NT, ET]{
			NodeAttr: g.nodes[from.node].attr,
			EdgeAttr: e.attr,
			Line:     e.line,
			Time:     e.time,
		})
		cur = from
	}
	return lo.Reverse(pathBeforeReversed)
}

// ShortestPathAStar runs a best-first search over (node, line) states from
// start to end under the given cost policy and heuristic.
//
// An unreachable end is a normal outcome: (nil, +Inf, nil). The error is
// non-nil only when the visited-state bound is exceeded.
func (g *SearchGraph[NT, ET]) ShortestPathAStar(start, end int, w ICostPolicy, h IHeuristics) ([]PathItem[NT, ET], float64, error) {
	token := g.mu.RLock()
	defer g.mu.RUnlock(token)
	if start == end {
		return []PathItem[NT, ET]{{NodeAttr: g.nodes[start].attr, Line: NO_LINE}}, 0, nil
	}
	pEnd := g.nodes[end].p
	startState := state{node: start, line: NO_LINE}
	openSet := make(PriorityQueue[state], 1)
	openSetMap := make(map[state]*Item[state], 1) // openSet value -> openSet item
	cameFrom := make(map[state]state)
	gScore := make(map[state]float64)
	gScore[startState] = .0
	fScore := h.HeuristicRemaining(g.nodes[start].p, pEnd)
	openSet[0] = &Item[state]{Value: startState, Priority: fScore, Index: 0}
	openSetMap[startState] = openSet[0]
	heap.Init(&openSet)
	visited := 0
	for openSet.Len() > 0 {
		cur := heap.Pop(&openSet).(*Item[state]).Value
		delete(openSetMap, cur)
		if cur.node == end {
			return g.reconstructPath(cameFrom, cur), gScore[cur], nil
		}
		visited++
		if visited > g.maxVisitedStates {
			return nil, math.Inf(0), ErrSearchExhausted
		}
		for i := range g.edges[cur.node] {
			e := &g.edges[cur.node][i]
			step, _ := w.StepCost(cur.line, e.line, e.time)
			next := state{node: e.to, line: e.line}
			gScoreTentative := gScore[cur] + step
			gScoreNext, ok := gScore[next]
			if !ok {
				gScoreNext = math.Inf(0)
			}
			if gScoreTentative < gScoreNext {
				cameFrom[next] = cur
				gScore[next] = gScoreTentative
				fScore := gScoreTentative + h.HeuristicRemaining(g.nodes[e.to].p, pEnd)
				if item, inOpen := openSetMap[next]; inOpen {
					// already queued, adjust its priority in the heap
					item.Priority = fScore
					heap.Fix(&openSet, item.Index)
				} else {
					// newly reached state (or re-opened after a pop)
					item := &Item[state]{Value: next, Priority: fScore}
					heap.Push(&openSet, item)
					openSetMap[next] = item
				}
			}
		}
	}
	return nil, math.Inf(0), nil
}
