package router

import (
	"fmt"

	"github.com/transitlab/sitp-routing/dataset"
	"github.com/transitlab/sitp-routing/router/algo"
)

// Router plans itineraries over a transit network. The network and the
// search graph are built once; concurrent searches share them without
// further coordination.
type Router struct {
	network *Network
	calib   Calibration

	// transitGraph topology: one node per stop, one directed edge per
	// link direction per line, line ids interned to ints
	transitGraph *algo.SearchGraph[string, string]
	nodeIDs      map[string]int
	lines        []string
	lineIDs      map[string]int
}

func New(data *dataset.Dataset, calib Calibration) (*Router, error) {
	network, err := NewNetwork(data)
	if err != nil {
		return nil, err
	}
	if calib.HeuristicMinPerKm <= 0 {
		calib.HeuristicMinPerKm = DefaultCalibration().HeuristicMinPerKm
	}
	if calib.HopTransferWeight < 0 {
		calib.HopTransferWeight = DefaultCalibration().HopTransferWeight
	}
	r := &Router{network: network, calib: calib}
	r.buildTransitGraph(data)
	return r, nil
}

func (r *Router) buildTransitGraph(data *dataset.Dataset) {
	g := algo.NewSearchGraph[string, string](r.calib.MaxVisitedStates)
	r.nodeIDs = make(map[string]int, len(r.network.stops))
	r.lineIDs = make(map[string]int)
	r.lines = make([]string, 0)
	// sorted stop order keeps node ids stable across runs
	for _, name := range r.network.Stops() {
		stop := r.network.stops[name]
		r.nodeIDs[name] = g.InitNode(stop.Point, name)
	}
	links := 0
	for _, l := range data.Links {
		lineID, ok := r.lineIDs[l.Line]
		if !ok {
			lineID = len(r.lines)
			r.lineIDs[l.Line] = lineID
			r.lines = append(r.lines, l.Line)
		}
		g.InitEdge(r.nodeIDs[l.From], r.nodeIDs[l.To], lineID, l.Time, l.Line)
		g.InitEdge(r.nodeIDs[l.To], r.nodeIDs[l.From], lineID, l.Time, l.Line)
		links++
	}
	r.transitGraph = g
	log.Infof("transit graph built: %d stops, %d links, %d lines",
		len(r.nodeIDs), links, len(r.lines))
}

// Network exposes the read-only network model.
func (r *Router) Network() *Network {
	return r.network
}

// Stops returns all stop names, sorted.
func (r *Router) Stops() []string {
	return r.network.Stops()
}

func (r *Router) HasStop(stop string) bool {
	return r.network.HasStop(stop)
}

// Search plans an optimal itinerary from start to goal under the given
// criterion. A disconnected pair yields Found=false with a nil error;
// errors are reserved for unknown stops, unsupported criteria and the
// defensive search bound.
func (r *Router) Search(start, goal string, criterion Criterion) (*Itinerary, error) {
	startID, ok := r.nodeIDs[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, start)
	}
	goalID, ok := r.nodeIDs[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, goal)
	}
	policy, heuristics, err := r.costModel(criterion)
	if err != nil {
		return nil, err
	}
	log.Debugf("search %q -> %q criterion=%s", start, goal, criterion)
	path, cost, err := r.transitGraph.ShortestPathAStar(startID, goalID, policy, heuristics)
	if err != nil {
		return nil, fmt.Errorf("search %q -> %q: %w", start, goal, err)
	}
	if path == nil {
		return &Itinerary{Found: false, Criterion: criterion}, nil
	}
	return r.assembleItinerary(path, cost, criterion), nil
}

// SetLinkTime updates the base travel time of the (from, to, line) link in
// both directions.
func (r *Router) SetLinkTime(from, to, line string, time float64) error {
	if time < 0 {
		return fmt.Errorf("%w: negative link time %v", ErrInvalidData, time)
	}
	fromID, ok := r.nodeIDs[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := r.nodeIDs[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	lineID, ok := r.lineIDs[line]
	if !ok {
		return fmt.Errorf("%w: no line %q", algo.ErrNoEdge, line)
	}
	if err := r.transitGraph.SetEdgeTime(fromID, toID, lineID, time); err != nil {
		return fmt.Errorf("link %s-%s on line %s: %w", from, to, line, err)
	}
	if err := r.transitGraph.SetEdgeTime(toID, fromID, lineID, time); err != nil {
		return fmt.Errorf("link %s-%s on line %s: %w", to, from, line, err)
	}
	r.network.setLinkTime(from, to, line, time)
	return nil
}

// LinkTime returns the current base travel time of the (from, to, line)
// link.
func (r *Router) LinkTime(from, to, line string) (float64, error) {
	fromID, ok := r.nodeIDs[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := r.nodeIDs[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	lineID, ok := r.lineIDs[line]
	if !ok {
		return 0, fmt.Errorf("%w: no line %q", algo.ErrNoEdge, line)
	}
	time, err := r.transitGraph.EdgeTime(fromID, toID, lineID)
	if err != nil {
		return 0, fmt.Errorf("link %s-%s on line %s: %w", from, to, line, err)
	}
	return time, nil
}

// Close releases the router. Present for symmetry with the server lifecycle;
// the router holds no external resources.
func (r *Router) Close() {}
