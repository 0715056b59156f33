package router

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"

	"github.com/transitlab/sitp-routing/dataset"
	"github.com/transitlab/sitp-routing/geo"
)

// Network is the bidirectional multi-line stop/link graph. The topology is
// fixed after construction; link times may be adjusted at runtime through
// the Router, so reads of the adjacency take a read token.
type Network struct {
	stops       map[string]*Stop
	neighbors   map[string][]Neighbor
	linesByStop map[string]map[string]struct{}

	transferPenalty float64

	mu *xsync.RBMutex
}

// NewNetwork builds the network from a loaded dataset. It fails with
// ErrInvalidData if a link carries a negative time or references a station
// without coordinates.
func NewNetwork(data *dataset.Dataset) (*Network, error) {
	n := &Network{
		stops:           make(map[string]*Stop, len(data.Stations)),
		neighbors:       make(map[string][]Neighbor),
		linesByStop:     make(map[string]map[string]struct{}),
		transferPenalty: data.TransferPenalty,
		mu:              xsync.NewRBMutex(),
	}
	if data.TransferPenalty < 0 {
		return nil, fmt.Errorf("%w: negative transfer penalty %v", ErrInvalidData, data.TransferPenalty)
	}
	for name, s := range data.Stations {
		n.stops[name] = &Stop{Name: name, Point: geo.Point{Lat: s.Lat, Lon: s.Lon}}
	}
	for _, l := range data.Links {
		if l.Time < 0 {
			return nil, fmt.Errorf("%w: link %s-%s on line %s has negative time %v",
				ErrInvalidData, l.From, l.To, l.Line, l.Time)
		}
		for _, name := range []string{l.From, l.To} {
			if _, ok := n.stops[name]; !ok {
				return nil, fmt.Errorf("%w: link %s-%s on line %s references station %q without coordinates",
					ErrInvalidData, l.From, l.To, l.Line, name)
			}
		}
		// links are bidirectional with identical time and line
		n.neighbors[l.From] = append(n.neighbors[l.From], Neighbor{Stop: l.To, Line: l.Line, Time: l.Time})
		n.neighbors[l.To] = append(n.neighbors[l.To], Neighbor{Stop: l.From, Line: l.Line, Time: l.Time})
		for _, name := range []string{l.From, l.To} {
			if _, ok := n.linesByStop[name]; !ok {
				n.linesByStop[name] = make(map[string]struct{})
			}
			n.linesByStop[name][l.Line] = struct{}{}
		}
	}
	return n, nil
}

// Neighbors returns the outgoing links of a stop. A stop without incident
// links yields an empty slice, not an error.
func (n *Network) Neighbors(stop string) []Neighbor {
	token := n.mu.RLock()
	defer n.mu.RUnlock(token)
	return append([]Neighbor(nil), n.neighbors[stop]...)
}

// IsInterchange reports whether more than one distinct line serves the stop.
func (n *Network) IsInterchange(stop string) bool {
	return len(n.linesByStop[stop]) > 1
}

// Lines returns the distinct lines serving a stop.
func (n *Network) Lines(stop string) []string {
	lines := lo.Keys(n.linesByStop[stop])
	sort.Strings(lines)
	return lines
}

// Coordinates returns the position of a stop.
func (n *Network) Coordinates(stop string) (geo.Point, error) {
	s, ok := n.stops[stop]
	if !ok {
		return geo.Point{}, fmt.Errorf("%w: %q", ErrUnknownStop, stop)
	}
	return s.Point, nil
}

func (n *Network) HasStop(stop string) bool {
	_, ok := n.stops[stop]
	return ok
}

// Stops returns all stop names, sorted.
func (n *Network) Stops() []string {
	names := lo.Keys(n.stops)
	sort.Strings(names)
	return names
}

func (n *Network) TransferPenalty() float64 {
	return n.transferPenalty
}

// setLinkTime updates the stored base time of both directions of a link.
// Callers validate the time and the link's existence beforehand.
func (n *Network) setLinkTime(from, to, line string, time float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, dir := range [][2]string{{from, to}, {to, from}} {
		adj := n.neighbors[dir[0]]
		for i := range adj {
			if adj[i].Stop == dir[1] && adj[i].Line == line {
				adj[i].Time = time
			}
		}
	}
}
