package router

import (
	"errors"
	"fmt"

	"github.com/transitlab/sitp-routing/geo"
	"github.com/transitlab/sitp-routing/router/algo"
)

var (
	// ErrUnknownStop: a queried stop id is not part of the network.
	ErrUnknownStop = errors.New("unknown stop")
	// ErrUnsupportedCriterion: the criterion selector is not one of
	// time, hops, transfers.
	ErrUnsupportedCriterion = errors.New("unsupported criterion")
	// ErrInvalidData: the network data is malformed (negative link time,
	// link referencing a station without coordinates, ...).
	ErrInvalidData = errors.New("invalid data")
)

// Criterion selects the optimization objective of a search.
type Criterion string

const (
	CriterionTime      Criterion = "time"
	CriterionHops      Criterion = "hops"
	CriterionTransfers Criterion = "transfers"
)

// ParseCriterion maps a selector string onto a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(s); c {
	case CriterionTime, CriterionHops, CriterionTransfers:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCriterion, s)
	}
}

// Stop is a named location of the transit network.
type Stop struct {
	Name  string    `json:"name"`
	Point geo.Point `json:"point"`
}

// Neighbor is one outgoing link of a stop.
type Neighbor struct {
	Stop string
	Line string
	Time float64
}

// Segment is one ridden link of an itinerary, ready for rendering.
type Segment struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Line     string  `json:"line"`
	Time     float64 `json:"time"`
	Penalty  float64 `json:"penalty"`
	Transfer bool    `json:"transfer"`
}

// Itinerary is the result of one search. Found=false is the normal outcome
// for a disconnected (start, goal) pair, with zero totals and no segments.
type Itinerary struct {
	Found     bool      `json:"found"`
	Criterion Criterion `json:"criterion"`
	// Cost is the cumulative score under the criterion's cost policy.
	Cost      float64   `json:"cost"`
	Segments  []Segment `json:"segments,omitempty"`
	TotalTime float64   `json:"total_time"`
	Hops      int       `json:"hops"`
	Transfers int       `json:"transfers"`
}

// Calibration carries the tuning constants of the cost model. Their values
// are domain calibration, not algorithmic necessities, so they are
// parameters rather than literals.
type Calibration struct {
	// HeuristicMinPerKm converts crow-flight kilometers into estimated
	// minutes for the time heuristic. It must be a lower bound on the
	// effective minutes-per-km of every link, or optimality under the
	// time criterion is no longer guaranteed.
	HeuristicMinPerKm float64
	// HopTransferWeight is the extra hop cost charged on a line change
	// under the hops criterion.
	HopTransferWeight float64
	// MaxVisitedStates bounds frontier growth per search.
	MaxVisitedStates int
}

func DefaultCalibration() Calibration {
	return Calibration{
		HeuristicMinPerKm: 2.0,
		HopTransferWeight: 1.0,
		MaxVisitedStates:  algo.DEFAULT_MAX_VISITED_STATES,
	}
}
