package router

import (
	"fmt"

	"github.com/transitlab/sitp-routing/geo"
	"github.com/transitlab/sitp-routing/router/algo"
)

// The cost policies form a closed set of strategy values sharing the algo
// step-cost contract. A step is a transfer iff a previous line exists and
// differs from the next line. All policies are pure.

// TimeCost: base time plus the network transfer penalty on a line change.
type TimeCost struct {
	Penalty float64
}

func (c TimeCost) StepCost(prevLine, nextLine int, baseTime float64) (float64, bool) {
	if prevLine != algo.NO_LINE && nextLine != prevLine {
		return baseTime + c.Penalty, true
	}
	return baseTime, false
}

// HopCost: every link costs one hop; a line change costs TransferWeight
// extra, discouraging but not forbidding transfers.
type HopCost struct {
	TransferWeight float64
}

func (c HopCost) StepCost(prevLine, nextLine int, baseTime float64) (float64, bool) {
	if prevLine != algo.NO_LINE && nextLine != prevLine {
		return 1 + c.TransferWeight, true
	}
	return 1, false
}

// TransferCost: pure transfer minimization, indifferent to link count and
// time.
type TransferCost struct{}

func (c TransferCost) StepCost(prevLine, nextLine int, baseTime float64) (float64, bool) {
	if prevLine != algo.NO_LINE && nextLine != prevLine {
		return 1, true
	}
	return 0, false
}

// CrowFlightHeuristics estimates remaining travel time as haversine
// kilometers times a minutes-per-km factor. Only valid for the time
// criterion, and only admissible while no link is effectively faster than
// the factor's implied speed.
type CrowFlightHeuristics struct {
	MinPerKm float64
}

func (h CrowFlightHeuristics) HeuristicRemaining(p, pEnd geo.Point) float64 {
	return geo.HaversineKm(p, pEnd) * h.MinPerKm
}

// ZeroHeuristics degrades the search to uniform-cost order. Crow-flight
// distance has no lower-bound translation into hop or transfer units.
type ZeroHeuristics struct{}

func (ZeroHeuristics) HeuristicRemaining(p, pEnd geo.Point) float64 { return 0 }

// costModel resolves a criterion into its cost policy and heuristic.
func (r *Router) costModel(criterion Criterion) (algo.ICostPolicy, algo.IHeuristics, error) {
	switch criterion {
	case CriterionTime:
		return TimeCost{Penalty: r.network.TransferPenalty()},
			CrowFlightHeuristics{MinPerKm: r.calib.HeuristicMinPerKm}, nil
	case CriterionHops:
		return HopCost{TransferWeight: r.calib.HopTransferWeight}, ZeroHeuristics{}, nil
	case CriterionTransfers:
		return TransferCost{}, ZeroHeuristics{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedCriterion, criterion)
	}
}
