package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitlab/sitp-routing/router"
)

func TestFormatItinerary(t *testing.T) {
	it := &router.Itinerary{
		Found:     true,
		Criterion: router.CriterionTime,
		Cost:      12,
		Segments: []router.Segment{
			{From: "A", To: "B", Line: "1", Time: 5},
			{From: "B", To: "C", Line: "2", Time: 4, Penalty: 3, Transfer: true},
		},
		TotalTime: 12,
		Hops:      2,
		Transfers: 1,
	}
	out := FormatItinerary(it)
	assert.Contains(t, out, "A ──(1)→ B")
	assert.Contains(t, out, "[Transfer] B ⇄ line 2")
	assert.Contains(t, out, "B ──(2)→ C")
	assert.Contains(t, out, "Estimated time: 12 min  |  Transfers: 1  |  Hops: 2")
}

func TestFormatItinerarySameLine(t *testing.T) {
	it := &router.Itinerary{
		Found: true,
		Segments: []router.Segment{
			{From: "A", To: "B", Line: "1", Time: 2},
			{From: "B", To: "C", Line: "1", Time: 2},
		},
		TotalTime: 4,
		Hops:      2,
	}
	out := FormatItinerary(it)
	assert.Contains(t, out, "A ──(1)→ B")
	assert.Contains(t, out, "B → C")
	assert.NotContains(t, out, "Transfer]")
}

func TestFormatItineraryEdgeCases(t *testing.T) {
	assert.Equal(t, "No route found.", FormatItinerary(&router.Itinerary{Found: false}))
	assert.Contains(t, FormatItinerary(&router.Itinerary{Found: true}), "Already at the goal stop.")
}
