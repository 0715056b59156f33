package main

import (
	"fmt"
	"strings"

	"github.com/transitlab/sitp-routing/router"
)

// FormatItinerary renders an itinerary as a human-readable step list with
// transfer markers and a totals line.
func FormatItinerary(it *router.Itinerary) string {
	if !it.Found {
		return "No route found."
	}
	var b strings.Builder
	if len(it.Segments) == 0 {
		b.WriteString("Already at the goal stop.\n")
	}
	prevLine := ""
	for _, seg := range it.Segments {
		switch {
		case prevLine == "":
			fmt.Fprintf(&b, "%s ──(%s)→ %s\n", seg.From, seg.Line, seg.To)
		case seg.Line != prevLine:
			fmt.Fprintf(&b, "[Transfer] %s ⇄ line %s\n", seg.From, seg.Line)
			fmt.Fprintf(&b, "%s ──(%s)→ %s\n", seg.From, seg.Line, seg.To)
		default:
			fmt.Fprintf(&b, "%s → %s\n", seg.From, seg.To)
		}
		prevLine = seg.Line
	}
	fmt.Fprintf(&b, "\nEstimated time: %v min  |  Transfers: %d  |  Hops: %d",
		it.TotalTime, it.Transfers, it.Hops)
	return b.String()
}
