package router

import "github.com/transitlab/sitp-routing/router/algo"

// assembleItinerary walks the (stop, line) state chain into rendering-ready
// segments. A segment is a transfer when its line differs from the previous
// segment's line; the first segment never is. Totals accumulate base times
// plus applied penalties, hop count and transfer count.
func (r *Router) assembleItinerary(path []algo.PathItem[string, string], cost float64, criterion Criterion) *Itinerary {
	it := &Itinerary{
		Found:     true,
		Criterion: criterion,
		Cost:      cost,
	}
	prevLine := ""
	for i := 0; i < len(path)-1; i++ {
		item := path[i]
		seg := Segment{
			From: item.NodeAttr,
			To:   path[i+1].NodeAttr,
			Line: item.EdgeAttr,
			Time: item.Time,
		}
		if i > 0 && seg.Line != prevLine {
			seg.Transfer = true
			seg.Penalty = r.network.TransferPenalty()
			it.Transfers++
		}
		it.TotalTime += seg.Time + seg.Penalty
		it.Hops++
		it.Segments = append(it.Segments, seg)
		prevLine = seg.Line
	}
	return it
}
