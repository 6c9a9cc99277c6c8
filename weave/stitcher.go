package weave

import (
	"sort"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/timeline"
)

// overlapsNext reports whether the next region cuts into cur's rows: its
// start lies strictly before cur's end, or exactly on an inclusive end that
// the next region's inclusive start claims for itself.
func overlapsNext(cur, next *Region) bool {
	if next.Start < cur.End {
		return true
	}
	return next.Start == cur.End && cur.EndInclusive && next.StartInclusive
}

// stitch merges one region's synthesized events into the working index.
// When the next region overlaps, only events strictly before its start row
// survive; the next region's own synthesis, run afterwards with fresh
// footing, is authoritative for the overlapping rows. Retained events get
// their time derived from their row and come back as the region's pending
// additions.
func stitch(working *timeline.Index, synthesized []chart.Event, cur, next *Region) []chart.Event {
	kept := synthesized
	if next != nil && overlapsNext(cur, next) {
		kept = truncateAt(synthesized, next.Start)
	}
	chart.Retime(kept, working.Timing())
	working.InsertBatch(kept)
	return kept
}

// truncateAt keeps events with row strictly below row. A hold start whose
// end fell past the cut is dropped too, keeping hold pairing intact. Input
// must be ordered by row, as the synthesizer contract guarantees.
func truncateAt(events []chart.Event, row int) []chart.Event {
	cut := sort.Search(len(events), func(i int) bool { return events[i].Row >= row })
	kept := events[:cut]

	out := kept[:0]
	for i, ev := range kept {
		if ev.Kind == chart.KindHoldStart && !closesWithin(kept[i+1:], ev.Lane) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// closesWithin reports whether a hold on lane closes inside the retained
// tail; the first hold boundary on the lane decides.
func closesWithin(tail []chart.Event, lane int) bool {
	for _, ev := range tail {
		if ev.Lane != lane {
			continue
		}
		switch ev.Kind {
		case chart.KindHoldEnd:
			return true
		case chart.KindHoldStart:
			return false
		}
	}
	return false
}
