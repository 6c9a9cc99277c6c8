package weave

import (
	"sort"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/timeline"
)

// spot keys an event by position, ignoring derived time.
type spot struct {
	row  int
	lane int
	kind chart.NoteKind
}

// eraseRegion removes every event the region covers from ix and returns the
// removal set in canonical order: holds overlapping the start row (both
// their events, even when the hold began earlier) plus taps, mines, and
// holds whose rows fall inside the region's span. Misc markers stay.
// Deletion is applied immediately, so an overlapping later region in the
// same batch finds these events already gone and records nothing for them.
func eraseRegion(ix *timeline.Index, r *Region, lanes int) []chart.Event {
	var doomed []chart.Event
	seen := make(map[spot]bool)
	mark := func(ev chart.Event) {
		s := spot{ev.Row, ev.Lane, ev.Kind}
		if seen[s] {
			return
		}
		seen[s] = true
		doomed = append(doomed, ev)
	}

	// Holds opened before the start row that still cover it.
	for _, start := range ix.HoldsCrossing(r.Start, lanes) {
		mark(start)
		if end, ok := ix.HoldEnd(start); ok {
			mark(end)
		}
	}

	// Everything inside the span; deleting a hold always means both of its
	// events.
	from, to := r.rowSpan()
	ix.AscendRange(from, to, func(ev chart.Event) bool {
		switch ev.Kind {
		case chart.KindTap, chart.KindMine:
			mark(ev)
		case chart.KindHoldStart:
			mark(ev)
			if end, ok := ix.HoldEnd(ev); ok {
				mark(end)
			}
		case chart.KindHoldEnd:
			// Its start is inside the span or crossed the start row, so the
			// passes above already marked the pair; this catches unpaired
			// ends in malformed charts.
			mark(ev)
		}
		return true
	})

	sort.Slice(doomed, func(i, j int) bool { return chart.Less(doomed[i], doomed[j]) })
	ix.DeleteBatch(doomed)
	return doomed
}
