package timeline

import "github.com/lixenwraith/stepweave/chart"

// HoldEnd returns the end event paired with a hold start: the first hold end
// on the same lane at or after the start's row. Returns false for malformed
// charts where the start never closes.
func (ix *Index) HoldEnd(start chart.Event) (chart.Event, bool) {
	var end chart.Event
	found := false
	ix.tree.AscendGreaterOrEqual(start, func(ev chart.Event) bool {
		if ev.Kind != chart.KindHoldEnd || ev.Lane != start.Lane {
			return true
		}
		end, found = ev, true
		return false
	})
	return end, found
}

// HoldsCrossing returns the hold-start events of every hold that straddles
// row from above: opened strictly before it and still covering it, including
// holds that end exactly on it. A hold opening at row itself is that row's
// own content, not a crossing. lanes bounds the search: once every lane has
// produced a verdict the descent stops.
//
// Per lane, the nearest hold boundary at or below row decides: an earlier
// start means the hold is still open at row; an end below row means it
// closed earlier; an end exactly at row still covers it.
func (ix *Index) HoldsCrossing(row, lanes int) []chart.Event {
	if lanes <= 0 {
		return nil
	}

	var crossing []chart.Event
	var resolved chart.LaneSet
	remaining := lanes

	ix.tree.DescendLessOrEqual(rowCeil(row), func(ev chart.Event) bool {
		if ev.Lane < 0 || ev.Lane >= lanes || resolved.Has(ev.Lane) {
			return true
		}
		switch ev.Kind {
		case chart.KindHoldStart:
			if ev.Row < row {
				crossing = append(crossing, ev)
			}
		case chart.KindHoldEnd:
			if ev.Row == row {
				// Closed exactly on the boundary row: still covers it
				if start, ok := ix.holdStartFor(ev); ok {
					crossing = append(crossing, start)
				}
			}
		case chart.KindTap:
			// A tap cannot sit inside a hold, so it proves the lane clear
			// from here down
		default:
			// Mines and misc markers may sit inside a hold; they decide nothing
			return true
		}
		resolved.Add(ev.Lane)
		remaining--
		return remaining > 0
	})
	return crossing
}

// holdStartFor finds the start paired with a hold end: the first hold start
// on the same lane at or below the end's row
func (ix *Index) holdStartFor(end chart.Event) (chart.Event, bool) {
	var start chart.Event
	found := false
	ix.tree.DescendLessOrEqual(end, func(ev chart.Event) bool {
		if chart.SameSpot(ev, end) {
			return true
		}
		if ev.Kind != chart.KindHoldStart || ev.Lane != end.Lane {
			return true
		}
		start, found = ev, true
		return false
	})
	return start, found
}
