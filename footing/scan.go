// Package footing infers which arrow each foot occupies at the border of a
// row region. A scan walks the search-node chain and the concrete event
// stream together: a foot resolves when a node places it on an arrow that
// hosts a real step at that node's row.
package footing

import (
	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/graph"
	"github.com/lixenwraith/stepweave/timeline"
)

// State is the footing at one side of a region boundary. Arrows always hold
// a valid, distinct arrow per foot after a scan; unresolved feet fall back
// to the surface's root placement. EntryFoot and EntryTime are meaningful
// for preceding scans only: the foot that made the chronologically earliest
// resolving contact and that node's time. Following scans leave EntryFoot
// as FootNone.
type State struct {
	Arrows    [graph.NumFeet]int
	EntryFoot graph.Foot
	EntryTime float64
}

// Preceding computes the footing entering a region by scanning backward
// from the last node strictly before the boundary. The cursor is taken by
// value, so the caller's cursor is never disturbed.
func Preceding(ch *graph.Chain, from graph.NodeID, cur timeline.Cursor, sg *graph.StepGraph) State {
	return scan(ch, from, cur, sg, true)
}

// Following computes the footing leaving a region by scanning forward from
// the first node at or after the boundary.
func Following(ch *graph.Chain, from graph.NodeID, cur timeline.Cursor, sg *graph.StepGraph) State {
	return scan(ch, from, cur, sg, false)
}

func scan(ch *graph.Chain, from graph.NodeID, cur timeline.Cursor, sg *graph.StepGraph, backward bool) State {
	st := State{
		Arrows:    [graph.NumFeet]int{graph.ArrowNone, graph.ArrowNone},
		EntryFoot: graph.FootNone,
	}

	var resolved [graph.NumFeet]bool
	var occ chart.LaneSet
	occRow := -2 // below any node row, forces the first recompute

	for id := from; id != graph.NodeNone; {
		n := ch.Node(id)
		if n.Row != occRow {
			occ = occupancyAt(&cur, n.Row, backward)
			occRow = n.Row
		}
		for f := graph.Left; f < graph.NumFeet; f++ {
			if resolved[f] {
				continue
			}
			for p := graph.Heel; p < graph.NumPortions; p++ {
				as := n.State[f][p]
				if as.Arrow == graph.ArrowNone || as.Lifted || !occ.Has(as.Arrow) {
					continue
				}
				st.Arrows[f] = as.Arrow
				resolved[f] = true
				// Walking backward visits decreasing rows, so the last
				// overwrite is the earliest contact in chart order.
				if backward {
					st.EntryFoot = f
					st.EntryTime = n.Time
				}
				break
			}
		}
		if resolved[graph.Left] && resolved[graph.Right] {
			break
		}
		if backward {
			id = n.Prev
		} else {
			id = n.Next
		}
	}

	for f := graph.Left; f < graph.NumFeet; f++ {
		if !resolved[f] {
			st.Arrows[f] = sg.RootArrow(f)
		}
	}
	// A resolved foot may land on the other foot's arrow or default. Reset
	// both feet, never just one; root arrows are distinct by construction.
	if st.Arrows[graph.Left] == st.Arrows[graph.Right] {
		st.Arrows[graph.Left] = sg.RootArrow(graph.Left)
		st.Arrows[graph.Right] = sg.RootArrow(graph.Right)
	}
	if backward && st.EntryFoot == graph.FootNone {
		st.EntryFoot = graph.Left
	}
	return st
}

// occupancyAt returns the lanes hosting a tap or hold start at exactly row,
// advancing the cursor past that row in scan direction. Mines, misc markers,
// and hold ends never mark occupancy.
func occupancyAt(cur *timeline.Cursor, row int, backward bool) chart.LaneSet {
	var occ chart.LaneSet
	if !cur.Valid() {
		// Step off a sentinel in scan direction; if the cursor stays
		// invalid there is nothing left on this side.
		if backward {
			cur.Prev()
		} else {
			cur.Next()
		}
		if !cur.Valid() {
			return occ
		}
	}
	if backward {
		for cur.Valid() && cur.Event().Row > row {
			cur.Prev()
		}
		for cur.Valid() && cur.Event().Row == row {
			if cur.Event().Kind.Steps() {
				occ.Add(cur.Event().Lane)
			}
			cur.Prev()
		}
	} else {
		for cur.Valid() && cur.Event().Row < row {
			cur.Next()
		}
		for cur.Valid() && cur.Event().Row == row {
			if cur.Event().Kind.Steps() {
				occ.Add(cur.Event().Lane)
			}
			cur.Next()
		}
	}
	return occ
}
