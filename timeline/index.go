// Package timeline maintains the ordered collection of concrete note events
// for one chart. The index is keyed by the canonical (row, lane, kind) order
// and holds at most one event per key. Snapshots are lazy copy-on-write
// clones, so handing a private copy to background work is O(1) and neither
// side observes the other's mutations.
package timeline

import (
	"math"

	"github.com/google/btree"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/parameter"
)

// Index is an ordered, mutable set of note events.
// Not safe for concurrent mutation; a Snapshot and its source may be used
// from different goroutines once the snapshot call returns.
type Index struct {
	tree   *btree.BTreeG[chart.Event]
	timing chart.Timing
}

// NewIndex creates an empty index. Event times are derived from rows through
// timing on every insert; a nil timing falls back to default-tempo BeatTiming.
func NewIndex(timing chart.Timing) *Index {
	if timing == nil {
		timing = chart.BeatTiming{}
	}
	return &Index{
		tree:   btree.NewG(parameter.IndexDegree, chart.Less),
		timing: timing,
	}
}

// Timing returns the row→time mapping the index derives event times from
func (ix *Index) Timing() chart.Timing {
	return ix.timing
}

// Len returns the number of events in the index
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// Insert adds an event, deriving its time from its row. An event already at
// the same (row, lane, kind) is replaced; reports whether a replacement
// happened.
func (ix *Index) Insert(ev chart.Event) bool {
	ev.Time = ix.timing.TimeAtRow(ev.Row)
	_, replaced := ix.tree.ReplaceOrInsert(ev)
	return replaced
}

// InsertBatch inserts events in order and returns how many were new
func (ix *Index) InsertBatch(events []chart.Event) int {
	added := 0
	for _, ev := range events {
		if !ix.Insert(ev) {
			added++
		}
	}
	return added
}

// Delete removes the event at ev's (row, lane, kind); reports whether it existed
func (ix *Index) Delete(ev chart.Event) bool {
	_, ok := ix.tree.Delete(ev)
	return ok
}

// DeleteBatch removes every listed event and returns how many existed
func (ix *Index) DeleteBatch(events []chart.Event) int {
	removed := 0
	for _, ev := range events {
		if ix.Delete(ev) {
			removed++
		}
	}
	return removed
}

// Has reports whether an event exists at ev's (row, lane, kind)
func (ix *Index) Has(ev chart.Event) bool {
	return ix.tree.Has(ev)
}

// Get returns the stored event at ev's (row, lane, kind)
func (ix *Index) Get(ev chart.Event) (chart.Event, bool) {
	return ix.tree.Get(ev)
}

// Snapshot returns a lazy copy-on-write clone. The snapshot and the source
// may each be read and mutated independently afterwards.
func (ix *Index) Snapshot() *Index {
	return &Index{
		tree:   ix.tree.Clone(),
		timing: ix.timing,
	}
}

// Slice materializes all events in ascending canonical order
func (ix *Index) Slice() []chart.Event {
	out := make([]chart.Event, 0, ix.tree.Len())
	ix.tree.Ascend(func(ev chart.Event) bool {
		out = append(out, ev)
		return true
	})
	return out
}

// AscendRange visits events with row in [startRow, endRow) in ascending
// order; fn returning false stops the walk
func (ix *Index) AscendRange(startRow, endRow int, fn func(chart.Event) bool) {
	ix.tree.AscendRange(rowFloor(startRow), rowFloor(endRow), fn)
}

// NearestAtOrBefore returns the last event with row ≤ row
func (ix *Index) NearestAtOrBefore(row int) (chart.Event, bool) {
	var found chart.Event
	ok := false
	ix.tree.DescendLessOrEqual(rowCeil(row), func(ev chart.Event) bool {
		found, ok = ev, true
		return false
	})
	return found, ok
}

// NearestAtOrAfter returns the first event with row ≥ row
func (ix *Index) NearestAtOrAfter(row int) (chart.Event, bool) {
	var found chart.Event
	ok := false
	ix.tree.AscendGreaterOrEqual(rowFloor(row), func(ev chart.Event) bool {
		found, ok = ev, true
		return false
	})
	return found, ok
}

// rowFloor is the smallest possible key at a row
func rowFloor(row int) chart.Event {
	return chart.Event{Row: row, Lane: math.MinInt32, Kind: 0}
}

// rowCeil is the largest possible key at a row
func rowCeil(row int) chart.Event {
	return chart.Event{Row: row, Lane: math.MaxInt32, Kind: ^chart.NoteKind(0)}
}
