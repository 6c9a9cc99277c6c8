package weave

import (
	"sort"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/timeline"
)

// RegionOutcome records what one region contributed to a batch.
type RegionOutcome struct {
	Region Region
	// Err is the fatal-to-region failure that skipped it, nil on success.
	Err error
	// Added holds the synthesized events retained after stitching.
	Added []chart.Event
	// Erased holds the events the eraser removed for this region.
	Erased []chart.Event
}

// Failed reports whether the region was skipped over a builder or
// synthesizer failure.
func (o *RegionOutcome) Failed() bool { return o.Err != nil }

// Result is the net effect of one batch. Erasures were applied to the owned
// index when the run was prepared; additions wait in Added until Commit. A
// batch-level error does not discard additions accumulated before it hit,
// so a partially failed batch still commits what its completed regions
// produced and can be undone through Revert.
type Result struct {
	Label string
	// Outcomes lists processed regions in request order. Regions never
	// reached after an unhandled error are absent.
	Outcomes []RegionOutcome
	// Added and Erased flatten the per-region sets in canonical order.
	Added  []chart.Event
	Erased []chart.Event
	// Err is the batch-level failure: a recovered panic during generation.
	Err error
	// Seconds is the background generation wall time.
	Seconds float64
}

// Commit inserts the batch's additions into the owned index and returns how
// many were new. Event times are re-derived by the index on insert.
func (res *Result) Commit(ix *timeline.Index) int {
	return ix.InsertBatch(res.Added)
}

// Revert undoes a committed batch: the additions come out, the erased
// events go back in. Returns how many came out and went back. As long as
// nothing else touched these rows in between, the chart's row/lane contents
// return exactly to their pre-batch state.
func (res *Result) Revert(ix *timeline.Index) (int, int) {
	removed := ix.DeleteBatch(res.Added)
	restored := ix.InsertBatch(res.Erased)
	return removed, restored
}

// canonical sorts events into the canonical (row, lane, kind) order.
func canonical(events []chart.Event) {
	sort.Slice(events, func(i, j int) bool { return chart.Less(events[i], events[j]) })
}
