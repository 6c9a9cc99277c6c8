package timeline

import (
	"testing"

	"github.com/lixenwraith/stepweave/chart"
)

func hold(ix *Index, lane, startRow, endRow int) {
	ix.Insert(chart.Event{Row: startRow, Lane: lane, Kind: chart.KindHoldStart})
	ix.Insert(chart.Event{Row: endRow, Lane: lane, Kind: chart.KindHoldEnd})
}

// TestHoldEnd verifies start-to-end pairing on the same lane
func TestHoldEnd(t *testing.T) {
	ix := NewIndex(nil)
	hold(ix, 0, 10, 40)
	hold(ix, 1, 20, 30)
	ix.Insert(tap(25, 2))

	end, ok := ix.HoldEnd(chart.Event{Row: 10, Lane: 0, Kind: chart.KindHoldStart})
	if !ok || end.Row != 40 || end.Lane != 0 {
		t.Errorf("Expected end (40,0), got %+v ok=%v", end, ok)
	}

	end, ok = ix.HoldEnd(chart.Event{Row: 20, Lane: 1, Kind: chart.KindHoldStart})
	if !ok || end.Row != 30 {
		t.Errorf("Expected end (30,1), got %+v ok=%v", end, ok)
	}

	// Unterminated hold has no end
	ix.Insert(chart.Event{Row: 50, Lane: 2, Kind: chart.KindHoldStart})
	if _, ok := ix.HoldEnd(chart.Event{Row: 50, Lane: 2, Kind: chart.KindHoldStart}); ok {
		t.Error("Expected no end for unterminated hold")
	}
}

// TestHoldsCrossing verifies detection of holds spanning a row
func TestHoldsCrossing(t *testing.T) {
	ix := NewIndex(nil)
	hold(ix, 0, 10, 40) // spans row 25
	hold(ix, 1, 0, 20)  // ends before row 25
	hold(ix, 2, 30, 50) // starts after row 25

	starts := ix.HoldsCrossing(25, 4)
	if len(starts) != 1 {
		t.Fatalf("Expected 1 crossing hold, got %d: %+v", len(starts), starts)
	}
	if starts[0].Lane != 0 || starts[0].Row != 10 {
		t.Errorf("Expected crossing start (10,0), got %+v", starts[0])
	}
}

// TestHoldsCrossingEndAtRow verifies a hold ending exactly at the row counts
// as crossing
func TestHoldsCrossingEndAtRow(t *testing.T) {
	ix := NewIndex(nil)
	hold(ix, 0, 10, 25)

	starts := ix.HoldsCrossing(25, 4)
	if len(starts) != 1 || starts[0].Row != 10 {
		t.Errorf("Expected hold ending at row 25 to cross, got %+v", starts)
	}
}

// TestHoldsCrossingStartAtRow verifies a hold starting exactly at the row is
// not a crossing from above
func TestHoldsCrossingStartAtRow(t *testing.T) {
	ix := NewIndex(nil)
	hold(ix, 0, 25, 40)

	if starts := ix.HoldsCrossing(25, 4); len(starts) != 0 {
		t.Errorf("Expected no crossing for hold starting at row, got %+v", starts)
	}
}

// TestHoldsCrossingTapClearsLane verifies a tap below the row proves the lane
// has no open hold
func TestHoldsCrossingTapClearsLane(t *testing.T) {
	ix := NewIndex(nil)
	hold(ix, 0, 0, 5)
	ix.Insert(tap(10, 0))
	ix.Insert(chart.Event{Row: 12, Lane: 1, Kind: chart.KindMine})
	hold(ix, 1, 2, 30)

	starts := ix.HoldsCrossing(25, 4)
	if len(starts) != 1 || starts[0].Lane != 1 {
		t.Errorf("Expected only lane 1 crossing, got %+v", starts)
	}
}

// TestHoldsCrossingNone verifies the empty result on a hold-free chart
func TestHoldsCrossingNone(t *testing.T) {
	ix := seedRows(0, 10, 20, 30)
	if starts := ix.HoldsCrossing(15, 4); len(starts) != 0 {
		t.Errorf("Expected no crossings, got %+v", starts)
	}
}
