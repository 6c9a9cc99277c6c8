package synth

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/parameter"
)

// RoundRobin is a development synthesizer: it fills the region at the
// pattern's subdivision, cycling lanes in a seed-shuffled order, avoiding
// an immediate repeat of the arrows the dancer enters on. It places notes,
// not footwork; it exists for benches and end-to-end tests.
type RoundRobin struct{}

// Synthesize fills [StartRow, EndRow) or [StartRow, EndRow] with taps and
// optional one-slot holds. Output is ordered by row; a too-short region
// yields an empty, non-nil result.
func (RoundRobin) Synthesize(req *Request) ([]chart.Event, error) {
	if req.Graph == nil {
		return nil, fmt.Errorf("round robin %s: nil step graph", req.Label)
	}
	if req.Pattern == nil {
		return nil, fmt.Errorf("round robin %s: nil pattern config", req.Label)
	}
	if req.Synthesis == nil {
		return nil, fmt.Errorf("round robin %s: nil synthesis config", req.Label)
	}
	if req.StartRow > req.EndRow {
		return nil, fmt.Errorf("round robin %s: start row %d after end row %d", req.Label, req.StartRow, req.EndRow)
	}

	sub := req.Pattern.BeatSubdivision
	if sub == 0 {
		sub = parameter.DefaultBeatSubdivision
	}
	if sub < 1 || parameter.RowsPerBeat%sub != 0 {
		return nil, fmt.Errorf("round robin %s: subdivision %d does not divide %d rows per beat", req.Label, sub, parameter.RowsPerBeat)
	}
	step := parameter.RowsPerBeat / sub

	order := laneOrder(req)
	events := make([]chart.Event, 0, (req.EndRow-req.StartRow)/step+1)

	inside := func(row int) bool {
		return row < req.EndRow || (row == req.EndRow && req.EndInclusive)
	}
	placed := 0
	for row := req.StartRow; inside(row); {
		lane := order[placed%len(order)]
		placed++
		holds := req.Pattern.HoldEvery > 0 && placed%req.Pattern.HoldEvery == 0
		if holds && inside(row+step) {
			events = append(events,
				chart.Event{Row: row, Lane: lane, Kind: chart.KindHoldStart},
				chart.Event{Row: row + step, Lane: lane, Kind: chart.KindHoldEnd},
			)
			row += 2 * step
			continue
		}
		events = append(events, chart.Event{Row: row, Lane: lane, Kind: chart.KindTap})
		row += step
	}
	return events, nil
}

// laneOrder picks the lane cycle: sorted by prior step count when the
// config favors sparse lanes, seed-shuffled otherwise, then rotated off
// the entry arrows.
func laneOrder(req *Request) []int {
	lanes := make([]int, req.Graph.Lanes)
	for i := range lanes {
		lanes[i] = i
	}
	if req.Synthesis.FavorSparse {
		counts := req.LaneCounts
		at := func(lane int) int {
			if lane < len(counts) {
				return counts[lane]
			}
			return 0
		}
		sort.SliceStable(lanes, func(i, j int) bool { return at(lanes[i]) < at(lanes[j]) })
	} else {
		rng := rand.New(rand.NewPCG(req.Seed, req.Seed))
		rng.Shuffle(len(lanes), func(i, j int) { lanes[i], lanes[j] = lanes[j], lanes[i] })
	}
	for _, arrow := range req.Preceding.Arrows {
		if lanes[0] == arrow && len(lanes) > 1 {
			lanes = append(lanes[1:], lanes[0])
		}
	}
	return lanes
}
