// Package synth defines the note-synthesis contract the generation engine
// calls into, plus a deterministic development synthesizer. Production
// synthesizers carrying real move-selection heuristics live outside this
// module and only need to satisfy the Synthesizer interface.
package synth

import (
	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/footing"
	"github.com/lixenwraith/stepweave/graph"
)

// PatternConfig is the pattern shape handle passed through to synthesizers.
type PatternConfig struct {
	// Name identifies the pattern in logs.
	Name string
	// BeatSubdivision is how many evenly spaced notes fill one beat. Zero
	// falls back to parameter.DefaultBeatSubdivision.
	BeatSubdivision int
	// HoldEvery turns every Nth placement into a one-slot hold; zero
	// disables holds.
	HoldEvery int
}

// Config is the synthesis tuning handle passed through to synthesizers.
type Config struct {
	// Name identifies the configuration in logs.
	Name string
	// FavorSparse orders lanes by ascending prior step count instead of
	// shuffling, so under-used lanes fill first.
	FavorSparse bool
}

// Request carries everything a synthesizer may consult for one region. The
// engine owns the request; synthesizers must not retain or mutate it.
// Entry foot and entry time ride in Preceding.
type Request struct {
	Graph        *graph.StepGraph
	Pattern      *PatternConfig
	Synthesis    *Config
	StartRow     int
	EndRow       int
	EndInclusive bool
	Seed         uint64
	Preceding    footing.State
	Following    footing.State
	// LaneCounts tallies taps and hold starts per lane over the chart
	// before StartRow; all zeros when the region ignores distribution.
	LaneCounts []int
	// Background is the full working event list the region is cut into.
	Background []chart.Event
	// Label names the region in diagnostics.
	Label string
}

// Synthesizer produces ordered note events covering the request's rows.
// Returned event times may be zero; the engine re-derives them on merge.
// A nil slice with a nil error counts as no result and fails the region.
type Synthesizer interface {
	Synthesize(req *Request) ([]chart.Event, error)
}
