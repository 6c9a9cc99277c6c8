// Package weave fills designated row regions of a step chart with
// synthesized note patterns that connect to the surrounding footwork. A
// batch of region requests runs as one unit: every region is erased from
// the owned event index up front, generation works against a private
// copy-on-write snapshot, and the accumulated additions are committed back
// once the whole batch has been processed.
package weave

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stepweave/graph"
	"github.com/lixenwraith/stepweave/status"
	"github.com/lixenwraith/stepweave/synth"
)

// Fatal-to-batch conditions. All are reported before any deletion touches
// the owned index.
var (
	ErrNoIndex           = errors.New("weave: no event index")
	ErrNoStepGraph       = errors.New("weave: no step graph")
	ErrNoExpressedConfig = errors.New("weave: no expressed config")
	ErrNoBuilder         = errors.New("weave: no graph builder")
	ErrNoSynthesizer     = errors.New("weave: no synthesizer")
	ErrRegionBounds      = errors.New("weave: region bounds invalid")

	// ErrBusy rejects a batch submitted while another is still in flight.
	ErrBusy = errors.New("weave: batch already in flight")
)

// Region is one row range to fill. Immutable once its batch begins. Batches
// are ordered by start row; order drives overlap resolution.
type Region struct {
	// Start and End bound the region's rows; End is exclusive unless
	// EndInclusive is set.
	Start int
	End   int
	// StartInclusive claims the start row for this region when a previous
	// region's inclusive end lands exactly on it.
	StartInclusive bool
	// EndInclusive extends the region to cover End itself.
	EndInclusive bool
	// Pattern and Synthesis are opaque handles passed through to the
	// synthesizer.
	Pattern   *synth.PatternConfig
	Synthesis *synth.Config
	// Seed drives synthesis when the batch does not ask for fresh seeds.
	Seed uint64
	// IgnorePrecedingDistribution sends all-zero lane tallies to the
	// synthesizer for this region; accumulation itself is not disturbed.
	IgnorePrecedingDistribution bool
}

// rowSpan is the half-open [start, end) row window the region covers,
// folding an inclusive end into the upper bound.
func (r *Region) rowSpan() (int, int) {
	if r.EndInclusive {
		return r.Start, r.End + 1
	}
	return r.Start, r.End
}

// Batch is one ordered generation request over a chart. The caller sorts
// Regions by start row before submitting; the batch is read-only once a run
// has been prepared from it.
type Batch struct {
	// Graph is the playing surface the chart belongs to.
	Graph *graph.StepGraph
	// Builder derives the search-node chain from chart content.
	Builder graph.Builder
	// Synthesizer produces each region's notes.
	Synthesizer synth.Synthesizer
	// Expressed selects how the builder interprets existing content.
	Expressed *graph.ExpressedConfig
	// Rating is the chart difficulty handed to the builder.
	Rating int
	// Regions are the ordered requests.
	Regions []Region
	// FreshSeeds replaces every region's stored seed with one drawn from a
	// batch-level generator. Seed pins that generator for reproducible
	// runs; zero draws a random one.
	FreshSeeds bool
	Seed       uint64
	// Label names the batch in logs and notices.
	Label string
	// Counters receives telemetry; nil leaves telemetry unwired.
	Counters *status.Counters
}

// validate reports the first fatal-to-batch condition.
func (b *Batch) validate() error {
	if b.Graph == nil {
		return ErrNoStepGraph
	}
	if b.Expressed == nil {
		return ErrNoExpressedConfig
	}
	if b.Builder == nil {
		return ErrNoBuilder
	}
	if b.Synthesizer == nil {
		return ErrNoSynthesizer
	}
	for i := range b.Regions {
		r := &b.Regions[i]
		if r.Start < 0 || r.End < r.Start {
			return fmt.Errorf("%w: region %d [%d,%d)", ErrRegionBounds, i, r.Start, r.End)
		}
	}
	return nil
}

// label names one region in diagnostics: batch label plus row bounds.
func (b *Batch) label(r *Region) string {
	bound := ")"
	if r.EndInclusive {
		bound = "]"
	}
	return fmt.Sprintf("%s[%d,%d%s", b.Label, r.Start, r.End, bound)
}
