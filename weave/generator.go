package weave

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/footing"
	"github.com/lixenwraith/stepweave/graph"
	"github.com/lixenwraith/stepweave/synth"
	"github.com/lixenwraith/stepweave/timeline"
)

// Run is a prepared batch: fatal-to-batch conditions checked, every region
// erased from the owned index, and a private working snapshot taken. The
// owned index must stay quiescent until the run's result is committed.
type Run struct {
	batch   Batch
	working *timeline.Index
	erased  [][]chart.Event
}

// Prepare validates a batch and applies its eraser pass against the owned
// index. Validation happens before any deletion, so a rejected batch leaves
// the index untouched. Erasure is eager and per-region: an overlapping
// later region finds shared events already gone and deletes nothing twice.
func Prepare(ix *timeline.Index, batch Batch) (*Run, error) {
	if ix == nil {
		return nil, ErrNoIndex
	}
	if err := batch.validate(); err != nil {
		return nil, err
	}

	erased := make([][]chart.Event, len(batch.Regions))
	for i := range batch.Regions {
		erased[i] = eraseRegion(ix, &batch.Regions[i], batch.Graph.Lanes)
		batch.Counters.Erased(len(erased[i]))
	}

	return &Run{
		batch:   batch,
		working: ix.Snapshot(),
		erased:  erased,
	}, nil
}

// Generate processes every region in order and returns the batch's net
// effect. Safe to call from a background goroutine: it touches only the
// run's private state. A panic anywhere inside is recovered at this
// boundary, logged, and reported on the result, with the additions
// accumulated before it intact.
func (r *Run) Generate() *Result {
	res := &Result{
		Label:    r.batch.Label,
		Outcomes: make([]RegionOutcome, 0, len(r.batch.Regions)),
	}
	started := time.Now()

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				res.Err = fmt.Errorf("weave %s: unhandled: %v", r.batch.Label, rec)
				log.Printf("weave %s: unhandled: %v\n%s", r.batch.Label, rec, debug.Stack())
			}
		}()
		r.generate(res)
	}()
	res.Seconds = time.Since(started).Seconds()

	for i := range res.Outcomes {
		res.Added = append(res.Added, res.Outcomes[i].Added...)
	}
	canonical(res.Added)
	for _, evs := range r.erased {
		res.Erased = append(res.Erased, evs...)
	}
	canonical(res.Erased)

	r.batch.Counters.BatchDone(r.batch.Label, res.Seconds)
	return res
}

// generate runs the per-region loop over the run's private state.
func (r *Run) generate(res *Result) {
	sg := r.batch.Graph
	tallies := make([]int, sg.Lanes)
	tallyRow := math.MinInt32 // below any chart content

	var rng *rand.Rand
	if r.batch.FreshSeeds {
		if r.batch.Seed == 0 {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		} else {
			rng = rand.New(rand.NewPCG(r.batch.Seed, r.batch.Seed))
		}
	}

	var chain *graph.Chain
	var background []chart.Event
	dirty := true

	for i := range r.batch.Regions {
		reg := &r.batch.Regions[i]
		label := r.batch.label(reg)
		out := RegionOutcome{Region: *reg, Erased: r.erased[i]}

		// Prior regions may have stitched notes in; the chain and the
		// background list it was built from are rebuilt only when they did.
		if dirty {
			background = r.working.Slice()
			built, err := r.batch.Builder.Build(background, sg, r.batch.Expressed, r.batch.Rating)
			if err != nil {
				out.Err = fmt.Errorf("graph build: %w", err)
				r.skip(res, out, label)
				continue
			}
			chain = built
			dirty = false
		}

		// Advance lane tallies over steps strictly before the region.
		r.working.AscendRange(tallyRow, reg.Start, func(ev chart.Event) bool {
			if ev.Kind.Steps() && ev.Lane >= 0 && ev.Lane < sg.Lanes {
				tallies[ev.Lane]++
			}
			return true
		})
		tallyRow = reg.Start

		// Boundary footing. The cursor is a value, so each scan works an
		// independent copy.
		cur := r.working.CursorLE(reg.Start - 1)
		var pre, fol footing.State
		if from := chain.FirstAtOrAfter(reg.Start); from == graph.NodeNone {
			// Region past all content: nothing to scan forward, so the
			// following side degenerates to root placement.
			pre = footing.Preceding(chain, chain.Last(), cur, sg)
			fol = footing.Following(chain, graph.NodeNone, cur, sg)
		} else {
			pre = footing.Preceding(chain, chain.Node(from).Prev, cur, sg)
			fol = footing.Following(chain, from, cur, sg)
		}

		seed := reg.Seed
		if rng != nil {
			seed = rng.Uint64()
		}
		// The request gets its own slice; the run's accumulation must not
		// be reachable through it.
		counts := make([]int, sg.Lanes)
		if !reg.IgnorePrecedingDistribution {
			copy(counts, tallies)
		}

		events, err := r.batch.Synthesizer.Synthesize(&synth.Request{
			Graph:        sg,
			Pattern:      reg.Pattern,
			Synthesis:    reg.Synthesis,
			StartRow:     reg.Start,
			EndRow:       reg.End,
			EndInclusive: reg.EndInclusive,
			Seed:         seed,
			Preceding:    pre,
			Following:    fol,
			LaneCounts:   counts,
			Background:   background,
			Label:        label,
		})
		if err == nil && events == nil {
			err = errors.New("no result")
		}
		if err != nil {
			out.Err = fmt.Errorf("synthesis: %w", err)
			r.skip(res, out, label)
			continue
		}

		var next *Region
		if i+1 < len(r.batch.Regions) {
			next = &r.batch.Regions[i+1]
		}
		out.Added = stitch(r.working, events, reg, next)
		if len(out.Added) > 0 {
			dirty = true
		}
		r.batch.Counters.RegionOK(len(out.Added))
		res.Outcomes = append(res.Outcomes, out)
	}
}

// skip records a fatal-to-region failure; the working state is untouched,
// so the next region proceeds from the same chart-so-far.
func (r *Run) skip(res *Result, out RegionOutcome, label string) {
	log.Printf("weave %s: %v", label, out.Err)
	r.batch.Counters.RegionFailed()
	res.Outcomes = append(res.Outcomes, out)
}
