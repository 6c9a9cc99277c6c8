// stepweave-bench drives the generation engine end to end over a synthetic
// chart: submit a batch of fill regions, wait for the background result,
// commit, repeat. Regions overwrite their own output from the previous
// batch, so the eraser and the graph rebuild stay on the hot path.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/graph"
	"github.com/lixenwraith/stepweave/parameter"
	"github.com/lixenwraith/stepweave/status"
	"github.com/lixenwraith/stepweave/synth"
	"github.com/lixenwraith/stepweave/timeline"
	"github.com/lixenwraith/stepweave/weave"
)

var (
	measures    = flag.Int("measures", 256, "Synthetic chart length in measures")
	regions     = flag.Int("regions", 16, "Fill regions per batch")
	batches     = flag.Int("batches", 8, "Batches to run back to back")
	subdivision = flag.Int("subdivision", 4, "Notes per beat inside filled regions")
	holdEvery   = flag.Int("holds", 0, "Turn every Nth placement into a hold, 0 disables")
	sparse      = flag.Bool("sparse", false, "Favor under-used lanes instead of shuffling")
	seed        = flag.Uint64("seed", 1, "Base seed for per-region fresh seeds")
	debugFlag   = flag.Bool("debug", false, "Write engine logs to logs/")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	sg := graph.DanceSingle()
	timing := chart.BeatTiming{BPM: 150}
	ix := timeline.NewIndex(timing)

	// Quarter-note taps cycling the lanes: trivially expressible footwork,
	// so chain construction never rejects the background.
	totalRows := *measures * parameter.RowsPerMeasure
	for beat := 0; beat*parameter.RowsPerBeat < totalRows; beat++ {
		ix.Insert(chart.Event{Row: beat * parameter.RowsPerBeat, Lane: beat % sg.Lanes, Kind: chart.KindTap})
	}
	baseline := ix.Len()

	counters := &status.Counters{}
	runner := weave.NewRunner()
	fills := buildRegions(totalRows)

	fmt.Printf("Chart: %d measures, %d baseline notes, %d fill regions per batch\n\n",
		*measures, baseline, len(fills))
	fmt.Printf("%-10s %8s %8s %8s %12s %12s\n", "Batch", "Added", "Erased", "Failed", "Gen (ms)", "Wall (ms)")
	fmt.Println("-----------------------------------------------------------------")

	for b := 0; b < *batches; b++ {
		batch := weave.Batch{
			Graph:       sg,
			Builder:     graph.StrideBuilder{},
			Synthesizer: synth.RoundRobin{},
			Expressed:   &graph.ExpressedConfig{Name: "bench"},
			Regions:     fills,
			FreshSeeds:  true,
			Seed:        *seed + uint64(b),
			Label:       fmt.Sprintf("bench-%d", b),
			Counters:    counters,
		}

		start := time.Now()
		if err := runner.Submit(ix, batch); err != nil {
			fmt.Fprintf(os.Stderr, "submit %s: %v\n", batch.Label, err)
			os.Exit(1)
		}
		res := waitDone(runner)
		res.Commit(ix)
		runner.Release()
		wall := time.Since(start)

		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "batch %s: %v\n", batch.Label, res.Err)
			os.Exit(1)
		}
		failed := 0
		for i := range res.Outcomes {
			if res.Outcomes[i].Failed() {
				failed++
			}
		}
		fmt.Printf("%-10s %8d %8d %8d %12.2f %12.2f\n",
			batch.Label, len(res.Added), len(res.Erased), failed,
			res.Seconds*1000, float64(wall.Nanoseconds())/1e6)
	}

	snap := counters.Snapshot()
	fmt.Printf("\nTotals:\n")
	fmt.Printf("  Batches:        %d\n", snap.Batches)
	fmt.Printf("  Regions OK:     %d\n", snap.RegionsOK)
	fmt.Printf("  Regions failed: %d\n", snap.RegionsFailed)
	fmt.Printf("  Notes added:    %d\n", snap.NotesAdded)
	fmt.Printf("  Notes erased:   %d\n", snap.NotesErased)
	fmt.Printf("  Gen time:       %.1f ms\n", snap.TotalSeconds*1000)
	fmt.Printf("  Chart size:     %d events\n", ix.Len())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:    %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:        %d\n", m.Mallocs)
}

// buildRegions spreads the fill windows evenly over the chart; each slot's
// front half is filled, the back half keeps the baseline content so every
// region has real footwork on both sides.
func buildRegions(totalRows int) []weave.Region {
	count := *regions
	if count < 1 {
		count = 1
	}
	span := totalRows / count
	if span < 2 {
		span = 2
	}

	pattern := &synth.PatternConfig{Name: "bench", BeatSubdivision: *subdivision, HoldEvery: *holdEvery}
	cfg := &synth.Config{Name: "bench", FavorSparse: *sparse}

	out := make([]weave.Region, 0, count)
	for i := 0; i < count; i++ {
		start := i * span
		if start >= totalRows {
			break
		}
		out = append(out, weave.Region{
			Start:     start,
			End:       start + span/2,
			Pattern:   pattern,
			Synthesis: cfg,
		})
	}
	return out
}

// waitDone drains runner notices until the batch result arrives.
func waitDone(r *weave.Runner) *weave.Result {
	for {
		for _, n := range r.Drain() {
			if n.Kind == weave.NoticeDone {
				return n.Result
			}
		}
		time.Sleep(time.Millisecond)
	}
}
