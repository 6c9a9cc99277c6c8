package weave

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/stepweave/chart"
	"github.com/lixenwraith/stepweave/synth"
)

// gatedSynth blocks synthesis until the gate closes, so tests can hold a
// batch in flight.
type gatedSynth struct {
	gate  chan struct{}
	inner synth.Synthesizer
}

func (g *gatedSynth) Synthesize(req *synth.Request) ([]chart.Event, error) {
	<-g.gate
	return g.inner.Synthesize(req)
}

func collectUntilDone(t *testing.T, r *Runner) []Notice {
	t.Helper()
	var got []Notice
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		got = append(got, r.Drain()...)
		if len(got) > 0 && got[len(got)-1].Kind == NoticeDone {
			return got
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Expected a done notice before the deadline, got %d notices", len(got))
	return nil
}

// TestRunnerBusyGate verifies one batch in flight at a time, busy from
// submit until release
func TestRunnerBusyGate(t *testing.T) {
	gate := make(chan struct{})
	b := testBatch(region(48, 96))
	b.Synthesizer = &gatedSynth{gate: gate, inner: synth.RoundRobin{}}

	r := NewRunner()
	ix := newIndex(tap(0, 0))
	if err := r.Submit(ix, b); err != nil {
		t.Fatalf("Expected submit to succeed, got %v", err)
	}
	if !r.Busy() {
		t.Error("Expected runner busy while generating")
	}
	if err := r.Submit(ix, b); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy for second submit, got %v", err)
	}

	close(gate)
	collectUntilDone(t, r)
	if !r.Busy() {
		t.Error("Expected runner busy until release")
	}
	if err := r.Submit(ix, b); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy before release, got %v", err)
	}

	r.Release()
	if err := r.Submit(ix, testBatch(region(144, 192))); err != nil {
		t.Fatalf("Expected submit after release to succeed, got %v", err)
	}
	collectUntilDone(t, r)
	r.Release()
}

// TestRunnerValidationClearsBusy verifies a rejected batch does not wedge
// the runner
func TestRunnerValidationClearsBusy(t *testing.T) {
	r := NewRunner()
	ix := newIndex()

	bad := testBatch(region(0, 48))
	bad.Builder = nil
	if err := r.Submit(ix, bad); !errors.Is(err, ErrNoBuilder) {
		t.Fatalf("Expected ErrNoBuilder, got %v", err)
	}
	if r.Busy() {
		t.Error("Expected runner idle after rejected batch")
	}

	if err := r.Submit(ix, testBatch(region(0, 48))); err != nil {
		t.Fatalf("Expected valid submit to succeed, got %v", err)
	}
	collectUntilDone(t, r)
	r.Release()
}

// TestRunnerNoticeSequence verifies a started notice precedes the done
// notice carrying a committable result
func TestRunnerNoticeSequence(t *testing.T) {
	r := NewRunner()
	ix := newIndex()
	b := testBatch(region(0, 48))
	b.Label = "fill"

	if err := r.Submit(ix, b); err != nil {
		t.Fatalf("Expected submit to succeed, got %v", err)
	}
	got := collectUntilDone(t, r)
	if len(got) != 2 {
		t.Fatalf("Expected 2 notices, got %d", len(got))
	}
	if got[0].Kind != NoticeStarted || got[0].Label != "fill" || got[0].Result != nil {
		t.Errorf("Expected a bare started notice for fill, got %+v", got[0])
	}
	if got[1].Kind != NoticeDone || got[1].Result == nil {
		t.Fatalf("Expected a done notice with a result, got %+v", got[1])
	}
	res := got[1].Result
	if res.Err != nil {
		t.Fatalf("Expected batch to complete, got %v", res.Err)
	}
	if n := res.Commit(ix); n != 4 {
		t.Errorf("Expected 4 committed events at quarter-note fill, got %d", n)
	}
	r.Release()
}
