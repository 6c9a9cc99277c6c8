package weave

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stepweave/timeline"
)

// Runner owns the single background generation path for an editor session.
// One batch is in flight at a time: Submit applies the eraser pass
// synchronously, hands generation to a goroutine, and delivers completion
// through the notifier. The runner stays busy until Release, which keeps
// the owned index quiescent between the eraser writes and the commit.
type Runner struct {
	notifier *Notifier
	busy     atomic.Bool
}

// NewRunner creates an idle runner with its own notifier.
func NewRunner() *Runner {
	return &Runner{notifier: NewNotifier()}
}

// Busy reports whether a batch is in flight.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Submit starts one batch against the owned index. Fails with ErrBusy while
// a previous batch has not been released, and with the batch's validation
// error before anything is deleted. On success the eraser pass has already
// run, and a NoticeDone carrying the result will arrive on the notifier.
func (r *Runner) Submit(ix *timeline.Index, batch Batch) error {
	if !r.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	run, err := Prepare(ix, batch)
	if err != nil {
		r.busy.Store(false)
		return err
	}

	r.notifier.Push(Notice{Kind: NoticeStarted, Label: batch.Label, When: time.Now()})
	go func() {
		res := run.Generate() // recovers its own panics
		r.notifier.Push(Notice{Kind: NoticeDone, Label: batch.Label, Result: res, When: time.Now()})
	}()
	return nil
}

// Drain returns pending notices in order. Editor-thread single consumer.
func (r *Runner) Drain() []Notice {
	return r.notifier.Consume()
}

// Release reopens the runner after the delivered result has been committed
// or deliberately dropped.
func (r *Runner) Release() {
	r.busy.Store(false)
}
