// Package status exposes generation telemetry as lock-free values safe to
// read from any thread while a batch runs in the background.
package status

import "sync/atomic"

// Counters accumulates engine telemetry across batches. All methods are
// safe for concurrent use and tolerate a nil receiver, so callers can
// leave telemetry unwired.
type Counters struct {
	batches       atomic.Int64
	regionsOK     atomic.Int64
	regionsFailed atomic.Int64
	notesAdded    atomic.Int64
	notesErased   atomic.Int64
	lastSeconds   AtomicFloat
	totalSeconds  AtomicFloat
	lastLabel     atomic.Pointer[string]
}

// Snapshot is a plain copy of the counters for display surfaces. Fields are
// read independently, not as one atomic unit.
type Snapshot struct {
	Batches       int64
	RegionsOK     int64
	RegionsFailed int64
	NotesAdded    int64
	NotesErased   int64
	LastSeconds   float64
	TotalSeconds  float64
	LastLabel     string
}

// RegionOK records a region whose synthesis stitched n notes.
func (c *Counters) RegionOK(n int) {
	if c == nil {
		return
	}
	c.regionsOK.Add(1)
	c.notesAdded.Add(int64(n))
}

// RegionFailed records a region skipped over a builder or synthesis failure.
func (c *Counters) RegionFailed() {
	if c == nil {
		return
	}
	c.regionsFailed.Add(1)
}

// Erased records events removed ahead of generation.
func (c *Counters) Erased(n int) {
	if c == nil {
		return
	}
	c.notesErased.Add(int64(n))
}

// BatchDone records one finished batch and its wall-clock duration.
func (c *Counters) BatchDone(label string, seconds float64) {
	if c == nil {
		return
	}
	c.batches.Add(1)
	c.lastSeconds.Set(seconds)
	c.totalSeconds.Add(seconds)
	c.lastLabel.Store(&label)
}

// Snapshot copies the current values.
func (c *Counters) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Batches:       c.batches.Load(),
		RegionsOK:     c.regionsOK.Load(),
		RegionsFailed: c.regionsFailed.Load(),
		NotesAdded:    c.notesAdded.Load(),
		NotesErased:   c.notesErased.Load(),
		LastSeconds:   c.lastSeconds.Get(),
		TotalSeconds:  c.totalSeconds.Get(),
	}
	if p := c.lastLabel.Load(); p != nil {
		s.LastLabel = *p
	}
	return s
}
