// Package chart defines the note-event model shared by the index, the graph
// snapshot, and the generation engine: integer chart rows, lane indices, and
// the canonical (row, lane, kind) ordering every collection relies on.
package chart

// LaneNone marks an event or foot placement bound to no lane
const LaneNone = -1

// NoteKind classifies a concrete note event
type NoteKind uint8

const (
	// KindTap is a plain step
	KindTap NoteKind = iota
	// KindHoldStart opens a hold; its end is a KindHoldEnd on the same lane
	KindHoldStart
	// KindHoldEnd closes the most recent open hold on the same lane
	KindHoldEnd
	// KindMine is a hazard; never counts as footing or occupancy
	KindMine
	// KindMisc is an opaque marker; ignored by footing, erasure, and tallies
	KindMisc
)

// String returns a short name for logs and test failures
func (k NoteKind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindHoldStart:
		return "hold"
	case KindHoldEnd:
		return "holdend"
	case KindMine:
		return "mine"
	case KindMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// Steps reports whether the kind places a foot on its lane (taps and hold
// starts); mines, hold ends, and misc markers do not
func (k NoteKind) Steps() bool {
	return k == KindTap || k == KindHoldStart
}

// Event is one concrete note event. Row is the integer chart subdivision;
// Time is derived from Row and must be recomputed whenever row ordering
// changes, it never feeds back into ordering.
type Event struct {
	Row  int
	Lane int
	Kind NoteKind
	Time float64
}

// Less is the canonical event ordering: by row, then lane, then kind.
// Collections keyed this way hold at most one event per (row, lane, kind).
func Less(a, b Event) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Lane != b.Lane {
		return a.Lane < b.Lane
	}
	return a.Kind < b.Kind
}

// SameSpot reports whether two events share (row, lane, kind), ignoring Time
func SameSpot(a, b Event) bool {
	return a.Row == b.Row && a.Lane == b.Lane && a.Kind == b.Kind
}
