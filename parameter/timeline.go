package parameter

// Event Index Tuning
const (
	// IndexDegree is the btree branching factor for the note-event index;
	// charts run to tens of thousands of events, where shallow wide nodes
	// keep cursor steps cheap
	IndexDegree = 16
)
