package parameter

// Chart Row Resolution
const (
	// RowsPerBeat is the integer subdivision of one beat; all note rows are
	// multiples of measure fractions expressed at this resolution
	RowsPerBeat = 48

	// RowsPerMeasure is the row span of one 4/4 measure
	RowsPerMeasure = RowsPerBeat * 4

	// MaxLanes is the widest supported playing surface; lane occupancy is
	// tracked in a 32-bit set
	MaxLanes = 32
)

// Timing Defaults
const (
	// DefaultBPM is the tempo assumed when a chart supplies no timing of its own
	DefaultBPM = 120.0
)
