package parameter

// Generation Batch Plumbing
const (
	// NotifyRingSize is the fixed capacity of the batch notification ring;
	// must be a power of two
	NotifyRingSize = 64

	// NotifyRingMask is the bitmask for fast modulo on the ring (size - 1)
	NotifyRingMask = NotifyRingSize - 1
)

// Synthesis Defaults
const (
	// DefaultBeatSubdivision is the notes-per-beat density used when a
	// pattern config does not set one (16ths)
	DefaultBeatSubdivision = 4
)
