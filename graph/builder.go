package graph

import "github.com/lixenwraith/stepweave/chart"

// ExpressedConfig selects how existing chart content is interpreted when a
// Builder derives foot placement from it.
type ExpressedConfig struct {
	// Name identifies the configuration in logs.
	Name string
	// Jacks keeps a repeated step on the same arrow under the foot already
	// there instead of alternating the other foot onto it.
	Jacks bool
}

// Builder derives a search-node chain from an ordered event list. Build is a
// pure function of its inputs; a failure is reported to the caller, never
// fatal to the process. The rating lets production builders scale their
// interpretation to chart difficulty.
type Builder interface {
	Build(events []chart.Event, sg *StepGraph, cfg *ExpressedConfig, rating int) (*Chain, error)
}
