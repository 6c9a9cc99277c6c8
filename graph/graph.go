// Package graph models the dancer's foot placement over a chart as a chain
// of search nodes. A StepGraph describes the playing surface (lane count and
// default placement), a Builder derives a Chain of per-row placement states
// from concrete note events, and the footing scanner walks that chain to
// infer boundary states.
package graph

import "github.com/lixenwraith/stepweave/chart"

// Foot identifies one of the dancer's two feet.
type Foot int8

const (
	Left Foot = iota
	Right
	// NumFeet sizes per-foot arrays.
	NumFeet
)

// FootNone marks an unresolved foot.
const FootNone Foot = -1

// String returns the lowercase foot name.
func (f Foot) String() string {
	switch f {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Other returns the opposite foot.
func (f Foot) Other() Foot {
	if f == Left {
		return Right
	}
	return Left
}

// Portion identifies a sub-region of a foot. A bracket step places heel and
// toe on two different arrows at once.
type Portion int8

const (
	Heel Portion = iota
	Toe
	// NumPortions sizes per-portion arrays.
	NumPortions
)

// ArrowNone marks a foot portion that is not placed on any arrow.
const ArrowNone = chart.LaneNone

// ArrowState is the placement of one foot portion: which arrow it occupies
// and whether it is lifted off that arrow (hovering after a release).
type ArrowState struct {
	Arrow  int
	Lifted bool
}

// Placement is the full per-foot, per-portion arrow assignment carried by
// each search node.
type Placement [NumFeet][NumPortions]ArrowState

// LinkKind describes how a search node was reached from its predecessor.
type LinkKind int8

const (
	// LinkNone marks the root node, which has no predecessor.
	LinkNone LinkKind = iota
	// LinkStep marks a node created by stepping on one or more arrows.
	LinkStep
	// LinkRelease marks a node created by releasing held arrows only.
	LinkRelease
)

// String returns the lowercase link name.
func (k LinkKind) String() string {
	switch k {
	case LinkStep:
		return "step"
	case LinkRelease:
		return "release"
	default:
		return "none"
	}
}
