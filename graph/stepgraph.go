package graph

import (
	"fmt"

	"github.com/lixenwraith/stepweave/parameter"
)

// StepGraph describes a playing surface: how many lanes it has and where
// each foot rests by default. The two feet's root arrows are distinct by
// construction, which makes the root placement a safe fallback whenever
// boundary inference cannot resolve a foot.
type StepGraph struct {
	Name  string
	Lanes int

	roots [NumFeet]int
}

// New builds a StepGraph after validating the surface shape.
func New(name string, lanes, left, right int) (*StepGraph, error) {
	if lanes < 2 || lanes > parameter.MaxLanes {
		return nil, fmt.Errorf("step graph %q: lane count %d out of range [2,%d]", name, lanes, parameter.MaxLanes)
	}
	if left < 0 || left >= lanes || right < 0 || right >= lanes {
		return nil, fmt.Errorf("step graph %q: root arrows %d/%d outside %d lanes", name, left, right, lanes)
	}
	if left == right {
		return nil, fmt.Errorf("step graph %q: root arrows must be distinct, got %d for both feet", name, left)
	}
	return &StepGraph{
		Name:  name,
		Lanes: lanes,
		roots: [NumFeet]int{Left: left, Right: right},
	}, nil
}

// DanceSingle is the four-lane surface with feet resting on the outer
// left/right arrows.
func DanceSingle() *StepGraph {
	return &StepGraph{Name: "dance-single", Lanes: 4, roots: [NumFeet]int{Left: 0, Right: 3}}
}

// DanceDouble is the eight-lane surface with feet resting on the two center
// arrows of the left pad.
func DanceDouble() *StepGraph {
	return &StepGraph{Name: "dance-double", Lanes: 8, roots: [NumFeet]int{Left: 3, Right: 4}}
}

// RootArrow returns the default resting arrow for a foot.
func (sg *StepGraph) RootArrow(f Foot) int {
	return sg.roots[f]
}

// RootPlacement returns the default placement: each heel on its root arrow,
// toes unplaced, nothing lifted.
func (sg *StepGraph) RootPlacement() Placement {
	var p Placement
	for f := Left; f < NumFeet; f++ {
		p[f][Heel] = ArrowState{Arrow: sg.roots[f]}
		p[f][Toe] = ArrowState{Arrow: ArrowNone}
	}
	return p
}
