package graph

import (
	"fmt"

	"github.com/lixenwraith/stepweave/chart"
)

// StrideBuilder is a development Builder. Single steps alternate feet, jumps
// take the nearest-foot assignment, and a foot inside a hold never moves. It
// does not express brackets, crossovers, or hands; it exists so the engine
// runs end to end without a production builder.
type StrideBuilder struct{}

// Build derives the chain from events, which must be ordered and within the
// surface's lanes. Mines and misc markers never move feet.
func (StrideBuilder) Build(events []chart.Event, sg *StepGraph, cfg *ExpressedConfig, rating int) (*Chain, error) {
	if sg == nil {
		return nil, fmt.Errorf("stride build: nil step graph")
	}
	if cfg == nil {
		return nil, fmt.Errorf("stride build: nil expressed config")
	}

	ch := NewChain(sg)
	state := sg.RootPlacement()
	var held [NumFeet]bool
	lastFoot := Right // first single step lands on the left foot

	for i := 0; i < len(events); {
		row := events[i].Row
		rowTime := events[i].Time
		var stepSet, holdSet, releaseSet chart.LaneSet
		for ; i < len(events) && events[i].Row == row; i++ {
			ev := events[i]
			switch ev.Kind {
			case chart.KindTap, chart.KindHoldStart:
				if ev.Lane < 0 || ev.Lane >= sg.Lanes {
					return nil, fmt.Errorf("stride build: lane %d outside %d-lane surface at row %d", ev.Lane, sg.Lanes, row)
				}
				stepSet.Add(ev.Lane)
				if ev.Kind == chart.KindHoldStart {
					holdSet.Add(ev.Lane)
				}
			case chart.KindHoldEnd:
				releaseSet.Add(ev.Lane)
			}
		}

		released := false
		for f := Left; f < NumFeet; f++ {
			if held[f] && releaseSet.Has(state[f][Heel].Arrow) {
				held[f] = false
				state[f][Heel].Lifted = true
				released = true
			}
		}

		var lanes []int
		for lane := 0; lane < sg.Lanes; lane++ {
			if stepSet.Has(lane) {
				lanes = append(lanes, lane)
			}
		}

		switch {
		case len(lanes) == 0:
			if !released {
				continue
			}
		case len(lanes) == 1:
			lane := lanes[0]
			foot := FootNone
			if cfg.Jacks {
				for f := Left; f < NumFeet; f++ {
					if !held[f] && state[f][Heel].Arrow == lane {
						foot = f
						break
					}
				}
			}
			if foot == FootNone {
				foot = lastFoot.Other()
				if held[foot] {
					foot = lastFoot
				}
				if held[foot] {
					return nil, fmt.Errorf("stride build: step at row %d with both feet holding", row)
				}
			}
			state[foot][Heel] = ArrowState{Arrow: lane}
			state[foot][Toe] = ArrowState{Arrow: ArrowNone}
			held[foot] = holdSet.Has(lane)
			lastFoot = foot
		case len(lanes) == 2:
			if held[Left] || held[Right] {
				return nil, fmt.Errorf("stride build: jump at row %d while holding", row)
			}
			a, b := lanes[0], lanes[1]
			curL, curR := state[Left][Heel].Arrow, state[Right][Heel].Arrow
			if abs(curL-b)+abs(curR-a) < abs(curL-a)+abs(curR-b) {
				a, b = b, a
			}
			state[Left][Heel] = ArrowState{Arrow: a}
			state[Left][Toe] = ArrowState{Arrow: ArrowNone}
			state[Right][Heel] = ArrowState{Arrow: b}
			state[Right][Toe] = ArrowState{Arrow: ArrowNone}
			held[Left] = holdSet.Has(a)
			held[Right] = holdSet.Has(b)
		default:
			return nil, fmt.Errorf("stride build: %d simultaneous steps at row %d", len(lanes), row)
		}

		link := LinkStep
		if len(lanes) == 0 {
			link = LinkRelease
		}
		if _, err := ch.Append(row, rowTime, state, link); err != nil {
			return nil, fmt.Errorf("stride build: %w", err)
		}
	}
	return ch, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
