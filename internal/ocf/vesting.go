package ocf

import (
	"fmt"

	"github.com/ginjaninja78/ocf-ledger-converter/internal/validation"
)

// Vesting trigger types.
const (
	TriggerVestingStart     = "VESTING_START_DATE"
	TriggerScheduleAbsolute = "VESTING_SCHEDULE_ABSOLUTE"
	TriggerScheduleRelative = "VESTING_SCHEDULE_RELATIVE"
	TriggerVestingEvent     = "VESTING_EVENT"
)

// VestingCondition is one node of a vesting graph. Exactly one of Portion and
// Quantity is normally set.
type VestingCondition struct {
	ID               string          `json:"id"`
	Description      string          `json:"description,omitempty"`
	Portion          *VestingPortion `json:"portion,omitempty"`
	Quantity         Numeric         `json:"quantity,omitempty"`
	Trigger          VestingTrigger  `json:"trigger"`
	NextConditionIDs []string        `json:"next_condition_ids,omitempty"`
}

type VestingPortion struct {
	Numerator   Numeric `json:"numerator"`
	Denominator Numeric `json:"denominator"`
	Remainder   *bool   `json:"remainder,omitempty"`
}

// VestingTrigger is a union on Type: VESTING_SCHEDULE_ABSOLUTE carries Date,
// VESTING_SCHEDULE_RELATIVE carries Period and RelativeToConditionID, the
// others carry nothing.
type VestingTrigger struct {
	Type                  string         `json:"type"`
	Date                  string         `json:"date,omitempty"`
	Period                *VestingPeriod `json:"period,omitempty"`
	RelativeToConditionID string         `json:"relative_to_condition_id,omitempty"`
}

// VestingPeriod is the repeating interval of a relative schedule. DayOfMonth
// only applies to MONTHS periods.
type VestingPeriod struct {
	Length           int    `json:"length"`
	Type             string `json:"type"`
	Occurrences      int    `json:"occurrences"`
	DayOfMonth       string `json:"day_of_month,omitempty"`
	CliffInstallment *int   `json:"cliff_installment,omitempty"`
}

// =============================================================================
// CONDITION GRAPH
// =============================================================================

// Edge is a reference from one condition to another by id.
type Edge struct {
	From string
	To   string
	// Via names the referencing field: next_condition_ids or
	// relative_to_condition_id.
	Via string
}

// VestingGraph is an arena of conditions keyed by id. Edges are ids, never
// pointers, so cyclic inputs are representable.
type VestingGraph struct {
	order []string
	nodes map[string]VestingCondition
}

// Graph indexes the vesting conditions by id. Duplicate ids are rejected
// since the arena could not address them.
func (v *VestingTerms) Graph() (*VestingGraph, error) {
	g := &VestingGraph{nodes: make(map[string]VestingCondition, len(v.VestingConditions))}
	for i, c := range v.VestingConditions {
		if _, dup := g.nodes[c.ID]; dup {
			return nil, validation.NewValidationError(
				fmt.Sprintf("vestingTerms.vesting_conditions.%d.id", i),
				validation.CodeInvalidFormat, c.ID, "duplicate vesting condition id")
		}
		g.nodes[c.ID] = c
		g.order = append(g.order, c.ID)
	}
	return g, nil
}

// Len returns the number of conditions.
func (g *VestingGraph) Len() int { return len(g.order) }

// Node looks up a condition by id.
func (g *VestingGraph) Node(id string) (VestingCondition, bool) {
	c, ok := g.nodes[id]
	return c, ok
}

// DanglingEdges returns references to condition ids that are not in the graph,
// in declaration order.
func (g *VestingGraph) DanglingEdges() []Edge {
	var out []Edge
	for _, id := range g.order {
		c := g.nodes[id]
		for _, next := range c.NextConditionIDs {
			if _, ok := g.nodes[next]; !ok {
				out = append(out, Edge{From: id, To: next, Via: "next_condition_ids"})
			}
		}
		if rel := c.Trigger.RelativeToConditionID; rel != "" {
			if _, ok := g.nodes[rel]; !ok {
				out = append(out, Edge{From: id, To: rel, Via: "relative_to_condition_id"})
			}
		}
	}
	return out
}

// Cycles returns every cycle reachable along next_condition_ids found by a
// depth-first walk in declaration order. Each cycle lists its ids starting
// at the node where the walk re-entered it. Results are deterministic.
func (g *VestingGraph) Cycles() [][]string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.order))
	var stack []string
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		color[id] = grey
		stack = append(stack, id)
		for _, next := range g.nodes[id].NextConditionIDs {
			if _, ok := g.nodes[next]; !ok {
				continue
			}
			switch color[next] {
			case white:
				visit(next)
			case grey:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == next {
						cycle := make([]string, len(stack)-i)
						copy(cycle, stack[i:])
						cycles = append(cycles, cycle)
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			visit(id)
		}
	}
	return cycles
}
