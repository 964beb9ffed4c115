package minshare

import (
	"strings"

	"github.com/fairdivision/divvy/valuation"
)

// ConsumptionGraph is one candidate sharing-skeleton: a fixed 0/1 incidence
// structure over (agent, object) pairs describing which allocation cells may
// be positive. It is an immutable value object; the sharing count is computed
// once at construction.
type ConsumptionGraph struct {
	edges    []bool // row-major, len == n*m
	n, m     int
	sharings int
}

// NewConsumptionGraph copies rows into an immutable graph.
//
// Contracts:
//   - rows non-empty and rectangular.
//
// The every-object-covered invariant is not enforced here: feasibility
// testers report an uncovered object as an infeasible candidate, which lets
// callers probe arbitrary skeletons.
//
// Errors: valuation.ErrEmptyMatrix, valuation.ErrRaggedMatrix.
func NewConsumptionGraph(rows [][]bool) (*ConsumptionGraph, error) {
	n := len(rows)
	if n == 0 || len(rows[0]) == 0 {
		return nil, valuation.ErrEmptyMatrix
	}
	m := len(rows[0])

	buf := make([]bool, n*m)
	edgeCount := 0
	for i, row := range rows {
		if len(row) != m {
			return nil, valuation.ErrRaggedMatrix
		}
		for o, set := range row {
			if set {
				buf[i*m+o] = true
				edgeCount++
			}
		}
	}

	sharings := edgeCount - m
	if sharings < 0 {
		sharings = 0
	}

	return &ConsumptionGraph{edges: buf, n: n, m: m, sharings: sharings}, nil
}

// NumAgents returns the number of agent rows.
func (g *ConsumptionGraph) NumAgents() int { return g.n }

// NumObjects returns the number of object columns.
func (g *ConsumptionGraph) NumObjects() int { return g.m }

// Edge reports whether agent may consume a positive fraction of object.
func (g *ConsumptionGraph) Edge(agent, object int) bool {
	return g.edges[agent*g.m+object]
}

// NumSharings returns the edge surplus over the one-edge-per-object minimum:
// max(0, Σ edges − m). An allocation supported on this graph can never have
// more sharings than the graph itself.
func (g *ConsumptionGraph) NumSharings() int { return g.sharings }

// Degree returns the number of objects the agent is connected to.
func (g *ConsumptionGraph) Degree(agent int) int {
	deg := 0
	for o := 0; o < g.m; o++ {
		if g.edges[agent*g.m+o] {
			deg++
		}
	}

	return deg
}

// CanSupplyThresholds is the cheap necessary-condition pre-check: if agent i
// were given everything it is connected to, would its value reach
// thresholds[i]? Returning false proves the graph infeasible for any
// criterion with these per-agent utility floors; returning true is
// inconclusive.
//
// The graph may cover only a prefix of the valuation's agents (the generator
// probes partial skeletons); rows beyond the graph are not checked.
//
// Contracts:
//   - v has the same object count and at least as many agents as g;
//   - len(thresholds) ≥ g.NumAgents().
//
// Complexity: O(n·m).
func (g *ConsumptionGraph) CanSupplyThresholds(v *valuation.ValuationMatrix, thresholds []float64) bool {
	for i := 0; i < g.n; i++ {
		reachable := 0.0
		for o := 0; o < g.m; o++ {
			if g.edges[i*g.m+o] {
				reachable += v.Value(i, o)
			}
		}
		if reachable < thresholds[i] {
			return false
		}
	}

	return true
}

// MarkerRadix returns the per-agent branching factor 2·deg(i)+1 used when the
// graph is extended by one agent: each of an agent's current edges can be
// kept, handed to the newcomer, or doubled, and the mixed-radix code over
// these factors enumerates every extension.
func (g *ConsumptionGraph) MarkerRadix() []int {
	radix := make([]int, g.n)
	for i := 0; i < g.n; i++ {
		radix[i] = 2*g.Degree(i) + 1
	}

	return radix
}

// key returns a canonical byte representation of the edge set, used by the
// generator for structural deduplication.
func (g *ConsumptionGraph) key() string {
	var sb strings.Builder
	sb.Grow(len(g.edges))
	for _, set := range g.edges {
		if set {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// String renders the graph as 0/1 rows, for logs and test failures.
func (g *ConsumptionGraph) String() string {
	var sb strings.Builder
	for i := 0; i < g.n; i++ {
		sb.WriteByte('[')
		for o := 0; o < g.m; o++ {
			if o > 0 {
				sb.WriteByte(' ')
			}
			if g.edges[i*g.m+o] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(']')
		if i < g.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
