package minshare

import (
	"math"
	"sort"

	"github.com/fairdivision/divvy/valuation"
)

// GraphGenerator enumerates consumption graphs for a valuation matrix in
// ascending-construction order, pruning branches that cannot lead to a
// feasible allocation.
//
// Enumeration starts from the single-agent graph that owns every object and
// repeatedly introduces the next agent. Each introduction step is encoded as
// a mixed-radix marker over the existing agents: an agent with degree L
// contributes radix 2·L+1, and its digit decides how many of its objects the
// newcomer takes outright and whether one boundary object becomes shared.
// Objects are handed over in ascending order of the value ratio
// v[owner]/v[newcomer], so the newcomer receives the objects it values most
// relative to the current owner first. Every object stays covered throughout.
//
// Two prunes are applied to partial graphs, both sound because extending a
// graph never removes edges and never decreases the sharing count:
//   - sharing ceiling: a partial graph already above MaxSharings is dropped;
//   - threshold supply: an agent whose connected objects cannot reach its
//     utility floor even if taken whole can never be satisfied later.
type GraphGenerator struct {
	v           *valuation.ValuationMatrix
	thresholds  []float64
	maxSharings int
	order       [][][]int // order[i][t]: agent i's object order vs newcomer t
}

// NewGraphGenerator prepares a generator for v.
//
// thresholds are the per-agent utility floors used by the supply prune; pass
// the criterion's prune thresholds. The sharing ceiling starts at
// v.NumAgents(), which disables it; tighten with SetMaxSharings.
//
// Errors: minshare.ErrNilValuation, minshare.ErrBadThresholds when the
// threshold slice does not cover every agent.
func NewGraphGenerator(v *valuation.ValuationMatrix, thresholds []float64) (*GraphGenerator, error) {
	if v == nil {
		return nil, ErrNilValuation
	}
	if len(thresholds) != v.NumAgents() {
		return nil, ErrBadThresholds
	}

	return &GraphGenerator{
		v:           v,
		thresholds:  thresholds,
		maxSharings: v.NumAgents(),
		order:       buildRatioOrders(v),
	}, nil
}

// SetMaxSharings caps the sharing count of emitted graphs. Partial graphs
// that already exceed the cap are pruned, so lowering it shrinks the search.
func (gg *GraphGenerator) SetMaxSharings(k int) { gg.maxSharings = k }

// Generate enumerates all complete consumption graphs that survive the
// prunes, calling visit for each. Structurally identical graphs reachable by
// different marker sequences are emitted once. Returning false from visit
// stops the enumeration.
//
// Complexity: the marker space is Π over steps of Π_i (2·deg(i)+1); prunes
// cut it sharply when MaxSharings is small.
func (gg *GraphGenerator) Generate(visit func(*ConsumptionGraph) bool) {
	base := gg.baseGraph()
	seen := make(map[string]struct{})
	gg.walk(base, seen, visit)
}

// baseGraph is the 1×m all-ones skeleton: agent 0 owns everything.
func (gg *GraphGenerator) baseGraph() *ConsumptionGraph {
	m := gg.v.NumObjects()
	row := make([]bool, m)
	for o := range row {
		row[o] = true
	}
	g, _ := NewConsumptionGraph([][]bool{row})

	return g
}

// walk recurses over partial graphs; complete graphs are deduplicated and
// handed to visit. Returns false when visit asked to stop.
func (gg *GraphGenerator) walk(g *ConsumptionGraph, seen map[string]struct{}, visit func(*ConsumptionGraph) bool) bool {
	if g.NumAgents() == gg.v.NumAgents() {
		k := g.key()
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}

		return visit(g)
	}

	return gg.extendAll(g, seen, visit)
}

// extendAll introduces agent g.NumAgents() in every admissible way by
// counting through the mixed-radix marker space.
func (gg *GraphGenerator) extendAll(g *ConsumptionGraph, seen map[string]struct{}, visit func(*ConsumptionGraph) bool) bool {
	radix := g.MarkerRadix()
	code := make([]int, len(radix))

	for {
		next := gg.extendGraph(g, code)
		if next.NumSharings() <= gg.maxSharings &&
			next.CanSupplyThresholds(gg.v, gg.thresholds) {
			if !gg.walk(next, seen, visit) {
				return false
			}
		}

		// advance the mixed-radix counter
		pos := 0
		for pos < len(code) {
			code[pos]++
			if code[pos] < radix[pos] {
				break
			}
			code[pos] = 0
			pos++
		}
		if pos == len(code) {
			return true
		}
	}
}

// extendGraph builds the graph obtained by adding one agent according to the
// marker code. For each existing agent i with degree L and digit c, the
// newcomer takes the (c+1)/2 objects agent i values least relative to the
// newcomer, and agent i keeps its top L − c/2; an odd digit leaves the
// boundary object to both.
func (gg *GraphGenerator) extendGraph(g *ConsumptionGraph, code []int) *ConsumptionGraph {
	n, m := g.NumAgents(), g.NumObjects()
	rows := make([][]bool, n+1)
	newRow := make([]bool, m)

	for i := 0; i < n; i++ {
		row := make([]bool, m)
		objects := gg.sortedEdges(g, i)
		L := len(objects)
		keep := L - code[i]/2
		take := (code[i] + 1) / 2
		for pos, o := range objects {
			if pos < keep {
				row[o] = true
			}
			if pos >= L-take {
				newRow[o] = true
			}
		}
		rows[i] = row
	}
	rows[n] = newRow

	next, _ := NewConsumptionGraph(rows)

	return next
}

// sortedEdges returns agent i's connected objects ordered by the ratio
// v[i][o]/v[newcomer][o], highest first; ties keep ascending object order.
func (gg *GraphGenerator) sortedEdges(g *ConsumptionGraph, i int) []int {
	t := g.NumAgents() // index of the agent about to be introduced
	order := gg.order[i][t]
	objects := make([]int, 0, g.Degree(i))
	for _, o := range order {
		if g.Edge(i, o) {
			objects = append(objects, o)
		}
	}

	return objects
}

// buildRatioOrders precomputes, for every ordered agent pair (i, t), the
// object permutation sorted by v[i][o]/v[t][o] descending. A 0/0 ratio counts
// as 1 and x/0 as +Inf, matching the handover preference that a worthless
// object for the newcomer should stay with its owner longest.
func buildRatioOrders(v *valuation.ValuationMatrix) [][][]int {
	n, m := v.NumAgents(), v.NumObjects()
	orders := make([][][]int, n)
	for i := 0; i < n; i++ {
		orders[i] = make([][]int, n)
		for t := 0; t < n; t++ {
			if t == i {
				continue
			}
			ratios := make([]float64, m)
			for o := 0; o < m; o++ {
				num, den := v.Value(i, o), v.Value(t, o)
				switch {
				case num == 0 && den == 0:
					ratios[o] = 1
				case den == 0:
					ratios[o] = math.Inf(1)
				default:
					ratios[o] = num / den
				}
			}
			perm := make([]int, m)
			for o := range perm {
				perm[o] = o
			}
			sort.SliceStable(perm, func(a, b int) bool {
				return ratios[perm[a]] > ratios[perm[b]]
			})
			orders[i][t] = perm
		}
	}

	return orders
}
