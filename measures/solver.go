package measures

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/revpref/bip"
	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/cycles"
)

// compSolver owns the per-component state shared by all six indices: the
// vertex scope and the cycle pool that warm-starts each solve with every
// cycle any earlier solve discovered. Cycles are facts about the graph, not
// about an index, so the pool is index-agnostic; each solve derives its own
// constraint rows from it.
type compSolver struct {
	o       *Options
	g       *core.Graph
	inComp  []bool
	pool    *core.CycleSet
	hasWeak bool
}

// newCompSolver scopes one nontrivial component and seeds the pool with its
// length-2 cycles.
func newCompSolver(o *Options, g *core.Graph, members []int) *compSolver {
	cs := &compSolver{o: o, g: g, inComp: make([]bool, g.N), pool: &core.CycleSet{}}
	var v int
	for _, v = range members {
		cs.inComp[v] = true
	}
	var e int
	for e = 0; e < g.NumEdges(); e++ {
		if !g.Strict(e) && cs.inComp[g.Tail[e]] && cs.inComp[g.Head[e]] && g.Tail[e] != g.Head[e] {
			cs.hasWeak = true

			break
		}
	}
	cycles.ScanTwoCycles(g, cs.scope, cs.pool)

	return cs
}

// scope reports component membership.
func (cs *compSolver) scope(v int) bool { return cs.inComp[v] }

// allStrictCycle reports whether every edge of the cycle is strict. The
// continuous indices constrain only such cycles: a weak edge is removable at
// vanishing cost, so mixed cycles never bind their optima.
func (cs *compSolver) allStrictCycle(cyc []int) bool {
	var e int
	for _, e = range cyc {
		if !cs.g.Strict(e) {
			return false
		}
	}

	return true
}

// indexDef captures how one index maps cycles to constraint rows and
// solutions to removals.
type indexDef struct {
	// allStrict restricts the constraint build to all-strict cycles.
	allStrict bool

	// rowIDs lists the removable items (global ids: vertexes for HM, edge
	// indexes otherwise) whose selection breaks the given cycle.
	rowIDs func(cyc []int) []int

	// apply installs the removal state encoded by the chosen item ids;
	// apply(nil) resets to "nothing removed".
	apply func(ids []int)

	// residual is the edge's remaining cost under the current removal
	// state; ≤ eps means absent from the residual subgraph.
	residual func(e int) float64

	// removed, when non-nil, enables the Johnson fallback for weak-edge
	// components and tells it which edges the current state excludes.
	removed func(e int) bool
}

// ilpState is one index's accumulated constraint system over the pool.
type ilpState struct {
	cs    *compSolver
	def   indexDef
	cols  map[int]int
	items []int
	rows  [][]int
	mark  int // pool high-water mark of absorbed cycles
}

func (cs *compSolver) newState(def indexDef) *ilpState {
	st := &ilpState{cs: cs, def: def, cols: make(map[int]int)}
	st.absorb()

	return st
}

// absorb turns the pool cycles appended since the last call into rows.
func (st *ilpState) absorb() {
	st.cs.pool.EachFrom(st.mark, func(_ int, cyc []int) {
		if st.def.allStrict && !st.cs.allStrictCycle(cyc) {
			return
		}
		ids := st.def.rowIDs(cyc)
		if len(ids) == 0 {
			return
		}
		row := make([]int, 0, len(ids))
		var id, col int
		var ok bool
		for _, id = range ids {
			col, ok = st.cols[id]
			if !ok {
				col = len(st.items)
				st.cols[id] = col
				st.items = append(st.items, id)
			}
			row = append(row, col)
		}
		st.rows = append(st.rows, row)
	})
	st.mark = st.cs.pool.Len()
}

// converge runs the cycle-cover outer loop under the given cost function
// until the removal state leaves no residual cycle. Returns the last oracle
// solution and the chosen item ids. Calling converge again (with different
// costs or a cardinality cap) continues from the accumulated rows — that is
// how the α = 0 two-stage solve and the warm starts across α work.
func (st *ilpState) converge(cost func(id int) float64, maxCard int) (bip.Solution, []int, error) {
	st.def.apply(nil)
	var sol bip.Solution
	var chosen []int
	capIters := iterCapFactor * st.cs.g.N
	var iter, i, id, n int
	var err error
	for iter = 0; ; iter++ {
		// 1) Diagnostic cap and cancellation gate.
		if iter >= capIters {
			return sol, nil, fmt.Errorf("measures: %d iterations on %d observations: %w",
				iter, st.cs.g.N, ErrNonConvergence)
		}
		select {
		case <-st.cs.o.Ctx.Done():
			return sol, nil, st.cs.o.Ctx.Err()
		default:
		}

		// 2) Re-optimize over the current constraint matrix.
		if len(st.rows) > 0 {
			costs := make([]float64, len(st.items))
			for i, id = range st.items {
				costs[i] = cost(id)
			}
			sol, err = bip.Solve(st.cs.o.Ctx, bip.Problem{Cost: costs, Rows: st.rows, MaxCard: maxCard})
			if err != nil {
				return sol, nil, err
			}
			chosen = chosen[:0]
			for _, i = range sol.Chosen {
				chosen = append(chosen, st.items[i])
			}
			st.def.apply(chosen)
		}

		// 3) Hunt for cycles the current removals miss.
		n = cycles.Critical(st.cs.g, st.cs.scope, st.def.residual, st.cs.g.Eps, st.cs.pool)
		if n == 0 && st.def.removed != nil && st.cs.hasWeak {
			n, err = st.johnsonSeed()
			if err != nil {
				return sol, nil, err
			}
		}
		if n == 0 {
			return sol, append([]int(nil), chosen...), nil
		}
		st.absorb()
	}
}

// johnsonSeed catches cycles the strict-edge DFS cannot see: weak edges
// closed by at least one remaining strict edge. Weak-only cycles constrain
// nothing and are passed over.
func (st *ilpState) johnsonSeed() (int, error) {
	count := 0
	skip := func(e int) bool {
		if st.def.removed(e) {
			return true
		}

		return !st.cs.inComp[st.cs.g.Tail[e]] || !st.cs.inComp[st.cs.g.Head[e]]
	}
	err := cycles.Johnson(st.cs.o.Ctx, st.cs.g, skip, func(edges []int, strict bool) cycles.Action {
		if !strict {
			return cycles.Continue
		}
		st.cs.pool.Append(edges)
		count++

		return cycles.Break
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Per-index solvers
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// houtmanMaks returns the minimum number of observations to drop so the
// component carries no strict cycle. Removing a vertex silences every edge
// pointing into it, which is enough to break any cycle through it.
func (cs *compSolver) houtmanMaks() (float64, error) {
	removed := make([]bool, cs.g.N)
	def := indexDef{
		rowIDs: func(cyc []int) []int {
			ids := make([]int, 0, len(cyc))
			var e int
			for _, e = range cyc {
				ids = append(ids, cs.g.Tail[e]) // the cycle's vertex set
			}

			return ids
		},
		apply: func(ids []int) {
			var v int
			for v = range removed {
				removed[v] = false
			}
			for _, v = range ids {
				removed[v] = true
			}
		},
		residual: func(e int) float64 {
			if removed[cs.g.Head[e]] {
				return 0
			}

			return cs.g.Weight[e]
		},
		removed: func(e int) bool { return removed[cs.g.Head[e]] },
	}
	sol, _, err := cs.newState(def).converge(unitCost, 0)

	return sol.Objective, err
}

// swaps returns the minimum number of single revealed preferences to ignore
// so the component carries no strict cycle.
func (cs *compSolver) swaps() (float64, error) {
	mask := core.NewBitmask(cs.g.NumEdges())
	def := indexDef{
		rowIDs: copyCycle,
		apply: func(ids []int) {
			mask.Reset()
			var e int
			for _, e = range ids {
				mask.Set(e)
			}
		},
		residual: func(e int) float64 {
			if mask.Has(e) {
				return 0
			}

			return cs.g.Weight[e]
		},
		removed: mask.Has,
	}
	sol, _, err := cs.newState(def).converge(unitCost, 0)

	return sol.Objective, err
}

// nmci returns the minimum total w^α over removed edges (α > 0); weak edges
// are free and therefore never modelled.
func (cs *compSolver) nmci(alpha float64) (float64, error) {
	mask := core.NewBitmask(cs.g.NumEdges())
	def := indexDef{
		allStrict: true,
		rowIDs:    copyCycle,
		apply: func(ids []int) {
			mask.Reset()
			var e int
			for _, e = range ids {
				mask.Set(e)
			}
		},
		residual: func(e int) float64 {
			if mask.Has(e) {
				return 0
			}

			return cs.g.Weight[e]
		},
	}
	g := cs.g
	sol, _, err := cs.newState(def).converge(func(e int) float64 {
		return math.Pow(g.Weight[e], alpha)
	}, 0)

	return sol.Objective, err
}

// varianDef builds the level-removal index definition. A chosen edge id j
// raises its anchor period's level to w(j); an edge is removed once its
// weight falls at or below its anchor's level. Forward anchors (out-edges)
// give Varian; head anchors (in-edges, via the reverse adjacency) give the
// inverse index.
func (cs *compSolver) varianDef(inverse bool, level []float64) indexDef {
	g := cs.g
	anchor := func(e int) int {
		if inverse {
			return g.Head[e]
		}

		return g.Tail[e]
	}
	// siblings visits every edge sharing e's anchor with weight ≥ w(e):
	// exactly the selections whose level would remove e.
	siblings := func(e int, visit func(j int)) {
		if inverse {
			_, redge, lo, hi := g.InEdges(g.Head[e])
			var k int
			for k = hi - 1; k >= lo; k-- {
				if g.Weight[redge[k]] < g.Weight[e] {
					break // in-lists are weight-ascending
				}
				visit(redge[k])
			}

			return
		}
		lo, hi := g.OutEdges(g.Tail[e])
		var j int
		for j = hi - 1; j >= lo; j-- {
			if g.Weight[j] < g.Weight[e] {
				break // out-lists are weight-ascending
			}
			visit(j)
		}
	}

	return indexDef{
		allStrict: true,
		rowIDs: func(cyc []int) []int {
			seen := make(map[int]bool, len(cyc))
			var ids []int
			var e int
			for _, e = range cyc {
				siblings(e, func(j int) {
					if !seen[j] {
						seen[j] = true
						ids = append(ids, j)
					}
				})
			}
			sort.Ints(ids)

			return ids
		},
		apply: func(ids []int) {
			var v int
			for v = range level {
				level[v] = 0
			}
			var e int
			for _, e = range ids {
				if g.Weight[e] > level[anchor(e)] {
					level[anchor(e)] = g.Weight[e]
				}
			}
		},
		residual: func(e int) float64 {
			return g.Weight[e] - level[anchor(e)]
		},
	}
}

// varian returns the minimum total w^α over the chosen levels, α > 0.
func (cs *compSolver) varian(alpha float64, inverse bool) (float64, error) {
	level := make([]float64, cs.g.N)
	g := cs.g
	sol, _, err := cs.newState(cs.varianDef(inverse, level)).converge(func(e int) float64 {
		return math.Pow(g.Weight[e], alpha)
	}, 0)

	return sol.Objective, err
}

// varianZero runs the two-stage α = 0 solve: minimize the number of
// adjusted periods first, then — under that cardinality — the geometric
// mean of the levels (equivalently the sum of their logs). When the second
// stage uncovers new cycles that push the minimal support higher, the pair
// of stages is repeated on the grown constraint set.
func (cs *compSolver) varianZero(inverse bool) (support int, logSum float64, err error) {
	level := make([]float64, cs.g.N)
	g := cs.g
	st := cs.newState(cs.varianDef(inverse, level))
	logCost := func(e int) float64 { return math.Log(g.Weight[e]) }
	var solA bip.Solution
	var k int
	for {
		solA, _, err = st.converge(unitCost, 0)
		if err != nil {
			return 0, 0, err
		}
		k = int(math.Round(solA.Objective))
		if k == 0 {
			return 0, 0, nil
		}
		_, _, err = st.converge(logCost, k)
		if errors.Is(err, bip.ErrInfeasible) {
			continue // the support grew mid-stage; redo both stages
		}
		if err != nil {
			return 0, 0, err
		}

		break
	}

	// Read the support off the final levels: one entry per adjusted period.
	var v int
	for v = 0; v < g.N; v++ {
		if level[v] > 0 {
			support++
			logSum += math.Log(level[v])
		}
	}

	return support, logSum, nil
}

func unitCost(int) float64 { return 1 }

func copyCycle(cyc []int) []int { return append([]int(nil), cyc...) }
