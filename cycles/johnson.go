package cycles

import (
	"context"

	"github.com/katalvlaran/revpref/core"
	"github.com/katalvlaran/revpref/scc"
)

// Action tells Johnson what to do after a cycle is reported.
type Action int

const (
	// Continue keeps enumerating.
	Continue Action = iota

	// Break removes the last strict edge of the reported cycle from further
	// enumeration (the break-on-discovery mode the ordinal solvers use to
	// keep the weak-cycle fallback from drowning in repeats).
	Break

	// Stop aborts the enumeration.
	Stop
)

// Johnson enumerates the elementary cycles of g (Johnson 1975), restricted
// to edges skipEdge accepts (skipEdge may be nil). Enumeration proceeds per
// min-vertex strongly connected component, so each elementary cycle is
// reported exactly once, rooted at its smallest vertex. Self-loops are never
// reported — trivial 1-cycles are priced by linear scans elsewhere.
//
// onCycle receives the cycle's forward edge indexes in path order plus a
// flag for "contains a strict edge"; the slice is reused and must not be
// retained. Cancellation is checked before each root vertex; the context's
// error is returned as-is.
//
// Worst-case exponential in the number of vertices; advertised as such.
func Johnson(ctx context.Context, g *core.Graph, skipEdge func(e int) bool, onCycle func(edges []int, strict bool) Action) error {
	en := &johnsonEngine{
		g:       g,
		skip:    skipEdge,
		removed: core.NewBitmask(g.NumEdges()),
		onCycle: onCycle,
		inComp:  make([]bool, g.N),
		blocked: make([]bool, g.N),
		blockOn: make([][]int, g.N),
	}

	var s int
	for s = 0; s < g.N; s++ {
		// 1) Cancellation gate, once per root.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 2) The next component to mine: smallest min-vertex among s..N-1.
		comp := scc.MinVertex(g, s, en.skipCombined)
		if comp == nil {
			break // no nontrivial component remains at or above s
		}
		root := comp[len(comp)-1]

		// 3) Reset per-component state and enumerate through the root.
		var v int
		for _, v = range comp {
			en.inComp[v] = true
			en.blocked[v] = false
			en.blockOn[v] = nil
		}
		en.root = root
		en.circuit(root)
		for _, v = range comp {
			en.inComp[v] = false
		}
		if en.stopped {
			return nil
		}

		// 4) Retire the root; the loop increment moves past it.
		s = root
	}

	return nil
}

// johnsonEngine carries the blocking state of one enumeration.
type johnsonEngine struct {
	g       *core.Graph
	skip    func(e int) bool
	removed core.Bitmask
	onCycle func(edges []int, strict bool) Action

	root    int
	inComp  []bool
	blocked []bool
	blockOn [][]int // blockOn[w]: vertices to unblock when w unblocks

	pathEdges []int
	stopped   bool
}

// skipCombined folds the caller's skip predicate with break-removed edges.
func (en *johnsonEngine) skipCombined(e int) bool {
	if en.removed.Has(e) {
		return true
	}
	if en.g.Tail[e] == en.g.Head[e] {
		return true // self-loops are trivial 1-cycles, not elementary ones
	}

	return en.skip != nil && en.skip(e)
}

// circuit explores vertex v; reports whether some cycle through the root was
// closed in its subtree (the standard unblocking condition).
func (en *johnsonEngine) circuit(v int) bool {
	found := false
	en.blocked[v] = true

	lo, hi := en.g.OutEdges(v)
	var e, w int
	for e = lo; e < hi; e++ {
		if en.stopped {
			break
		}
		if en.skipCombined(e) {
			continue
		}
		w = en.g.Head[e]
		if !en.inComp[w] {
			continue
		}
		if w == en.root {
			// Cycle closed: current path plus the closing edge.
			en.pathEdges = append(en.pathEdges, e)
			en.report(en.pathEdges)
			en.pathEdges = en.pathEdges[:len(en.pathEdges)-1]
			found = true

			continue
		}
		if !en.blocked[w] {
			en.pathEdges = append(en.pathEdges, e)
			if en.circuit(w) {
				found = true
			}
			en.pathEdges = en.pathEdges[:len(en.pathEdges)-1]
		}
	}

	if found {
		en.unblock(v)
	} else {
		// Defer unblocking of v until some neighbor participates in a cycle.
		for e = lo; e < hi; e++ {
			if en.skipCombined(e) {
				continue
			}
			w = en.g.Head[e]
			if en.inComp[w] && w != v {
				en.blockOn[w] = append(en.blockOn[w], v)
			}
		}
	}

	return found
}

// report hands one cycle to the callback and applies the requested action.
func (en *johnsonEngine) report(edges []int) {
	strict := false
	var e int
	for _, e = range edges {
		if en.g.Strict(e) {
			strict = true

			break
		}
	}
	switch en.onCycle(edges, strict) {
	case Stop:
		en.stopped = true
	case Break:
		// Remove the last strict edge on the path.
		var i int
		for i = len(edges) - 1; i >= 0; i-- {
			if en.g.Strict(edges[i]) && !en.removed.Has(edges[i]) {
				en.removed.Set(edges[i])

				break
			}
		}
	}
}

// unblock recursively clears the blocked flag (standard Johnson unblocking).
func (en *johnsonEngine) unblock(v int) {
	en.blocked[v] = false
	pending := en.blockOn[v]
	en.blockOn[v] = nil
	var w int
	for _, w = range pending {
		if en.blocked[w] {
			en.unblock(w)
		}
	}
}
