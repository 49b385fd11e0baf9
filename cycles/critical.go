package cycles

import "github.com/katalvlaran/revpref/core"

// Vertex colors for the three-state DFS.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully explored
)

// engine is the shared iterative walker behind Critical and Afriat. It runs
// a three-color DFS over the residual subgraph; when a back edge closes a
// cycle, onCycle inspects it and names one of its edges for removal. The
// engine masks that edge, unwinds the path to the edge's tail (re-whitening
// the popped vertices so their subtrees can be re-explored), and resumes.
type engine struct {
	g       *core.Graph
	inScope func(v int) bool
	usable  func(e int) bool
	// onCycle receives the cycle as forward edge indexes in path order and
	// returns the edge to remove; it must be one of the cycle's edges.
	onCycle func(edges []int) int

	removed core.Bitmask
	color   []uint8
	pathPos []int // position of each gray vertex among the frames
	frames  []frame
	// pathEdges[i] is the edge used to enter frames[i].v; pathEdges[0] is -1.
	pathEdges []int

	found bool
}

// frame is one explicit DFS stack entry.
type frame struct {
	v      int
	cursor int
}

// run walks every in-scope white vertex. Returns whether any cycle was found.
func (en *engine) run() bool {
	n := en.g.N
	en.removed = core.NewBitmask(en.g.NumEdges())
	en.color = make([]uint8, n)
	en.pathPos = make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		if en.color[v] == white && en.inScope(v) {
			en.explore(v)
		}
	}

	return en.found
}

// explore runs one DFS tree rooted at root.
func (en *engine) explore(root int) {
	en.push(root, -1)

	var f *frame
	var e, head int
	for len(en.frames) > 0 {
		f = &en.frames[len(en.frames)-1]
		lo, hi := en.g.OutEdges(f.v)

		descended := false
		for f.cursor < hi-lo {
			e = lo + f.cursor
			f.cursor++
			if en.removed.Has(e) || !en.usable(e) {
				continue
			}
			head = en.g.Head[e]
			if head == f.v {
				continue // self-loops are trivial 1-cycles, priced elsewhere
			}
			if !en.inScope(head) {
				continue
			}
			switch en.color[head] {
			case white:
				en.push(head, e)
				descended = true
			case gray:
				// Back edge: a cycle closes at head.
				en.closeCycle(head, e)
				// The frame slice may have been rewound; restart the scan
				// loop from the (possibly different) top frame.
				descended = true
			}
			if descended {
				break
			}
			// black heads carry no new cycles through the current path.
		}
		if descended {
			continue
		}

		// Exhausted: blacken and pop.
		en.color[f.v] = black
		en.frames = en.frames[:len(en.frames)-1]
		en.pathEdges = en.pathEdges[:len(en.pathEdges)-1]
	}
}

// push enters vertex v through edge via (-1 for roots).
func (en *engine) push(v, via int) {
	en.color[v] = gray
	en.pathPos[v] = len(en.frames)
	en.frames = append(en.frames, frame{v: v})
	en.pathEdges = append(en.pathEdges, via)
}

// closeCycle assembles the cycle closed by back edge e into head, reports it,
// masks the edge onCycle names, and unwinds to that edge's tail.
func (en *engine) closeCycle(head, e int) {
	en.found = true

	// 1) Cycle edges: the path from head to the current vertex, then e.
	at := en.pathPos[head]
	cycle := make([]int, 0, len(en.frames)-at)
	var i int
	for i = at + 1; i < len(en.frames); i++ {
		cycle = append(cycle, en.pathEdges[i])
	}
	cycle = append(cycle, e)

	// 2) Report and mask the named edge.
	drop := en.onCycle(cycle)
	en.removed.Set(drop)

	// 3) Unwind to the removed edge's tail, re-whitening everything popped;
	//    their subtrees must stay reachable for later cycles.
	target := en.g.Tail[drop]
	for en.frames[len(en.frames)-1].v != target {
		top := en.frames[len(en.frames)-1]
		en.color[top.v] = white
		en.frames = en.frames[:len(en.frames)-1]
		en.pathEdges = en.pathEdges[:len(en.pathEdges)-1]
	}
}

// Critical runs one removal-on-discovery pass over the residual subgraph:
// edges with res(e) ≤ eps are absent, cycles are appended to set as forward
// edge indexes, and each discovered cycle loses its cheapest residual edge
// (ties broken toward the smallest edge index). One pass is not exhaustive —
// the outer solvers re-run it after each optimization round — but a pass
// over a graph that still has a residual cycle always finds at least one.
// Returns the number of cycles appended.
func Critical(g *core.Graph, inScope func(v int) bool, res func(e int) float64, eps float64, set *core.CycleSet) int {
	before := set.Len()
	en := &engine{
		g:       g,
		inScope: inScope,
		usable:  func(e int) bool { return res(e) > eps },
		onCycle: func(edges []int) int {
			set.Append(edges)

			return cheapest(edges, res)
		},
	}
	en.run()

	return set.Len() - before
}

// cheapest returns the edge with minimal cost, smallest index on ties.
func cheapest(edges []int, cost func(e int) float64) int {
	best := edges[0]
	bestCost := cost(best)
	var e int
	var c float64
	for _, e = range edges[1:] {
		c = cost(e)
		if c < bestCost || (c == bestCost && e < best) {
			best = e
			bestCost = c
		}
	}

	return best
}
