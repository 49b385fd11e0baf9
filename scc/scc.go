package scc

import "github.com/katalvlaran/revpref/core"

// Partition labels every vertex with its component id: 0 for single-vertex
// (trivial) components, 1..Count for components of size ≥ 2.
type Partition struct {
	// Comp[v] is vertex v's component label.
	Comp []int

	// Count is the number of nontrivial components.
	Count int
}

// walker holds the iterative Tarjan state shared by both variants.
type walker struct {
	g        *core.Graph
	minVert  int              // only vertices ≥ minVert participate
	skipEdge func(e int) bool // nil ⇒ all edges participate

	index   []int // discovery index per vertex, -1 = unvisited
	lowlink []int
	onStack []bool
	stack   []int
	next    int

	onComponent func(members []int)
}

// frame is one explicit DFS stack entry: vertex plus its out-edge cursor.
type frame struct {
	v      int
	cursor int
}

// Components returns the full Tarjan partition of g.
func Components(g *core.Graph) Partition {
	part := Partition{Comp: make([]int, g.N)}
	w := &walker{g: g}
	w.onComponent = func(members []int) {
		if len(members) < 2 {
			return // trivial: labelled 0
		}
		part.Count++
		var v int
		for _, v = range members {
			part.Comp[v] = part.Count
		}
	}
	w.run()

	return part
}

// MinVertex returns the nontrivial component with the smallest minimum
// vertex among vertices ≥ start, ignoring edges rejected by skipEdge
// (skipEdge may be nil). The minimum vertex is placed last; nil when no
// nontrivial component exists in the restriction.
func MinVertex(g *core.Graph, start int, skipEdge func(e int) bool) []int {
	var best []int
	var bestMin = -1
	w := &walker{g: g, minVert: start, skipEdge: skipEdge}
	w.onComponent = func(members []int) {
		if len(members) < 2 {
			return
		}
		m := minOf(members)
		if bestMin < 0 || m < bestMin {
			best = append(best[:0], members...)
			bestMin = m
		}
	}
	w.run()
	if best == nil {
		return nil
	}

	// Rotate the minimum vertex into the final slot.
	var i, v int
	for i, v = range best {
		if v == bestMin {
			best[i] = best[len(best)-1]
			best[len(best)-1] = bestMin

			break
		}
	}

	return best
}

// run performs the iterative Tarjan walk over every eligible root.
func (w *walker) run() {
	n := w.g.N
	w.index = make([]int, n)
	w.lowlink = make([]int, n)
	w.onStack = make([]bool, n)
	var v int
	for v = 0; v < n; v++ {
		w.index[v] = -1
	}
	for v = w.minVert; v < n; v++ {
		if w.index[v] < 0 {
			w.visit(v)
		}
	}
}

// visit runs one DFS tree rooted at v with an explicit frame stack.
func (w *walker) visit(root int) {
	frames := []frame{{v: root}}
	w.discover(root)

	var f *frame
	var e, head int
	for len(frames) > 0 {
		f = &frames[len(frames)-1]
		lo, hi := w.g.OutEdges(f.v)

		// 1) Advance the cursor until an eligible, unvisited head is found.
		advanced := false
		for f.cursor < hi-lo {
			e = lo + f.cursor
			f.cursor++
			head = w.g.Head[e]
			if head < w.minVert || (w.skipEdge != nil && w.skipEdge(e)) {
				continue
			}
			if w.index[head] < 0 {
				// Tree edge: descend.
				w.discover(head)
				frames = append(frames, frame{v: head})
				advanced = true

				break
			}
			if w.onStack[head] && w.index[head] < w.lowlink[f.v] {
				w.lowlink[f.v] = w.index[head]
			}
		}
		if advanced {
			continue
		}

		// 2) All edges done: pop the frame, fold lowlink into the parent,
		//    and emit a component when v is a root.
		if w.lowlink[f.v] == w.index[f.v] {
			w.popComponent(f.v)
		}
		done := f.v
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := &frames[len(frames)-1]
			if w.lowlink[done] < w.lowlink[parent.v] {
				w.lowlink[parent.v] = w.lowlink[done]
			}
		}
	}
}

// discover assigns discovery metadata and pushes v on the component stack.
func (w *walker) discover(v int) {
	w.index[v] = w.next
	w.lowlink[v] = w.next
	w.next++
	w.stack = append(w.stack, v)
	w.onStack[v] = true
}

// popComponent pops the component rooted at v and hands it to the sink.
func (w *walker) popComponent(root int) {
	var members []int
	var v int
	for {
		v = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.onStack[v] = false
		members = append(members, v)
		if v == root {
			break
		}
	}
	w.onComponent(members)
}

func minOf(xs []int) int {
	m := xs[0]
	var x int
	for _, x = range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}
