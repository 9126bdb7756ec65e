package pd

import "math"

// cell is one (value, edges) entry of the extremal DP tables.
type cell struct {
	value float64
	edges int
	ok    bool // whether this entry holds a meaningfully-optimized value
}

// extremalTables holds bar/barSet/hat/hatSet for a single comparator,
// indexed [nodeID][k].
type extremalTables struct {
	op     Comparator
	bar    [][]cell
	barSet [][][]int
	hat    [][]cell
	hatSet [][][]int
}

func sentinel(op Comparator) float64 {
	if op == Min {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// better reports whether candidate strictly improves on current under
// op. Strictness is what gives the DP its tie-break rule: the
// first-seen candidate at a given extremal value is kept, later ties
// never overwrite it.
func better(op Comparator, candidate, current float64) bool {
	if op == Min {
		return candidate < current
	}
	return candidate > current
}

// buildExtremal runs the bar/hat recurrence once, bottom-up over tv's
// postorder, for the given comparator.
func buildExtremal(tv TreeView, op Comparator) (*extremalTables, error) {
	n := len(tv.NodeIDs())
	t := &extremalTables{
		op:     op,
		bar:    make([][]cell, n),
		barSet: make([][][]int, n),
		hat:    make([][]cell, n),
		hatSet: make([][][]int, n),
	}

	for _, v := range tv.PostorderIDs() {
		cs := tv.ClusterSize(v)
		t.bar[v] = make([]cell, cs+1)
		t.barSet[v] = make([][]int, cs+1)
		t.hat[v] = make([]cell, cs+1)
		t.hatSet[v] = make([][]int, cs+1)

		// k=0 is always the empty subset: value 0, no edges.
		t.bar[v][0] = cell{value: 0, edges: 0, ok: true}
		t.barSet[v][0] = []int{}
		t.hat[v][0] = cell{value: 0, edges: 0, ok: true}
		t.hatSet[v][0] = []int{}

		if tv.IsLeaf(v) {
			// A single leaf induces no edges yet.
			t.bar[v][1] = cell{value: 0, edges: 0, ok: true}
			t.barSet[v][1] = []int{v}
			// Normalized PD at a leaf is 0/0: undefined, never updated from.
			t.hat[v][1] = cell{value: 0, edges: 0, ok: false}
			t.hatSet[v][1] = nil
			continue
		}

		x, y := tv.Children(v)
		wx, wy := tv.EdgeWeightInto(x), tv.EdgeWeightInto(y)
		lmax, rmax := tv.ClusterSize(x), tv.ClusterSize(y)

		for k := 1; k <= cs; k++ {
			bestVal, bestValEdges := sentinel(op), 0
			var bestValSet []int
			bestNval, bestNvalEdges := sentinel(op), 0
			var bestNvalSet []int
			haveNval := false

			splits(k, lmax, rmax, func(l, r int) {
				bx, by := t.bar[x][l], t.bar[y][r]
				if !bx.ok || !by.ok {
					return
				}
				inclX, inclY := 0, 0
				if l >= 1 {
					inclX = 1
				}
				if r >= 1 {
					inclY = 1
				}
				val := bx.value + float64(inclX)*wx + by.value + float64(inclY)*wy
				edges := bx.edges + by.edges + inclX + inclY

				if better(op, val, bestVal) {
					bestVal = val
					bestValEdges = edges
					bestValSet = concatLeafSets(t.barSet[x][l], t.barSet[y][r])
				}
				if edges > 0 {
					nval := val / float64(edges)
					if !haveNval || better(op, nval, bestNval) {
						bestNval = nval
						bestNvalEdges = edges
						bestNvalSet = concatLeafSets(t.barSet[x][l], t.barSet[y][r])
						haveNval = true
					}
				}
			})

			t.bar[v][k] = cell{value: bestVal, edges: bestValEdges, ok: true}
			t.barSet[v][k] = bestValSet
			t.hat[v][k] = cell{value: bestNval, edges: bestNvalEdges, ok: haveNval}
			t.hatSet[v][k] = bestNvalSet
		}
	}
	return t, nil
}

// concatLeafSets returns the order-preserving concatenation left ⊕ right.
func concatLeafSets(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}
