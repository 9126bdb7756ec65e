package tree

import "errors"

// Binarize resolves every multifurcation (node with more than two
// children) into a cascade of binary nodes joined by zero-weight
// edges, so the result satisfies IsBinary. For a node v with children
// c1, c2, ... cm (m >= 3) it splices in a fresh node v' on the edge
// (v, c1): v' becomes v's child in c1's place, with a new zero-weight
// incoming edge, and c1 and c2 are re-parented under v' keeping their
// original edge lengths. v then has one fewer child and is
// re-inspected; v' is binary and left alone. Existing edge weights and
// taxon labels are never perturbed.
//
// ReinitIndexes is called on t before returning, so cluster sizes,
// postorder and the tip index reflect the binarized shape.
func Binarize(t *Tree) error {
	if t.root == nil {
		return errors.New("tree: no root set")
	}
	queue := make([]*Node, 0, len(t.nodes))
	queue = append(queue, t.nodes...)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if len(v.children) <= 2 {
			continue
		}
		c1, c2 := v.children[0], v.children[1]
		vPrime := t.NewNode()
		zero := &Edge{length: 0}

		v.children = append([]*Node{vPrime}, v.children[2:]...)
		vPrime.parent = v
		vPrime.inEdge = zero
		zero.left, zero.right = v, vPrime

		vPrime.children = []*Node{c1, c2}
		c1.parent, c2.parent = vPrime, vPrime
		c1.inEdge.left, c2.inEdge.left = vPrime, vPrime

		queue = append(queue, v, vPrime)
	}
	return t.ReinitIndexes()
}
