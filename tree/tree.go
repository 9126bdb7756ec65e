/*
Package tree implements the rooted, arena-indexed binary tree consumed
by the phylogenetic-diversity engine (package pd). It plays the
"collaborator" role described by the engine's external interface:
parsing, cluster-size bookkeeping, postorder traversal and
binarization live here so the DP engine can treat a tree as a fixed,
read-only, id-addressed structure.
*/
package tree

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/fredericlemoine/bitset"
)

// Tree is a rooted tree with nodes addressed by stable integer ids in
// [0, N). It is built once (by NewNode/ConnectNodes, typically driven
// by the Newick parser) and then frozen by ReinitIndexes, which
// computes the derived indices the DP engine relies on: cluster
// sizes, postorder, tip-name index, cluster bitsets.
type Tree struct {
	nodes     []*Node
	root      *Node
	tipIndex  map[string]uint
	tipNames  []string // bitset index -> taxon name, inverse of tipIndex
	postorder []*Node
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		nodes:    make([]*Node, 0, 64),
		tipIndex: make(map[string]uint),
	}
}

// NewNode allocates a fresh, detached node and registers it with the
// tree, assigning it the next available id.
func (t *Tree) NewNode() *Node {
	n := &Node{id: len(t.nodes), clusterSize: 0}
	t.nodes = append(t.nodes, n)
	return n
}

// SetRoot sets the tree's root. Does not validate that the node
// belongs to the tree.
func (t *Tree) SetRoot(r *Node) { t.root = r }

// Root returns the current root.
func (t *Tree) Root() *Node { return t.root }

// ConnectNodes adds child as a new child of parent, joined by an edge
// of the given length, and returns that edge.
func (t *Tree) ConnectNodes(parent, child *Node, length float64) *Edge {
	e := &Edge{length: length}
	parent.addChild(child, e)
	return e
}

// Nodes returns every node of the tree, in id order.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Tips returns every leaf of the tree, in id order.
func (t *Tree) Tips() []*Node {
	tips := make([]*Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		if n.Tip() {
			tips = append(tips, n)
		}
	}
	return tips
}

// SortedTips returns the tip names of the tree in lexicographic order.
// Bitset indexes assigned by ReinitIndexes follow this order.
func (t *Tree) SortedTips() []string {
	names := make([]string, 0, len(t.nodes))
	for _, n := range t.Tips() {
		names = append(names, n.name)
	}
	sort.Strings(names)
	return names
}

// TipIndex returns the bitset index of the named tip. Requires
// ReinitIndexes to have been called.
func (t *Tree) TipIndex(name string) (uint, error) {
	if len(t.tipIndex) == 0 {
		return 0, errors.New("tree: tip index not initialized, call ReinitIndexes")
	}
	idx, ok := t.tipIndex[name]
	if !ok {
		return 0, fmt.Errorf("tree: no tip named %q", name)
	}
	return idx, nil
}

// ReinitIndexes recomputes every derived index (cluster sizes,
// postorder, tip-name index, cluster bitsets) from the current root.
// It must be called once after the tree is fully built, and again
// after any structural change such as Binarize.
func (t *Tree) ReinitIndexes() error {
	if t.root == nil {
		return errors.New("tree: no root set")
	}
	names := t.SortedTips()
	t.tipIndex = make(map[string]uint, len(names))
	for i, name := range names {
		if _, dup := t.tipIndex[name]; dup {
			return fmt.Errorf("tree: duplicate taxon label %q", name)
		}
		t.tipIndex[name] = uint(i)
	}
	t.tipNames = names
	t.postorder = make([]*Node, 0, len(t.nodes))
	nbits := uint(len(names))
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n.inEdge != nil {
			if err := validateWeight(n.inEdge.length); err != nil {
				return fmt.Errorf("tree: node %d: %w", n.id, err)
			}
		}
		if n.Tip() {
			n.clusterSize = 1
			n.clusterBits = bitset.New(nbits)
			idx, err := t.TipIndex(n.name)
			if err != nil {
				return err
			}
			n.clusterBits.Set(idx)
		} else {
			n.clusterSize = 0
			n.clusterBits = bitset.New(nbits)
			for _, c := range n.children {
				if err := walk(c); err != nil {
					return err
				}
				n.clusterSize += c.clusterSize
				n.clusterBits = n.clusterBits.Union(c.clusterBits)
			}
		}
		t.postorder = append(t.postorder, n)
		return nil
	}
	if err := walk(t.root); err != nil {
		return err
	}
	return nil
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.New("edge length is not a finite number")
	}
	if w < 0 {
		return fmt.Errorf("edge length %g is negative", w)
	}
	return nil
}

// IsBinary reports whether every internal node has exactly two
// children.
func (t *Tree) IsBinary() bool {
	for _, n := range t.nodes {
		if !n.Tip() && len(n.children) != 2 {
			return false
		}
	}
	return true
}

// The remaining methods implement the fixed tree-collaborator
// interface (pd.TreeView): id-addressed accessors the DP engine reads
// from, never mutating the tree.

// NodeIDs returns every node id, in [0, N).
func (t *Tree) NodeIDs() []int {
	ids := make([]int, len(t.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// RootID returns the root's id.
func (t *Tree) RootID() int { return t.root.id }

// IsLeaf reports whether node id is a leaf.
func (t *Tree) IsLeaf(id int) bool { return t.nodes[id].Tip() }

// Children returns the two children of internal node id, in stable
// (left, right) order. Panics if id is not binary; callers must
// Binarize first.
func (t *Tree) Children(id int) (int, int) {
	n := t.nodes[id]
	if len(n.children) != 2 {
		panic(fmt.Sprintf("tree: node %d has %d children, expected 2 (binarize first)", id, len(n.children)))
	}
	return n.children[0].id, n.children[1].id
}

// LeafCount returns the total number of leaves in the tree.
func (t *Tree) LeafCount() int { return t.root.clusterSize }

// ClusterSize returns the number of leaves beneath node id.
func (t *Tree) ClusterSize(id int) int { return t.nodes[id].clusterSize }

// ClusterLeaves returns the taxon names of every leaf beneath node id,
// in sorted order, decoded directly from that node's cluster bitset
// rather than walked from the tree shape.
func (t *Tree) ClusterLeaves(id int) []string {
	n := t.nodes[id]
	out := make([]string, 0, n.clusterSize)
	for i, name := range t.tipNames {
		if n.clusterBits.Test(uint(i)) {
			out = append(out, name)
		}
	}
	return out
}

// PostorderIDs returns node ids with children preceding parents.
func (t *Tree) PostorderIDs() []int {
	ids := make([]int, len(t.postorder))
	for i, n := range t.postorder {
		ids[i] = n.id
	}
	return ids
}

// EdgeWeightInto returns the length of the edge entering node id from
// its parent; 0 for the root.
func (t *Tree) EdgeWeightInto(id int) float64 {
	n := t.nodes[id]
	if n.inEdge == nil {
		return 0
	}
	return n.inEdge.length
}

// Taxon returns the taxon label of node id. Only meaningful for leaves.
func (t *Tree) Taxon(id int) string { return t.nodes[id].name }

// Newick serializes the tree to Newick format, terminated by a
// semicolon.
func (t *Tree) Newick() string {
	var buf bytes.Buffer
	t.writeNewick(t.root, &buf)
	buf.WriteString(";")
	return buf.String()
}

func (t *Tree) writeNewick(n *Node, buf *bytes.Buffer) {
	if !n.Tip() {
		buf.WriteString("(")
		for i, c := range n.children {
			if i > 0 {
				buf.WriteString(",")
			}
			t.writeNewick(c, buf)
		}
		buf.WriteString(")")
	}
	buf.WriteString(n.name)
	if n.inEdge != nil {
		buf.WriteString(":")
		buf.WriteString(strconv.FormatFloat(n.inEdge.length, 'g', -1, 64))
	}
}

// String returns the Newick representation of the tree.
func (t *Tree) String() string { return t.Newick() }
