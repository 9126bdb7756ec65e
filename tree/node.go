package tree

import "github.com/fredericlemoine/bitset"

// NilID marks a node that has not yet been assigned an id by a Tree.
const NilID = -1

// Node is a single vertex of a rooted tree. Nodes are addressed by a
// stable integer id in [0, N) and never move once created: the DP
// engine in package pd indexes directly into per-node slices by id.
type Node struct {
	id       int
	name     string // taxon label; only meaningful when the node is a leaf
	parent   *Node
	children []*Node
	inEdge   *Edge // edge entering this node from its parent; nil for the root

	clusterSize int
	clusterBits *bitset.BitSet // leaves beneath this node, indexed by tip-index
}

// ID returns the node's stable identifier.
func (n *Node) ID() int { return n.id }

// Name returns the taxon label. Only meaningful for leaves.
func (n *Node) Name() string { return n.name }

// SetName sets the taxon label.
func (n *Node) SetName(name string) { n.name = name }

// Tip returns true if the node has no children.
func (n *Node) Tip() bool { return len(n.children) == 0 }

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion (left-to-right) order.
func (n *Node) Children() []*Node { return n.children }

// InEdge returns the edge entering this node from its parent, or nil for the root.
func (n *Node) InEdge() *Edge { return n.inEdge }

// ClusterSize returns the number of leaves in the subtree rooted at this node.
func (n *Node) ClusterSize() int { return n.clusterSize }

// addChild appends child to n's child list and wires the connecting edge.
func (n *Node) addChild(child *Node, e *Edge) {
	n.children = append(n.children, child)
	child.parent = n
	child.inEdge = e
	e.left = n
	e.right = child
}
