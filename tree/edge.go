package tree

// NilLength marks an edge whose length has not been set.
const NilLength = -1.0

// Edge represents the branch entering Right from Left, carrying a
// non-negative length. The root has no incoming edge.
type Edge struct {
	length float64
	left   *Node // parent
	right  *Node // child
}

// Length returns the branch length.
func (e *Edge) Length() float64 { return e.length }

// SetLength sets the branch length.
func (e *Edge) SetLength(l float64) { e.length = l }

// Left returns the parent endpoint of the edge.
func (e *Edge) Left() *Node { return e.left }

// Right returns the child endpoint of the edge.
func (e *Edge) Right() *Node { return e.right }
