package pd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeTree is a minimal hand-built TreeView for exercising the DP
// engine without going through package tree's Newick parser.
type fakeTree struct {
	ids       []int
	root      int
	leaf      map[int]bool
	children  map[int][2]int
	cluster   map[int]int
	postorder []int
	weight    map[int]float64
	taxon     map[int]string
}

func (f *fakeTree) NodeIDs() []int               { return f.ids }
func (f *fakeTree) RootID() int                  { return f.root }
func (f *fakeTree) IsLeaf(id int) bool            { return f.leaf[id] }
func (f *fakeTree) Children(id int) (int, int)    { c := f.children[id]; return c[0], c[1] }
func (f *fakeTree) LeafCount() int                { return f.cluster[f.root] }
func (f *fakeTree) ClusterSize(id int) int        { return f.cluster[id] }
func (f *fakeTree) ClusterLeaves(id int) []string { return nil }
func (f *fakeTree) PostorderIDs() []int           { return f.postorder }
func (f *fakeTree) EdgeWeightInto(id int) float64 { return f.weight[id] }
func (f *fakeTree) Taxon(id int) string           { return f.taxon[id] }
func (f *fakeTree) IsBinary() bool                { return true }

// singleLeaf builds the degenerate one-taxon tree: a lone leaf is its
// own root, cluster size 1.
func singleLeaf() *fakeTree {
	return &fakeTree{
		ids:       []int{0},
		root:      0,
		leaf:      map[int]bool{0: true},
		children:  map[int][2]int{},
		cluster:   map[int]int{0: 1},
		postorder: []int{0},
		weight:    map[int]float64{0: 0},
		taxon:     map[int]string{0: "A"},
	}
}

// cherry builds a two-leaf tree (A:2,B:3); with root at id 2.
func cherry() *fakeTree {
	return &fakeTree{
		ids:       []int{0, 1, 2},
		root:      2,
		leaf:      map[int]bool{0: true, 1: true, 2: false},
		children:  map[int][2]int{2: {0, 1}},
		cluster:   map[int]int{0: 1, 1: 1, 2: 2},
		postorder: []int{0, 1, 2},
		weight:    map[int]float64{0: 2, 1: 3, 2: 0},
		taxon:     map[int]string{0: "A", 1: "B"},
	}
}

func TestBuildExtremalSingleLeaf(t *testing.T) {
	tv := singleLeaf()
	tab, err := buildExtremal(tv, Min)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, tab.bar[0][1].value)
	assert.Equal(t, 0, tab.bar[0][1].edges)
	assert.Equal(t, []int{0}, tab.barSet[0][1])
	assert.False(t, tab.hat[0][1].ok)
}

func TestBuildExtremalCherry(t *testing.T) {
	tv := cherry()

	min, err := buildExtremal(tv, Min)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, min.bar[2][1].value, "minimal single-leaf pick is the cheaper pendant edge")
	assert.Equal(t, []int{0}, min.barSet[2][1])
	assert.Equal(t, 5.0, min.bar[2][2].value)
	assert.Equal(t, 2, min.bar[2][2].edges)

	max, err := buildExtremal(tv, Max)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, max.bar[2][1].value, "maximal single-leaf pick is the costlier pendant edge")
	assert.Equal(t, []int{1}, max.barSet[2][1])
	assert.Equal(t, 5.0, max.bar[2][2].value)
}

func TestBetterTieBreakKeepsFirstSeen(t *testing.T) {
	assert.False(t, better(Min, 5, 5))
	assert.True(t, better(Min, 4, 5))
	assert.False(t, better(Max, 5, 5))
	assert.True(t, better(Max, 6, 5))
}
