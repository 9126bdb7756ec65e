package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoldenTree(t *testing.T) {
	tr, err := Parse([]byte("(((A:1,B:2):2,C:7):4,(D:1,E:2):5);\n"))
	require.NoError(t, err)

	require.Equal(t, 5, tr.LeafCount())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, tr.SortedTips())

	root := tr.Root()
	require.Len(t, root.Children(), 2)
	left, right := root.Children()[0], root.Children()[1]
	assert.Equal(t, 4.0, left.InEdge().Length())
	assert.Equal(t, 5.0, right.InEdge().Length())
	assert.Equal(t, 3, left.ClusterSize())
	assert.Equal(t, 2, right.ClusterSize())
}

func TestParseOnlyFirstLine(t *testing.T) {
	tr, err := Parse([]byte("(A:1,B:2);\n(C:1,D:2);\n"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, tr.SortedTips())
}

func TestParseRejectsMissingSemicolon(t *testing.T) {
	_, err := Parse([]byte("(A:1,B:2)"))
	assert.Error(t, err)
}

func TestParseRejectsNegativeLength(t *testing.T) {
	_, err := Parse([]byte("(A:1,B:-2);"))
	assert.Error(t, err)
}

func TestParseRejectsNonNumericLength(t *testing.T) {
	_, err := Parse([]byte("(A:1,B:abc);"))
	assert.Error(t, err)
}

func TestParseRejectsUnlabeledLeaf(t *testing.T) {
	_, err := Parse([]byte("(:1,B:2);"))
	assert.Error(t, err)
}

func TestParseSingleLeaf(t *testing.T) {
	tr, err := Parse([]byte("(A:0);"))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.LeafCount())
	assert.True(t, tr.IsLeaf(tr.RootID()))
}

func TestNewickRoundTrip(t *testing.T) {
	tr, err := Parse([]byte("(A:1,B:2);"))
	require.NoError(t, err)
	assert.Equal(t, "(A:1,B:2);", tr.Newick())
}
