/*
Package pd implements the phylogenetic-diversity dynamic-programming
engine: bottom-up passes over a rooted binary tree (one per comparator,
plus one for the average) that compute, for every node and every
feasible subset size k, the extremal (min/max) absolute and normalized
PD of a k-leaf subset, its witness set, and the average PD over all
k-subsets. Each extremal pass fills the absolute and normalized tables
jointly.

The engine treats the tree as a fixed, read-only collaborator
(TreeView) and never mutates it; parsing, tree surgery and
binarization are the caller's responsibility (package tree).
*/
package pd

import (
	"errors"
	"fmt"
)

// TreeView is the fixed interface the engine consumes from its tree
// collaborator. It is implemented by *tree.Tree; the engine never
// calls any mutating method on it.
type TreeView interface {
	NodeIDs() []int
	RootID() int
	IsLeaf(id int) bool
	Children(id int) (int, int)
	LeafCount() int
	ClusterSize(id int) int
	ClusterLeaves(id int) []string
	PostorderIDs() []int
	EdgeWeightInto(id int) float64
	Taxon(id int) string
	IsBinary() bool
}

// Comparator selects whether the extremal DP engine computes minimal
// or maximal PD.
type Comparator int

const (
	Min Comparator = iota
	Max
)

func (op Comparator) String() string {
	if op == Min {
		return "min"
	}
	return "max"
}

// Engine holds every table precomputed at construction time: the
// extremal tables for both comparators and the average-PD table. All
// of it is read-only once NewEngine returns, so an *Engine is safe to
// share across goroutines without synchronization: construction is
// the only mutating phase.
type Engine struct {
	tv    TreeView
	binom *BinomialTable

	min *extremalTables
	max *extremalTables
	avg *averageTables
}

// NewEngine builds the full set of DP tables over tv: the min and max
// extremal tables (with witnesses) and the average-PD table. tv must
// already be binary (callers run tree.Binarize beforehand); NewEngine
// never binarizes itself.
func NewEngine(tv TreeView) (*Engine, error) {
	if !tv.IsBinary() {
		return nil, errors.New("pd: tree is not binary; binarize it before building the engine")
	}
	n := tv.LeafCount()
	if n == 0 {
		return nil, errors.New("pd: tree has no leaves")
	}

	minTab, err := buildExtremal(tv, Min)
	if err != nil {
		return nil, fmt.Errorf("pd: building min tables: %w", err)
	}
	maxTab, err := buildExtremal(tv, Max)
	if err != nil {
		return nil, fmt.Errorf("pd: building max tables: %w", err)
	}
	binom := NewBinomialTable(n)
	avgTab, err := buildAverage(tv, binom)
	if err != nil {
		return nil, fmt.Errorf("pd: building average table: %w", err)
	}

	return &Engine{
		tv:    tv,
		binom: binom,
		min:   minTab,
		max:   maxTab,
		avg:   avgTab,
	}, nil
}
