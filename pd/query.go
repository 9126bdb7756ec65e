package pd

import (
	"fmt"
	"math"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Engine) taxa(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = e.tv.Taxon(id)
	}
	return out
}

// Leaves returns the number of taxa in the tree.
func (e *Engine) Leaves() int { return e.tv.LeafCount() }

// ClusterSize returns the number of leaves beneath node id, or -1 if
// id is out of range.
func (e *Engine) ClusterSize(id int) int {
	ids := e.tv.NodeIDs()
	if id < 0 || id >= len(ids) {
		return -1
	}
	return e.tv.ClusterSize(id)
}

// NodeCount returns the total number of nodes in the underlying tree.
func (e *Engine) NodeCount() int { return len(e.tv.NodeIDs()) }

// MinPD returns the minimum PD over all k-leaf subsets, clamped so
// that k>Leaves() collapses to the whole-tree result and k=0 is 0.
func (e *Engine) MinPD(k int) float64 {
	idx := clamp(k, 0, e.Leaves())
	return e.min.bar[e.tv.RootID()][idx].value
}

// NormMinPD returns the minimum normalized PD over all k-leaf subsets.
func (e *Engine) NormMinPD(k int) float64 {
	idx := clamp(k, 0, e.Leaves())
	return e.min.hat[e.tv.RootID()][idx].value
}

// MinPDSet returns a witness achieving MinPD(k).
func (e *Engine) MinPDSet(k int) []string {
	idx := clamp(k, 0, e.Leaves())
	return e.taxa(e.min.barSet[e.tv.RootID()][idx])
}

// NormMinPDSet returns a witness achieving NormMinPD(k).
func (e *Engine) NormMinPDSet(k int) []string {
	idx := clamp(k, 0, e.Leaves())
	return e.taxa(e.min.hatSet[e.tv.RootID()][idx])
}

// MaxPD returns the maximum PD over all k-leaf subsets. k=0 is
// treated as k=1 (there is no size-0 "maximal" subset worth asking
// for); k>Leaves() collapses to the whole-tree result.
func (e *Engine) MaxPD(k int) float64 {
	idx := clamp(k, 1, e.Leaves())
	return e.max.bar[e.tv.RootID()][idx].value
}

// NormMaxPD returns the maximum normalized PD over all k-leaf subsets.
//
// The source's clamp of max(k, n-1) for this query is treated as a
// bug; this implementation clamps to min(k,n), symmetric with
// NormMinPD.
func (e *Engine) NormMaxPD(k int) float64 {
	idx := clamp(k, 0, e.Leaves())
	return e.max.hat[e.tv.RootID()][idx].value
}

// MaxPDSet returns a witness achieving MaxPD(k).
func (e *Engine) MaxPDSet(k int) []string {
	idx := clamp(k, 1, e.Leaves())
	return e.taxa(e.max.barSet[e.tv.RootID()][idx])
}

// NormMaxPDSet returns a witness achieving NormMaxPD(k).
func (e *Engine) NormMaxPDSet(k int) []string {
	idx := clamp(k, 0, e.Leaves())
	return e.taxa(e.max.hatSet[e.tv.RootID()][idx])
}

// genPD scans hat[root][k] for k in [3, n] and returns the op-extremal
// finite, nonzero value and its witness. Trees with fewer than 3 taxa
// return (0, nil) — not an error, just nothing to report.
func (e *Engine) genPD(tab *extremalTables) (float64, []string) {
	n := e.Leaves()
	if n < 3 {
		return 0, nil
	}
	root := e.tv.RootID()
	best := sentinel(tab.op)
	var bestSet []int
	found := false
	for k := 3; k <= n; k++ {
		c := tab.hat[root][k]
		if !c.ok || c.value == 0 || math.IsInf(c.value, 0) {
			continue
		}
		if !found || better(tab.op, c.value, best) {
			best = c.value
			bestSet = tab.hatSet[root][k]
			found = true
		}
	}
	if !found {
		return 0, nil
	}
	return best, e.taxa(bestSet)
}

// MinGenPD returns the minimal normalized PD over all feasible k>=3,
// and its witness.
func (e *Engine) MinGenPD() (float64, []string) { return e.genPD(e.min) }

// MaxGenPD returns the maximal normalized PD over all feasible k>=3,
// and its witness.
func (e *Engine) MaxGenPD() (float64, []string) { return e.genPD(e.max) }

// AvgPD returns the arithmetic mean of PD(S) over every k-leaf subset
// S of the tree's taxa.
func (e *Engine) AvgPD(k int) float64 {
	idx := clamp(k, 1, e.Leaves())
	return e.avg.alpha[e.tv.RootID()][idx]
}

// PDAtNode returns bar[v][k].value for the given comparator, clamped
// to k<=cluster_size(v), for internal-node queries (e.g. the stats
// command). v must be a valid node id.
func (e *Engine) PDAtNode(v, k int, op Comparator) (float64, error) {
	ids := e.tv.NodeIDs()
	if v < 0 || v >= len(ids) {
		return 0, fmt.Errorf("pd: node id %d out of range", v)
	}
	idx := clamp(k, 0, e.tv.ClusterSize(v))
	tab := e.min
	if op == Max {
		tab = e.max
	}
	return tab.bar[v][idx].value, nil
}

// ClusterLeaves returns the taxon names beneath node v, an alternate,
// bitset-backed witness-set encoding independent of the DP witness
// slices in extremalTables. v must be a valid node id.
func (e *Engine) ClusterLeaves(v int) ([]string, error) {
	ids := e.tv.NodeIDs()
	if v < 0 || v >= len(ids) {
		return nil, fmt.Errorf("pd: node id %d out of range", v)
	}
	return e.tv.ClusterLeaves(v), nil
}

// KResult is one row of a Range scan, as printed by the CLI's
// all_min/all_max subcommands.
type KResult struct {
	K       int
	PD      float64
	NormPD  float64
	Set     []string
	NormSet []string
}

// Range returns PD/normPD (and witnesses) for every k in [lo, hi]
// under the given comparator, clamped to [0, Leaves()]. This is a
// thin convenience over the already-precomputed root row: no new DP
// runs.
func (e *Engine) Range(op Comparator, lo, hi int) []KResult {
	lo = clamp(lo, 0, e.Leaves())
	hi = clamp(hi, 0, e.Leaves())
	out := make([]KResult, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		r := KResult{K: k}
		if op == Min {
			r.PD, r.NormPD = e.MinPD(k), e.NormMinPD(k)
			r.Set, r.NormSet = e.MinPDSet(k), e.NormMinPDSet(k)
		} else {
			r.PD, r.NormPD = e.MaxPD(k), e.NormMaxPD(k)
			r.Set, r.NormSet = e.MaxPDSet(k), e.NormMaxPDSet(k)
		}
		out = append(out, r)
	}
	return out
}
