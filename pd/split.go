package pd

// splits calls yield once for every pair (l, r) with l+r=k, 0<=l<=lmax,
// 0<=r<=rmax, in increasing order of l. It walks the single range
// l in [max(0, k-rmax), min(k, lmax)]: tight enough to keep total DP
// work at O(cluster(x)*cluster(y)) per node.
//
// The enumeration order fixes the tie-break rule used throughout the
// DP engine: of several candidates reaching the same extremal value,
// the first one yielded wins.
func splits(k, lmax, rmax int, yield func(l, r int)) {
	lo := k - rmax
	if lo < 0 {
		lo = 0
	}
	hi := k
	if lmax < hi {
		hi = lmax
	}
	for l := lo; l <= hi; l++ {
		yield(l, k-l)
	}
}
