package pd

import "math/big"

// BinomialTable precomputes C(n,k) for 0<=k<=n<=N via Pascal's
// recurrence. Entries are arbitrary-precision integers: C(leaves, k)
// can exceed the range of a 64-bit integer well before leaves reaches
// a few hundred taxa, and the average-PD recurrence (package-internal
// average.go) needs exact binomial coefficients even when it
// ultimately accumulates a floating-point sum.
type BinomialTable struct {
	n int
	c [][]*big.Int
}

// NewBinomialTable builds the table for 0<=k<=n<=N.
func NewBinomialTable(n int) *BinomialTable {
	c := make([][]*big.Int, n+1)
	for i := 0; i <= n; i++ {
		c[i] = make([]*big.Int, i+1)
		c[i][0] = big.NewInt(1)
		c[i][i] = big.NewInt(1)
		for k := 1; k < i; k++ {
			c[i][k] = new(big.Int).Add(c[i-1][k-1], c[i-1][k])
		}
	}
	return &BinomialTable{n: n, c: c}
}

// C returns C(n,k), or 0 if k is outside [0,n] or n is outside [0,N].
func (b *BinomialTable) C(n, k int) *big.Int {
	if n < 0 || n > b.n || k < 0 || k > n {
		return big.NewInt(0)
	}
	return b.c[n][k]
}

// Float returns C(n,k) rounded to the nearest float64.
func (b *BinomialTable) Float(n, k int) float64 {
	f := new(big.Float).SetInt(b.C(n, k))
	v, _ := f.Float64()
	return v
}
