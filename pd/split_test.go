package pd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitsRange(t *testing.T) {
	var got [][2]int
	splits(3, 2, 2, func(l, r int) { got = append(got, [2]int{l, r}) })
	assert.Equal(t, [][2]int{{1, 2}, {2, 1}}, got)
}

func TestSplitsClampsToZero(t *testing.T) {
	var got [][2]int
	splits(1, 0, 5, func(l, r int) { got = append(got, [2]int{l, r}) })
	assert.Equal(t, [][2]int{{0, 1}}, got)
}

func TestSplitsFullRange(t *testing.T) {
	var got [][2]int
	splits(2, 2, 2, func(l, r int) { got = append(got, [2]int{l, r}) })
	assert.Equal(t, [][2]int{{0, 2}, {1, 1}, {2, 0}}, got)
}
