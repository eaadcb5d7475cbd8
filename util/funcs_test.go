package util

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"strconv"
	"testing"
)

func TestConcatIter(t *testing.T) {
	all := slices.Collect(ConcatIter(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3})))
	assert.Equal(t, []int{1, 2, 3}, all)
}

func TestConcatIterStopsEarly(t *testing.T) {
	var seen []int
	for v := range ConcatIter(slices.Values([]int{1, 2}), slices.Values([]int{3, 4})) {
		seen = append(seen, v)
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestMapIter(t *testing.T) {
	strs := slices.Collect(MapIter(slices.Values([]int{1, 2}), strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, strs)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
	assert.Empty(t, slices.Collect(Reverse([]int(nil))))
}
