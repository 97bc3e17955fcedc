//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueKeepsFirstAppearance(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Nil(t, Unique([]int{}))
}

func TestChunkSlice(t *testing.T) {
	got := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	assert.Nil(t, ChunkSlice([]int{}, 2))
	assert.Nil(t, ChunkSlice([]int{1}, 0))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, StringMapKeysIntoSlice(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func TestRoundAndRatio(t *testing.T) {
	assert.Equal(t, 0.3333, Round(1.0/3.0, 4))
	assert.Equal(t, 2.68, Round(2.675000001, 2))
	assert.Equal(t, -0.5, Round(-0.45, 1))
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.False(t, math.IsNaN(Ratio(0, 0)))
	assert.Equal(t, 0.25, Ratio(1, 4))
}

func TestCommas(t *testing.T) {
	assert.Equal(t, "1,234,567", Commas(1234567))
}

func TestStripaccents(t *testing.T) {
	assert.Equal(t, "Marchen", StripaccentsSTR("Märchen"))
	assert.Equal(t, "Dostoevskii", StripaccentsSTR("Dostoevskiĭ"))
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("man"))
	assert.True(t, IsAlpha("café"))
	assert.False(t, IsAlpha("n't"))
	assert.False(t, IsAlpha("well-known"))
	assert.False(t, IsAlpha("1864"))
	assert.False(t, IsAlpha(""))
}
