package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameGenerator(t *testing.T) {
	gen := NewNameGenerator("tmp")

	assert.Equal(t, "tmp0", gen.Generate())
	assert.Equal(t, "tmp1", gen.Generate())
	assert.Equal(t, "tmp2", gen.Generate())

	// Generators with distinct prefixes are independent.
	other := NewNameGenerator("x")
	assert.Equal(t, "x0", other.Generate())
	assert.Equal(t, "tmp3", gen.Generate())
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, 1))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(x int) int { return 2 * x }))
}
