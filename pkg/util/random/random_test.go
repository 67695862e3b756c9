package random

import (
	"sort"
	"testing"

	"gotest.tools/assert"
)

func TestSequence(t *testing.T) {
	r := New(1)
	assert.Equal(t, r.Next(), uint32(16807))
	assert.Equal(t, r.Next(), uint32(282475249))
	assert.Equal(t, r.Next(), uint32(1622650073))

	a, b := New(301), New(301)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestDegenerateSeed(t *testing.T) {
	assert.Equal(t, New(0).Next(), New(1).Next())
	assert.Equal(t, New(2147483647).Next(), New(1).Next())
}

func TestUniform(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		v := r.Uniform(10)
		assert.Assert(t, 0 <= v && v < 10, v)
	}
}

func TestPerm(t *testing.T) {
	p := New(42).Perm(500)
	assert.Equal(t, len(p), 500)
	assert.DeepEqual(t, p, New(42).Perm(500))

	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, v, i)
	}
	assert.Equal(t, len(New(1).Perm(0)), 0)
}
