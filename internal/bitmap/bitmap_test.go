package bitmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	b := New()
	require.True(t, b.IsEmpty())

	b.Add(3)
	b.Add(1)
	b.Add(3)

	assert.False(t, b.IsEmpty())
	assert.Equal(t, uint64(2), b.Cardinality())
	assert.True(t, b.Contains(1))
	assert.False(t, b.Contains(2))
	assert.Equal(t, []uint32{1, 3}, slices.Collect(b.Iterator()))
}

func TestAnd(t *testing.T) {
	a := Of(1, 2, 3, 4)
	a.And(Of(2, 4, 6))

	assert.Equal(t, []uint32{2, 4}, slices.Collect(a.Iterator()))

	a.And(Of(5))
	assert.True(t, a.IsEmpty())
}

func TestClone(t *testing.T) {
	a := Of(1, 2)
	c := a.Clone()
	c.Add(9)

	assert.False(t, a.Contains(9))
	assert.True(t, c.Contains(9))
}

func TestIteratorStops(t *testing.T) {
	var got []uint32
	for row := range Of(1, 2, 3, 4).Iterator() {
		got = append(got, row)
		if row == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, got)
}
