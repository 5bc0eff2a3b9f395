package domain

import "testing"

import "github.com/stretchr/testify/assert"

func TestNewValueRangeNormalizes(t *testing.T) {
	r := NewValueRange(10, 2)
	assert.Equal(t, int64(2), r.Min)
	assert.Equal(t, int64(10), r.Max)
}

func TestValueRangeLength(t *testing.T) {
	r := NewValueRange(5, 12)
	assert.Equal(t, int64(7), r.Length())
}

func TestValueRangeContains(t *testing.T) {
	outer := NewValueRange(0, 100)
	inner := NewValueRange(10, 20)
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.ContainsScalar(50))
	assert.False(t, outer.ContainsScalar(200))
}

func TestValueRangeIntersectIsIdempotent(t *testing.T) {
	r := NewValueRange(7, 12)
	assert.Equal(t, r, r.Intersect(r))
}

func TestValueRangeIntersectNarrows(t *testing.T) {
	a := NewValueRange(0, 10)
	b := NewValueRange(5, 20)
	got := a.Intersect(b)
	assert.Equal(t, ValueRange{Min: 5, Max: 10}, got)
}

func TestValueRangeShift(t *testing.T) {
	r := NewValueRange(3, 5)
	assert.Equal(t, ValueRange{Min: 8, Max: 10}, r.Shift(5))
}
