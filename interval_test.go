package rangecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(10), Interval{Start: 5, End: 15}.Len())
	assert.Equal(t, int64(0), Interval{Start: 5, End: 5}.Len())
	assert.Equal(t, int64(0), Interval{Start: 15, End: 5}.Len())
}

func TestIntervalContains(t *testing.T) {
	t.Parallel()

	iv := Interval{Start: 10, End: 20}

	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(19))
	assert.False(t, iv.Contains(9))
	assert.False(t, iv.Contains(20), "End is exclusive")
}

func TestIntervalContainsInterval(t *testing.T) {
	t.Parallel()

	iv := Interval{Start: 10, End: 20}

	assert.True(t, iv.ContainsInterval(Interval{Start: 12, End: 18}))
	assert.True(t, iv.ContainsInterval(Interval{Start: 10, End: 20}), "an interval contains itself")
	assert.False(t, iv.ContainsInterval(Interval{Start: 12, End: 21}))
	assert.False(t, iv.ContainsInterval(Interval{Start: 9, End: 18}))
	assert.False(t, iv.ContainsInterval(Interval{Start: 15, End: 15}), "empty intervals are never contained")
}

func TestIntervalIntersects(t *testing.T) {
	t.Parallel()

	iv := Interval{Start: 10, End: 20}

	assert.True(t, iv.Intersects(Interval{Start: 5, End: 12}))
	assert.True(t, iv.Intersects(Interval{Start: 18, End: 25}))
	assert.True(t, iv.Intersects(Interval{Start: 12, End: 18}))
	assert.False(t, iv.Intersects(Interval{Start: 0, End: 5}))
	assert.False(t, iv.Intersects(Interval{Start: 20, End: 30}), "half-open ranges touching at End do not intersect")
	assert.False(t, iv.Intersects(Interval{Start: 12, End: 12}), "empty intervals never intersect")

	// The test is one-directional: a range strictly containing the
	// receiver has neither member endpoint inside it.
	assert.False(t, iv.Intersects(Interval{Start: 0, End: 100}))
	assert.True(t, Interval{Start: 0, End: 100}.Intersects(iv))
}

func TestIntervalOverlaps(t *testing.T) {
	t.Parallel()

	iv := Interval{Start: 10, End: 20}

	assert.True(t, iv.Overlaps(Interval{Start: 5, End: 12}))
	assert.True(t, iv.Overlaps(Interval{Start: 18, End: 25}))
	assert.True(t, iv.Overlaps(Interval{Start: 0, End: 100}), "Overlaps is symmetric under containment")
	assert.True(t, Interval{Start: 0, End: 100}.Overlaps(iv))
	assert.False(t, iv.Overlaps(Interval{Start: 20, End: 30}))
	assert.False(t, iv.Overlaps(Interval{Start: 0, End: 10}))
	assert.False(t, iv.Overlaps(Interval{Start: 15, End: 15}))
}

func TestIntervalIntersection(t *testing.T) {
	t.Parallel()

	iv := Interval{Start: 10, End: 20}

	assert.Equal(t, Interval{Start: 12, End: 18}, iv.Intersection(Interval{Start: 12, End: 18}))
	assert.Equal(t, Interval{Start: 10, End: 15}, iv.Intersection(Interval{Start: 0, End: 15}))
	assert.Equal(t, Interval{Start: 15, End: 20}, iv.Intersection(Interval{Start: 15, End: 100}))
	assert.Equal(t, int64(0), iv.Intersection(Interval{Start: 30, End: 40}).Len())
}

func TestIntervalMidpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(15), Interval{Start: 10, End: 20}.Midpoint())
	assert.Equal(t, int64(25), Interval{Start: 18, End: 32}.Midpoint())
	assert.Equal(t, int64(7), Interval{Start: 7, End: 7}.Midpoint(), "empty interval midpoint is Start")
	assert.Equal(t, int64(7), Interval{Start: 7, End: 3}.Midpoint())
}
