package rangecache

// Interval is a half-open byte range [Start, End) within a file.
//
// An interval with End <= Start is empty. The member offsets of a non-empty
// interval are Start through End-1 inclusive.
type Interval struct {
	Start int64
	End   int64
}

// Len returns the number of bytes the interval spans, or 0 when empty.
func (iv Interval) Len() int64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Contains reports whether the byte offset p lies within the interval.
func (iv Interval) Contains(p int64) bool {
	return p >= iv.Start && p < iv.End
}

// ContainsInterval reports whether o is non-empty and lies entirely within
// the receiver, i.e. both its first and last member offsets do.
func (iv Interval) ContainsInterval(o Interval) bool {
	return o.Len() > 0 && iv.Contains(o.Start) && iv.Contains(o.End-1)
}

// Intersects reports whether o is non-empty and at least one of its member
// endpoints (first or last offset) lies within the receiver.
//
// Intersects is not symmetric: it is false when the receiver lies strictly
// inside o. Use [Interval.Overlaps] for the symmetric test.
func (iv Interval) Intersects(o Interval) bool {
	return o.Len() > 0 && (iv.Contains(o.Start) || iv.Contains(o.End-1))
}

// Overlaps reports whether the two intervals share at least one byte offset.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < iv.End && o.Start < o.End && iv.Start < o.End && o.Start < iv.End
}

// Intersection returns the range of offsets shared by both intervals.
// The result is empty when they do not overlap.
func (iv Interval) Intersection(o Interval) Interval {
	r := Interval{Start: max(iv.Start, o.Start), End: min(iv.End, o.End)}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Midpoint returns the integer midpoint of the interval, or Start when the
// interval is empty.
func (iv Interval) Midpoint() int64 {
	if iv.End <= iv.Start {
		return iv.Start
	}
	return iv.Start + (iv.End-iv.Start)/2
}

// absDiff returns the absolute distance between two offsets.
func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
