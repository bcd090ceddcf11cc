package rangecache

import (
	"cmp"
	"slices"
)

// DefaultCapacity is the default upper bound on total cached bytes.
const DefaultCapacity int64 = 5_000_000

// fragment is an immutable cached buffer tagged with the interval of file
// offsets it represents. len(data) always equals iv.Len().
type fragment struct {
	iv   Interval
	data []byte
}

// Cache holds byte ranges previously read from a single file and
// reconstructs requested ranges from them without re-reading the file.
//
// Fragments are kept sorted ascending by interval start. Sorting is the only
// maintained invariant: fragments may overlap, and overlapping fragments are
// neither merged nor split. A new range is only discarded when it is fully
// contained by the fragment at or immediately before its insertion point.
// During reconstruction, overlapping bytes are claimed by the last fragment
// in scan order, subject to the early exit once the destination is full.
//
// A Cache is not safe for concurrent use. All operations complete in bounded
// local computation and hold no locks; callers that share a Cache across
// goroutines must serialize access themselves ([Reader] does this with a
// mutex).
type Cache struct {
	capacity  int64
	fragments []fragment
	size      int64 // sum of all fragment lengths
}

// New returns an empty cache bounded by [DefaultCapacity] unless overridden
// with [WithCapacity].
func New(opts ...Option) *Cache {
	c := &Cache{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Lookup reconstructs the requested range from cached fragments.
//
// On a hit it returns a newly allocated buffer of exactly rng.Len() bytes
// that the caller owns. Anything short of full coverage — an empty request,
// no overlapping fragments, or a gap between them — is a miss and returns
// nil, false. No allocation happens before coverage is proven complete, and
// a partially filled buffer is never returned.
func (c *Cache) Lookup(rng Interval) ([]byte, bool) {
	if rng.Len() == 0 {
		return nil, false
	}

	// Find the first fragment that overlaps the request. Fragments are
	// sorted by start, so the scan can stop at the first fragment starting
	// at or past the end of the request.
	first := -1
	for i := range c.fragments {
		if c.fragments[i].iv.Start >= rng.End {
			break
		}
		if c.fragments[i].iv.Overlaps(rng) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, false
	}

	// Collect the maximal run of consecutive overlapping fragments.
	last := first
	for last+1 < len(c.fragments) && c.fragments[last+1].iv.Overlaps(rng) {
		last++
	}

	// Prove full coverage before allocating. Candidates are sorted by
	// start, so a single left-to-right sweep finds any uncovered gap.
	covered := rng.Start
	for i := first; i <= last; i++ {
		f := &c.fragments[i]
		if f.iv.Start > covered {
			return nil, false
		}
		if end := min(f.iv.End, rng.End); end > covered {
			covered = end
		}
	}
	if covered < rng.End {
		return nil, false
	}

	buf := make([]byte, rng.Len())
	for i := first; i <= last; i++ {
		f := &c.fragments[i]
		ov := f.iv.Intersection(rng)
		if ov.Len() == 0 {
			// Coverage was proven complete, so every candidate must share
			// offsets with the request. Reaching this means the sorted
			// fragment state is corrupt.
			panic("rangecache: fragment overlaps request on neither side")
		}
		n := copy(buf[ov.Start-rng.Start:], f.data[ov.Start-f.iv.Start:ov.End-f.iv.Start])
		if ov.Start-rng.Start+int64(n) >= rng.Len() {
			// Destination is full; remaining candidates are redundant
			// given coverage was already proven.
			break
		}
	}
	return buf, true
}

// Store records data as the file's content over rng.
//
// The cache keeps its own copy of data, so the caller may reuse the slice.
// If the current total already exceeds the capacity, fragments are evicted
// first (anchored at rng) to make room. A range fully contained by the
// fragment at or immediately before its insertion point adds no information
// and is discarded. Empty ranges and data whose length does not equal
// rng.Len() are ignored.
func (c *Cache) Store(rng Interval, data []byte) {
	if rng.Len() == 0 || int64(len(data)) != rng.Len() {
		return
	}

	// Capacity is checked before insertion, and the eviction target
	// excludes the pending fragment's size. The total may therefore exceed
	// the capacity by up to one fragment after the insert below.
	if c.size > c.capacity {
		c.evictFurthestFrom(rng)
	}

	i, _ := slices.BinarySearchFunc(c.fragments, rng.Start, func(f fragment, start int64) int {
		return cmp.Compare(f.iv.Start, start)
	})

	if i < len(c.fragments) && c.fragments[i].iv.ContainsInterval(rng) {
		return
	}
	if i > 0 && c.fragments[i-1].iv.ContainsInterval(rng) {
		return
	}

	c.fragments = slices.Insert(c.fragments, i, fragment{iv: rng, data: slices.Clone(data)})
	c.size += rng.Len()
}

// evictFurthestFrom frees size−capacity bytes by repeatedly dropping
// whichever endpoint fragment (first or last in start order) has the
// midpoint farther from the anchor's midpoint. Ties drop the first: the
// last fragment goes only when its distance is strictly greater.
func (c *Cache) evictFurthestFrom(anchor Interval) {
	toFree := c.size - c.capacity
	mid := anchor.Midpoint()

	for toFree > 0 && len(c.fragments) > 0 {
		distFirst := absDiff(mid, c.fragments[0].iv.Midpoint())
		distLast := absDiff(mid, c.fragments[len(c.fragments)-1].iv.Midpoint())

		var removed Interval
		if distLast > distFirst {
			removed = c.fragments[len(c.fragments)-1].iv
			c.fragments = c.fragments[:len(c.fragments)-1]
		} else {
			removed = c.fragments[0].iv
			c.fragments = slices.Delete(c.fragments, 0, 1)
		}
		c.size -= removed.Len()
		toFree -= removed.Len()
	}
}

// Clear removes all fragments and resets the cached-byte total to zero.
func (c *Cache) Clear() {
	c.fragments = nil
	c.size = 0
}

// MaxBytes returns the configured capacity in bytes.
func (c *Cache) MaxBytes() int64 {
	return c.capacity
}

// SizeBytes returns the current total of cached bytes across all fragments.
func (c *Cache) SizeBytes() int64 {
	return c.size
}

// NumFragments returns the number of stored fragments.
func (c *Cache) NumFragments() int {
	return len(c.fragments)
}
