// Package rangecache provides an in-memory cache for byte ranges read from
// a single file-like source.
//
// A [Cache] holds previously read byte ranges as immutable fragments sorted
// by offset. Given a new requested range it answers whether the request is
// fully covered by cached data and, if so, reconstructs it by stitching the
// relevant fragments together — without touching the source again. Partial
// coverage is a miss; the cache never returns a partially filled buffer.
//
// When the cache grows past its configured capacity, fragments are evicted
// by spatial distance: whichever end of the sorted fragment list lies
// farthest from the range currently being stored is dropped first. Ranges
// far from the region being accessed are assumed least likely to be reused.
//
// # Quick Start
//
// Use a Cache directly around your own reads:
//
//	c := rangecache.New(rangecache.WithCapacity(64 << 20))
//	rng := rangecache.Interval{Start: off, End: off + length}
//	if data, ok := c.Lookup(rng); ok {
//	    return data, nil
//	}
//	data := readFromFile(rng) // the real read
//	c.Store(rng, data)
//
// Or wrap any [ByteSource] in a [Reader] for read-through caching with
// concurrent-miss deduplication:
//
//	r := rangecache.NewReader(src, rangecache.New())
//	n, err := r.ReadAt(buf, off)
//
// A Cache is single-owner and performs no locking; Reader adds the mutual
// exclusion needed for concurrent use.
package rangecache
