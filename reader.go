package rangecache

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ByteSource provides random access to the underlying file data.
//
// It is the contract toward the file-reading collaborator: asked for a
// range, it produces either exactly that many bytes or an error. How reads
// are scheduled or retried, and how the file handle is opened and closed,
// is the source's business — the cache never depends on it.
type ByteSource interface {
	io.ReaderAt
	Size() int64
}

// Reader is a read-through io.ReaderAt over a ByteSource.
//
// Every read is served from the cache when the requested range is fully
// covered, and fetched from the source otherwise; freshly fetched bytes are
// stored before they are returned. Reader serializes all cache access with
// an internal mutex, so it is safe for concurrent use even though Cache
// itself is not.
//
// Concurrent misses for the same range are deduplicated with singleflight,
// so only one source read is issued even when multiple goroutines request
// the same range simultaneously.
type Reader struct {
	src   ByteSource
	cache *Cache

	mu    sync.Mutex // serializes cache access
	group singleflight.Group

	prefetchWorkers int
	log             zerolog.Logger
}

// Interface compliance.
var _ io.ReaderAt = (*Reader)(nil)

// NewReader wraps src with read-through caching. A nil cache gets a fresh
// one with the default capacity.
func NewReader(src ByteSource, cache *Cache, opts ...ReaderOption) *Reader {
	r := &Reader{
		src:   src,
		cache: cache,
		log:   zerolog.Nop(),
	}
	if r.cache == nil {
		r.cache = New()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// ReadAt implements io.ReaderAt with standard end-of-file semantics: reads
// past the source size are clamped and return io.EOF alongside the bytes
// that exist.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 {
		return 0, fmt.Errorf("rangecache: negative offset %d", off)
	}
	size := r.src.Size()
	if off >= size {
		return 0, io.EOF
	}

	end := min(off+int64(len(p)), size)
	data, err := r.ReadRange(off, end-off)
	if err != nil {
		return 0, err
	}
	n := copy(p, data)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadRange returns length bytes starting at off. The returned buffer is
// owned by the caller. A zero or negative length returns nil without
// touching the cache or the source.
func (r *Reader) ReadRange(off, length int64) ([]byte, error) {
	rng := Interval{Start: off, End: off + length}
	if rng.Len() == 0 {
		return nil, nil
	}

	if data, ok := r.lookup(rng); ok {
		r.log.Debug().Int64("off", off).Int64("len", length).Msg("range cache hit")
		return data, nil
	}
	r.log.Debug().Int64("off", off).Int64("len", length).Msg("range cache miss")

	key := strconv.FormatInt(rng.Start, 10) + "-" + strconv.FormatInt(rng.End, 10)
	v, err, shared := r.group.Do(key, func() (any, error) {
		// Double-check: another goroutine may have stored this range
		// between our lookup and acquiring the flight.
		if data, ok := r.lookup(rng); ok {
			return data, nil
		}
		return r.fetch(rng)
	})
	if err != nil {
		return nil, err
	}

	data, _ := v.([]byte) //nolint:errcheck // type assertion always succeeds when err is nil
	if shared {
		// Callers sharing a flight must each get their own buffer.
		data = slices.Clone(data)
	}
	return data, nil
}

// Prefetch warms the cache with the given ranges, clamped to the source
// size. Ranges already fully covered are skipped. Fetches run concurrently;
// see [WithPrefetchConcurrency].
func (r *Reader) Prefetch(ranges ...Interval) error {
	var g errgroup.Group

	workers := r.prefetchWorkers
	switch {
	case workers < 0:
		g.SetLimit(1)
	case workers == 0:
		g.SetLimit(runtime.GOMAXPROCS(0))
	default:
		g.SetLimit(workers)
	}

	size := r.src.Size()
	for _, rng := range ranges {
		rng := rng
		rng.End = min(rng.End, size)
		if rng.Len() == 0 {
			continue
		}
		g.Go(func() error {
			if _, ok := r.lookup(rng); ok {
				return nil
			}
			_, err := r.fetch(rng)
			return err
		})
	}
	return g.Wait()
}

// Cache returns the underlying cache for capacity introspection. Callers
// must not invoke Lookup/Store/Clear on it while the Reader is in use.
func (r *Reader) Cache() *Cache {
	return r.cache
}

func (r *Reader) lookup(rng Interval) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Lookup(rng)
}

// fetch reads rng from the source and stores it. The source must deliver
// the full range; io.EOF with a full buffer is not an error.
func (r *Reader) fetch(rng Interval) ([]byte, error) {
	r.log.Debug().Int64("off", rng.Start).Int64("len", rng.Len()).Msg("fetch start")

	buf := make([]byte, rng.Len())
	n, err := r.src.ReadAt(buf, rng.Start)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("rangecache: fetch [%d,%d): %w", rng.Start, rng.End, err)
	}
	if int64(n) != rng.Len() {
		return nil, fmt.Errorf("rangecache: short fetch (%d of %d bytes at offset %d)", n, rng.Len(), rng.Start)
	}

	r.mu.Lock()
	r.cache.Store(rng, buf)
	r.mu.Unlock()

	r.log.Debug().Int64("off", rng.Start).Int64("len", rng.Len()).Msg("fetch stop")
	return buf, nil
}
