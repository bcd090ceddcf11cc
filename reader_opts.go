package rangecache

import "github.com/rs/zerolog"

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithPrefetchConcurrency sets the number of workers used for Prefetch.
// Values < 0 force serial execution. Zero uses GOMAXPROCS.
// Values > 0 force a fixed worker count.
func WithPrefetchConcurrency(workers int) ReaderOption {
	return func(r *Reader) {
		r.prefetchWorkers = workers
	}
}

// WithLogger sets the logger used for debug-level hit/miss and fetch
// logging. Logging is disabled by default.
func WithLogger(log zerolog.Logger) ReaderOption {
	return func(r *Reader) {
		r.log = log
	}
}
