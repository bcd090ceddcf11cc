package rangecache

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity sets the upper bound on total cached bytes.
// Values <= 0 keep [DefaultCapacity].
func WithCapacity(n int64) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}
