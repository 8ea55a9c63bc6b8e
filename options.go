package bitseq

type options struct {
	logger       *Logger
	capacityBits uint64
}

// Option configures a Dynamic sequence at construction.
type Option func(*options)

// WithLogger configures structured logging of storage lifecycle events
// (reallocation on resize, push, insert). If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCapacity pre-allocates storage for n bits, so growth up to n never
// reallocates.
func WithCapacity(n uint64) Option {
	return func(o *options) {
		o.capacityBits = n
	}
}
