package conv

// Option declares range and default constraints for one extraction.
type Option func(*options)

type options struct {
	ranged   bool
	min, max float64

	strict bool

	hasDef bool
	def    interface{}
}

func apply(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// InRange fails the extraction with OutOfRange when the source value is
// outside [min, max].
func InRange(min, max float64) Option {
	return func(o *options) {
		o.ranged = true
		o.min = min
		o.max = max
	}
}

// Strict declares the natural bounds of the target width as the range.
// Without it (and without InRange), integers truncate like the native width.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Default is returned when a field is absent. A present but invalid field
// still fails.
func Default(v interface{}) Option {
	return func(o *options) {
		o.hasDef = true
		o.def = v
	}
}
