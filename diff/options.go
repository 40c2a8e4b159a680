package diff

// Option configures a comparison. Without options the comparison is strict: values must match exactly.
type Option func(*options)

type options struct {
	ignoreNamespaces bool
	tolerance        float64
	useTolerance     bool
	booleans         bool
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIgnoreNamespaceDeclarations excludes xmlns declarations from the comparison.
func WithIgnoreNamespaceDeclarations() Option {
	return func(o *options) {
		o.ignoreNamespaces = true
	}
}

// WithNumericTolerance treats two numeric values as equal when they differ by at most epsilon.
func WithNumericTolerance(epsilon float64) Option {
	return func(o *options) {
		o.tolerance = epsilon
		o.useTolerance = true
	}
}

// WithBooleanSpellings treats different spellings of the same boolean, such as "1" and "True", as equal.
func WithBooleanSpellings() Option {
	return func(o *options) {
		o.booleans = true
	}
}
