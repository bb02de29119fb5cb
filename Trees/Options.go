package Trees

import "log/slog"

type options struct {
	log  *slog.Logger
	name string
}

// Option configures a BinTree.
type Option func(*options)

// WithLogger sets the logger used to report rejected inserts, deletes of
// absent values and teardown. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithName attaches a "tree" attribute to every record the tree logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.Default()}
	for _, f := range opts {
		f(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.name != "" {
		o.log = o.log.With(slog.String("tree", o.name))
	}
	return o
}
