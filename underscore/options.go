package underscore

import "go.uber.org/zap"

// Option configures a [Wrapper] at construction time via [Chain].
type Option func(*Wrapper)

// WithLogger traces every forwarded call at debug level. The default logger
// discards everything.
//
//	logger, _ := zap.NewDevelopment()
//	underscore.Chain(users, underscore.WithLogger(logger)).SortBy("age").Value()
func WithLogger(logger *zap.Logger) Option {
	return func(w *Wrapper) {
		if logger != nil {
			w.log = logger
		}
	}
}

// WithOperations makes the wrapper resolve operation names in r instead of
// the package registry.
func WithOperations(r *Registry) Option {
	return func(w *Wrapper) {
		if r != nil {
			w.ops = r
		}
	}
}
