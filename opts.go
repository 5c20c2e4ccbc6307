package inversion

import "go.uber.org/zap"

// Option configures a Container.
type Option interface {
	apply(*Container)
}

// optionFunc is a function adapter for Option
type optionFunc func(*Container)

func (f optionFunc) apply(c *Container) { f(c) }

// WithIntrospector sets the introspector used to describe classes.
func WithIntrospector(introspector Introspector) Option {
	return optionFunc(func(c *Container) {
		c.introspector = introspector
	})
}

// WithCatalog describes classes from the given catalog instead of DefaultCatalog.
func WithCatalog(catalog *Catalog) Option {
	return WithIntrospector(catalog)
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMaxDepth limits how many levels of nested auto-wiring a Get may
// perform: with 1, a class may auto-wire its direct dependencies but those
// may not auto-wire their own. A dependency cycle then fails with a
// construction error instead of exhausting the stack.
// Zero, the default, means no limit.
func WithMaxDepth(depth int) Option {
	return optionFunc(func(c *Container) {
		c.maxDepth = depth
	})
}

// WithMiddleware adds middleware to the container.
func WithMiddleware(middleware ...Middleware) Option {
	return optionFunc(func(c *Container) {
		for _, mw := range middleware {
			c.middleware.add(mw)
		}
	})
}
