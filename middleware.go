package inversion

// Middleware provides hooks for intercepting resolution.
// It is called for every Get, including the recursive calls made while
// auto-wiring; depth is 0 for the call the caller made.
type Middleware interface {
	// BeforeGet is called before resolving a class.
	// Return error to abort resolution.
	BeforeGet(class string, depth int) error

	// AfterGet is called after resolving a class.
	// Called even if resolution failed.
	AfterGet(class string, depth int, instance any, err error) error
}

// middlewareChain manages multiple middleware.
type middlewareChain struct {
	middleware []Middleware
}

// newMiddlewareChain creates a new middleware chain.
func newMiddlewareChain() *middlewareChain {
	return &middlewareChain{
		middleware: make([]Middleware, 0),
	}
}

// add appends middleware to the chain.
func (m *middlewareChain) add(middleware Middleware) {
	if middleware != nil {
		m.middleware = append(m.middleware, middleware)
	}
}

// beforeGet calls BeforeGet on all middleware.
func (m *middlewareChain) beforeGet(class string, depth int) error {
	for _, mw := range m.middleware {
		if err := mw.BeforeGet(class, depth); err != nil {
			return err
		}
	}
	return nil
}

// afterGet calls AfterGet on all middleware.
func (m *middlewareChain) afterGet(class string, depth int, instance any, err error) error {
	for _, mw := range m.middleware {
		if mwErr := mw.AfterGet(class, depth, instance, err); mwErr != nil {
			return mwErr
		}
	}
	return nil
}

// FuncMiddleware wraps functions as Middleware.
type FuncMiddleware struct {
	BeforeGetFunc func(class string, depth int) error
	AfterGetFunc  func(class string, depth int, instance any, err error) error
}

// BeforeGet implements Middleware.
func (f *FuncMiddleware) BeforeGet(class string, depth int) error {
	if f.BeforeGetFunc != nil {
		return f.BeforeGetFunc(class, depth)
	}
	return nil
}

// AfterGet implements Middleware.
func (f *FuncMiddleware) AfterGet(class string, depth int, instance any, err error) error {
	if f.AfterGetFunc != nil {
		return f.AfterGetFunc(class, depth, instance, err)
	}
	return nil
}
