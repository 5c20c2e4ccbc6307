package inversion

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Container resolves classes to instances. Registered instances take
// unconditional precedence; anything else is built from its constructor with
// class-typed parameters auto-wired recursively.
//
// A Container does no internal locking. Callers that share one across
// goroutines must serialize access themselves.
type Container struct {
	registered   map[string]any
	introspector Introspector
	logger       *zap.Logger
	middleware   *middlewareChain
	maxDepth     int
}

// New creates a container with an empty registration table.
func New(opts ...Option) *Container {
	c := &Container{
		registered:   make(map[string]any),
		introspector: DefaultCatalog,
		logger:       zap.NewNop(),
		middleware:   newMiddlewareChain(),
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	return c
}

// Register makes Get return instance for class, replacing any previous
// registration. The instance is not checked against the class. Registering
// nil is the same as Unregister, so the table never holds empty entries.
func (c *Container) Register(class string, instance any) {
	if instance == nil {
		c.Unregister(class)
		return
	}

	_, replaced := c.registered[class]
	c.registered[class] = instance

	c.logger.Debug("registered instance",
		zap.String("class", class),
		zap.String("type", fmt.Sprintf("%T", instance)),
		zap.Bool("replaced", replaced),
	)
}

// Unregister removes the registration for class. It is a no-op when class is
// not registered.
func (c *Container) Unregister(class string) {
	if _, ok := c.registered[class]; !ok {
		return
	}

	delete(c.registered, class)
	c.logger.Debug("unregistered instance", zap.String("class", class))
}

// Clear removes every registration.
func (c *Container) Clear() {
	n := len(c.registered)
	c.registered = make(map[string]any)
	c.logger.Debug("cleared registrations", zap.Int("count", n))
}

// Has checks if an instance is registered for class.
func (c *Container) Has(class string) bool {
	_, ok := c.registered[class]

	return ok
}

// Registered returns all registered class identifiers, sorted.
func (c *Container) Registered() []string {
	classes := make([]string, 0, len(c.registered))
	for class := range c.registered {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	return classes
}

// Use adds middleware to the container.
// Middleware is called in the order they are added.
func (c *Container) Use(middleware Middleware) {
	c.middleware.add(middleware)
}

// Get returns an instance of class.
//
// A registered instance is returned as is and args are ignored. Otherwise a
// new instance is constructed: for every constructor slot a non-nil value in
// args at the same position is used verbatim, a class-typed slot is filled by
// a recursive Get without args, and any other slot is left unsupplied, which
// makes construction fail. New instances are never cached.
//
// Errors from nested resolution are returned unchanged.
func (c *Container) Get(class string, args ...any) (any, error) {
	return c.get(class, args, 0)
}

// get wraps resolution in the middleware chain.
func (c *Container) get(class string, args []any, depth int) (any, error) {
	if err := c.middleware.beforeGet(class, depth); err != nil {
		return nil, err
	}

	instance, err := c.resolve(class, args, depth)

	if mwErr := c.middleware.afterGet(class, depth, instance, err); mwErr != nil {
		return nil, mwErr
	}

	return instance, err
}

// resolve performs the actual resolution without middleware.
func (c *Container) resolve(class string, args []any, depth int) (any, error) {
	if instance, ok := c.registered[class]; ok {
		return instance, nil
	}

	desc, err := c.introspector.Describe(class)
	if err != nil {
		if !errors.Is(err, ErrUnknownClassSentinel) {
			err = ErrUnknownClass(class, err)
		}

		c.logger.Debug("cannot describe class", zap.String("class", class), zap.Int("depth", depth), zap.Error(err))

		return nil, err
	}

	if instance, ok := c.registration(desc); ok {
		return instance, nil
	}

	if c.maxDepth > 0 && depth > c.maxDepth {
		return nil, ErrConstruction(class, fmt.Sprintf("resolution depth %d exceeds limit %d", depth, c.maxDepth), nil)
	}

	built, err := c.arguments(desc, args, depth)
	if err != nil {
		return nil, err
	}

	instance, err := desc.Construct(built)
	if err != nil {
		if !errors.Is(err, ErrConstructionSentinel) && !errors.Is(err, ErrUnknownClassSentinel) {
			err = ErrConstruction(class, "constructor failed", err)
		}

		c.logger.Debug("construction failed", zap.String("class", class), zap.Int("depth", depth), zap.Error(err))

		return nil, err
	}

	c.logger.Debug("constructed instance",
		zap.String("class", class),
		zap.Int("depth", depth),
		zap.Int("args", len(built)),
	)

	return instance, nil
}

// registration looks up an instance registered under any other identifier
// of the described class.
func (c *Container) registration(desc Descriptor) (any, bool) {
	if instance, ok := c.registered[desc.Class()]; ok {
		return instance, true
	}

	if aliased, ok := desc.(Aliased); ok {
		for _, alias := range aliased.Aliases() {
			if instance, ok := c.registered[alias]; ok {
				return instance, true
			}
		}
	}

	return nil, false
}

// arguments builds the positional argument list for desc. Unsupplied slots
// are nil; trailing ones are dropped so the list may be shorter than declared.
func (c *Container) arguments(desc Descriptor, args []any, depth int) ([]any, error) {
	if !desc.HasConstructor() {
		return trimArgs(args), nil
	}

	params := desc.Parameters()

	size := len(params)
	if len(args) > size {
		size = len(args)
	}
	built := make([]any, size)

	// Values past the declared slots are passed through, e.g. to a variadic tail.
	copy(built, args)

	for _, param := range params {
		if param.Position < len(args) && args[param.Position] != nil {
			continue
		}

		if !param.IsClass() {
			continue
		}

		dep, err := c.get(param.Class, nil, depth+1)
		if err != nil {
			return nil, err
		}
		built[param.Position] = dep
	}

	return trimArgs(built), nil
}

// trimArgs drops trailing unsupplied slots.
func trimArgs(args []any) []any {
	n := len(args)
	for n > 0 && args[n-1] == nil {
		n--
	}

	return args[:n]
}
