package inversion

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// DefaultCatalog is the catalog used by containers created without
// WithCatalog or WithIntrospector.
var DefaultCatalog = NewCatalog()

// ProvideOption configures how a class is published in a catalog.
type ProvideOption interface {
	applyProvide(*provideConfig)
}

// provideConfig holds configuration for class publication
type provideConfig struct {
	classID string
}

// provideOptionFunc is a function adapter for ProvideOption
type provideOptionFunc func(*provideConfig)

func (f provideOptionFunc) applyProvide(c *provideConfig) { f(c) }

// WithClassID publishes the class under an explicit identifier instead of
// the one derived from its Go type. The Go-derived identifier stays an alias:
// a registration under either identifier overrides construction of the class.
//
// Example:
//
//	catalog.Provide(NewEngine, WithClassID("Engine"))
//	c.Register("Engine", &Engine{HP: 300})
func WithClassID(id string) ProvideOption {
	return provideOptionFunc(func(c *provideConfig) {
		c.classID = id
	})
}

// Catalog is the reflection-based Introspector. Go has no lookup of types by
// name, so every constructible class is published here, usually at startup.
// A Catalog is safe for concurrent use.
type Catalog struct {
	classes map[string]Descriptor
	aliases map[string]string       // alternate identifier -> published identifier
	types   map[reflect.Type]string // Go type -> published identifier
	mu      sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		classes: make(map[string]Descriptor),
		aliases: make(map[string]string),
		types:   make(map[reflect.Type]string),
	}
}

// Provide publishes the class returned by constructor. The constructor's
// parameters become the class's constructor slots.
//
// Example:
//
//	func NewCar(engine *Engine, color string) *Car {
//	    return &Car{Engine: engine, Color: color}
//	}
//	catalog.Provide(NewCar)
func (r *Catalog) Provide(constructor any, opts ...ProvideOption) error {
	info, err := analyzeConstructor(constructor)
	if err != nil {
		return err
	}

	class := r.publishedID(info.result, opts)

	return r.add(info.result, &constructorDescriptor{
		class:   class,
		info:    info,
		catalog: r,
	})
}

// ProvideType publishes a struct type, or pointer to struct type, that has
// no constructor. Instances are zero values; a pointer type yields a pointer
// to a fresh zero value.
func (r *Catalog) ProvideType(t reflect.Type, opts ...ProvideOption) error {
	if t == nil || !isClassType(t) || t.Kind() == reflect.Interface {
		return ErrInvalidConstructor(fmt.Sprintf("type %v is not a struct or pointer to struct", t))
	}

	class := r.publishedID(t, opts)

	return r.add(t, &structDescriptor{
		class: class,
		typ:   t,
	})
}

// ProvideAll publishes several constructors. Every failure is reported.
func (r *Catalog) ProvideAll(constructors ...any) error {
	var err error
	for _, constructor := range constructors {
		err = multierr.Append(err, r.Provide(constructor))
	}

	return err
}

// Bind makes an interface type resolve to a published class. Parameters typed
// as iface are then auto-wired with a fresh instance of class unless the
// interface's own identifier is registered in the container.
func (r *Catalog) Bind(iface reflect.Type, class string) error {
	if iface == nil || iface.Kind() != reflect.Interface {
		return ErrInvalidBinding(fmt.Sprint(iface), "not an interface type")
	}

	id := ClassID(iface)

	if class == "" {
		return ErrInvalidBinding(id, "class cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[id]; exists {
		return ErrDuplicateClass(id)
	}

	if _, exists := r.aliases[id]; exists {
		return ErrDuplicateClass(id)
	}

	r.aliases[id] = class

	return nil
}

// Describe implements Introspector.
func (r *Catalog) Describe(class string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if desc, ok := r.classes[class]; ok {
		return desc, nil
	}

	// Follow alias chains, e.g. interface -> default id -> explicit id.
	seen := map[string]bool{class: true}
	for target, ok := r.aliases[class]; ok; target, ok = r.aliases[target] {
		if desc, found := r.classes[target]; found {
			return desc, nil
		}

		if seen[target] {
			break
		}
		seen[target] = true
	}

	return nil, ErrUnknownClass(class, nil)
}

// Has checks if a class identifier can be described.
func (r *Catalog) Has(class string) bool {
	_, err := r.Describe(class)

	return err == nil
}

// Classes returns all published class identifiers, sorted.
func (r *Catalog) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	classes := make([]string, 0, len(r.classes))
	for class := range r.classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	return classes
}

// add stores a descriptor and maps its Go type to the published identifier.
func (r *Catalog) add(t reflect.Type, desc Descriptor) error {
	class := desc.Class()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[class]; exists {
		return ErrDuplicateClass(class)
	}

	if _, exists := r.aliases[class]; exists {
		return ErrDuplicateClass(class)
	}

	r.classes[class] = desc

	if _, mapped := r.types[t]; !mapped {
		r.types[t] = class
	}

	if def := ClassID(t); def != class {
		if _, exists := r.aliases[def]; !exists {
			r.aliases[def] = class
		}
	}

	return nil
}

// classFor returns the identifier parameters of type t resolve to.
func (r *Catalog) classFor(t reflect.Type) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if class, ok := r.types[t]; ok {
		return class
	}

	return ClassID(t)
}

// publishedID applies options to pick the identifier of type t.
func (r *Catalog) publishedID(t reflect.Type, opts []ProvideOption) string {
	config := &provideConfig{}
	for _, opt := range opts {
		opt.applyProvide(config)
	}

	if config.classID != "" {
		return config.classID
	}

	return ClassID(t)
}
