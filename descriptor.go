package inversion

import (
	"reflect"
)

// Parameter describes one positional slot of a constructor.
type Parameter struct {
	// Position is the zero-based index of the slot.
	Position int

	// Type is the declared Go type of the slot.
	Type reflect.Type

	// Class is the class identifier the slot is typed as, or empty when the
	// slot is a scalar that can only be supplied explicitly.
	Class string

	// Variadic marks the trailing variadic slot of a constructor.
	Variadic bool
}

// IsClass reports whether the parameter is typed as another class.
func (p Parameter) IsClass() bool {
	return p.Class != ""
}

// Descriptor exposes the constructor of a single class to the container.
type Descriptor interface {
	// Class returns the identifier the descriptor was published under.
	Class() string

	// HasConstructor reports whether the class declares a constructor.
	// Classes without one are built from zero arguments.
	HasConstructor() bool

	// Parameters returns the constructor slots in declaration order.
	Parameters() []Parameter

	// Construct builds a new instance from a positional argument list.
	// The list may be shorter than Parameters.
	Construct(args []any) (any, error)
}

// Aliased is implemented by descriptors whose class is also reachable under
// other identifiers. Registrations under any of them override construction.
type Aliased interface {
	Aliases() []string
}

// Introspector looks up descriptors by class identifier.
// Describe must fail with an UNKNOWN_CLASS error for identifiers it cannot serve.
type Introspector interface {
	Describe(class string) (Descriptor, error)
}

// ClassID returns the class identifier of a Go type: the package-qualified
// type name, prefixed with '*' for each pointer level.
func ClassID(t reflect.Type) string {
	if t == nil {
		return ""
	}

	prefix := ""
	for t.Kind() == reflect.Ptr && t.Name() == "" {
		prefix += "*"
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return prefix + t.String()
	}

	return prefix + t.PkgPath() + "." + t.Name()
}

// ClassOf returns the class identifier of T.
//
// Example:
//
//	car, err := c.Get(inversion.ClassOf[*Car]())
func ClassOf[T any]() string {
	return ClassID(reflect.TypeOf((*T)(nil)).Elem())
}

// isClassType reports whether values of t are constructed classes rather than scalars.
func isClassType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Interface:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
