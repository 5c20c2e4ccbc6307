package inversion

import (
	"fmt"
	"reflect"
)

// Get resolves ClassOf[T]() with type safety.
func Get[T any](c *Container, args ...any) (T, error) {
	return GetClass[T](c, ClassOf[T](), args...)
}

// GetClass resolves an explicit class identifier with type safety.
func GetClass[T any](c *Container, class string, args ...any) (T, error) {
	var zero T

	instance, err := c.Get(class, args...)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, ErrTypeMismatch(class, instance)
	}

	return typed, nil
}

// MustGet resolves or panics - use only during startup.
func MustGet[T any](c *Container, args ...any) T {
	instance, err := Get[T](c, args...)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", ClassOf[T](), err))
	}

	return instance
}

// RegisterValue registers instance under ClassOf[T]().
//
// Example:
//
//	inversion.RegisterValue[Logger](c, zapLogger)
func RegisterValue[T any](c *Container, instance T) {
	c.Register(ClassOf[T](), instance)
}

// UnregisterType removes the registration for ClassOf[T]().
func UnregisterType[T any](c *Container) {
	c.Unregister(ClassOf[T]())
}

// ProvideStruct publishes T, a struct or pointer to struct without a constructor.
func ProvideStruct[T any](r *Catalog, opts ...ProvideOption) error {
	return r.ProvideType(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// BindInterface makes parameters typed as the interface I auto-wire to class.
//
// Example:
//
//	inversion.BindInterface[Store](catalog, inversion.ClassOf[*MemoryStore]())
func BindInterface[I any](r *Catalog, class string) error {
	return r.Bind(reflect.TypeOf((*I)(nil)).Elem(), class)
}
