package inversion

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// constructorInfo holds analyzed constructor metadata
type constructorInfo struct {
	fn       reflect.Value
	fnType   reflect.Type
	result   reflect.Type
	hasError bool
}

// analyzeConstructor inspects a constructor function. It must return exactly
// one value, optionally followed by an error.
func analyzeConstructor(constructor any) (*constructorInfo, error) {
	if constructor == nil {
		return nil, ErrInvalidConstructor("constructor cannot be nil")
	}

	fnValue := reflect.ValueOf(constructor)
	fnType := fnValue.Type()

	if fnType.Kind() != reflect.Func {
		return nil, ErrInvalidConstructor(fmt.Sprintf("constructor must be a function, got %T", constructor))
	}

	if fnValue.IsNil() {
		return nil, ErrInvalidConstructor("constructor cannot be nil")
	}

	info := &constructorInfo{
		fn:     fnValue,
		fnType: fnType,
	}

	switch fnType.NumOut() {
	case 1:
		info.result = fnType.Out(0)
	case 2:
		if fnType.Out(1) != errorType {
			return nil, ErrInvalidConstructor("second return value must be error")
		}
		info.result = fnType.Out(0)
		info.hasError = true
	default:
		return nil, ErrInvalidConstructor(fmt.Sprintf("constructor must return (T) or (T, error), got %d return values", fnType.NumOut()))
	}

	if info.result == errorType {
		return nil, ErrInvalidConstructor("constructor must return a non-error value")
	}

	return info, nil
}

// constructorDescriptor describes a class built by a constructor function.
type constructorDescriptor struct {
	class   string
	info    *constructorInfo
	catalog *Catalog
}

func (d *constructorDescriptor) Class() string {
	return d.class
}

// Aliases returns the Go-derived identifier when the class was published
// under an explicit one.
func (d *constructorDescriptor) Aliases() []string {
	return aliasesOf(d.class, d.info.result)
}

func (d *constructorDescriptor) HasConstructor() bool {
	return true
}

// Parameters reports the constructor slots. Class identifiers are looked up
// in the catalog on every call so later Bind or WithClassID publications apply.
func (d *constructorDescriptor) Parameters() []Parameter {
	fnType := d.info.fnType
	params := make([]Parameter, fnType.NumIn())

	for i := range params {
		t := fnType.In(i)
		p := Parameter{
			Position: i,
			Type:     t,
			Variadic: fnType.IsVariadic() && i == fnType.NumIn()-1,
		}

		if !p.Variadic && isClassType(t) {
			p.Class = d.catalog.classFor(t)
		}

		params[i] = p
	}

	return params
}

// Construct calls the constructor. A nil element marks an unsupplied slot.
func (d *constructorDescriptor) Construct(args []any) (instance any, err error) {
	fnType := d.info.fnType
	fixed := fnType.NumIn()
	if fnType.IsVariadic() {
		fixed--
	}

	if len(args) > fixed && !fnType.IsVariadic() {
		return nil, ErrConstruction(d.class, fmt.Sprintf("constructor takes %d arguments, got %d", fixed, len(args)), nil)
	}

	in := make([]reflect.Value, 0, len(args))
	for i := 0; i < fixed; i++ {
		if i >= len(args) || args[i] == nil {
			return nil, ErrMissingArgument(d.class, i)
		}

		v, err := d.argument(i, fnType.In(i), args[i])
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if fnType.IsVariadic() {
		elem := fnType.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			if args[i] == nil {
				return nil, ErrMissingArgument(d.class, i)
			}

			v, err := d.argument(i, elem, args[i])
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = ErrConstruction(d.class, "constructor panicked", fmt.Errorf("%v", r))
		}
	}()

	results := d.info.fn.Call(in)

	if d.info.hasError && !results[1].IsNil() {
		return nil, ErrConstruction(d.class, "constructor returned an error", results[1].Interface().(error))
	}

	return results[0].Interface(), nil
}

func (d *constructorDescriptor) argument(position int, want reflect.Type, arg any) (reflect.Value, error) {
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(want) {
		return reflect.Value{}, ErrArgumentType(d.class, position, want.String(), arg)
	}

	return v, nil
}

// structDescriptor describes a struct class without a constructor. It is
// built as the zero value of its type.
type structDescriptor struct {
	class string
	typ   reflect.Type
}

func (d *structDescriptor) Class() string {
	return d.class
}

func (d *structDescriptor) Aliases() []string {
	return aliasesOf(d.class, d.typ)
}

func (d *structDescriptor) HasConstructor() bool {
	return false
}

func (d *structDescriptor) Parameters() []Parameter {
	return nil
}

func (d *structDescriptor) Construct(args []any) (any, error) {
	if len(args) > 0 {
		return nil, ErrConstruction(d.class, "class has no constructor, so it cannot take arguments", nil)
	}

	if d.typ.Kind() == reflect.Ptr {
		return reflect.New(d.typ.Elem()).Interface(), nil
	}

	return reflect.New(d.typ).Elem().Interface(), nil
}

func aliasesOf(class string, t reflect.Type) []string {
	if def := ClassID(t); def != class {
		return []string{def}
	}

	return nil
}
