package inversion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDescriptor is a hand-written descriptor keyed by plain names.
type fakeDescriptor struct {
	class     string
	hasCtor   bool
	params    []Parameter
	construct func(args []any) (any, error)
}

func (d *fakeDescriptor) Class() string                     { return d.class }
func (d *fakeDescriptor) HasConstructor() bool              { return d.hasCtor }
func (d *fakeDescriptor) Parameters() []Parameter           { return d.params }
func (d *fakeDescriptor) Construct(args []any) (any, error) { return d.construct(args) }

type fakeIntrospector map[string]Descriptor

func (f fakeIntrospector) Describe(class string) (Descriptor, error) {
	if desc, ok := f[class]; ok {
		return desc, nil
	}
	return nil, errors.New("no such class " + class)
}

func newFakeIntrospector() fakeIntrospector {
	return fakeIntrospector{
		"Engine": &fakeDescriptor{
			class: "Engine",
			construct: func(args []any) (any, error) {
				return &Engine{}, nil
			},
		},
		"Car": &fakeDescriptor{
			class:   "Car",
			hasCtor: true,
			params:  []Parameter{{Position: 0, Class: "Engine"}},
			construct: func(args []any) (any, error) {
				if len(args) != 1 {
					return nil, errors.New("Car needs an engine")
				}
				return &Car{Engine: args[0].(*Engine)}, nil
			},
		},
		"Broken": &fakeDescriptor{
			class: "Broken",
			construct: func(args []any) (any, error) {
				return nil, errors.New("broken")
			},
		},
	}
}

func TestIntrospector_EngineAndCar(t *testing.T) {
	c := New(WithIntrospector(newFakeIntrospector()))

	car, err := GetClass[*Car](c, "Car")
	require.NoError(t, err)
	require.NotNil(t, car.Engine)

	e1 := &Engine{HP: 1}
	c.Register("Engine", e1)

	car, err = GetClass[*Car](c, "Car")
	require.NoError(t, err)
	assert.Same(t, e1, car.Engine)

	explicit := &Engine{HP: 2}
	car, err = GetClass[*Car](c, "Car", explicit)
	require.NoError(t, err)
	assert.Same(t, explicit, car.Engine)
}

func TestIntrospector_ForeignErrorsAreClassified(t *testing.T) {
	c := New(WithIntrospector(newFakeIntrospector()))

	_, err := c.Get("Truck")
	assert.ErrorIs(t, err, ErrUnknownClassSentinel)

	_, err = c.Get("Broken")
	assert.ErrorIs(t, err, ErrConstructionSentinel)
}

func TestIntrospector_NoConstructorPassesArgsThrough(t *testing.T) {
	var got []any

	c := New(WithIntrospector(fakeIntrospector{
		"Point": &fakeDescriptor{
			class: "Point",
			construct: func(args []any) (any, error) {
				got = args
				return struct{}{}, nil
			},
		},
	}))

	_, err := c.Get("Point", 1, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}
