package inversion

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xraph/go-utils/errs"
)

func TestAnalyzeConstructor(t *testing.T) {
	info, err := analyzeConstructor(NewCar)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(&Car{}), info.result)
	assert.False(t, info.hasError)

	info, err = analyzeConstructor(func() (*Engine, error) { return &Engine{}, nil })
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(&Engine{}), info.result)
	assert.True(t, info.hasError)
}

func TestAnalyzeConstructor_Invalid(t *testing.T) {
	var nilFunc func() *Engine

	tests := []struct {
		name        string
		constructor any
	}{
		{"nil", nil},
		{"nil func", nilFunc},
		{"not a function", "NewEngine"},
		{"no results", func() {}},
		{"too many results", func() (*Engine, *Car, error) { return nil, nil, nil }},
		{"second result not error", func() (*Engine, string) { return nil, "" }},
		{"only error", func() error { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeConstructor(tt.constructor)
			assert.ErrorIs(t, err, ErrInvalidConstructorSentinel)
		})
	}
}

func TestConstructorDescriptor_Parameters(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Provide(func(e *Engine, name string, h Horn, cfg Engine, sizes []int, opts ...*Car) *Garage {
		return &Garage{}
	}))

	desc, err := catalog.Describe(ClassOf[*Garage]())
	require.NoError(t, err)

	params := desc.Parameters()
	require.Len(t, params, 6)

	assert.Equal(t, engineClass, params[0].Class)
	assert.Empty(t, params[1].Class)
	assert.Equal(t, ClassOf[Horn](), params[2].Class)
	assert.Equal(t, ClassOf[Engine](), params[3].Class)
	assert.Empty(t, params[4].Class)
	assert.Empty(t, params[5].Class)
	assert.True(t, params[5].Variadic)

	for i, p := range params {
		assert.Equal(t, i, p.Position)
	}
}

func TestConstructorDescriptor_Construct(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Provide(NewPaintedCar))

	desc, err := catalog.Describe(carClass)
	require.NoError(t, err)

	engine := &Engine{HP: 7}
	instance, err := desc.Construct([]any{engine, "red"})
	require.NoError(t, err)
	assert.Equal(t, &Car{Engine: engine, Color: "red"}, instance)

	_, err = desc.Construct([]any{engine})
	require.Error(t, err)

	var constructionErr *errs.Error
	require.ErrorAs(t, err, &constructionErr)
	assert.Equal(t, 1, constructionErr.GetContext()["position"])

	_, err = desc.Construct([]any{engine, 12})
	require.ErrorAs(t, err, &constructionErr)
	assert.Equal(t, 1, constructionErr.GetContext()["position"])
	assert.ErrorIs(t, err, ErrConstructionSentinel)
}

func TestConstructorDescriptor_Panic(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Provide(func() *Engine {
		panic("engine on fire")
	}))

	_, err := New(WithCatalog(catalog)).Get(engineClass)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstructionSentinel)

	var constructionErr *errs.Error
	require.ErrorAs(t, err, &constructionErr)
	assert.EqualError(t, constructionErr.Cause(), "engine on fire")
}

func TestConstructorDescriptor_InterfaceArgument(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Provide(NewTruck))

	truck, err := Get[*Truck](New(WithCatalog(catalog)), &AirHorn{})
	require.NoError(t, err)
	assert.Equal(t, "toot", truck.Horn.Honk())
}

func TestStructDescriptor_Construct(t *testing.T) {
	pointer := &structDescriptor{class: engineClass, typ: reflect.TypeOf(&Engine{})}

	first, err := pointer.Construct(nil)
	require.NoError(t, err)
	second, err := pointer.Construct([]any{})
	require.NoError(t, err)

	assert.Equal(t, &Engine{}, first)
	assert.NotSame(t, first, second)

	_, err = pointer.Construct([]any{1})
	assert.ErrorIs(t, err, ErrConstructionSentinel)
}

func TestConstructionError_WrapsForeignErrors(t *testing.T) {
	expectedErr := errors.New("boom")

	err := ErrConstruction("x", "constructor failed", expectedErr)
	assert.ErrorIs(t, err, expectedErr)
	assert.ErrorIs(t, err, ErrConstructionSentinel)
	assert.Equal(t, "x", err.GetContext()["class"])
}
