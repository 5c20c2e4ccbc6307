package inversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAll(t *testing.T) {
	c := newTestContainer(t)

	e1, e2 := &Engine{HP: 1}, &Engine{HP: 2}
	RegisterAll(c,
		Value(e1),
		Entry("config", map[string]int{"retries": 3}),
		Value[*Engine](e2),
	)

	assert.Equal(t, []string{engineClass, "config"}, c.Registered())

	engine, err := Get[*Engine](c)
	require.NoError(t, err)
	assert.Same(t, e2, engine)
}
