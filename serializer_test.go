package jsonmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateResolution(t *testing.T) {
	var (
		a = SerializerFunc(func(v any) (any, error) { return "a", nil })
		b = SerializerFunc(func(v any) (any, error) { return "b", nil })
	)

	s, err := NewCompositeSerializer("root", map[Type]func() Serializer{
		"A": func() Serializer { return a },
		"B": func() Serializer { return b },
	})
	require.NoError(t, err)
	assert.Equal(t, Type("root"), s.Target())
	assert.ElementsMatch(t, []Type{"A", "B"}, s.DelegateTypes())

	// A registered type resolves to exactly its delegate, regardless of
	// call order or repetition.
	for i := 0; i < 3; i++ {
		d, err := s.Delegate("A")
		require.NoError(t, err)
		out, err := d.Serialize(nil)
		require.NoError(t, err)
		assert.Equal(t, "a", out)

		d, err = s.Delegate("B")
		require.NoError(t, err)
		out, err = d.Serialize(nil)
		require.NoError(t, err)
		assert.Equal(t, "b", out)
	}

	_, err = s.Delegate("C")
	var unresolved *UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, Type("C"), unresolved.Type)
}

func TestDelegateBuiltLazilyAndOnce(t *testing.T) {
	built := 0

	s, err := NewCompositeSerializer("root", map[Type]func() Serializer{
		"A": func() Serializer {
			built++
			return PrimitiveSerializer{}
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, built)

	first, err := s.Delegate("A")
	require.NoError(t, err)
	second, err := s.Delegate("A")
	require.NoError(t, err)

	assert.Equal(t, 1, built)
	assert.Equal(t, first, second)
}

func TestNilDelegateBuilderFailsConstruction(t *testing.T) {
	_, err := NewCompositeSerializer("root", map[Type]func() Serializer{
		"A": nil,
	})
	assert.ErrorIs(t, err, errNilDelegateBuilder)

	_, err = NewCompositeDeserializer("root", map[Type]func() Deserializer{
		"A": nil,
	})
	assert.ErrorIs(t, err, errNilDelegateBuilder)
}

func TestDeserializerDelegateResolution(t *testing.T) {
	d, err := NewCompositeDeserializer("root", map[Type]func() Deserializer{
		"A": func() Deserializer { return PrimitiveDeserializer{} },
	})
	require.NoError(t, err)
	assert.Equal(t, Type("root"), d.Target())

	delegate, err := d.Delegate("A")
	require.NoError(t, err)
	out, err := delegate.Deserialize("x")
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = d.Delegate("B")
	var unresolved *UnresolvedTypeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, Type("B"), unresolved.Type)
}
