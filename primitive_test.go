package jsonmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundTripIdentity(t *testing.T) {
	var (
		s PrimitiveSerializer
		d PrimitiveDeserializer
	)

	values := []any{
		"hello",
		"",
		123,
		int64(-7),
		12.3,
		true,
		false,
		nil,
		[]any{"a", 1, nil},
		map[string]any{"k": "v", "n": 42},
	}

	for _, v := range values {
		p, err := s.Serialize(v)
		require.NoError(t, err)
		back, err := d.Deserialize(p)
		require.NoError(t, err)
		assert.Equal(t, v, back)

		// Other direction.
		o, err := d.Deserialize(v)
		require.NoError(t, err)
		p, err = s.Serialize(o)
		require.NoError(t, err)
		assert.Equal(t, v, p)
	}
}

func TestPrimitiveSerializerRejectsNonPrimitive(t *testing.T) {
	var s PrimitiveSerializer

	type opaque struct{ C chan int }

	for _, v := range []any{
		opaque{},
		&opaque{},
		[]any{"ok", opaque{}},
		map[string]any{"bad": opaque{}},
		map[int]any{1: "non-string keys"},
		func() {},
	} {
		_, err := s.Serialize(v)
		var malformed *MalformedInputError
		assert.ErrorAs(t, err, &malformed)
	}
}

func TestTerminalContractEnforcement(t *testing.T) {
	assert.Panics(t, func() {
		var s PrimitiveSerializer
		s.Delegate("anything")
	})
	assert.Panics(t, func() {
		var d PrimitiveDeserializer
		d.Delegate("anything")
	})
}
