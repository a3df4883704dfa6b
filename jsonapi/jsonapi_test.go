package jsonapi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends() map[string]API {
	return map[string]API{
		"std":     Std(),
		"go-json": GoJSON(nil, nil),
		"fastest": Fastest(),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	in := map[string]any{
		"s": "text",
		"n": float64(42),
		"b": true,
		"a": []any{float64(1), "two", nil},
	}

	for name, api := range backends() {
		t.Run(name, func(t *testing.T) {
			data, err := api.Marshal(in)
			require.NoError(t, err)

			var out map[string]any
			err = api.Unmarshal(data, &out)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestBackendEncoderDecoder(t *testing.T) {
	for name, api := range backends() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := api.NewEncoder(&buf).Encode(map[string]any{"k": "v"})
			require.NoError(t, err)
			assert.True(t, strings.Contains(buf.String(), `"k"`))

			var out map[string]any
			err = api.NewDecoder(&buf).Decode(&out)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"k": "v"}, out)
		})
	}
}

func TestFastestKind(t *testing.T) {
	kind := FastestKind()
	assert.NotEqual(t, "<invalid>", kind.Name())
}

func TestBackendKindName(t *testing.T) {
	assert.Equal(t, "sonic", BackendKindSonic.Name())
	assert.Equal(t, "go-json", BackendKindGoJSON.Name())
	assert.Equal(t, "<invalid>", BackendKind(99).Name())
}
