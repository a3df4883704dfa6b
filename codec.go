package jsonmap

import (
	"github.com/tomruk/jsonmap-go/jsonapi"
)

// CodecConfig carries the optional collaborators of a Codec.
type CodecConfig struct {
	// API is the JSON text encoder/decoder to use.
	// Default: jsonapi.Std()
	API jsonapi.API

	// Debugger receives trace output.
	// Default: NewNoopDebugger()
	Debugger Debugger
}

// Codec bundles a Serializer, a Deserializer, and a JSON text backend into a
// Marshal/Unmarshal pair. It is the boundary between this framework and the
// text-level JSON pass: Marshal lowers the object to a JSON primitive before
// handing it to the text encoder, Unmarshal raises the decoded primitive
// back into an object.
type Codec struct {
	serializer   Serializer
	deserializer Deserializer
	api          jsonapi.API
	debug        Debugger
}

func NewCodec(serializer Serializer, deserializer Deserializer, config *CodecConfig) *Codec {
	if config == nil {
		config = new(CodecConfig)
	}

	api := config.API
	if api == nil {
		api = jsonapi.Std()
	}

	debug := config.Debugger
	if debug == nil {
		debug = NewNoopDebugger()
	}

	return &Codec{
		serializer:   serializer,
		deserializer: deserializer,
		api:          api,
		debug:        debug.WithContext("jsonmap: codec"),
	}
}

// Marshal serializes v into a JSON primitive and encodes it as JSON text.
func (c *Codec) Marshal(v any) ([]byte, error) {
	c.debug.Log("marshal", TypeOf(v))

	p, err := c.serializer.Serialize(v)
	if err != nil {
		return nil, err
	}
	return c.api.Marshal(p)
}

// Unmarshal decodes JSON text and deserializes the result into an object.
func (c *Codec) Unmarshal(data []byte) (any, error) {
	c.debug.Log("unmarshal", len(data), "bytes")

	var raw any
	err := c.api.Unmarshal(data, &raw)
	if err != nil {
		return nil, err
	}
	return c.deserializer.Deserialize(raw)
}
