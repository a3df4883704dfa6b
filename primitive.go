package jsonmap

// PrimitiveSerializer is the terminal serializer: values that are already
// JSON-primitive pass through unchanged. It never delegates.
type PrimitiveSerializer struct{}

// Serialize returns v unchanged. A value that is not JSON-primitive returns
// a *MalformedInputError.
func (PrimitiveSerializer) Serialize(v any) (any, error) {
	if !IsPrimitive(v) {
		return nil, malformedInput("a JSON-primitive value", v)
	}
	return v, nil
}

// Delegate panics. A terminal codec being asked to resolve a delegate means
// the framework was wired incorrectly, which is a programming error, not an
// input error.
func (PrimitiveSerializer) Delegate(t Type) (Serializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}

// PrimitiveDeserializer is the terminal deserializer: the decoded value
// passes through unchanged. It never delegates.
type PrimitiveDeserializer struct{}

// Deserialize returns v unchanged. The input comes out of a JSON text decode
// and is primitive by construction, so no shape check is performed here.
func (PrimitiveDeserializer) Deserialize(v any) (any, error) {
	return v, nil
}

// Delegate panics, like PrimitiveSerializer.Delegate.
func (PrimitiveDeserializer) Delegate(t Type) (Deserializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}
