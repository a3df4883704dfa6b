package jsonmap

// Deserializer converts a JSON-compatible primitive back into a typed value.
//
// Deserializers do not mutate their input and produce deterministic output
// for a given input and delegate configuration.
type Deserializer interface {
	Deserialize(v any) (any, error)
}

// DeserializerFunc adapts a function to the Deserializer interface.
type DeserializerFunc func(v any) (any, error)

func (f DeserializerFunc) Deserialize(v any) (any, error) { return f(v) }

// CompositeDeserializer is the embeddable base of deserializers that delegate
// nested values to sub-deserializers by the type they produce. It mirrors
// CompositeSerializer.
type CompositeDeserializer struct {
	target    Type
	delegates *registry[Deserializer]
}

// NewCompositeDeserializer builds the delegation base for target. Each entry
// of delegates maps a nested type to a builder of the deserializer producing
// it. A nil builder fails construction.
func NewCompositeDeserializer(target Type, delegates map[Type]func() Deserializer) (*CompositeDeserializer, error) {
	r, err := newRegistry[Deserializer](delegates)
	if err != nil {
		return nil, err
	}
	return &CompositeDeserializer{target: target, delegates: r}, nil
}

// Target returns the type this deserializer produces.
func (d *CompositeDeserializer) Target() Type { return d.target }

// Delegate resolves the deserializer registered for the nested type t.
// An unregistered type returns an *UnresolvedTypeError, never a fallback.
func (d *CompositeDeserializer) Delegate(t Type) (Deserializer, error) {
	return d.delegates.resolve(t)
}

// DelegateTypes returns the set of nested types this deserializer can
// delegate to, in unspecified order.
func (d *CompositeDeserializer) DelegateTypes() []Type {
	return d.delegates.registered()
}

func (d *CompositeDeserializer) knows(t Type) bool {
	return d.delegates.contains(t)
}
