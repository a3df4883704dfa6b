package jsonmap

// Serializer converts a typed value into a JSON-compatible primitive: a
// string, number, boolean, nil, []any, or map[string]any.
//
// Serializers do not mutate their input and produce deterministic output for
// a given input and delegate configuration.
type Serializer interface {
	Serialize(v any) (any, error)
}

// SerializerFunc adapts a function to the Serializer interface.
type SerializerFunc func(v any) (any, error)

func (f SerializerFunc) Serialize(v any) (any, error) { return f(v) }

// CompositeSerializer is the embeddable base of serializers that delegate
// nested values to sub-serializers by type. It owns the target type and the
// delegate registry; concrete serializers embed it and implement Serialize.
//
// Delegates are declared at construction and built lazily on first
// resolution. The delegate set is immutable afterwards.
type CompositeSerializer struct {
	target    Type
	delegates *registry[Serializer]
}

// NewCompositeSerializer builds the delegation base for target. Each entry of
// delegates maps a nested type to a builder of the serializer handling it.
// A nil builder fails construction.
func NewCompositeSerializer(target Type, delegates map[Type]func() Serializer) (*CompositeSerializer, error) {
	r, err := newRegistry[Serializer](delegates)
	if err != nil {
		return nil, err
	}
	return &CompositeSerializer{target: target, delegates: r}, nil
}

// Target returns the type this serializer handles.
func (s *CompositeSerializer) Target() Type { return s.target }

// Delegate resolves the serializer registered for the nested type t.
// An unregistered type returns an *UnresolvedTypeError, never a fallback.
func (s *CompositeSerializer) Delegate(t Type) (Serializer, error) {
	return s.delegates.resolve(t)
}

// DelegateTypes returns the set of nested types this serializer can delegate
// to, in unspecified order.
func (s *CompositeSerializer) DelegateTypes() []Type {
	return s.delegates.registered()
}

func (s *CompositeSerializer) knows(t Type) bool {
	return s.delegates.contains(t)
}
