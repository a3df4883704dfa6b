package jsonmap

import "reflect"

// MappingSerializer serializes a struct (or a slice of structs) into a
// map[string]any (or []any), one JSON property per PropertyMapping.
// Properties with a Nested type are handed to the delegate registered for
// that type; the rest go through the primitive codec.
type MappingSerializer struct {
	*CompositeSerializer
	mappings  []PropertyMapping
	primitive PrimitiveSerializer
}

// NewMappingSerializer builds a serializer for target. Construction fails if
// a mapping is unbound or redundant, or if a mapping names a Nested type
// with no registered delegate, so wiring errors surface before the first
// Serialize call.
func NewMappingSerializer(target Type, mappings []PropertyMapping, delegates map[Type]func() Serializer) (*MappingSerializer, error) {
	base, err := NewCompositeSerializer(target, delegates)
	if err != nil {
		return nil, err
	}

	for i := range mappings {
		m := &mappings[i]
		if err := m.validate(); err != nil {
			return nil, err
		}
		if m.Nested != "" && !base.knows(m.Nested) {
			return nil, &UnresolvedTypeError{Type: m.Nested}
		}
	}

	return &MappingSerializer{CompositeSerializer: base, mappings: mappings}, nil
}

func (s *MappingSerializer) Serialize(v any) (any, error) {
	rv := reflect.ValueOf(v)
	k := rv.Kind()
	if k == reflect.Interface || k == reflect.Ptr {
		rv = rv.Elem()
		k = rv.Kind()
	}

	// Check twice. rv can be a pointer to an interface.
	if k == reflect.Interface || k == reflect.Ptr {
		rv = rv.Elem()
		k = rv.Kind()
	}

	switch k {
	case reflect.Invalid:
		// A nil object maps to JSON null.
		return nil, nil

	case reflect.Slice, reflect.Array:
		l := rv.Len()
		out := make([]any, l)
		for i := 0; i < l; i++ {
			el := rv.Index(i)
			if !el.CanInterface() {
				return nil, malformedInput("an interfaceable element", v)
			}
			m, err := s.Serialize(el.Interface())
			if err != nil {
				return nil, err
			}
			out[i] = m
		}
		return out, nil

	case reflect.Struct:
		return s.serializeStruct(rv)
	}

	return nil, malformedInput("a struct or a slice of structs", v)
}

func (s *MappingSerializer) serializeStruct(rv reflect.Value) (map[string]any, error) {
	out := make(map[string]any, len(s.mappings))

	for i := range s.mappings {
		m := &s.mappings[i]

		value, err := s.objectValue(m, rv)
		if err != nil {
			return nil, err
		}

		if m.Nested != "" {
			delegate, err := s.Delegate(m.Nested)
			if err != nil {
				return nil, err
			}
			value, err = delegate.Serialize(value)
			if err != nil {
				return nil, err
			}
		} else {
			value, err = s.primitive.Serialize(value)
			if err != nil {
				return nil, err
			}
		}

		m.jsonSet(out, value)
	}

	return out, nil
}

func (s *MappingSerializer) objectValue(m *PropertyMapping, rv reflect.Value) (any, error) {
	if m.ObjectGetter != nil {
		if !rv.CanInterface() {
			return nil, malformedInput("an interfaceable value", rv.String())
		}
		return m.ObjectGetter(rv.Interface())
	}

	fv := rv.FieldByName(m.ObjectProperty)
	if !fv.IsValid() {
		return nil, &MalformedInputError{
			Expected: "a struct with field " + m.ObjectProperty,
			value:    rv,
		}
	}
	if !fv.CanInterface() {
		return nil, malformedInput("an exported field", m.ObjectProperty)
	}
	return fv.Interface(), nil
}
