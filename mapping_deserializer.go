package jsonmap

import (
	"github.com/mitchellh/mapstructure"
)

// MappingDeserializer deserializes a map[string]any (or []any) into a new
// instance of the target type, one object property per PropertyMapping.
// Properties with a Nested type are handed to the delegate registered for
// that type; the rest go through the primitive codec.
type MappingDeserializer struct {
	*CompositeDeserializer
	mappings  []PropertyMapping
	factory   func() any
	primitive PrimitiveDeserializer
}

// NewMappingDeserializer builds a deserializer for target. factory returns a
// pointer to a fresh instance of the target type; properties without a
// custom ObjectSetter are assigned onto it by object property name.
// Construction fails on unbound or redundant mappings and on Nested types
// with no registered delegate.
func NewMappingDeserializer(target Type, mappings []PropertyMapping, factory func() any, delegates map[Type]func() Deserializer) (*MappingDeserializer, error) {
	if factory == nil {
		return nil, errNilFactory
	}

	base, err := NewCompositeDeserializer(target, delegates)
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

	return &MappingDeserializer{
		CompositeDeserializer: base,
		mappings:              mappings,
		factory:               factory,
	}, nil
}

func (d *MappingDeserializer) Deserialize(v any) (any, error) {
	if v == nil {
		// JSON null maps to a nil object.
		return nil, nil
	}

	switch value := v.(type) {
	case map[string]any:
		return d.deserializeObject(value)

	case []any:
		out := make([]any, len(value))
		for i, el := range value {
			obj, err := d.Deserialize(el)
			if err != nil {
				return nil, err
			}
			out[i] = obj
		}
		return out, nil
	}

	return nil, malformedInput("a map[string]any or a []any", v)
}

func (d *MappingDeserializer) deserializeObject(obj map[string]any) (any, error) {
	object := d.factory()
	properties := make(map[string]any, len(d.mappings))

	for i := range d.mappings {
		m := &d.mappings[i]

		raw, ok := m.jsonGet(obj)
		if !ok {
			if m.Optional {
				continue
			}
			return nil, missingProperty(m.jsonName())
		}

		var err error
		if m.Nested != "" {
			var delegate Deserializer
			delegate, err = d.Delegate(m.Nested)
			if err != nil {
				return nil, err
			}
			raw, err = delegate.Deserialize(raw)
			if err != nil {
				return nil, err
			}
		} else {
			raw, err = d.primitive.Deserialize(raw)
			if err != nil {
				return nil, err
			}
		}

		if m.ObjectSetter != nil {
			err = m.ObjectSetter(object, raw)
			if err != nil {
				return nil, err
			}
			continue
		}
		properties[m.ObjectProperty] = raw
	}

	if len(properties) != 0 {
		err := mapstructure.Decode(properties, object)
		if err != nil {
			return nil, malformedInput("properties assignable to "+string(d.Target()), err.Error())
		}
	}

	return object, nil
}
