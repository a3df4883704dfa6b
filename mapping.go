package jsonmap

import (
	"strings"

	"github.com/fatih/structs"
)

type (
	// JSONGetter reads a property out of the serialized JSON object.
	JSONGetter func(m map[string]any) (any, bool)
	// JSONSetter writes a property into the serialized JSON object.
	JSONSetter func(m map[string]any, value any)
	// ObjectGetter reads a property out of the in-memory object.
	ObjectGetter func(object any) (any, error)
	// ObjectSetter writes a property into the in-memory object.
	ObjectSetter func(object any, value any) error
)

// PropertyMapping declares how one property of an object maps onto one
// property of its JSON shape.
//
// The JSON side is addressed either by JSONProperty (property name in the
// JSON object) or by a JSONGetter/JSONSetter pair. Specifying the name
// together with both funcs is a construction error: the name would be
// ignored, and the original declaration intent becomes ambiguous.
//
// The object side is addressed either by ObjectProperty (exported Go field
// name) or by ObjectGetter/ObjectSetter funcs.
type PropertyMapping struct {
	ObjectProperty string
	JSONProperty   string

	JSONGetter   JSONGetter
	JSONSetter   JSONSetter
	ObjectGetter ObjectGetter
	ObjectSetter ObjectSetter

	// Nested names the serializable type handling this property's value.
	// Empty means the value is JSON-primitive and the primitive codec
	// handles it.
	Nested Type

	// Optional marks the JSON property as allowed to be absent on
	// deserialization. A missing non-optional property is malformed input.
	Optional bool
}

func (m *PropertyMapping) validate() error {
	if m.JSONProperty != "" && m.JSONGetter != nil && m.JSONSetter != nil {
		return errRedundantJSONProperty
	}
	if m.JSONProperty == "" && m.JSONGetter == nil && m.JSONSetter == nil {
		return errUnboundJSONProperty
	}
	if m.ObjectProperty == "" && m.ObjectGetter == nil && m.ObjectSetter == nil {
		return errUnboundObjectProperty
	}
	return nil
}

func (m *PropertyMapping) jsonGet(obj map[string]any) (any, bool) {
	if m.JSONGetter != nil {
		return m.JSONGetter(obj)
	}
	v, ok := obj[m.JSONProperty]
	return v, ok
}

func (m *PropertyMapping) jsonSet(obj map[string]any, value any) {
	if m.JSONSetter != nil {
		m.JSONSetter(obj, value)
		return
	}
	obj[m.JSONProperty] = value
}

func (m *PropertyMapping) jsonName() string {
	if m.JSONProperty != "" {
		return m.JSONProperty
	}
	return m.ObjectProperty
}

// StructMappings derives a PropertyMapping per exported field of sample,
// which must be a struct or a pointer to one. The JSON property name comes
// from the field's json tag, falling back to the field name; fields tagged
// json:"-" are skipped.
func StructMappings(sample any) []PropertyMapping {
	s := structs.New(sample)
	fields := s.Fields()

	mappings := make([]PropertyMapping, 0, len(fields))
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}

		name := f.Tag("json")
		if i := strings.IndexByte(name, ','); i != -1 {
			name = name[:i]
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name()
		}

		mappings = append(mappings, PropertyMapping{
			ObjectProperty: f.Name(),
			JSONProperty:   name,
		})
	}
	return mappings
}
