// Package jsonmap is a bidirectional mapping layer between typed in-memory
// values and JSON-compatible primitive data.
//
// A caller declares, once, how a type's properties map onto a JSON shape and
// obtains both a serializer (object to JSON primitive) and a deserializer
// (JSON primitive to object) from that declaration. Composite serializers
// delegate nested values to sub-serializers registered per type; primitive
// codecs terminate the recursion.
//
// Serializers and deserializers are immutable after construction and safe for
// concurrent use.
package jsonmap

import "reflect"

// Type identifies a class of in-memory value eligible for mapping.
// It is used purely for delegate resolution, never as a runtime payload.
type Type string

// TypeOf derives a Type from a value. Pointers and interfaces are
// dereferenced first, so a *T and a T map to the same Type.
func TypeOf(v any) Type {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return "<nil>"
	}
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return Type(rt.String())
}

// TypeFor is the generic counterpart of TypeOf.
func TypeFor[T any]() Type {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return Type(rt.String())
}

// IsPrimitive reports whether v is JSON-primitive: a string, number, boolean,
// nil, a slice whose elements are JSON-primitive, or a string-keyed map whose
// values are JSON-primitive.
func IsPrimitive(v any) bool {
	return isPrimitiveValue(reflect.ValueOf(v))
}

func isPrimitiveValue(rv reflect.Value) bool {
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
		// nil
		return true
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice, reflect.Array:
		l := rv.Len()
		for i := 0; i < l; i++ {
			if !isPrimitiveValue(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !isPrimitiveValue(iter.Value()) {
				return false
			}
		}
		return true
	}

	return false
}
