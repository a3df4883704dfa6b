package jsonmap

import (
	"reflect"
	"strconv"
)

// StringEncoder encodes any JSON-primitive scalar as its textual form:
// 123 becomes "123", 12.3 becomes "12.3". Terminal: it never delegates.
type StringEncoder struct{}

func (StringEncoder) Serialize(v any) (any, error) {
	rv := reflect.ValueOf(v)
	k := rv.Kind()
	if k == reflect.Interface || k == reflect.Ptr {
		rv = rv.Elem()
		k = rv.Kind()
	}

	switch k {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}

	return nil, malformedInput("a JSON-primitive scalar", v)
}

func (StringEncoder) Delegate(t Type) (Serializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}

// StringDecoder decodes a textual value as a string, unchanged.
// Terminal: it never delegates.
type StringDecoder struct{}

func (StringDecoder) Deserialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, malformedInput("a string literal", v)
	}
	return s, nil
}

func (StringDecoder) Delegate(t Type) (Deserializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}

// IntDecoder parses a textual value as an int64. A literal that is not a
// valid integer returns an *InvalidLiteralError.
// Terminal: it never delegates.
type IntDecoder struct{}

func (IntDecoder) Deserialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, malformedInput("a string literal", v)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &InvalidLiteralError{Literal: s, Kind: "int", err: err}
	}
	return n, nil
}

func (IntDecoder) Delegate(t Type) (Deserializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}

// FloatDecoder parses a textual value as a float64. A literal that is not a
// valid floating-point number returns an *InvalidLiteralError.
// Terminal: it never delegates.
type FloatDecoder struct{}

func (FloatDecoder) Deserialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, malformedInput("a string literal", v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &InvalidLiteralError{Literal: s, Kind: "float", err: err}
	}
	return f, nil
}

func (FloatDecoder) Delegate(t Type) (Deserializer, error) {
	panic("jsonmap: terminal codec asked to resolve a delegate for type " + string(t))
}
