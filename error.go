package jsonmap

import (
	"fmt"
	"reflect"
)

var (
	errNilDelegateBuilder    = fmt.Errorf("jsonmap: nil delegate builder")
	errNilFactory            = fmt.Errorf("jsonmap: nil object factory")
	errRedundantJSONProperty = fmt.Errorf("jsonmap: redundant JSON property name: both a getter and a setter " +
		"of the serialized property were provided, so the property name cannot also be specified")
	errUnboundObjectProperty = fmt.Errorf("jsonmap: mapping binds no object property: an object property name " +
		"or an object getter/setter is required")
	errUnboundJSONProperty = fmt.Errorf("jsonmap: mapping binds no JSON property: a JSON property name " +
		"or a JSON getter/setter is required")
)

// UnresolvedTypeError is returned when a composite serializer or deserializer
// was asked to handle a nested value of a type for which no delegate was
// registered.
type UnresolvedTypeError struct {
	Type Type
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("jsonmap: no delegate registered for type %q", string(e.Type))
}

// MalformedInputError is returned when the shape of a value does not match
// what a codec requires: wrong container kind, missing required property, or
// wrong scalar kind.
type MalformedInputError struct {
	// Expected describes the shape the codec required.
	Expected string
	// Property is the offending JSON property name, if the error concerns one.
	Property string

	value reflect.Value
}

func (e *MalformedInputError) Error() string {
	got := "<nil>"
	if e.value.IsValid() {
		got = e.value.Type().String()
	}
	if e.Property != "" {
		return fmt.Sprintf("jsonmap: malformed input: property %q: expected %s, got %s", e.Property, e.Expected, got)
	}
	return fmt.Sprintf("jsonmap: malformed input: expected %s, got %s", e.Expected, got)
}

func malformedInput(expected string, v any) *MalformedInputError {
	return &MalformedInputError{Expected: expected, value: reflect.ValueOf(v)}
}

func missingProperty(property string) *MalformedInputError {
	return &MalformedInputError{Expected: "property to be present", Property: property}
}

// InvalidLiteralError is returned when a typed scalar codec failed to parse a
// textual literal as the expected scalar kind.
type InvalidLiteralError struct {
	// Literal is the text that failed to parse.
	Literal string
	// Kind is the scalar kind that was expected ("int" or "float").
	Kind string

	err error
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("jsonmap: invalid %s literal %q: %v", e.Kind, e.Literal, e.err)
}

func (e *InvalidLiteralError) Unwrap() error {
	return e.err
}
