package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

const unknownFieldPrefix = "json: unknown field "

// DecodeJSON decodes a single JSON value from r into dst. Fields that dst does
// not declare are rejected. An empty body decodes as an empty object and
// leaves dst untouched.
//
// Malformed input is reported as *ValidationError; any other error (for
// example a nil dst) is returned as is.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return NewValidationError(FieldError{
			Rule:    RuleInvalidJSON,
			Message: "body must contain a single JSON object",
		})
	}

	return nil
}

func decodeError(err error) error {
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return NewValidationError(FieldError{
			Rule:    RuleInvalidJSON,
			Message: fmt.Sprintf("malformed JSON at position %d", syntaxError.Offset),
		})
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return NewValidationError(FieldError{
			Rule:    RuleInvalidJSON,
			Message: "malformed JSON",
		})
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return NewValidationError(FieldError{
			Field:   typeError.Field,
			Rule:    RuleType,
			Message: "must be of type " + jsonTypeName(typeError.Type),
		})
	}

	// encoding/json has no typed error for unknown fields.
	if msg := err.Error(); strings.HasPrefix(msg, unknownFieldPrefix) {
		field := strings.Trim(strings.TrimPrefix(msg, unknownFieldPrefix), `"`)
		return NewValidationError(FieldError{
			Field:   field,
			Rule:    RuleUnrecognizedKey,
			Message: "is not allowed",
		})
	}

	return err
}

func jsonTypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}
