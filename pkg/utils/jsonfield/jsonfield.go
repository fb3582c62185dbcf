// Package jsonfield extracts typed values from untyped JSON documents decoded
// into map[string]any.
//
// Required accessors fail with *model.MissingFieldError or *model.WrongTypeError.
// Optional accessors never fail and report absence through their second return value.
package jsonfield

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
)

// Object is a decoded JSON object
type Object map[string]any

// Parse decodes raw JSON into an Object. Numbers are kept as json.Number.
func Parse(data []byte) (Object, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to parse JSON document")
	}
	return AsObject("$", v)
}

// AsObject converts an untyped value to an Object. key is only used for error reporting.
func AsObject(key string, v any) (Object, error) {
	switch obj := v.(type) {
	case Object:
		return obj, nil
	case map[string]any:
		return Object(obj), nil
	default:
		return nil, wrongType(key, "object", v)
	}
}

// Keys returns the object keys in sorted order
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o Object) lookup(key string) (any, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, goerr.Wrap(&model.MissingFieldError{Key: key}, "field not found", goerr.V("key", key))
	}
	return v, nil
}

// String returns a required string value
func (o Object) String(key string) (string, error) {
	v, err := o.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, "string", v)
	}
	return s, nil
}

// OptionalString returns the string value of key, or false if it is absent or not a string
func (o Object) OptionalString(key string) (string, bool) {
	s, err := o.String(key)
	return s, err == nil
}

// Bool returns a required boolean value
func (o Object) Bool(key string) (bool, error) {
	v, err := o.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, "bool", v)
	}
	return b, nil
}

// OptionalBool returns the boolean value of key, or false if it is absent or not a boolean
func (o Object) OptionalBool(key string) (bool, bool) {
	b, err := o.Bool(key)
	return b, err == nil
}

// Number returns a required numeric value
func (o Object) Number(key string) (float64, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}
	return ToNumber(key, v)
}

// Int returns a required integral numeric value
func (o Object) Int(key string) (int, error) {
	f, err := o.Number(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, goerr.Wrap(&model.WrongTypeError{Key: key, Expected: "integer", Actual: "number"}, "field is not an integer", goerr.V("key", key), goerr.V("value", f))
	}
	return int(f), nil
}

// OptionalInt returns the integer value of key, or false if it is absent or not an integer
func (o Object) OptionalInt(key string) (int, bool) {
	n, err := o.Int(key)
	return n, err == nil
}

// Object returns a required nested object
func (o Object) Object(key string) (Object, error) {
	v, err := o.lookup(key)
	if err != nil {
		return nil, err
	}
	return AsObject(key, v)
}

// OptionalObject returns the nested object of key, or false if it is absent or not an object
func (o Object) OptionalObject(key string) (Object, bool) {
	obj, err := o.Object(key)
	return obj, err == nil
}

// Objects returns a required array whose elements are all objects
func (o Object) Objects(key string) ([]Object, error) {
	v, err := o.lookup(key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, wrongType(key, "array", v)
	}

	objs := make([]Object, 0, len(arr))
	for _, item := range arr {
		obj, err := AsObject(key, item)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// ToNumber converts a decoded JSON number to float64
func ToNumber(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, goerr.Wrap(&model.WrongTypeError{Key: key, Expected: "number", Actual: "string"}, "invalid JSON number", goerr.V("key", key), goerr.V("value", n.String()))
		}
		return f, nil
	default:
		return 0, wrongType(key, "number", v)
	}
}

// TypeName returns the JSON type name of a decoded value
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, float32, int, int64, json.Number:
		return "number"
	case map[string]any, Object:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}

func wrongType(key, expected string, v any) error {
	actual := TypeName(v)
	return goerr.Wrap(&model.WrongTypeError{Key: key, Expected: expected, Actual: actual},
		"field has unexpected type",
		goerr.V("key", key),
		goerr.V("expected", expected),
		goerr.V("actual", actual),
	)
}
