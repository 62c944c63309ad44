// Package blerpc holds the host value model, error taxonomy and logger shared
// by the conversion, event and dispatch packages.
package blerpc

// Object is a host object value.
type Object = map[string]interface{}

// Array is a host array value.
type Array = []interface{}

// Callback is a host completion function. It is invoked with a nil err and
// the encoded result on success, or a non-nil err and a nil result.
type Callback func(err error, result interface{})

// Host values are one of: nil, bool, a Go numeric type, string, []byte,
// Object, Array or Callback.
