package conv

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
)

// Get resolves key in src: a string key in an Object or an int index in an
// Array. Unresolved keys fail with FieldMissing.
func Get(src interface{}, key interface{}) (interface{}, error) {
	switch s := src.(type) {
	case blerpc.Object:
		name, ok := key.(string)
		if !ok {
			return nil, blerpc.TypeMismatch("string key")
		}
		v, ok := s[name]
		if !ok {
			return nil, blerpc.FieldMissing(name)
		}
		return v, nil

	case blerpc.Array:
		i, ok := key.(int)
		if !ok {
			return nil, blerpc.TypeMismatch("integer index")
		}
		if i < 0 || i >= len(s) {
			return nil, blerpc.FieldMissing(strconv.Itoa(i))
		}
		return s[i], nil

	default:
		return nil, blerpc.TypeMismatch("object")
	}
}

func keyName(key interface{}) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	default:
		return "?"
	}
}

// field resolves key and runs the per-kind conversion, applying the default
// only when the key is absent.
func field[T any](src, key interface{}, opts []Option, fn func(interface{}, *options) (T, error)) (T, error) {
	var zero T
	o := apply(opts)

	v, err := Get(src, key)
	if err != nil {
		var fm *blerpc.FieldMissingError
		if o.hasDef && errors.As(err, &fm) {
			return fn(o.def, o)
		}
		return zero, err
	}

	out, err := fn(v, o)
	if err != nil {
		return zero, errors.Wrap(err, keyName(key))
	}
	return out, nil
}

// Has reports whether obj holds name.
func Has(obj blerpc.Object, name string) bool {
	_, ok := obj[name]
	return ok
}

// IsNull reports whether obj holds name with an explicit nil value.
func IsNull(obj blerpc.Object, name string) bool {
	v, ok := obj[name]
	return ok && v == nil
}

// IsObject reports whether obj[name] is an Object.
func IsObject(obj blerpc.Object, name string) bool {
	_, ok := obj[name].(blerpc.Object)
	return ok
}
