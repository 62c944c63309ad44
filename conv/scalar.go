package conv

import (
	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
)

func toBool(v interface{}, _ *options) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, blerpc.TypeMismatch("bool")
	}
	return b, nil
}

func toNativeBool(v interface{}, o *options) (uint8, error) {
	b, err := toBool(v, o)
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

func toString(v interface{}, _ *options) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", blerpc.TypeMismatch("string")
	}
	return s, nil
}

// toBytes copies a []byte, or extracts each element of an Array as a uint8.
func toBytes(v interface{}, o *options) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil

	case blerpc.Array:
		out := make([]byte, 0, len(b))
		for i, e := range b {
			u, err := toInteger[uint8](e, o)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			out = append(out, u)
		}
		return out, nil

	default:
		return nil, blerpc.TypeMismatch("array")
	}
}

func toUint16Slice(v interface{}, o *options) ([]uint16, error) {
	switch b := v.(type) {
	case []uint16:
		out := make([]uint16, len(b))
		copy(out, b)
		return out, nil

	case blerpc.Array:
		out := make([]uint16, 0, len(b))
		for i, e := range b {
			u, err := toInteger[uint16](e, o)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			out = append(out, u)
		}
		return out, nil

	default:
		return nil, blerpc.TypeMismatch("array")
	}
}

func toObject(v interface{}, _ *options) (blerpc.Object, error) {
	obj, ok := v.(blerpc.Object)
	if !ok {
		return nil, blerpc.TypeMismatch("object")
	}
	return obj, nil
}

func toObjectOrNull(v interface{}, o *options) (blerpc.Object, error) {
	if v == nil {
		return nil, nil
	}
	return toObject(v, o)
}

func toCallback(v interface{}, _ *options) (blerpc.Callback, error) {
	switch cb := v.(type) {
	case blerpc.Callback:
		if cb != nil {
			return cb, nil
		}
	case func(error, interface{}):
		if cb != nil {
			return cb, nil
		}
	}
	return nil, blerpc.TypeMismatch("function")
}

func ToBool(v interface{}) (bool, error)                  { return toBool(v, nil) }
func ToNativeBool(v interface{}) (uint8, error)           { return toNativeBool(v, nil) }
func ToString(v interface{}) (string, error)              { return toString(v, nil) }
func ToObject(v interface{}) (blerpc.Object, error)       { return toObject(v, nil) }
func ToObjectOrNull(v interface{}) (blerpc.Object, error) { return toObjectOrNull(v, nil) }
func ToCallback(v interface{}) (blerpc.Callback, error)   { return toCallback(v, nil) }

// ToBytes copies a []byte or extracts an Array of numbers as bytes.
func ToBytes(v interface{}, opts ...Option) ([]byte, error) {
	return toBytes(v, apply(opts))
}

func ToUint16Slice(v interface{}, opts ...Option) ([]uint16, error) {
	return toUint16Slice(v, apply(opts))
}

// Bool extracts src[key], which must be a bool.
func Bool(src, key interface{}, opts ...Option) (bool, error) {
	return field(src, key, opts, toBool)
}

// NativeBool extracts src[key] as a 0/1 byte.
func NativeBool(src, key interface{}, opts ...Option) (uint8, error) {
	return field(src, key, opts, toNativeBool)
}

func String(src, key interface{}, opts ...Option) (string, error) {
	return field(src, key, opts, toString)
}

func Bytes(src, key interface{}, opts ...Option) ([]byte, error) {
	return field(src, key, opts, toBytes)
}

func Uint16Slice(src, key interface{}, opts ...Option) ([]uint16, error) {
	return field(src, key, opts, toUint16Slice)
}

func Object(src, key interface{}, opts ...Option) (blerpc.Object, error) {
	return field(src, key, opts, toObject)
}

// ObjectOrNull is Object, except an explicit nil yields (nil, nil).
func ObjectOrNull(src, key interface{}, opts ...Option) (blerpc.Object, error) {
	return field(src, key, opts, toObjectOrNull)
}

// Callback extracts the host completion function at src[key].
func Callback(src, key interface{}) (blerpc.Callback, error) {
	return field(src, key, nil, toCallback)
}
