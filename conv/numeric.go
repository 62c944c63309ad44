package conv

import (
	"math"
	"unsafe"

	"github.com/rigado/blerpc"
)

// Integer is the set of native integer field widths.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

const two32 = 4294967296.0

// number normalizes any Go numeric host value to float64.
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toUint32 is ECMAScript ToUint32: truncate toward zero, then modulo 2^32.
func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), two32)
	if m < 0 {
		m += two32
	}
	return uint32(m)
}

func toInt32(f float64) int32 {
	return int32(toUint32(f))
}

func isSigned[T Integer]() bool {
	var z T
	return z-1 < z
}

// limits returns the representable range of T.
func limits[T Integer]() (float64, float64) {
	var z T
	bits := float64(8 * unsafe.Sizeof(z))
	if isSigned[T]() {
		return -math.Exp2(bits - 1), math.Exp2(bits-1) - 1
	}
	return 0, math.Exp2(bits) - 1
}

func checkRange(f float64, o *options, min, max float64) error {
	if o.strict && (f < min || f > max) {
		return blerpc.OutOfRange(min, max, f)
	}
	if o.ranged {
		// a declared range never admits values the width would truncate
		lo, hi := math.Max(o.min, min), math.Min(o.max, max)
		if f < lo || f > hi {
			return blerpc.OutOfRange(lo, hi, f)
		}
	}
	return nil
}

func toInteger[T Integer](v interface{}, o *options) (T, error) {
	f, ok := number(v)
	if !ok {
		return 0, blerpc.TypeMismatch("number")
	}

	min, max := limits[T]()
	if err := checkRange(f, o, min, max); err != nil {
		return 0, err
	}

	if isSigned[T]() {
		return T(toInt32(f)), nil
	}
	return T(toUint32(f)), nil
}

func toDouble(v interface{}, o *options) (float64, error) {
	f, ok := number(v)
	if !ok {
		return 0, blerpc.TypeMismatch("number")
	}

	if err := checkRange(f, o, -math.MaxFloat64, math.MaxFloat64); err != nil {
		return 0, err
	}
	return f, nil
}

// ToInteger extracts v as the native integer type T.
func ToInteger[T Integer](v interface{}, opts ...Option) (T, error) {
	return toInteger[T](v, apply(opts))
}

// IntegerField extracts src[key] as the native integer type T.
func IntegerField[T Integer](src interface{}, key interface{}, opts ...Option) (T, error) {
	return field(src, key, opts, toInteger[T])
}

func ToUint32(v interface{}, opts ...Option) (uint32, error) { return ToInteger[uint32](v, opts...) }
func ToUint16(v interface{}, opts ...Option) (uint16, error) { return ToInteger[uint16](v, opts...) }
func ToUint8(v interface{}, opts ...Option) (uint8, error)   { return ToInteger[uint8](v, opts...) }
func ToInt32(v interface{}, opts ...Option) (int32, error)   { return ToInteger[int32](v, opts...) }
func ToInt16(v interface{}, opts ...Option) (int16, error)   { return ToInteger[int16](v, opts...) }
func ToInt8(v interface{}, opts ...Option) (int8, error)     { return ToInteger[int8](v, opts...) }

// ToDouble extracts v as a float64.
func ToDouble(v interface{}, opts ...Option) (float64, error) {
	return toDouble(v, apply(opts))
}

func Uint32(src, key interface{}, opts ...Option) (uint32, error) {
	return IntegerField[uint32](src, key, opts...)
}

func Uint16(src, key interface{}, opts ...Option) (uint16, error) {
	return IntegerField[uint16](src, key, opts...)
}

func Uint8(src, key interface{}, opts ...Option) (uint8, error) {
	return IntegerField[uint8](src, key, opts...)
}

func Int32(src, key interface{}, opts ...Option) (int32, error) {
	return IntegerField[int32](src, key, opts...)
}

func Int16(src, key interface{}, opts ...Option) (int16, error) {
	return IntegerField[int16](src, key, opts...)
}

func Int8(src, key interface{}, opts ...Option) (int8, error) {
	return IntegerField[int8](src, key, opts...)
}

// Double extracts src[key] as a float64.
func Double(src, key interface{}, opts ...Option) (float64, error) {
	return field(src, key, opts, toDouble)
}
