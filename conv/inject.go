package conv

import (
	"github.com/rigado/blerpc"
)

// Representable is implemented by native structures that know their own host
// encoding, such as events.
type Representable interface {
	ToMap() blerpc.Object
}

// Number is the set of native numeric widths that encode to a host number.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~float32 | ~float64
}

// ToNumber encodes a native numeric value as a host number.
func ToNumber[T Number](v T) float64 {
	return float64(v)
}

// ToBoolValue encodes a native 0/1 flag as a host bool.
func ToBoolValue(v uint8) bool {
	return v != 0
}

// ToValueArray encodes bytes as a host array of numbers.
func ToValueArray(b []byte) blerpc.Array {
	arr := make(blerpc.Array, len(b))
	for i, v := range b {
		arr[i] = float64(v)
	}
	return arr
}

// BytesToString encodes at most length bytes of b as a host string.
func BytesToString(b []byte, length int) string {
	if length < 0 {
		length = 0
	}
	if length > len(b) {
		length = len(b)
	}
	return string(b[:length])
}

// ToRepresentable encodes a native value for the host.
func ToRepresentable(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return n, nil
	case string:
		return n, nil
	case []byte:
		return ToValueArray(n), nil
	case []uint16:
		arr := make(blerpc.Array, len(n))
		for i, e := range n {
			arr[i] = float64(e)
		}
		return arr, nil
	case blerpc.Object:
		return n, nil
	case blerpc.Array:
		return n, nil
	case blerpc.Callback:
		return n, nil
	case Representable:
		return n.ToMap(), nil
	}

	if f, ok := number(v); ok {
		return f, nil
	}
	return nil, blerpc.TypeMismatch("representable value")
}

// Set encodes value and stores it in obj under name.
func Set(obj blerpc.Object, name string, value interface{}) error {
	if obj == nil {
		return blerpc.TypeMismatch("object")
	}

	rv, err := ToRepresentable(value)
	if err != nil {
		return err
	}
	obj[name] = rv
	return nil
}
