package conv

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigado/blerpc"
)

func TestMissingFieldDefault(t *testing.T) {
	obj := blerpc.Object{}

	v, err := Uint8(obj, "x", Default(7))
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)

	_, err = Uint8(obj, "x")
	var fm *blerpc.FieldMissingError
	require.True(t, errors.As(err, &fm))
	assert.Equal(t, "x", fm.Name)
}

func TestDefaultNotAppliedToInvalid(t *testing.T) {
	obj := blerpc.Object{"x": "seven"}

	_, err := Uint8(obj, "x", Default(7))
	var tm *blerpc.TypeMismatchError
	require.True(t, errors.As(err, &tm), "present-but-invalid must fail, got %v", err)

	_, err = Uint8(blerpc.Object{"x": 300.0}, "x", Strict(), Default(7))
	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor))
}

func TestArrayIndex(t *testing.T) {
	arr := blerpc.Array{1.0, "two", true}

	v, err := Uint8(arr, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	s, err := String(arr, 1)
	require.NoError(t, err)
	assert.Equal(t, "two", s)

	b, err := Bool(arr, 2)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = Uint8(arr, 3)
	var fm *blerpc.FieldMissingError
	require.True(t, errors.As(err, &fm))
	assert.Equal(t, "3", fm.Name)

	d, err := Uint8(arr, 5, Default(9))
	require.NoError(t, err)
	assert.EqualValues(t, 9, d)
}

func TestKeyShape(t *testing.T) {
	_, err := Get(blerpc.Object{"a": 1.0}, 0)
	var tm *blerpc.TypeMismatchError
	require.True(t, errors.As(err, &tm))

	_, err = Get(blerpc.Array{1.0}, "a")
	require.True(t, errors.As(err, &tm))

	_, err = Get(42.0, "a")
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "object", tm.Expected)
}

func TestWrappedFieldContext(t *testing.T) {
	_, err := Uint16(blerpc.Object{"handle": "x"}, "handle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle")

	_, ok := errors.Cause(err).(*blerpc.TypeMismatchError)
	assert.True(t, ok)
}

func TestBool(t *testing.T) {
	_, err := ToBool(1.0)
	var tm *blerpc.TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "bool", tm.Expected)

	nb, err := NativeBool(blerpc.Object{"on": true}, "on")
	require.NoError(t, err)
	assert.EqualValues(t, 1, nb)
}

func TestBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	b, err := ToBytes(src)
	require.NoError(t, err)
	assert.Equal(t, src, b)

	b[0] = 9
	assert.EqualValues(t, 1, src[0], "extraction must copy")

	b, err = Bytes(blerpc.Object{"data": blerpc.Array{1.0, 255.0}}, "data")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 255}, b)

	_, err = Bytes(blerpc.Object{"data": blerpc.Array{1.0, 256.0}}, "data", Strict())
	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor))

	u, err := Uint16Slice(blerpc.Object{"h": blerpc.Array{1.0, 0x1234}}, "h")
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 0x1234}, u)
}

func TestObjectAndCallback(t *testing.T) {
	inner := blerpc.Object{"a": 1.0}
	obj := blerpc.Object{"inner": inner, "none": nil, "cb": func(error, interface{}) {}}

	o, err := Object(obj, "inner")
	require.NoError(t, err)
	assert.Equal(t, inner, o)

	o, err = ObjectOrNull(obj, "none")
	require.NoError(t, err)
	assert.Nil(t, o)

	_, err = Object(obj, "none")
	var tm *blerpc.TypeMismatchError
	require.True(t, errors.As(err, &tm))

	cb, err := Callback(obj, "cb")
	require.NoError(t, err)
	assert.NotNil(t, cb)

	_, err = ToCallback("not a func")
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "function", tm.Expected)

	assert.True(t, IsNull(obj, "none"))
	assert.False(t, IsNull(obj, "missing"))
	assert.True(t, IsObject(obj, "inner"))
	assert.True(t, Has(obj, "cb"))
}

func TestSetRepresentable(t *testing.T) {
	obj := blerpc.Object{}

	require.NoError(t, Set(obj, "data", []byte{0xA1, 0xB2}))
	assert.Equal(t, blerpc.Array{161.0, 178.0}, obj["data"])

	require.NoError(t, Set(obj, "flag", true))
	assert.Equal(t, true, obj["flag"])

	err := Set(obj, "bad", struct{}{})
	var tm *blerpc.TypeMismatchError
	require.True(t, errors.As(err, &tm))

	assert.Error(t, Set(nil, "x", 1))

	assert.Equal(t, "ab", BytesToString([]byte("abc"), 2))
	assert.Equal(t, "abc", BytesToString([]byte("abc"), 99))
}
