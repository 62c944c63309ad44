package conv

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigado/blerpc"
)

func TestStrictUint8OutOfRange(t *testing.T) {
	obj := blerpc.Object{"x": 300.0}

	_, err := Uint8(obj, "x", Strict())
	require.Error(t, err)

	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor), "expected OutOfRangeError, got %v", err)
	assert.Equal(t, 0.0, oor.Min)
	assert.Equal(t, 255.0, oor.Max)
	assert.Equal(t, 300.0, oor.Actual)
}

func TestDeclaredRange(t *testing.T) {
	obj := blerpc.Object{"interval": 5.0}

	_, err := Uint16(obj, "interval", InRange(6, 3200))
	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 6.0, oor.Min)

	v, err := Uint16(blerpc.Object{"interval": 6.0}, "interval", InRange(6, 3200))
	require.NoError(t, err)
	assert.EqualValues(t, 6, v)
}

func TestDeclaredRangeWiderThanWidth(t *testing.T) {
	_, err := ToUint8(300.0, InRange(0, 1000))
	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor), "expected OutOfRangeError, got %v", err)
	assert.Equal(t, 0.0, oor.Min)
	assert.Equal(t, 255.0, oor.Max)
	assert.Equal(t, 300.0, oor.Actual)

	_, err = ToInt8(-200.0, InRange(-1000, 0))
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, -128.0, oor.Min)

	v, err := ToUint8(200.0, InRange(0, 1000))
	require.NoError(t, err)
	assert.EqualValues(t, 200, v)
}

func TestTruncateWithoutRange(t *testing.T) {
	cases := []struct {
		in  float64
		u8  uint8
		i8  int8
		u16 uint16
		i32 int32
	}{
		{300, 44, 44, 300, 300},
		{-1, 255, -1, 65535, -1},
		{2.9, 2, 2, 2, 2},
		{-2.9, 254, -2, 65534, -2},
		{4294967296 + 5, 5, 5, 5, 5},
		{math.NaN(), 0, 0, 0, 0},
	}

	for _, c := range cases {
		u8, err := ToUint8(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.u8, u8, "uint8(%v)", c.in)

		i8, err := ToInt8(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.i8, i8, "int8(%v)", c.in)

		u16, err := ToUint16(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.u16, u16, "uint16(%v)", c.in)

		i32, err := ToInt32(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.i32, i32, "int32(%v)", c.in)
	}
}

func TestNumericTypeMismatch(t *testing.T) {
	for _, v := range []interface{}{"12", true, nil, blerpc.Object{}, []byte{1}} {
		_, err := ToUint32(v)
		var tm *blerpc.TypeMismatchError
		require.True(t, errors.As(err, &tm), "value %#v: %v", v, err)
		assert.Equal(t, "number", tm.Expected)

		_, err = ToDouble(v)
		require.True(t, errors.As(err, &tm))
	}
}

func TestGoIntegerSources(t *testing.T) {
	v, err := ToUint16(int64(513))
	require.NoError(t, err)
	assert.EqualValues(t, 513, v)

	i, err := ToInt16(uint8(200))
	require.NoError(t, err)
	assert.EqualValues(t, 200, i)
}

func TestIntegerRoundTrip(t *testing.T) {
	obj := blerpc.Object{}

	for _, x := range []uint16{0, 1, 0x7fff, 0x8000, 0xffff} {
		require.NoError(t, Set(obj, "v", x))
		back, err := Uint16(obj, "v", Strict())
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}

	for _, x := range []int8{-128, -1, 0, 127} {
		require.NoError(t, Set(obj, "v", x))
		back, err := Int8(obj, "v", Strict())
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}

	for _, x := range []uint32{0, 0xdeadbeef, math.MaxUint32} {
		require.NoError(t, Set(obj, "v", x))
		back, err := Uint32(obj, "v", Strict())
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}

	for _, x := range []int32{math.MinInt32, -42, math.MaxInt32} {
		require.NoError(t, Set(obj, "v", x))
		back, err := Int32(obj, "v", Strict())
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}
}

func TestStrictNeverClamps(t *testing.T) {
	for _, v := range []float64{-1, 256, 1e9, -1e9} {
		_, err := ToUint8(v, Strict())
		var oor *blerpc.OutOfRangeError
		require.True(t, errors.As(err, &oor), "value %v", v)
		assert.Equal(t, v, oor.Actual)
	}

	for _, v := range []float64{-129, 128} {
		_, err := ToInt8(v, Strict())
		var oor *blerpc.OutOfRangeError
		require.True(t, errors.As(err, &oor), "value %v", v)
	}
}

func TestDouble(t *testing.T) {
	d, err := Double(blerpc.Object{"rssi": -42.5}, "rssi")
	require.NoError(t, err)
	assert.Equal(t, -42.5, d)

	_, err = Double(blerpc.Object{"rssi": 11.0}, "rssi", InRange(-10, 10))
	var oor *blerpc.OutOfRangeError
	require.True(t, errors.As(err, &oor))
}
