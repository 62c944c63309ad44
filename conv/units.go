package conv

import (
	"math"
)

// Unit is a protocol time unit. A unit count times the unit size is the
// duration in milliseconds.
type Unit int

const (
	Unit625ms   Unit = 625
	Unit1250ms  Unit = 1250
	Unit10000ms Unit = 10000
	Unit10s          = Unit10000ms
)

func msecsToUnits(msecs float64, unit Unit, max float64) float64 {
	if unit <= 0 || math.IsNaN(msecs) {
		return 0
	}
	u := math.Round(msecs / float64(unit))
	switch {
	case u < 0:
		return 0
	case u > max:
		return max
	}
	return u
}

// MsecsToUnitsUint16 rounds msecs to the nearest whole unit count, clamped to uint16.
func MsecsToUnitsUint16(msecs float64, unit Unit) uint16 {
	return uint16(msecsToUnits(msecs, unit, math.MaxUint16))
}

// MsecsToUnitsUint8 rounds msecs to the nearest whole unit count, clamped to uint8.
func MsecsToUnitsUint8(msecs float64, unit Unit) uint8 {
	return uint8(msecsToUnits(msecs, unit, math.MaxUint8))
}

// UnitsToMsecs multiplies units by the unit size.
func UnitsToMsecs(units uint16, unit Unit) float64 {
	return float64(units) * float64(unit)
}

// MsecsToUnitsUint16Field reads a millisecond duration from src[key].
func MsecsToUnitsUint16Field(src, key interface{}, unit Unit, opts ...Option) (uint16, error) {
	ms, err := Double(src, key, opts...)
	if err != nil {
		return 0, err
	}
	return MsecsToUnitsUint16(ms, unit), nil
}

// MsecsToUnitsUint8Field reads a millisecond duration from src[key].
func MsecsToUnitsUint8Field(src, key interface{}, unit Unit, opts ...Option) (uint8, error) {
	ms, err := Double(src, key, opts...)
	if err != nil {
		return 0, err
	}
	return MsecsToUnitsUint8(ms, unit), nil
}
