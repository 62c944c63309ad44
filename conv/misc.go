package conv

import (
	"encoding/binary"
	"time"

	"github.com/rigado/blerpc/names"
)

// TimestampLayout is ISO 8601 local time with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000"

// StringToValue resolves a host value naming a code back to the code,
// returning def when v is not a string or the name is not in t.
func StringToValue(t *names.Table, v interface{}, def uint16) uint16 {
	s, ok := v.(string)
	if !ok {
		return def
	}
	if code, ok := t.Value(s); ok {
		return code
	}
	return def
}

// ValueToString is the forward lookup. An empty def means names.UnknownValue.
func ValueToString(code uint16, t *names.Table, def string) string {
	if def == "" {
		def = names.UnknownValue
	}
	return t.Lookup(code, def)
}

// Timestamp formats t the way event and status timestamps are reported.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// CurrentTimestamp ...
func CurrentTimestamp() string {
	return Timestamp(time.Now())
}

// Uint16Decode reads a little-endian uint16; short input decodes as 0.
func Uint16Decode(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32Decode reads a little-endian uint32; short input decodes as 0.
func Uint32Decode(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// IsBetween reports whether min <= v <= max.
func IsBetween(v, min, max uint8) bool {
	return v >= min && v <= max
}

// EnsureASCIINumbers reports whether every byte is an ASCII digit, as
// passkeys must be.
func EnsureASCIINumbers(b []byte) bool {
	for _, c := range b {
		if !IsBetween(c, '0', '9') {
			return false
		}
	}
	return true
}
