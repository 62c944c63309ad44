package conv

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/names"
)

func TestExtractHex(t *testing.T) {
	b, err := ExtractHex("a1b2")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 2 || b[0] != 0xA1 || b[1] != 0xB2 {
		t.Fatalf("unexpected bytes % X", b)
	}
}

func TestExtractHexInvalid(t *testing.T) {
	for _, s := range []string{"a", "abc", "zz", "0g", "a1 b", "é0"} {
		_, err := ExtractHex(s)
		var ie *blerpc.InvalidEncodingError
		if !errors.As(err, &ie) {
			t.Fatalf("%q: expected InvalidEncoding, got %v", s, err)
		}
	}

	_, err := ExtractHex(12.0)
	if _, ok := err.(*blerpc.TypeMismatchError); !ok {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"", "00", "ff", "DeadBeef", "0123456789abcdefABCDEF"} {
		b, err := ExtractHex(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if len(b) != len(s)/2 {
			t.Fatalf("%q: expected %d bytes, got %d", s, len(s)/2, len(b))
		}
		if enc := EncodeHex(b); !strings.EqualFold(enc, s) {
			t.Fatalf("%q: re-encoded as %q", s, enc)
		}
	}
}

func TestHexField(t *testing.T) {
	b, err := HexField(blerpc.Object{"key": "0102"}, "key")
	if err != nil || len(b) != 2 {
		t.Fatalf("unexpected %v %v", b, err)
	}
}

func TestUnits(t *testing.T) {
	if v := MsecsToUnitsUint16(1250, Unit1250ms); v != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := MsecsToUnitsUint16(1e12, Unit625ms); v != 0xffff {
		t.Fatalf("expected clamp to 0xffff, got %v", v)
	}
	if v := MsecsToUnitsUint8(1e9, Unit10s); v != 0xff {
		t.Fatalf("expected clamp to 0xff, got %v", v)
	}
	if v := MsecsToUnitsUint16(-5, Unit625ms); v != 0 {
		t.Fatalf("expected clamp to 0, got %v", v)
	}
	if ms := UnitsToMsecs(3, Unit10000ms); ms != 30000 {
		t.Fatalf("expected 30000, got %v", ms)
	}
}

func TestUnitsRoundTripWithinOneUnit(t *testing.T) {
	for _, unit := range []Unit{Unit625ms, Unit1250ms, Unit10000ms} {
		for ms := 0.0; ms < float64(unit)*1000; ms += float64(unit) / 7 {
			units := MsecsToUnitsUint16(ms, unit)
			back := UnitsToMsecs(units, unit)
			if d := back - ms; d > float64(unit) || d < -float64(unit) {
				t.Fatalf("unit %v: %v -> %v -> %v", unit, ms, units, back)
			}
		}
	}
}

func TestUnitsField(t *testing.T) {
	v, err := MsecsToUnitsUint16Field(blerpc.Object{"interval": 2500.0}, "interval", Unit1250ms)
	if err != nil || v != 2 {
		t.Fatalf("unexpected %v %v", v, err)
	}

	_, err = MsecsToUnitsUint8Field(blerpc.Object{}, "timeout", Unit10s)
	if _, ok := errors.Cause(err).(*blerpc.FieldMissingError); !ok {
		t.Fatalf("expected field missing, got %v", err)
	}
}

func TestStringToValue(t *testing.T) {
	tbl := names.New("roles", map[uint16]string{1: "PERIPH", 2: "CENTRAL"})

	if v := StringToValue(tbl, "CENTRAL", 0xffff); v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	if v := StringToValue(tbl, "NOPE", 0xffff); v != 0xffff {
		t.Fatalf("expected default, got %v", v)
	}
	if v := StringToValue(tbl, 2.0, 7); v != 7 {
		t.Fatalf("non-string should yield default, got %v", v)
	}
	if s := ValueToString(9, tbl, ""); s != names.UnknownValue {
		t.Fatalf("expected fallback, got %v", s)
	}
}

func TestMisc(t *testing.T) {
	if Uint16Decode([]byte{0x34, 0x12}) != 0x1234 {
		t.Fatal("uint16 decode")
	}
	if Uint32Decode([]byte{0x78, 0x56, 0x34, 0x12}) != 0x12345678 {
		t.Fatal("uint32 decode")
	}
	if Uint16Decode([]byte{1}) != 0 {
		t.Fatal("short input should decode as 0")
	}
	if !EnsureASCIINumbers([]byte("123456")) || EnsureASCIINumbers([]byte("12a456")) {
		t.Fatal("ascii numbers")
	}

	ts := Timestamp(time.Date(2016, 3, 4, 5, 6, 7, 8e6, time.UTC))
	if ts != "2016-03-04T05:06:07.008" {
		t.Fatalf("unexpected timestamp %v", ts)
	}
}
