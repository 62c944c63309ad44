package evt

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
)

type testPdu struct {
	b []byte
}

func (t *testPdu) addBad(recTyp byte, badRecLen byte, recBytes []byte) {
	t.b = append(t.b, badRecLen, recTyp)
	t.b = append(t.b, recBytes...)
}

func (t *testPdu) add(recTyp byte, recBytes []byte) {
	lb := byte(len(recBytes) + 1)
	t.b = append(t.b, lb, recTyp)
	t.b = append(t.b, recBytes...)
}

func TestAdvDataArrays(t *testing.T) {
	for _, typ := range []byte{adUUID16Inc, adUUID16Comp, adUUID32Inc, adUUID32Comp, adUUID128Inc, adUUID128Comp, adSol16, adSol32, adSol128} {
		dec := adDecodeMap[typ]

		var b1, b2 []byte
		for i := 0; i < dec.arrayElementSz; i++ {
			b1 = append(b1, byte(i))
			b2 = append(b2, 255-byte(i))
		}

		p := testPdu{}
		p.add(typ, append(append([]byte{}, b1...), b2...))

		m, err := ParseAdvData(p.b)
		if err != nil {
			t.Fatalf("type 0x%02x: %v", typ, err)
		}
		exp := blerpc.Array{UUIDString(b1), UUIDString(b2)}
		if !reflect.DeepEqual(m[dec.key], exp) {
			t.Fatalf("type 0x%02x: expected %v, got %v", typ, exp, m[dec.key])
		}

		// one byte too many
		p = testPdu{}
		p.add(typ, append(append([]byte{}, b1...), 0xbb))
		if _, err := ParseAdvData(p.b); err == nil {
			t.Fatalf("type 0x%02x: len%%size != 0, no decode error", typ)
		}

		// corrupt length
		p = testPdu{}
		p.addBad(typ, byte(len(b1)+32), b1)
		_, err = ParseAdvData(p.b)
		var ie *blerpc.InvalidEncodingError
		if !errors.As(err, &ie) {
			t.Fatalf("type 0x%02x: corrupt length, got %v", typ, err)
		}
	}
}

func TestUUIDString(t *testing.T) {
	if s := UUIDString([]byte{0x0d, 0x18}); s != "180D" {
		t.Fatalf("unexpected %v", s)
	}

	hrs := []byte{0xfb, 0x34, 0x9b, 0x5f, 0x80, 0x00, 0x00, 0x80, 0x00, 0x10, 0x00, 0x00, 0x0d, 0x18, 0x00, 0x00}
	if s := UUIDString(hrs); s != "0000180d-0000-1000-8000-00805f9b34fb" {
		t.Fatalf("unexpected %v", s)
	}
}

func TestAdvDataRecords(t *testing.T) {
	p := testPdu{}
	p.add(adFlags, []byte{0x06})
	p.add(adNameComp, []byte("Thingy"))
	p.add(adTxPower, []byte{0xf8})
	p.add(adSvc16, []byte{0x0d, 0x18, 0x01, 0x02})
	p.add(adMfgData, []byte{0x59, 0x00, 0xaa})
	p.add(0x2a, []byte{0x01}) // unhandled, skipped

	m, err := ParseAdvData(p.b)
	if err != nil {
		t.Fatal(err)
	}

	exp := blerpc.Object{
		AdvKeyFlags:       6.0,
		AdvKeyLocalName:   "Thingy",
		AdvKeyTxPower:     -8.0,
		AdvKeyServiceData: blerpc.Object{"180D": blerpc.Array{blerpc.Array{1.0, 2.0}}},
		AdvKeyMfgData:     blerpc.Array{89.0, 0.0, 170.0},
	}
	if !reflect.DeepEqual(m, exp) {
		t.Fatalf("expected %v, got %v", exp, m)
	}

	if _, err := ParseAdvData(nil); err != ErrEmptyAdvData {
		t.Fatalf("expected ErrEmptyAdvData, got %v", err)
	}
}

func TestAdvDataRepeatedServiceData(t *testing.T) {
	p := testPdu{}
	p.add(adSvc16, []byte{0x0d, 0x18, 0x01})
	p.add(adSvc16, []byte{0x0f, 0x18, 0x64})
	p.add(adSvc16, []byte{0x0d, 0x18, 0x02, 0x03})

	m, err := ParseAdvData(p.b)
	if err != nil {
		t.Fatal(err)
	}

	exp := blerpc.Object{
		"180D": blerpc.Array{blerpc.Array{1.0}, blerpc.Array{2.0, 3.0}},
		"180F": blerpc.Array{blerpc.Array{100.0}},
	}
	if !reflect.DeepEqual(m[AdvKeyServiceData], exp) {
		t.Fatalf("expected %v, got %v", exp, m[AdvKeyServiceData])
	}
}
