package names

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupFallback(t *testing.T) {
	tbl := New("test", map[uint16]string{1: "ONE", 2: "TWO"})

	if n := tbl.Lookup(1, "x"); n != "ONE" {
		t.Fatalf("expected ONE, got %v", n)
	}
	if n := tbl.Lookup(3, "fallback"); n != "fallback" {
		t.Fatalf("expected fallback, got %v", n)
	}
	if n := tbl.Name(0xffff); n != UnknownValue {
		t.Fatalf("expected %q, got %q", UnknownValue, n)
	}

	var nilTable *Table
	if n := nilTable.Lookup(1, "none"); n != "none" {
		t.Fatalf("nil table lookup: got %v", n)
	}
}

func TestReverseLookup(t *testing.T) {
	tbl := New("test", map[uint16]string{0x10: "CONNECTED"})

	v, ok := tbl.Value("CONNECTED")
	if !ok || v != 0x10 {
		t.Fatalf("expected 0x10, got %v %v", v, ok)
	}

	if _, ok := tbl.Value("nope"); ok {
		t.Fatal("unexpected hit for unknown name")
	}
}

func TestBuiltinTables(t *testing.T) {
	cases := []struct {
		table string
		code  uint16
		name  string
	}{
		{TableErrors, 0x0000, "NRF_SUCCESS"},
		{TableErrors, 0x8005, "NRF_ERROR_SD_RPC_NO_RESPONSE"},
		{TableHCIStatus, 0x13, "BLE_HCI_REMOTE_USER_TERMINATED_CONNECTION"},
		{TableAppStatus, 6, "RESET_PERFORMED"},
		{TableEvents, 0x10, "BLE_GAP_EVT_CONNECTED"},
		{TableGapRoles, 2, "BLE_GAP_ROLE_CENTRAL"},
	}

	for _, c := range cases {
		if n := Default().Lookup(c.table, c.code, ""); n != c.name {
			t.Errorf("%s[0x%X]: expected %v, got %v", c.table, c.code, c.name, n)
		}
	}

	if n := Default().Lookup("missing-table", 1, "fb"); n != "fb" {
		t.Fatalf("missing table should fall back, got %v", n)
	}
}

func TestCodesSorted(t *testing.T) {
	tbl := New("test", map[uint16]string{9: "c", 1: "a", 5: "b"})
	cc := tbl.Codes()
	if len(cc) != 3 || cc[0] != 1 || cc[1] != 5 || cc[2] != 9 {
		t.Fatalf("unexpected order %v", cc)
	}
}

func TestSetExtend(t *testing.T) {
	s := NewSet()
	s.Register(New("a", map[uint16]string{1: "ONE"}))
	s.Extend(New("a", map[uint16]string{2: "TWO", 1: "UNO"}))

	tbl := s.Table("a")
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 entries, got %v", tbl.Len())
	}
	if tbl.Name(1) != "UNO" {
		t.Fatalf("extend should override, got %v", tbl.Name(1))
	}
}

func TestFileRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "names.json")

	err := SaveFile(fn, New("vendor", map[uint16]string{0x10: "VENDOR_A", 0x2F: "VENDOR_B"}))
	if err != nil {
		t.Fatal(err)
	}

	tt, err := LoadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 1 || tt[0].TableName() != "vendor" {
		t.Fatalf("unexpected tables %v", tt)
	}
	if tt[0].Name(0x2F) != "VENDOR_B" {
		t.Fatalf("expected VENDOR_B, got %v", tt[0].Name(0x2F))
	}
}

func TestLoadFileBadCode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(fn, []byte(`{"x": {"zz": "BAD"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(fn); err == nil {
		t.Fatal("expected error for non-numeric code")
	}
}

func TestSetLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ext.json")
	if err := os.WriteFile(fn, []byte(`{"errors": {"0x9000": "VENDOR_ERR"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewSet()
	for _, tbl := range Builtin() {
		s.Register(tbl)
	}
	if err := s.LoadFile(fn); err != nil {
		t.Fatal(err)
	}

	if n := s.Lookup(TableErrors, 0x9000, ""); n != "VENDOR_ERR" {
		t.Fatalf("expected VENDOR_ERR, got %v", n)
	}
	if n := s.Lookup(TableErrors, 0, ""); n != "NRF_SUCCESS" {
		t.Fatalf("builtin entries lost, got %v", n)
	}
}
