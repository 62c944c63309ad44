package blerpc

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNativeCallErrorMessage(t *testing.T) {
	err := NativeCallFailed(0x8005, "opening adapter")

	exp := "Error occured when opening adapter. Errorcode: NRF_ERROR_SD_RPC_NO_RESPONSE (0x8005)"
	if err.Error() != exp {
		t.Fatalf("expected %q, got %q", exp, err.Error())
	}

	unknown := &NativeCallError{Code: -4, Operation: "x"}
	if unknown.CodeName() != "Unknown value" {
		t.Fatalf("expected fallback name, got %v", unknown.CodeName())
	}
}

func TestTaxonomySurvivesWrap(t *testing.T) {
	err := errors.Wrap(OutOfRange(0, 255, 300), "conn_params")

	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError in chain, got %T", errors.Cause(err))
	}
	if oor.Min != 0 || oor.Max != 255 || oor.Actual != 300 {
		t.Fatalf("unexpected range %+v", oor)
	}
	if _, ok := errors.Cause(err).(*OutOfRangeError); !ok {
		t.Fatal("Cause should unwrap to the taxonomy type")
	}
}
