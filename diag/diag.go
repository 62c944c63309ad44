// Package diag formats protocol codes and argument errors into the objects
// and strings the host reports.
package diag

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// ErrorMessage describes a failed native call, or returns nil for success.
func ErrorMessage(code int, operation string) blerpc.Object {
	if code == names.Success {
		return nil
	}

	nce := &blerpc.NativeCallError{Code: code, Operation: operation}
	return blerpc.Object{
		"errno":        conv.ToNumber(code),
		"errcode":      nce.CodeName(),
		"erroperation": operation,
		"errmsg":       nce.Error(),
	}
}

func TypeErrorMessage(argIndex int, text string) string {
	return fmt.Sprintf("Argument %d must be a %s", argIndex, text)
}

func StructErrorMessage(name, text string) string {
	return fmt.Sprintf("Property: %s Message: %s", name, text)
}

// StatusMessage describes an RPC transport status change.
func StatusMessage(code int, text, timestamp string) blerpc.Object {
	return blerpc.Object{
		"id":        conv.ToNumber(code),
		"name":      lookup(names.AppStatus(), code),
		"message":   text,
		"timestamp": timestamp,
	}
}

// HCIStatusMessage ...
func HCIStatusMessage(code int) blerpc.Object {
	return blerpc.Object{
		"status": conv.ToNumber(code),
		"name":   lookup(names.HCIStatus(), code),
	}
}

func lookup(t *names.Table, code int) string {
	if code < 0 || code > 0xffff {
		return names.UnknownValue
	}
	return t.Name(uint16(code))
}

// ConversionError renders an argument extraction error for the host. Errors
// wrapped with a field name are reported as property errors.
func ConversionError(argIndex int, err error) string {
	if err == nil {
		return ""
	}

	text := describe(errors.Cause(err))
	if field := fieldPath(err); field != "" {
		return StructErrorMessage(field, text)
	}
	return TypeErrorMessage(argIndex, text)
}

func describe(err error) string {
	switch e := err.(type) {
	case *blerpc.TypeMismatchError:
		return e.Expected
	case *blerpc.OutOfRangeError:
		return fmt.Sprintf("number between %v and %v, got %v", e.Min, e.Max, e.Actual)
	case *blerpc.FieldMissingError:
		return "required"
	case *blerpc.InvalidEncodingError:
		return "valid encoding: " + e.Reason
	}
	return err.Error()
}
