package blerpc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc/names"
)

// ErrAdapterNotFound is returned when an adapter handle is not in the registry.
var ErrAdapterNotFound = errors.New("adapter not found")

// TypeMismatchError reports a host value of the wrong kind.
type TypeMismatchError struct {
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s", e.Expected)
}

// TypeMismatch ...
func TypeMismatch(expected string) error {
	return &TypeMismatchError{Expected: expected}
}

// OutOfRangeError reports a value outside a declared [Min, Max].
type OutOfRangeError struct {
	Min, Max, Actual float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %v out of range [%v, %v]", e.Actual, e.Min, e.Max)
}

// OutOfRange ...
func OutOfRange(min, max, actual float64) error {
	return &OutOfRangeError{Min: min, Max: max, Actual: actual}
}

// FieldMissingError reports an object key or array index that did not resolve.
type FieldMissingError struct {
	Name string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("field %s missing", e.Name)
}

// FieldMissing ...
func FieldMissing(name string) error {
	return &FieldMissingError{Name: name}
}

// InvalidEncodingError reports malformed encoded input (hex text, payload bytes).
type InvalidEncodingError struct {
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding: %s", e.Reason)
}

// InvalidEncoding ...
func InvalidEncoding(format string, args ...interface{}) error {
	return &InvalidEncodingError{Reason: fmt.Sprintf(format, args...)}
}

// NativeCallError carries a non-success result code from the driver.
type NativeCallError struct {
	Code      int
	Operation string
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("Error occured when %s. Errorcode: %s (0x%X)", e.Operation, e.CodeName(), e.Code)
}

// CodeName resolves Code through the result-code table.
func (e *NativeCallError) CodeName() string {
	if e.Code < 0 || e.Code > 0xffff {
		return names.UnknownValue
	}
	return names.Errors().Name(uint16(e.Code))
}

// NativeCallFailed ...
func NativeCallFailed(code int, operation string) error {
	return &NativeCallError{Code: code, Operation: operation}
}
