package evt

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
)

func getBytes(b []byte, start int, count int, field string) ([]byte, error) {
	if start < 0 || start > len(b) {
		return nil, errors.Wrap(blerpc.InvalidEncoding("index %d past end of %d byte payload", start, len(b)), field)
	}

	if count < 0 {
		return b[start:], nil
	}

	end := start + count
	//end is non-inclusive
	if end > len(b) {
		return nil, errors.Wrap(blerpc.InvalidEncoding("need %d bytes at %d, have %d", count, start, len(b)-start), field)
	}

	return b[start:end], nil
}

func getByte(b []byte, i int, field string) (byte, error) {
	bb, err := getBytes(b, i, 1, field)
	if err != nil {
		return 0, err
	}
	return bb[0], nil
}

func getInt8(b []byte, i int, field string) (int8, error) {
	v, err := getByte(b, i, field)
	return int8(v), err
}

func getUint16LE(b []byte, i int, field string) (uint16, error) {
	bb, err := getBytes(b, i, 2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bb), nil
}

// copyBytes is getBytes with ownership: payloads are borrowed from the driver.
func copyBytes(b []byte, start, count int, field string) ([]byte, error) {
	bb, err := getBytes(b, start, count, field)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(bb))
	copy(out, bb)
	return out, nil
}

func putUint16LE(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}
