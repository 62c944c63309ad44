package conv

import (
	"encoding/hex"
	"strings"

	"github.com/rigado/blerpc"
)

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ExtractHex decodes a host hex string ("a1B2") into bytes.
func ExtractHex(v interface{}) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, blerpc.TypeMismatch("string")
	}

	if len(s)%2 != 0 {
		return nil, blerpc.InvalidEncoding("odd hex length %d", len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexNibble(s[i])
		if !ok {
			return nil, blerpc.InvalidEncoding("non-hex character %q at %d", s[i], i)
		}
		lo, ok := hexNibble(s[i+1])
		if !ok {
			return nil, blerpc.InvalidEncoding("non-hex character %q at %d", s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}

	return out, nil
}

// HexField extracts src[key] with ExtractHex.
func HexField(src, key interface{}, opts ...Option) ([]byte, error) {
	return field(src, key, opts, func(v interface{}, _ *options) ([]byte, error) {
		return ExtractHex(v)
	})
}

// EncodeHex is the inverse of ExtractHex, upper case.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
