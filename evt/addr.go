package evt

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// Addr is a device address as the driver carries it: little-endian bytes.
type Addr struct {
	Type uint8
	Addr [AddrLen]byte
}

// swapBuf returns a reversed copy of in.
func swapBuf(in []byte) []byte {
	a := make([]byte, 0, len(in))
	a = append(a, in...)
	for i := len(a)/2 - 1; i >= 0; i-- {
		opp := len(a) - 1 - i
		a[i], a[opp] = a[opp], a[i]
	}

	return a
}

// NewAddr parses a display address ("AA:BB:CC:DD:EE:FF", most significant
// byte first).
func NewAddr(s string, typ uint8) (Addr, error) {
	b, err := conv.ExtractHex(strings.Replace(s, ":", "", -1))
	if err != nil {
		return Addr{}, err
	}
	if len(b) != AddrLen {
		return Addr{}, blerpc.InvalidEncoding("address %q has %d bytes", s, len(b))
	}

	a := Addr{Type: typ}
	copy(a.Addr[:], swapBuf(b))
	return a, nil
}

func (a Addr) String() string {
	h := conv.EncodeHex(swapBuf(a.Addr[:]))

	var sb strings.Builder
	for i := 0; i < len(h); i += 2 {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(h[i : i+2])
	}
	return sb.String()
}

// Bytes returns the address in wire order.
func (a Addr) Bytes() []byte {
	return append([]byte{}, a.Addr[:]...)
}

// TypeName resolves Type through the address-type table.
func (a Addr) TypeName() string {
	return names.Default().Lookup(names.TableAddrTypes, uint16(a.Type), names.UnknownValue)
}

func (a Addr) ToMap() blerpc.Object {
	return blerpc.Object{
		"address": a.String(),
		"type":    a.TypeName(),
	}
}

func (a Addr) appendNative(b []byte) []byte {
	b = append(b, a.Type)
	return append(b, a.Addr[:]...)
}

func decodeAddr(p []byte, off int, field string) (Addr, error) {
	var a Addr

	t, err := getByte(p, off, field+".type")
	if err != nil {
		return a, err
	}
	bb, err := getBytes(p, off+1, AddrLen, field+".address")
	if err != nil {
		return a, err
	}

	a.Type = t
	copy(a.Addr[:], bb)
	return a, nil
}

// AddrFromObject reads {address, type} from a host object. The type may be
// given by name or by number.
func AddrFromObject(obj blerpc.Object) (Addr, error) {
	s, err := conv.String(obj, "address")
	if err != nil {
		return Addr{}, err
	}

	var typ uint8
	if tv, _ := conv.Get(obj, "type"); tv != nil {
		if _, isName := tv.(string); isName {
			tbl := names.Default().Table(names.TableAddrTypes)
			code := conv.StringToValue(tbl, tv, 0xffff)
			if code == 0xffff {
				return Addr{}, errors.Wrap(blerpc.InvalidEncoding("unknown address type %q", tv), "type")
			}
			typ = uint8(code)
		} else if typ, err = conv.Uint8(obj, "type", conv.InRange(AddrTypePublic, AddrTypeRandomPrivateNonResolvable)); err != nil {
			return Addr{}, err
		}
	}

	a, err := NewAddr(s, typ)
	if err != nil {
		return Addr{}, errors.Wrap(err, "address")
	}
	return a, nil
}
