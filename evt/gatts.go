package evt

import (
	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// GattsWrite is a write from the peer client to a local attribute.
type GattsWrite struct {
	Header
	Handle       uint16
	Op           uint8
	AuthRequired bool
	Offset       uint16
	Data         []byte
}

func (e *GattsWrite) Name() string { return "BLE_GATTS_EVT_WRITE" }

func (e *GattsWrite) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["handle"] = conv.ToNumber(e.Handle)
	m["op"] = names.Default().Lookup(names.TableWriteOps, uint16(e.Op), names.UnknownValue)
	m["auth_required"] = e.AuthRequired
	m["offset"] = conv.ToNumber(e.Offset)
	m["len"] = conv.ToNumber(len(e.Data))
	m["data"] = conv.ToValueArray(e.Data)
	return m
}

func (e *GattsWrite) ToNative() []byte {
	var auth uint8
	if e.AuthRequired {
		auth = 1
	}

	b := putUint16LE(make([]byte, 0, 8+len(e.Data)), e.Handle)
	b = append(b, e.Op, auth)
	b = putUint16LE(b, e.Offset)
	b = putUint16LE(b, uint16(len(e.Data)))
	return append(b, e.Data...)
}

func decodeGattsWrite(h Header, p []byte) (Event, error) {
	handle, err := getUint16LE(p, 0, "handle")
	if err != nil {
		return nil, err
	}
	op, err := getByte(p, 2, "op")
	if err != nil {
		return nil, err
	}
	auth, err := getByte(p, 3, "auth_required")
	if err != nil {
		return nil, err
	}
	offset, err := getUint16LE(p, 4, "offset")
	if err != nil {
		return nil, err
	}
	l, err := getUint16LE(p, 6, "len")
	if err != nil {
		return nil, err
	}
	data, err := copyBytes(p, 8, int(l), "data")
	if err != nil {
		return nil, err
	}

	return &GattsWrite{
		Header:       h,
		Handle:       handle,
		Op:           op,
		AuthRequired: conv.ToBoolValue(auth),
		Offset:       offset,
		Data:         data,
	}, nil
}

type GattsExchangeMtuRequest struct {
	Header
	ClientRxMtu uint16
}

func (e *GattsExchangeMtuRequest) Name() string { return "BLE_GATTS_EVT_EXCHANGE_MTU_REQUEST" }

func (e *GattsExchangeMtuRequest) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["client_rx_mtu"] = conv.ToNumber(e.ClientRxMtu)
	return m
}

func (e *GattsExchangeMtuRequest) ToNative() []byte {
	return putUint16LE(nil, e.ClientRxMtu)
}

func decodeGattsExchangeMtuRequest(h Header, p []byte) (Event, error) {
	mtu, err := getUint16LE(p, 0, "client_rx_mtu")
	if err != nil {
		return nil, err
	}
	return &GattsExchangeMtuRequest{Header: h, ClientRxMtu: mtu}, nil
}
