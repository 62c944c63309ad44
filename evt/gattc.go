package evt

import (
	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// GattcHvx is a notification or indication from the peer server.
type GattcHvx struct {
	Header
	Handle uint16
	Type   uint8
	Data   []byte
}

func (e *GattcHvx) Name() string { return "BLE_GATTC_EVT_HVX" }

func (e *GattcHvx) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["handle"] = conv.ToNumber(e.Handle)
	m["type"] = names.Default().Lookup(names.TableHvxTypes, uint16(e.Type), names.UnknownValue)
	m["len"] = conv.ToNumber(len(e.Data))
	m["data"] = conv.ToValueArray(e.Data)
	return m
}

func (e *GattcHvx) ToNative() []byte {
	b := putUint16LE(make([]byte, 0, 5+len(e.Data)), e.Handle)
	b = append(b, e.Type)
	b = putUint16LE(b, uint16(len(e.Data)))
	return append(b, e.Data...)
}

func decodeGattcHvx(h Header, p []byte) (Event, error) {
	handle, err := getUint16LE(p, 0, "handle")
	if err != nil {
		return nil, err
	}
	typ, err := getByte(p, 2, "type")
	if err != nil {
		return nil, err
	}
	l, err := getUint16LE(p, 3, "len")
	if err != nil {
		return nil, err
	}
	data, err := copyBytes(p, 5, int(l), "data")
	if err != nil {
		return nil, err
	}
	return &GattcHvx{Header: h, Handle: handle, Type: typ, Data: data}, nil
}

type GattcExchangeMtuRsp struct {
	Header
	ServerRxMtu uint16
}

func (e *GattcExchangeMtuRsp) Name() string { return "BLE_GATTC_EVT_EXCHANGE_MTU_RSP" }

func (e *GattcExchangeMtuRsp) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["server_rx_mtu"] = conv.ToNumber(e.ServerRxMtu)
	return m
}

func (e *GattcExchangeMtuRsp) ToNative() []byte {
	return putUint16LE(nil, e.ServerRxMtu)
}

func decodeGattcExchangeMtuRsp(h Header, p []byte) (Event, error) {
	mtu, err := getUint16LE(p, 0, "server_rx_mtu")
	if err != nil {
		return nil, err
	}
	return &GattcExchangeMtuRsp{Header: h, ServerRxMtu: mtu}, nil
}
