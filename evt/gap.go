package evt

import (
	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// GapConnected reports a new link.
type GapConnected struct {
	Header
	PeerAddr   Addr
	Role       uint8
	ConnParams ConnParams
}

func (e *GapConnected) Name() string { return "BLE_GAP_EVT_CONNECTED" }

func (e *GapConnected) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["peer_addr"] = e.PeerAddr.ToMap()
	m["role"] = names.Default().Lookup(names.TableGapRoles, uint16(e.Role), names.UnknownValue)
	m["conn_params"] = e.ConnParams.ToMap()
	return m
}

func (e *GapConnected) ToNative() []byte {
	b := e.PeerAddr.appendNative(make([]byte, 0, 1+AddrLen+1+connParamsLen))
	b = append(b, e.Role)
	return e.ConnParams.appendNative(b)
}

func decodeGapConnected(h Header, p []byte) (Event, error) {
	a, err := decodeAddr(p, 0, "peer_addr")
	if err != nil {
		return nil, err
	}
	role, err := getByte(p, 1+AddrLen, "role")
	if err != nil {
		return nil, err
	}
	cp, err := decodeConnParams(p, 2+AddrLen)
	if err != nil {
		return nil, err
	}
	return &GapConnected{Header: h, PeerAddr: a, Role: role, ConnParams: cp}, nil
}

// GapDisconnected reports a dropped link with its HCI reason.
type GapDisconnected struct {
	Header
	Reason uint8
}

func (e *GapDisconnected) Name() string { return "BLE_GAP_EVT_DISCONNECTED" }

func (e *GapDisconnected) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["reason"] = conv.ToNumber(e.Reason)
	m["reason_name"] = names.HCIStatus().Name(uint16(e.Reason))
	return m
}

func (e *GapDisconnected) ToNative() []byte {
	return []byte{e.Reason}
}

func decodeGapDisconnected(h Header, p []byte) (Event, error) {
	r, err := getByte(p, 0, "reason")
	if err != nil {
		return nil, err
	}
	return &GapDisconnected{Header: h, Reason: r}, nil
}

type GapConnParamUpdate struct {
	Header
	ConnParams ConnParams
}

func (e *GapConnParamUpdate) Name() string { return "BLE_GAP_EVT_CONN_PARAM_UPDATE" }

func (e *GapConnParamUpdate) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["conn_params"] = e.ConnParams.ToMap()
	return m
}

func (e *GapConnParamUpdate) ToNative() []byte {
	return e.ConnParams.appendNative(make([]byte, 0, connParamsLen))
}

func decodeGapConnParamUpdate(h Header, p []byte) (Event, error) {
	cp, err := decodeConnParams(p, 0)
	if err != nil {
		return nil, err
	}
	return &GapConnParamUpdate{Header: h, ConnParams: cp}, nil
}

// GapTimeout reports an expired GAP procedure.
type GapTimeout struct {
	Header
	Src uint8
}

func (e *GapTimeout) Name() string { return "BLE_GAP_EVT_TIMEOUT" }

func (e *GapTimeout) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["src"] = conv.ToNumber(e.Src)
	m["src_name"] = names.Default().Lookup(names.TableGapTimeoutSources, uint16(e.Src), names.UnknownValue)
	return m
}

func (e *GapTimeout) ToNative() []byte {
	return []byte{e.Src}
}

func decodeGapTimeout(h Header, p []byte) (Event, error) {
	s, err := getByte(p, 0, "src")
	if err != nil {
		return nil, err
	}
	return &GapTimeout{Header: h, Src: s}, nil
}

type GapRSSIChanged struct {
	Header
	RSSI int8
}

func (e *GapRSSIChanged) Name() string { return "BLE_GAP_EVT_RSSI_CHANGED" }

func (e *GapRSSIChanged) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["rssi"] = conv.ToNumber(e.RSSI)
	return m
}

func (e *GapRSSIChanged) ToNative() []byte {
	return []byte{byte(e.RSSI)}
}

func decodeGapRSSIChanged(h Header, p []byte) (Event, error) {
	r, err := getInt8(p, 0, "rssi")
	if err != nil {
		return nil, err
	}
	return &GapRSSIChanged{Header: h, RSSI: r}, nil
}

// Advertising report flag bits.
const (
	advFlagScanRsp   = 0x01
	advFlagTypeMask  = 0x06
	advFlagTypeShift = 1
)

// GapAdvReport is one advertising or scan response packet.
type GapAdvReport struct {
	Header
	PeerAddr Addr
	RSSI     int8
	ScanRsp  bool
	Type     uint8
	Data     []byte
}

func (e *GapAdvReport) Name() string { return "BLE_GAP_EVT_ADV_REPORT" }

func (e *GapAdvReport) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["peer_addr"] = e.PeerAddr.ToMap()
	m["rssi"] = conv.ToNumber(e.RSSI)
	m["scan_rsp"] = e.ScanRsp
	m["adv_type"] = names.Default().Lookup(names.TableAdvTypes, uint16(e.Type), names.UnknownValue)
	m["data"] = conv.ToValueArray(e.Data)
	if ad, err := ParseAdvData(e.Data); err == nil {
		m["adv_data"] = ad
	}
	return m
}

func (e *GapAdvReport) flags() uint8 {
	f := (e.Type << advFlagTypeShift) & advFlagTypeMask
	if e.ScanRsp {
		f |= advFlagScanRsp
	}
	return f
}

func (e *GapAdvReport) ToNative() []byte {
	b := e.PeerAddr.appendNative(make([]byte, 0, 1+AddrLen+3+len(e.Data)))
	b = append(b, byte(e.RSSI), e.flags(), uint8(len(e.Data)))
	return append(b, e.Data...)
}

func decodeGapAdvReport(h Header, p []byte) (Event, error) {
	a, err := decodeAddr(p, 0, "peer_addr")
	if err != nil {
		return nil, err
	}

	off := 1 + AddrLen
	rssi, err := getInt8(p, off, "rssi")
	if err != nil {
		return nil, err
	}
	flags, err := getByte(p, off+1, "flags")
	if err != nil {
		return nil, err
	}
	dlen, err := getByte(p, off+2, "dlen")
	if err != nil {
		return nil, err
	}
	if dlen > advDataMax {
		return nil, blerpc.InvalidEncoding("dlen %d exceeds %d", dlen, advDataMax)
	}
	data, err := copyBytes(p, off+3, int(dlen), "data")
	if err != nil {
		return nil, err
	}

	return &GapAdvReport{
		Header:   h,
		PeerAddr: a,
		RSSI:     rssi,
		ScanRsp:  flags&advFlagScanRsp != 0,
		Type:     (flags & advFlagTypeMask) >> advFlagTypeShift,
		Data:     data,
	}, nil
}
