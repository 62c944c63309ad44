package evt

import (
	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
)

// TxComplete reports packets the controller has sent.
type TxComplete struct {
	Header
	Count uint8
}

func (e *TxComplete) Name() string { return "BLE_EVT_TX_COMPLETE" }

func (e *TxComplete) ToMap() blerpc.Object {
	m := e.fill(e.Name())
	m["count"] = conv.ToNumber(e.Count)
	return m
}

func (e *TxComplete) ToNative() []byte {
	return []byte{e.Count}
}

func decodeTxComplete(h Header, p []byte) (Event, error) {
	c, err := getByte(p, 0, "count")
	if err != nil {
		return nil, err
	}
	return &TxComplete{Header: h, Count: c}, nil
}
