// Package evt decodes driver events into typed variants and encodes them for
// the host.
package evt

import (
	"time"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
	"github.com/rigado/blerpc/names"
)

// ErrUnknownEvent is returned by Decode for ids outside the handled set.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one decoded driver event.
type Event interface {
	ID() uint16
	Name() string
	EventHeader() Header

	// ToMap encodes the event for the host.
	ToMap() blerpc.Object

	// ToNative encodes the payload back to the driver layout.
	ToNative() []byte
}

// Header is the part shared by every event.
type Header struct {
	EventID    uint16
	Time       string
	ConnHandle uint16
}

// NewHeader stamps a header with the current time.
func NewHeader(id, connHandle uint16) Header {
	return Header{EventID: id, Time: conv.Timestamp(time.Now()), ConnHandle: connHandle}
}

func (h Header) ID() uint16 { return h.EventID }

func (h Header) EventHeader() Header { return h }

// fill returns the shared fields. Registered event names win over the
// variant's own.
func (h Header) fill(name string) blerpc.Object {
	return blerpc.Object{
		"id":          conv.ToNumber(h.EventID),
		"name":        names.Default().Lookup(names.TableEvents, h.EventID, name),
		"time":        h.Time,
		"conn_handle": conv.ToNumber(h.ConnHandle),
	}
}

type decoder func(h Header, p []byte) (Event, error)

var decodeMap = map[uint16]decoder{
	IDTxComplete:              decodeTxComplete,
	IDGapConnected:            decodeGapConnected,
	IDGapDisconnected:         decodeGapDisconnected,
	IDGapConnParamUpdate:      decodeGapConnParamUpdate,
	IDGapTimeout:              decodeGapTimeout,
	IDGapRSSIChanged:          decodeGapRSSIChanged,
	IDGapAdvReport:            decodeGapAdvReport,
	IDGattcHvx:                decodeGattcHvx,
	IDGattcExchangeMtuRsp:     decodeGattcExchangeMtuRsp,
	IDGattsWrite:              decodeGattsWrite,
	IDGattsExchangeMtuRequest: decodeGattsExchangeMtuRequest,
}

// Decode builds the variant for id from its native payload. The payload is
// not retained.
func Decode(id uint16, timestamp string, connHandle uint16, payload []byte) (Event, error) {
	d, ok := decodeMap[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEvent, "id 0x%02X", id)
	}

	e, err := d(Header{EventID: id, Time: timestamp, ConnHandle: connHandle}, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", names.Events().Lookup(id, "event"))
	}
	return e, nil
}

// Supported reports whether Decode handles id.
func Supported(id uint16) bool {
	_, ok := decodeMap[id]
	return ok
}

// IDs returns the handled event ids in ascending order.
func IDs() []uint16 {
	return []uint16{
		IDTxComplete,
		IDGapConnected,
		IDGapDisconnected,
		IDGapConnParamUpdate,
		IDGapTimeout,
		IDGapRSSIChanged,
		IDGapAdvReport,
		IDGattcHvx,
		IDGattcExchangeMtuRsp,
		IDGattsWrite,
		IDGattsExchangeMtuRequest,
	}
}
