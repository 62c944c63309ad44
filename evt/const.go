package evt

// Event ids handled by Decode.
const (
	IDTxComplete              = 0x01
	IDGapConnected            = 0x10
	IDGapDisconnected         = 0x11
	IDGapConnParamUpdate      = 0x12
	IDGapTimeout              = 0x1B
	IDGapRSSIChanged          = 0x1C
	IDGapAdvReport            = 0x1D
	IDGattcHvx                = 0x39
	IDGattcExchangeMtuRsp     = 0x3A
	IDGattsWrite              = 0x50
	IDGattsExchangeMtuRequest = 0x55
)

// Connection parameter limits, in protocol units.
const (
	ConnIntervalMin = 0x0006 // N * 1.25 msec
	ConnIntervalMax = 0x0c80
	ConnLatencyMin  = 0x0000
	ConnLatencyMax  = 0x01f3

	SupervisionTimeoutMin = 0x000a // N * 10 msec
	SupervisionTimeoutMax = 0x0c80
)

// Address types.
const (
	AddrTypePublic                     = 0x00
	AddrTypeRandomStatic               = 0x01
	AddrTypeRandomPrivateResolvable    = 0x02
	AddrTypeRandomPrivateNonResolvable = 0x03
)

// AddrLen is the length of a device address.
const AddrLen = 6

// BLE_GAP_ADV_MAX_SIZE
const advDataMax = 31
