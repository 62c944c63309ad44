package names

// Names of the built-in tables.
const (
	TableErrors            = "errors"
	TableHCIStatus         = "hci_status"
	TableAppStatus         = "app_status"
	TableEvents            = "events"
	TableAddrTypes         = "addr_types"
	TableGapRoles          = "gap_roles"
	TableGapTimeoutSources = "gap_timeout_sources"
	TableAdvTypes          = "adv_types"
	TableHvxTypes          = "hvx_types"
	TableWriteOps          = "write_ops"
)

// Result codes referenced outside the tables.
const (
	Success       = 0x0000
	ErrInternal   = 0x0003
	ErrInvalidArg = 0x8004
)

// nrf_error.h, ble_err.h and the sd_rpc transport range
var errorNames = map[uint16]string{
	0x0000: "NRF_SUCCESS",
	0x0001: "NRF_ERROR_SVC_HANDLER_MISSING",
	0x0002: "NRF_ERROR_SOFTDEVICE_NOT_ENABLED",
	0x0003: "NRF_ERROR_INTERNAL",
	0x0004: "NRF_ERROR_NO_MEM",
	0x0005: "NRF_ERROR_NOT_FOUND",
	0x0006: "NRF_ERROR_NOT_SUPPORTED",
	0x0007: "NRF_ERROR_INVALID_PARAM",
	0x0008: "NRF_ERROR_INVALID_STATE",
	0x0009: "NRF_ERROR_INVALID_LENGTH",
	0x000A: "NRF_ERROR_INVALID_FLAGS",
	0x000B: "NRF_ERROR_INVALID_DATA",
	0x000C: "NRF_ERROR_DATA_SIZE",
	0x000D: "NRF_ERROR_TIMEOUT",
	0x000E: "NRF_ERROR_NULL",
	0x000F: "NRF_ERROR_FORBIDDEN",
	0x0010: "NRF_ERROR_INVALID_ADDR",
	0x0011: "NRF_ERROR_BUSY",
	0x0012: "NRF_ERROR_CONN_COUNT",
	0x0013: "NRF_ERROR_RESOURCES",

	0x3001: "BLE_ERROR_NOT_ENABLED",
	0x3002: "BLE_ERROR_INVALID_CONN_HANDLE",
	0x3003: "BLE_ERROR_INVALID_ATTR_HANDLE",
	0x3004: "BLE_ERROR_NO_TX_PACKETS",
	0x3005: "BLE_ERROR_INVALID_ROLE",
	0x3200: "BLE_ERROR_GAP_UUID_LIST_MISMATCH",
	0x3201: "BLE_ERROR_GAP_DISCOVERABLE_WITH_WHITELIST",
	0x3202: "BLE_ERROR_GAP_INVALID_BLE_ADDR",
	0x3203: "BLE_ERROR_GAP_WHITELIST_IN_USE",
	0x3300: "BLE_ERROR_GATTC_PROC_NOT_PERMITTED",
	0x3400: "BLE_ERROR_GATTS_INVALID_ATTR_TYPE",
	0x3401: "BLE_ERROR_GATTS_SYS_ATTR_MISSING",

	0x8000: "NRF_ERROR_SD_RPC_BASE_NUM",
	0x8001: "NRF_ERROR_SD_RPC_ENCODE",
	0x8002: "NRF_ERROR_SD_RPC_DECODE",
	0x8003: "NRF_ERROR_SD_RPC_SEND",
	0x8004: "NRF_ERROR_SD_RPC_INVALID_ARGUMENT",
	0x8005: "NRF_ERROR_SD_RPC_NO_RESPONSE",
	0x8006: "NRF_ERROR_SD_RPC_INVALID_STATE",
	0x8014: "NRF_ERROR_SD_RPC_SERIALIZATION_TRANSPORT",
	0x8015: "NRF_ERROR_SD_RPC_SERIALIZATION_TRANSPORT_INVALID_STATE",
	0x8016: "NRF_ERROR_SD_RPC_SERIALIZATION_TRANSPORT_NO_RESPONSE",
	0x8017: "NRF_ERROR_SD_RPC_SERIALIZATION_TRANSPORT_ALREADY_OPEN",
	0x8018: "NRF_ERROR_SD_RPC_SERIALIZATION_TRANSPORT_ALREADY_CLOSED",
	0x8028: "NRF_ERROR_SD_RPC_H5_TRANSPORT",
	0x8029: "NRF_ERROR_SD_RPC_H5_TRANSPORT_STATE",
	0x802A: "NRF_ERROR_SD_RPC_H5_TRANSPORT_NO_RESPONSE",
	0x802B: "NRF_ERROR_SD_RPC_H5_TRANSPORT_SLIP_PAYLOAD_SIZE",
	0x802C: "NRF_ERROR_SD_RPC_H5_TRANSPORT_SLIP_CALCULATED_PAYLOAD_SIZE",
	0x802D: "NRF_ERROR_SD_RPC_H5_TRANSPORT_SLIP_DECODING",
	0x802E: "NRF_ERROR_SD_RPC_H5_TRANSPORT_HEADER_CHECKSUM",
	0x802F: "NRF_ERROR_SD_RPC_H5_TRANSPORT_PACKET_CHECKSUM",
	0x8030: "NRF_ERROR_SD_RPC_H5_TRANSPORT_ALREADY_OPEN",
	0x8031: "NRF_ERROR_SD_RPC_H5_TRANSPORT_ALREADY_CLOSED",
	0x803C: "NRF_ERROR_SD_RPC_SERIAL_PORT",
	0x803D: "NRF_ERROR_SD_RPC_SERIAL_PORT_STATE",
	0x803E: "NRF_ERROR_SD_RPC_SERIAL_PORT_ALREADY_OPEN",
	0x803F: "NRF_ERROR_SD_RPC_SERIAL_PORT_ALREADY_CLOSED",
	0x8040: "NRF_ERROR_SD_RPC_SERIAL_PORT_OPEN",
	0x8041: "NRF_ERROR_SD_RPC_SERIAL_PORT_WRITE",
	0x8042: "NRF_ERROR_SD_RPC_SERIAL_PORT_READ",
}

// [Vol 2, Part D, 1.3] as named by ble_hci.h
var hciStatusNames = map[uint16]string{
	0x00: "BLE_HCI_STATUS_CODE_SUCCESS",
	0x01: "BLE_HCI_STATUS_CODE_UNKNOWN_BTLE_COMMAND",
	0x02: "BLE_HCI_STATUS_CODE_UNKNOWN_CONNECTION_IDENTIFIER",
	0x05: "BLE_HCI_AUTHENTICATION_FAILURE",
	0x06: "BLE_HCI_STATUS_CODE_PIN_OR_KEY_MISSING",
	0x07: "BLE_HCI_MEMORY_CAPACITY_EXCEEDED",
	0x08: "BLE_HCI_CONNECTION_TIMEOUT",
	0x0C: "BLE_HCI_STATUS_CODE_COMMAND_DISALLOWED",
	0x12: "BLE_HCI_STATUS_CODE_INVALID_BTLE_COMMAND_PARAMETERS",
	0x13: "BLE_HCI_REMOTE_USER_TERMINATED_CONNECTION",
	0x14: "BLE_HCI_REMOTE_DEV_TERMINATION_DUE_TO_LOW_RESOURCES",
	0x15: "BLE_HCI_REMOTE_DEV_TERMINATION_DUE_TO_POWER_OFF",
	0x16: "BLE_HCI_LOCAL_HOST_TERMINATED_CONNECTION",
	0x1A: "BLE_HCI_UNSUPPORTED_REMOTE_FEATURE",
	0x1E: "BLE_HCI_STATUS_CODE_INVALID_LMP_PARAMETERS",
	0x1F: "BLE_HCI_STATUS_CODE_UNSPECIFIED_ERROR",
	0x22: "BLE_HCI_STATUS_CODE_LMP_RESPONSE_TIMEOUT",
	0x23: "BLE_HCI_STATUS_CODE_LMP_ERROR_TRANSACTION_COLLISION",
	0x24: "BLE_HCI_STATUS_CODE_LMP_PDU_NOT_ALLOWED",
	0x28: "BLE_HCI_INSTANT_PASSED",
	0x29: "BLE_HCI_PAIRING_WITH_UNIT_KEY_UNSUPPORTED",
	0x2A: "BLE_HCI_DIFFERENT_TRANSACTION_COLLISION",
	0x30: "BLE_HCI_PARAMETER_OUT_OF_MANDATORY_RANGE",
	0x3A: "BLE_HCI_CONTROLLER_BUSY",
	0x3B: "BLE_HCI_CONN_INTERVAL_UNACCEPTABLE",
	0x3C: "BLE_HCI_DIRECTED_ADVERTISER_TIMEOUT",
	0x3D: "BLE_HCI_CONN_TERMINATED_DUE_TO_MIC_FAILURE",
	0x3E: "BLE_HCI_CONN_FAILED_TO_BE_ESTABLISHED",
}

var appStatusNames = map[uint16]string{
	0: "PKT_SEND_MAX_RETRIES_REACHED",
	1: "PKT_UNEXPECTED",
	2: "PKT_ENCODE_ERROR",
	3: "PKT_DECODE_ERROR",
	4: "PKT_SEND_ERROR",
	5: "IO_RESOURCES_UNAVAILABLE",
	6: "RESET_PERFORMED",
	7: "CONNECTION_ACTIVE",
}

var eventNames = map[uint16]string{
	0x01: "BLE_EVT_TX_COMPLETE",
	0x02: "BLE_EVT_USER_MEM_REQUEST",
	0x03: "BLE_EVT_USER_MEM_RELEASE",

	0x10: "BLE_GAP_EVT_CONNECTED",
	0x11: "BLE_GAP_EVT_DISCONNECTED",
	0x12: "BLE_GAP_EVT_CONN_PARAM_UPDATE",
	0x13: "BLE_GAP_EVT_SEC_PARAMS_REQUEST",
	0x14: "BLE_GAP_EVT_SEC_INFO_REQUEST",
	0x15: "BLE_GAP_EVT_PASSKEY_DISPLAY",
	0x16: "BLE_GAP_EVT_KEY_PRESSED",
	0x17: "BLE_GAP_EVT_AUTH_KEY_REQUEST",
	0x18: "BLE_GAP_EVT_LESC_DHKEY_REQUEST",
	0x19: "BLE_GAP_EVT_AUTH_STATUS",
	0x1A: "BLE_GAP_EVT_CONN_SEC_UPDATE",
	0x1B: "BLE_GAP_EVT_TIMEOUT",
	0x1C: "BLE_GAP_EVT_RSSI_CHANGED",
	0x1D: "BLE_GAP_EVT_ADV_REPORT",
	0x1E: "BLE_GAP_EVT_SEC_REQUEST",
	0x1F: "BLE_GAP_EVT_CONN_PARAM_UPDATE_REQUEST",
	0x20: "BLE_GAP_EVT_SCAN_REQ_REPORT",

	0x30: "BLE_GATTC_EVT_PRIM_SRVC_DISC_RSP",
	0x31: "BLE_GATTC_EVT_REL_DISC_RSP",
	0x32: "BLE_GATTC_EVT_CHAR_DISC_RSP",
	0x33: "BLE_GATTC_EVT_DESC_DISC_RSP",
	0x34: "BLE_GATTC_EVT_ATTR_INFO_DISC_RSP",
	0x35: "BLE_GATTC_EVT_CHAR_VAL_BY_UUID_READ_RSP",
	0x36: "BLE_GATTC_EVT_READ_RSP",
	0x37: "BLE_GATTC_EVT_CHAR_VALS_READ_RSP",
	0x38: "BLE_GATTC_EVT_WRITE_RSP",
	0x39: "BLE_GATTC_EVT_HVX",
	0x3A: "BLE_GATTC_EVT_EXCHANGE_MTU_RSP",
	0x3B: "BLE_GATTC_EVT_TIMEOUT",

	0x50: "BLE_GATTS_EVT_WRITE",
	0x51: "BLE_GATTS_EVT_RW_AUTHORIZE_REQUEST",
	0x52: "BLE_GATTS_EVT_SYS_ATTR_MISSING",
	0x53: "BLE_GATTS_EVT_HVC",
	0x54: "BLE_GATTS_EVT_SC_CONFIRM",
	0x55: "BLE_GATTS_EVT_EXCHANGE_MTU_REQUEST",
	0x56: "BLE_GATTS_EVT_TIMEOUT",
}

var addrTypeNames = map[uint16]string{
	0x00: "BLE_GAP_ADDR_TYPE_PUBLIC",
	0x01: "BLE_GAP_ADDR_TYPE_RANDOM_STATIC",
	0x02: "BLE_GAP_ADDR_TYPE_RANDOM_PRIVATE_RESOLVABLE",
	0x03: "BLE_GAP_ADDR_TYPE_RANDOM_PRIVATE_NON_RESOLVABLE",
}

var gapRoleNames = map[uint16]string{
	0x00: "BLE_GAP_ROLE_INVALID",
	0x01: "BLE_GAP_ROLE_PERIPH",
	0x02: "BLE_GAP_ROLE_CENTRAL",
}

var gapTimeoutSourceNames = map[uint16]string{
	0x00: "BLE_GAP_TIMEOUT_SRC_ADVERTISING",
	0x01: "BLE_GAP_TIMEOUT_SRC_SECURITY_REQUEST",
	0x02: "BLE_GAP_TIMEOUT_SRC_SCAN",
	0x03: "BLE_GAP_TIMEOUT_SRC_CONN",
}

// [Vol 6, Part B, 2.3]
var advTypeNames = map[uint16]string{
	0x00: "BLE_GAP_ADV_TYPE_ADV_IND",
	0x01: "BLE_GAP_ADV_TYPE_ADV_DIRECT_IND",
	0x02: "BLE_GAP_ADV_TYPE_ADV_SCAN_IND",
	0x03: "BLE_GAP_ADV_TYPE_ADV_NONCONN_IND",
}

var hvxTypeNames = map[uint16]string{
	0x00: "BLE_GATT_HVX_INVALID",
	0x01: "BLE_GATT_HVX_NOTIFICATION",
	0x02: "BLE_GATT_HVX_INDICATION",
}

var writeOpNames = map[uint16]string{
	0x00: "BLE_GATTS_OP_INVALID",
	0x01: "BLE_GATTS_OP_WRITE_REQ",
	0x02: "BLE_GATTS_OP_WRITE_CMD",
	0x03: "BLE_GATTS_OP_SIGN_WRITE_CMD",
	0x04: "BLE_GATTS_OP_PREP_WRITE_REQ",
	0x05: "BLE_GATTS_OP_EXEC_WRITE_REQ_CANCEL",
	0x06: "BLE_GATTS_OP_EXEC_WRITE_REQ_NOW",
}

// Builtin returns fresh copies of every built-in table.
func Builtin() []*Table {
	return []*Table{
		New(TableErrors, errorNames),
		New(TableHCIStatus, hciStatusNames),
		New(TableAppStatus, appStatusNames),
		New(TableEvents, eventNames),
		New(TableAddrTypes, addrTypeNames),
		New(TableGapRoles, gapRoleNames),
		New(TableGapTimeoutSources, gapTimeoutSourceNames),
		New(TableAdvTypes, advTypeNames),
		New(TableHvxTypes, hvxTypeNames),
		New(TableWriteOps, writeOpNames),
	}
}

// Errors returns the default set's result-code table.
func Errors() *Table { return Default().Table(TableErrors) }

// HCIStatus returns the default set's HCI status table.
func HCIStatus() *Table { return Default().Table(TableHCIStatus) }

// AppStatus returns the default set's RPC application status table.
func AppStatus() *Table { return Default().Table(TableAppStatus) }

// Events returns the default set's event id table.
func Events() *Table { return Default().Table(TableEvents) }
