package evt

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
)

// ErrEmptyAdvData is returned by ParseAdvData for an empty payload.
var ErrEmptyAdvData = errors.New("nil/empty advertising data")

// Advertising data keys in the parsed object.
const (
	AdvKeyFlags       = "flags"
	AdvKeyServices    = "services"
	AdvKeySolicited   = "solicited"
	AdvKeyServiceData = "service_data"
	AdvKeyLocalName   = "local_name"
	AdvKeyTxPower     = "tx_power"
	AdvKeyMfgData     = "mfg_data"
)

// https://www.bluetooth.org/en-us/specification/assigned-numbers/generic-access-profile
const (
	adFlags       = 0x01
	adUUID16Inc   = 0x02
	adUUID16Comp  = 0x03
	adUUID32Inc   = 0x04
	adUUID32Comp  = 0x05
	adUUID128Inc  = 0x06
	adUUID128Comp = 0x07
	adNameShort   = 0x08
	adNameComp    = 0x09
	adTxPower     = 0x0a
	adSol16       = 0x14
	adSol128      = 0x15
	adSvc16       = 0x16
	adSol32       = 0x1f
	adSvc32       = 0x20
	adSvc128      = 0x21
	adMfgData     = 0xff
)

type adRecord struct {
	arrayElementSz int
	minSz          int
	svcDataUUIDSz  int
	key            string
}

var adDecodeMap = map[byte]adRecord{
	adUUID16Inc:   {arrayElementSz: 2, minSz: 2, key: AdvKeyServices},
	adUUID16Comp:  {arrayElementSz: 2, minSz: 2, key: AdvKeyServices},
	adUUID32Inc:   {arrayElementSz: 4, minSz: 4, key: AdvKeyServices},
	adUUID32Comp:  {arrayElementSz: 4, minSz: 4, key: AdvKeyServices},
	adUUID128Inc:  {arrayElementSz: 16, minSz: 16, key: AdvKeyServices},
	adUUID128Comp: {arrayElementSz: 16, minSz: 16, key: AdvKeyServices},
	adSol16:       {arrayElementSz: 2, minSz: 2, key: AdvKeySolicited},
	adSol32:       {arrayElementSz: 4, minSz: 4, key: AdvKeySolicited},
	adSol128:      {arrayElementSz: 16, minSz: 16, key: AdvKeySolicited},
	adSvc16:       {minSz: 2, svcDataUUIDSz: 2, key: AdvKeyServiceData},
	adSvc32:       {minSz: 4, svcDataUUIDSz: 4, key: AdvKeyServiceData},
	adSvc128:      {minSz: 16, svcDataUUIDSz: 16, key: AdvKeyServiceData},
	adNameComp:    {minSz: 1, key: AdvKeyLocalName},
	adNameShort:   {minSz: 1, key: AdvKeyLocalName},
	adTxPower:     {minSz: 1, key: AdvKeyTxPower},
	adMfgData:     {minSz: 1, key: AdvKeyMfgData},
	adFlags:       {minSz: 1, key: AdvKeyFlags},
}

// UUIDString formats a little-endian 16, 32 or 128-bit UUID the way GATT
// tools print them.
func UUIDString(b []byte) string {
	if len(b) == 16 {
		u, err := uuid.FromBytes(swapBuf(b))
		if err == nil {
			return u.String()
		}
	}
	return conv.EncodeHex(swapBuf(b))
}

func uuidArray(size int, b []byte) (blerpc.Array, error) {
	count := len(b) / size
	if len(b)%size != 0 || count == 0 {
		return nil, blerpc.InvalidEncoding("%d bytes is not a list of %d byte uuids", len(b), size)
	}

	arr := make(blerpc.Array, 0, count)
	for j := 0; j < len(b); j += size {
		arr = append(arr, UUIDString(b[j:j+size]))
	}
	return arr, nil
}

// ParseAdvData decodes length-type-value advertising records into a host
// object. Unknown record types are skipped.
func ParseAdvData(pdu []byte) (blerpc.Object, error) {
	if len(pdu) == 0 {
		return nil, ErrEmptyAdvData
	}

	m := blerpc.Object{}
	for i := 0; (i + 1) < len(pdu); {
		//length @ offset 0
		//type @ offset 1
		//data @ 2 - length
		length := int(pdu[i])
		typ := pdu[i+1]

		if length < 1 {
			return m, blerpc.InvalidEncoding("invalid record length %v, idx %v", length, i)
		}
		if (i + length) >= len(pdu) {
			return m, blerpc.InvalidEncoding("record overflow: want %v, have %v, idx %v", i+length+1, len(pdu), i)
		}

		data := pdu[i+2 : i+1+length]
		if dec, ok := adDecodeMap[typ]; ok && len(data) != 0 {
			if dec.minSz > len(data) {
				return m, blerpc.InvalidEncoding("ad type 0x%02x: min length %v, have %v, idx %v", typ, dec.minSz, len(data), i)
			}
			if err := decodeAdRecord(m, typ, dec, data); err != nil {
				return m, errors.Wrapf(err, "ad type 0x%02x, idx %v", typ, i)
			}
		}

		i += length + 1
	}

	return m, nil
}

func decodeAdRecord(m blerpc.Object, typ byte, dec adRecord, data []byte) error {
	switch {
	case dec.arrayElementSz > 0:
		arr, err := uuidArray(dec.arrayElementSz, data)
		if err != nil {
			return err
		}
		if v, ok := m[dec.key].(blerpc.Array); ok {
			arr = append(v, arr...)
		}
		m[dec.key] = arr

	case dec.svcDataUUIDSz > 0:
		su := UUIDString(data[:dec.svcDataUUIDSz])
		sd := conv.ToValueArray(data[dec.svcDataUUIDSz:])

		msd, ok := m[dec.key].(blerpc.Object)
		if !ok {
			msd = blerpc.Object{}
		}
		// one entry per record, repeats append
		prev, _ := msd[su].(blerpc.Array)
		msd[su] = append(prev, sd)
		m[dec.key] = msd

	case typ == adFlags:
		m[dec.key] = conv.ToNumber(data[0])

	case typ == adTxPower:
		m[dec.key] = conv.ToNumber(int8(data[0]))

	case typ == adNameComp || typ == adNameShort:
		m[dec.key] = conv.BytesToString(data, len(data))

	default:
		prev, _ := m[dec.key].(blerpc.Array)
		if typ == adMfgData && prev != nil && len(data) >= 2 {
			//mfg data repeats the company id in the scan response
			data = data[2:]
		}
		m[dec.key] = append(prev, conv.ToValueArray(data)...)
	}
	return nil
}
