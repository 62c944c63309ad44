package evt

import (
	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/conv"
)

// ConnParams holds GAP connection parameters in protocol units.
type ConnParams struct {
	MinConnInterval uint16 // N * 1.25 msec
	MaxConnInterval uint16 // N * 1.25 msec
	SlaveLatency    uint16
	ConnSupTimeout  uint16 // N * 10 msec
}

// Validate checks the parameters against the link layer limits.
func (p ConnParams) Validate() error {
	switch {
	case p.MinConnInterval < ConnIntervalMin || p.MinConnInterval > ConnIntervalMax:
		return errors.Wrap(blerpc.OutOfRange(ConnIntervalMin, ConnIntervalMax, float64(p.MinConnInterval)), "min_conn_interval")
	case p.MaxConnInterval < ConnIntervalMin || p.MaxConnInterval > ConnIntervalMax:
		return errors.Wrap(blerpc.OutOfRange(ConnIntervalMin, ConnIntervalMax, float64(p.MaxConnInterval)), "max_conn_interval")
	case p.MinConnInterval > p.MaxConnInterval:
		return errors.Wrap(blerpc.OutOfRange(float64(p.MinConnInterval), ConnIntervalMax, float64(p.MaxConnInterval)), "max_conn_interval")
	case p.SlaveLatency > ConnLatencyMax:
		return errors.Wrap(blerpc.OutOfRange(ConnLatencyMin, ConnLatencyMax, float64(p.SlaveLatency)), "slave_latency")
	case p.ConnSupTimeout < SupervisionTimeoutMin || p.ConnSupTimeout > SupervisionTimeoutMax:
		return errors.Wrap(blerpc.OutOfRange(SupervisionTimeoutMin, SupervisionTimeoutMax, float64(p.ConnSupTimeout)), "conn_sup_timeout")
	}
	return nil
}

// ToMap encodes p for the host. Intervals and the supervision timeout are
// reported as unit count times unit size, so a timeout of 400 units reads as
// 4000000 and an interval of 6 units as 7500.
func (p ConnParams) ToMap() blerpc.Object {
	return blerpc.Object{
		"min_conn_interval": conv.UnitsToMsecs(p.MinConnInterval, conv.Unit1250ms),
		"max_conn_interval": conv.UnitsToMsecs(p.MaxConnInterval, conv.Unit1250ms),
		"slave_latency":     conv.ToNumber(p.SlaveLatency),
		"conn_sup_timeout":  conv.UnitsToMsecs(p.ConnSupTimeout, conv.Unit10000ms),
	}
}

func (p ConnParams) appendNative(b []byte) []byte {
	b = putUint16LE(b, p.MinConnInterval)
	b = putUint16LE(b, p.MaxConnInterval)
	b = putUint16LE(b, p.SlaveLatency)
	return putUint16LE(b, p.ConnSupTimeout)
}

const connParamsLen = 8

func decodeConnParams(p []byte, off int) (ConnParams, error) {
	var cp ConnParams
	var err error

	if cp.MinConnInterval, err = getUint16LE(p, off, "conn_params.min_conn_interval"); err != nil {
		return cp, err
	}
	if cp.MaxConnInterval, err = getUint16LE(p, off+2, "conn_params.max_conn_interval"); err != nil {
		return cp, err
	}
	if cp.SlaveLatency, err = getUint16LE(p, off+4, "conn_params.slave_latency"); err != nil {
		return cp, err
	}
	if cp.ConnSupTimeout, err = getUint16LE(p, off+6, "conn_params.conn_sup_timeout"); err != nil {
		return cp, err
	}
	return cp, nil
}

// ConnParamsFromObject reads host connection parameters. Intervals and the
// supervision timeout use the ToMap scale and are divided by the unit size,
// rounding to the nearest unit: an interval of 7500 is 6 units, while 7.5
// rounds to 0 and fails validation.
func ConnParamsFromObject(obj blerpc.Object) (ConnParams, error) {
	var cp ConnParams
	var err error

	if cp.MinConnInterval, err = conv.MsecsToUnitsUint16Field(obj, "min_conn_interval", conv.Unit1250ms); err != nil {
		return cp, err
	}
	if cp.MaxConnInterval, err = conv.MsecsToUnitsUint16Field(obj, "max_conn_interval", conv.Unit1250ms); err != nil {
		return cp, err
	}
	if cp.SlaveLatency, err = conv.Uint16(obj, "slave_latency", conv.InRange(ConnLatencyMin, ConnLatencyMax)); err != nil {
		return cp, err
	}
	if cp.ConnSupTimeout, err = conv.MsecsToUnitsUint16Field(obj, "conn_sup_timeout", conv.Unit10000ms); err != nil {
		return cp, err
	}

	return cp, cp.Validate()
}
