package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigado/blerpc/conv"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BLERPC_CONFIG", "")

	var buf bytes.Buffer
	stdout = &buf
	err := newApp().Run(append([]string{"blerpc"}, args...))
	return buf.String(), err
}

func TestHexDecodeCommand(t *testing.T) {
	out, err := run(t, "hex", "decode", "a1b2")
	require.NoError(t, err)
	assert.JSONEq(t, "[161, 178]", out)

	out, err = run(t, "hex", "encode", "0xa1", "178")
	require.NoError(t, err)
	assert.JSONEq(t, `"A1B2"`, out)

	_, err = run(t, "hex", "decode", "abc")
	assert.Error(t, err)
}

func TestStatusCommands(t *testing.T) {
	out, err := run(t, "status", "error", "0x8005", "opening adapter")
	require.NoError(t, err)
	assert.Contains(t, out, "NRF_ERROR_SD_RPC_NO_RESPONSE")
	assert.Contains(t, out, "Error occured when opening adapter.")

	out, err = run(t, "status", "hci", "0x13")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": 19, "name": "BLE_HCI_REMOTE_USER_TERMINATED_CONNECTION"}`, out)
}

func TestUnitsCommand(t *testing.T) {
	out, err := run(t, "units", "to-units", "--unit", "1250", "1250")
	require.NoError(t, err)
	assert.JSONEq(t, "1", out)

	out, err = run(t, "units", "to-msecs", "-u", "10000", "3")
	require.NoError(t, err)
	assert.JSONEq(t, "30000", out)

	_, err = parseUnit("42")
	assert.Error(t, err)
}

func TestEventDecodeCBOR(t *testing.T) {
	out, err := run(t, "--format", "cbor", "event", "decode", "--conn", "5", "0x3A", "f700")
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, cbor.Unmarshal([]byte(out), &m))
	assert.Equal(t, "BLE_GATTC_EVT_EXCHANGE_MTU_RSP", m["name"])
	assert.EqualValues(t, 247, m["server_rx_mtu"])
	assert.EqualValues(t, 5, m["conn_handle"])
}

func TestDecodeEvent(t *testing.T) {
	m, err := decodeEvent(0x11, 1, "13")
	require.NoError(t, err)
	assert.Equal(t, "BLE_HCI_REMOTE_USER_TERMINATED_CONNECTION", m["reason_name"])

	_, err = decodeEvent(0x11, 1, "")
	assert.Error(t, err)

	_, err = decodeEvent(0x77, 1, "00")
	assert.Error(t, err)
}

func TestSelftest(t *testing.T) {
	res, err := runSelftest(context.Background(), 50, 5)
	require.NoError(t, err)

	assert.Equal(t, 50, res.Scheduled)
	assert.Equal(t, 50, res.Callbacks)
	assert.Equal(t, 10, res.Failed)
	assert.Equal(t, 40, res.Succeeded)
	assert.Equal(t, 40, res.Published)
}

func TestSelftestArguments(t *testing.T) {
	_, err := runSelftest(context.Background(), -1, 5)
	assert.Error(t, err)
	_, err = runSelftest(context.Background(), 10, -1)
	assert.Error(t, err)

	_, err = run(t, "selftest", "--n=-1")
	assert.Error(t, err)

	// larger than any baton index: only the first fails
	res, err := runSelftest(context.Background(), 10, 65536)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 9, res.Succeeded)
}

func TestSelftestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := runSelftest(ctx, 200, 3)
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("selftest did not return after cancellation")
	}
}

func TestEncoderFormats(t *testing.T) {
	obj := map[string]interface{}{"rssi": conv.ToNumber(int8(-60))}

	e, err := newEncoder(formatCBORHex)
	require.NoError(t, err)
	b, err := e.marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "a16472737369f9d380\n", string(b))

	e, err = newEncoder("yaml")
	require.NoError(t, err)
	_, err = e.marshal(obj)
	assert.Error(t, err)
}
