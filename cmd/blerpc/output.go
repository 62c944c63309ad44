package main

import (
	"encoding/hex"
	"io"

	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	formatJSON    = "json"
	formatCBOR    = "cbor"
	formatCBORHex = "cbor-hex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type encoder struct {
	format string
	em     cbor.EncMode
}

func newEncoder(format string) (*encoder, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return &encoder{format: format, em: em}, nil
}

func (e *encoder) marshal(v interface{}) ([]byte, error) {
	switch e.format {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil

	case formatCBOR:
		return e.em.Marshal(v)

	case formatCBORHex:
		b, err := e.em.Marshal(v)
		if err != nil {
			return nil, err
		}
		return []byte(hex.EncodeToString(b) + "\n"), nil
	}
	return nil, errors.Errorf("unknown format %q", e.format)
}

func (e *encoder) write(w io.Writer, v interface{}) error {
	b, err := e.marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = w.Write(b)
	return err
}
