package names

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// fileTables is the on-disk form: table name -> code -> display name.
// Codes are strings so that both "16" and "0x10" can be written.
type fileTables map[string]map[string]string

// LoadFile reads name tables from a JSON document.
func LoadFile(filename string) ([]*Table, error) {
	in, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var ft fileTables
	if err := jsoniter.Unmarshal(in, &ft); err != nil {
		return nil, errors.Wrapf(err, "decode %s", filename)
	}

	tn := make([]string, 0, len(ft))
	for name := range ft {
		tn = append(tn, name)
	}
	sort.Strings(tn)

	out := make([]*Table, 0, len(ft))
	for _, name := range tn {
		entries := make(map[uint16]string, len(ft[name]))
		for k, v := range ft[name] {
			code, err := strconv.ParseUint(k, 0, 16)
			if err != nil {
				return nil, fmt.Errorf("table %s: invalid code %q", name, k)
			}
			entries[uint16(code)] = v
		}
		out = append(out, New(name, entries))
	}

	return out, nil
}

// SaveFile writes tables in the format LoadFile reads.
func SaveFile(filename string, tables ...*Table) error {
	ft := make(fileTables, len(tables))
	for _, t := range tables {
		m := make(map[string]string, t.Len())
		for _, c := range t.Codes() {
			m[fmt.Sprintf("0x%04X", c)] = t.Name(c)
		}
		ft[t.TableName()] = m
	}

	out, err := jsoniter.MarshalIndent(ft, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, out, 0644)
}

// LoadFile extends the set with every table in filename.
func (s *Set) LoadFile(filename string) error {
	tt, err := LoadFile(filename)
	if err != nil {
		return err
	}
	for _, t := range tt {
		s.Extend(t)
	}
	return nil
}
