// Package names maps numeric protocol codes to display names.
package names

import (
	"sort"
	"sync"
)

// UnknownValue is the fallback label used by Table.Name.
const UnknownValue = "Unknown value"

// Table is a read-only code -> name lookup for one protocol subsystem.
type Table struct {
	name   string
	byCode map[uint16]string
	byName map[string]uint16
}

// New builds a table. The entries map is copied.
func New(name string, entries map[uint16]string) *Table {
	t := &Table{
		name:   name,
		byCode: make(map[uint16]string, len(entries)),
		byName: make(map[string]uint16, len(entries)),
	}
	for code, n := range entries {
		t.byCode[code] = n
		t.byName[n] = code
	}
	return t
}

// TableName returns the subsystem name the table was registered under.
func (t *Table) TableName() string {
	return t.name
}

// Lookup returns the name for code, or fallback if the code is not in the table.
func (t *Table) Lookup(code uint16, fallback string) string {
	if t == nil {
		return fallback
	}
	if n, ok := t.byCode[code]; ok {
		return n
	}
	return fallback
}

// Name is Lookup with the UnknownValue fallback.
func (t *Table) Name(code uint16) string {
	return t.Lookup(code, UnknownValue)
}

// Value is the reverse lookup.
func (t *Table) Value(name string) (uint16, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.byName[name]
	return v, ok
}

// Has reports whether code is registered.
func (t *Table) Has(code uint16) bool {
	if t == nil {
		return false
	}
	_, ok := t.byCode[code]
	return ok
}

// Len ...
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byCode)
}

// Codes returns the registered codes in ascending order.
func (t *Table) Codes() []uint16 {
	if t == nil {
		return nil
	}
	cc := make([]uint16, 0, len(t.byCode))
	for c := range t.byCode {
		cc = append(cc, c)
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i] < cc[j] })
	return cc
}

// Merge returns a new table holding t's entries overlaid with o's.
func (t *Table) Merge(o *Table) *Table {
	m := make(map[uint16]string, t.Len()+o.Len())
	if t != nil {
		for c, n := range t.byCode {
			m[c] = n
		}
	}
	if o != nil {
		for c, n := range o.byCode {
			m[c] = n
		}
	}

	name := ""
	if t != nil {
		name = t.name
	} else if o != nil {
		name = o.name
	}
	return New(name, m)
}

// Set holds the tables supplied by each protocol subsystem at init time.
type Set struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{tables: map[string]*Table{}}
}

// Register adds t, replacing any table with the same name.
func (s *Set) Register(t *Table) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[t.name] = t
}

// Extend merges t into the table with the same name, or registers it.
func (s *Set) Extend(t *Table) {
	if t == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.tables[t.name]; ok {
		s.tables[t.name] = cur.Merge(t)
		return
	}
	s.tables[t.name] = t
}

// Table returns the named table or nil. A nil *Table is safe to look up in.
func (s *Set) Table(name string) *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables[name]
}

// Lookup resolves code in the named table, falling back when either is missing.
func (s *Set) Lookup(table string, code uint16, fallback string) string {
	return s.Table(table).Lookup(code, fallback)
}

// Names returns the registered table names in sorted order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nn := make([]string, 0, len(s.tables))
	for n := range s.tables {
		nn = append(nn, n)
	}
	sort.Strings(nn)
	return nn
}

var (
	defaultSet  *Set
	defaultOnce sync.Once
)

// Default returns the process set pre-populated with the built-in tables.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = NewSet()
		for _, t := range Builtin() {
			defaultSet.Register(t)
		}
	})
	return defaultSet
}
