// Package adapter maps adapter handles to the integer identities the host
// uses to address them.
package adapter

import (
	"reflect"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/rigado/blerpc"
)

// NotFound is the identity of an adapter that is not registered.
const NotFound = -1

// Handle is an open adapter owned by the driver. Handles are identified by
// reference, so implementations must be pointers.
type Handle interface {
	Port() string
}

// isRef reports whether h is a non-nil pointer. Only pointer handles have an
// identity, and comparing them never panics.
func isRef(h Handle) bool {
	if h == nil {
		return false
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Ptr && !v.IsNil()
}

// Registry holds the open adapters. Lookups may run concurrently with Add
// and Remove; a lookup racing a Remove reports NotFound.
type Registry struct {
	adapters *xsync.MapOf[int, Handle]
	next     atomic.Int32
	logger   blerpc.Logger
}

func NewRegistry() *Registry {
	return &Registry{
		adapters: xsync.NewMapOf[int, Handle](),
		logger:   blerpc.GetLogger().ChildLogger(map[string]interface{}{"component": "adapter"}),
	}
}

// Add registers h and returns its identity. Adding a registered handle
// returns the existing identity. Handles that are not pointers are rejected
// with NotFound.
func (r *Registry) Add(h Handle) int {
	if !isRef(h) {
		if h != nil {
			r.logger.Warnf("rejecting adapter handle of type %T: not a pointer", h)
		}
		return NotFound
	}
	if id := r.FindID(h); id != NotFound {
		return id
	}

	id := int(r.next.Add(1)) - 1
	r.adapters.Store(id, h)
	r.logger.Debugf("added adapter %d on %s", id, h.Port())
	return id
}

// Remove drops the adapter with the given identity.
func (r *Registry) Remove(id int) {
	if h, ok := r.adapters.LoadAndDelete(id); ok {
		r.logger.Debugf("removed adapter %d on %s", id, h.Port())
	}
}

// Lookup returns the handle for id.
func (r *Registry) Lookup(id int) (Handle, bool) {
	return r.adapters.Load(id)
}

// FindID returns the identity of h by reference equality, or NotFound.
func (r *Registry) FindID(h Handle) int {
	if !isRef(h) {
		return NotFound
	}

	found := NotFound
	r.adapters.Range(func(id int, v Handle) bool {
		if v == h {
			found = id
			return false
		}
		return true
	})
	return found
}

// Resolve is FindID for callers that want an error.
func (r *Registry) Resolve(h Handle) (int, error) {
	id := r.FindID(h)
	if id == NotFound {
		return NotFound, errors.Wrapf(blerpc.ErrAdapterNotFound, "%v", portOf(h))
	}
	return id, nil
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return r.adapters.Size()
}

func portOf(h Handle) string {
	if h == nil {
		return "<nil>"
	}
	if v := reflect.ValueOf(h); v.Kind() == reflect.Ptr && v.IsNil() {
		return "<nil>"
	}
	return h.Port()
}
