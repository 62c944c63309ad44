// Package task runs native driver calls off the request loop and delivers
// each result to its host callback exactly once.
package task

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/adapter"
)

// ResultPending is the result code of a baton whose native call has not
// returned.
const ResultPending = -1

var (
	// ErrState is returned for an out of order baton transition.
	ErrState = errors.New("illegal baton state transition")

	// ErrInFlight is returned when a scheduled baton's result is read before
	// its native call has returned.
	ErrInFlight = errors.New("baton in flight")
)

// State is the lifecycle stage of a Baton.
type State int32

const (
	Created State = iota
	Scheduled
	Completed
	Finalized
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Scheduled:
		return "scheduled"
	case Completed:
		return "completed"
	case Finalized:
		return "finalized"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Work performs the blocking native call on a worker goroutine and returns
// its result code. It may store an output with SetOutput.
type Work func(b *Baton) int

// Encode turns the output of a successful call into a host value. It runs on
// the request loop.
type Encode func(b *Baton) (interface{}, error)

// Baton is one outstanding native operation.
type Baton struct {
	ID        uuid.UUID
	Operation string
	Adapter   int

	// Data is the operation's native arguments, owned by the in-flight call.
	Data interface{}

	state    atomic.Int32
	result   int
	output   interface{}
	callback blerpc.Callback
}

// NewBaton creates a baton for op. cb may be nil when the caller only waits
// on the Future.
func NewBaton(op string, cb blerpc.Callback, data interface{}) *Baton {
	return &Baton{
		ID:        uuid.New(),
		Operation: op,
		Adapter:   adapter.NotFound,
		Data:      data,
		result:    ResultPending,
		callback:  cb,
	}
}

// SetAdapter records the identity of h in reg. An unregistered adapter
// leaves adapter.NotFound, which is returned.
func (b *Baton) SetAdapter(reg *adapter.Registry, h adapter.Handle) int {
	b.Adapter = reg.FindID(h)
	return b.Adapter
}

// State ...
func (b *Baton) State() State {
	return State(b.state.Load())
}

func (b *Baton) transition(from, to State) error {
	if !b.state.CompareAndSwap(int32(from), int32(to)) {
		return errors.Wrapf(ErrState, "%s: %s -> %s (is %s)", b.Operation, from, to, b.State())
	}
	return nil
}

// Result returns the result code. It fails with ErrInFlight while the worker
// owns the baton.
func (b *Baton) Result() (int, error) {
	if b.State() == Scheduled {
		return ResultPending, ErrInFlight
	}
	return b.result, nil
}

// SetOutput stores the call's output. Only Work may call it.
func (b *Baton) SetOutput(v interface{}) {
	b.output = v
}

// Output returns what Work stored.
func (b *Baton) Output() interface{} {
	return b.output
}

func (b *Baton) release() {
	b.callback = nil
	b.output = nil
	b.Data = nil
}
