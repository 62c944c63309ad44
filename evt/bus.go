package evt

import (
	"sync"

	"github.com/cskr/pubsub/v2"

	"github.com/rigado/blerpc"
)

// AllEvents is the topic every published event is also sent to. It is not a
// valid event id.
const AllEvents uint16 = 0xffff

// Bus fans decoded events out to subscribers by event id. Once closed,
// publishing is a no-op and new subscriptions get a closed channel.
type Bus struct {
	ps     *pubsub.PubSub[uint16, Event]
	logger blerpc.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus; capacity is the per-subscriber channel buffer.
func NewBus(capacity int) *Bus {
	return &Bus{
		ps:     pubsub.New[uint16, Event](capacity),
		logger: blerpc.GetLogger().ChildLogger(map[string]interface{}{"component": "evt.bus"}),
	}
}

// Subscribe returns a channel receiving events with the given ids, or every
// event when no id is given.
func (b *Bus) Subscribe(ids ...uint16) chan Event {
	if len(ids) == 0 {
		ids = []uint16{AllEvents}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}
	return b.ps.Sub(ids...)
}

// Unsubscribe detaches ch from ids (or from everything). The channel is
// closed once it has no topics left.
func (b *Bus) Unsubscribe(ch chan Event, ids ...uint16) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.ps.Unsub(ch, ids...)
}

// Publish delivers e without blocking; subscribers with full buffers miss it.
func (b *Bus) Publish(e Event) {
	if e == nil {
		return
	}

	// the pubsub goroutine stops on Close; holding the read lock keeps it
	// alive for the duration of TryPub
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		b.logger.Debugf("bus closed, dropping %s", e.Name())
		return
	}
	b.logger.Debugf("publish %s conn_handle %d", e.Name(), e.EventHeader().ConnHandle)
	b.ps.TryPub(e, e.ID(), AllEvents)
}

// Dispatch decodes a raw driver event and publishes it.
func (b *Bus) Dispatch(id uint16, timestamp string, connHandle uint16, payload []byte) (Event, error) {
	e, err := Decode(id, timestamp, connHandle, payload)
	if err != nil {
		b.logger.Warnf("dropping event 0x%02X: %v", id, err)
		return nil, err
	}
	b.Publish(e)
	return e, nil
}

// Close shuts the bus down and closes all subscriber channels. It is safe to
// call more than once.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.ps.Shutdown()
}
