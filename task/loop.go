package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
	"github.com/rigado/blerpc/names"
)

var (
	// ErrLoopClosed is returned by Schedule once the loop is shutting down.
	ErrLoopClosed = errors.New("request loop closed")

	// ErrLoopStarted is returned by a second call to Run.
	ErrLoopStarted = errors.New("request loop already started")
)

const defaultCompletionBuffer = 16

type completion struct {
	baton  *Baton
	encode Encode
	future *Future
}

// Loop is the request context. Callbacks only ever run on the goroutine
// executing Run.
type Loop struct {
	completions chan *completion
	logger      blerpc.Logger

	mu       sync.Mutex
	started  bool
	closed   bool
	inflight int
	drained  chan struct{}
}

func NewLoop(opts ...Option) (*Loop, error) {
	l := &Loop{
		completions: make(chan *completion, defaultCompletionBuffer),
		logger:      blerpc.GetLogger().ChildLogger(map[string]interface{}{"component": "task"}),
		drained:     make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Schedule hands b to a new worker goroutine running work. The returned
// Future resolves after b's callback has run on the loop.
func (l *Loop) Schedule(b *Baton, work Work, encode Encode) (*Future, error) {
	if work == nil {
		return nil, errors.New("nil work")
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrLoopClosed
	}
	if err := b.transition(Created, Scheduled); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	l.inflight++
	l.mu.Unlock()

	c := &completion{baton: b, encode: encode, future: newFuture()}
	l.logger.ChildLogger(map[string]interface{}{"baton": b.ID.String()}).Debugf("scheduled %s", b.Operation)

	go l.execute(c, work)
	return c.future, nil
}

func (l *Loop) execute(c *completion, work Work) {
	b := c.baton
	b.result = l.call(b, work)

	// the transition publishes the result write to Result callers
	if err := b.transition(Scheduled, Completed); err != nil {
		l.logger.Errorf("baton %s: %v", b.ID, err)
	}
	l.completions <- c
}

// call runs work, turning a panic into NRF_ERROR_INTERNAL.
func (l *Loop) call(b *Baton, work Work) (code int) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Errorf("baton %s: %s panicked: %v", b.ID, b.Operation, r)
			code = names.ErrInternal
		}
	}()
	return work(b)
}

// Run processes completions until ctx is done and every scheduled baton has
// been finalized. A loop runs once; later calls return ErrLoopStarted.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return ErrLoopStarted
	}
	l.started = true
	l.mu.Unlock()

	stop := ctx.Done()
	for {
		select {
		case c := <-l.completions:
			l.finalize(c)

			l.mu.Lock()
			l.inflight--
			idle := l.closed && l.inflight == 0
			l.mu.Unlock()
			if idle {
				close(l.drained)
				return ctx.Err()
			}

		case <-stop:
			stop = nil

			l.mu.Lock()
			l.closed = true
			n := l.inflight
			l.mu.Unlock()

			if n == 0 {
				close(l.drained)
				return ctx.Err()
			}
			l.logger.Infof("shutting down, draining %d in-flight operations", n)
		}
	}
}

// Drained is closed when Run has returned after shutdown.
func (l *Loop) Drained() <-chan struct{} {
	return l.drained
}

func (l *Loop) finalize(c *completion) {
	b := c.baton
	log := l.logger.ChildLogger(map[string]interface{}{"baton": b.ID.String()})

	var result interface{}
	var err error
	if b.result != names.Success {
		err = blerpc.NativeCallFailed(b.result, b.Operation)
	} else if c.encode != nil {
		result, err = l.encode(log, c)
	}

	if cb := b.callback; cb != nil {
		l.invoke(log, cb, err, result)
	}

	if terr := b.transition(Completed, Finalized); terr != nil {
		log.Errorf("%v", terr)
	}
	b.release()
	c.future.resolve(result, err)

	log.Debugf("finalized %s", b.Operation)
}

// encode runs the baton's encoder, turning a panic into NRF_ERROR_INTERNAL.
func (l *Loop) encode(log blerpc.Logger, c *completion) (result interface{}, err error) {
	b := c.baton
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("encoding %s result panicked: %v", b.Operation, r)
			result = nil
			err = errors.Wrapf(blerpc.NativeCallFailed(names.ErrInternal, b.Operation), "encoding %s result panicked: %v", b.Operation, r)
		}
	}()

	result, err = c.encode(b)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s result", b.Operation)
	}
	return result, nil
}

func (l *Loop) invoke(log blerpc.Logger, cb blerpc.Callback, err error, result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(fmt.Sprintf("callback panicked: %v", r))
		}
	}()
	cb(err, result)
}
