package task

import "context"

// Future resolves once a baton's callback has run.
type Future struct {
	done   chan struct{}
	result interface{}
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(result interface{}, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Done is closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future resolves or ctx is done. It returns what the
// callback received.
func (f *Future) Wait(ctx context.Context) (interface{}, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
