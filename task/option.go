package task

import (
	"github.com/pkg/errors"

	"github.com/rigado/blerpc"
)

// LoopOption is implemented by Loop to accept configuration options.
type LoopOption interface {
	SetLogger(blerpc.Logger) error
	SetCompletionBuffer(n int) error
}

// An Option is a configuration function, which configures the loop.
type Option func(LoopOption) error

// OptLogger replaces the loop's logger.
func OptLogger(l blerpc.Logger) Option {
	return func(opt LoopOption) error {
		return opt.SetLogger(l)
	}
}

// OptCompletionBuffer sizes the completion channel. Workers block on a full
// channel until the loop catches up.
func OptCompletionBuffer(n int) Option {
	return func(opt LoopOption) error {
		return opt.SetCompletionBuffer(n)
	}
}

// SetLogger ...
func (l *Loop) SetLogger(lg blerpc.Logger) error {
	if lg == nil {
		return errors.New("nil logger")
	}
	l.logger = lg
	return nil
}

// SetCompletionBuffer ...
func (l *Loop) SetCompletionBuffer(n int) error {
	if n < 0 {
		return errors.Errorf("invalid completion buffer %d", n)
	}
	l.completions = make(chan *completion, n)
	return nil
}
