package runner

import (
	"context"
	"sync"
)

// Fake is a Runner that records every command and replies from a handler.
// It is used by tests in packages that shell out.
type Fake struct {
	mu    sync.Mutex
	calls []Command

	// Handler decides the result of each call. A nil Handler returns exit 0.
	Handler func(Command) (*Output, error)
}

// Run records c and returns the handler's result.
func (f *Fake) Run(_ context.Context, c Command) (*Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.Handler == nil {
		return &Output{}, nil
	}
	return f.Handler(c)
}

// Calls returns a copy of the recorded commands in invocation order.
func (f *Fake) Calls() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.calls))
	copy(out, f.calls)
	return out
}
