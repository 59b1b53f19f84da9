package adapter

import (
	"sync"

	"github.com/thoreinstein/nosuspend/internal/state"
)

// Noop is an adapter that accepts every request and inhibits nothing.
// It keeps the last applied value so Current still mirrors the stack,
// which lets calling code behave identically on unsupported platforms.
type Noop struct {
	mu      sync.Mutex
	applied state.Value
}

// NewNoop creates a no-op adapter.
func NewNoop() *Noop {
	return &Noop{}
}

// Apply records v and does nothing else.
func (n *Noop) Apply(v state.Value) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.applied = v
	return nil
}

// Clear forgets the recorded value.
func (n *Noop) Clear() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.applied = state.Value{}
	return nil
}

// Current returns the last value passed to Apply.
func (n *Noop) Current() state.Value {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.applied
}
