package state

import (
	"sync"

	"github.com/thoreinstein/nosuspend/internal/errors"
)

// Token identifies one stack entry for the pop that must unwind it.
// Tokens are single-use and only valid while their entry is the top of
// the stack. The zero Token never matches an entry.
type Token struct {
	depth int
	seq   uint64
}

type entry struct {
	requested Value
	effective Value
	seq       uint64
}

// Stack is an ordered stack of active inhibition requests. It computes
// the effective state on every push, hands it to the adapter, and caches
// it per depth so pops restore the prior state exactly.
//
// A Stack is safe for concurrent use; each push or pop and its paired
// adapter call execute atomically with respect to other operations.
type Stack struct {
	mu      sync.Mutex
	adapter Adapter
	entries []entry
	seq     uint64
}

// NewStack creates a stack driving the given adapter.
func NewStack(adapter Adapter) *Stack {
	return &Stack{adapter: adapter}
}

// Push adds a request to the stack and applies the resulting effective
// state. With inherit set and a non-empty stack, the effective state is
// the union of the current top's effective state and the request;
// otherwise it is the request verbatim. Pushing a null value is legal and
// still costs exactly one adapter call.
//
// If the adapter rejects the new state the entry is rolled back before
// the error is returned, so the stack never holds an entry whose
// effective state was not applied.
func (s *Stack) Push(requested Value, inherit bool) (Token, Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	effective := requested
	if inherit && len(s.entries) > 0 {
		effective = s.entries[len(s.entries)-1].effective.Union(requested)
	}

	s.seq++
	e := entry{requested: requested, effective: effective, seq: s.seq}
	s.entries = append(s.entries, e)

	if err := s.adapter.Apply(effective); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return Token{}, Value{}, errors.Mark(
			errors.Wrap(err, "applying effective state"), errors.ErrAdapter)
	}

	return Token{depth: len(s.entries) - 1, seq: e.seq}, effective, nil
}

// Pop removes the entry identified by token and restores the effective
// state cached below it, or clears the adapter entirely when the stack
// empties. The token must identify the current top; otherwise the stack
// and the platform are left untouched and errors.ErrStackDiscipline is
// returned.
//
// When the restoring adapter call fails the entry has already been
// removed: stack discipline is preserved and the adapter error is
// reported to the caller.
func (s *Stack) Pop(token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	top := len(s.entries) - 1
	if top < 0 || token.depth != top || token.seq != s.entries[top].seq {
		return errors.Wrapf(errors.ErrStackDiscipline,
			"token depth %d does not identify the top of a stack of %d",
			token.depth, len(s.entries))
	}

	s.entries = s.entries[:top]

	var err error
	if len(s.entries) == 0 {
		err = s.adapter.Clear()
	} else {
		err = s.adapter.Apply(s.entries[len(s.entries)-1].effective)
	}
	if err != nil {
		return errors.Mark(
			errors.Wrap(err, "restoring effective state"), errors.ErrAdapter)
	}
	return nil
}

// Current returns the effective state cached at the top of the stack, or
// the null state when the stack is empty. Pure read, no adapter call.
func (s *Stack) Current() Value {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return Value{}
	}
	return s.entries[len(s.entries)-1].effective
}

// Depth returns the number of active entries.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
