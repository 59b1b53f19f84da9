package adapter

import (
	"testing"

	"github.com/thoreinstein/nosuspend/internal/state"
)

func TestNoop_ApplyRecordsValue(t *testing.T) {
	n := NewNoop()

	v := state.Value{Suspend: true, Display: true, AppName: "app"}
	if err := n.Apply(v); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := n.Current(); got != v {
		t.Errorf("Current() = %+v, want %+v", got, v)
	}
}

func TestNoop_ApplyIdempotent(t *testing.T) {
	n := NewNoop()
	v := state.Value{Suspend: true}

	if err := n.Apply(v); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	if err := n.Apply(v); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if got := n.Current(); got != v {
		t.Errorf("Current() = %+v after repeated Apply, want %+v", got, v)
	}
}

func TestNoop_Clear(t *testing.T) {
	n := NewNoop()

	_ = n.Apply(state.Value{Suspend: true})
	if err := n.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if !n.Current().IsNull() {
		t.Errorf("Current() = %+v after Clear, want null", n.Current())
	}

	// Repeated Clear must stay safe.
	if err := n.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestResolve_AlwaysYieldsAdapter(t *testing.T) {
	res := Resolve()

	if res.Adapter == nil {
		t.Fatal("Resolve() returned nil adapter")
	}
	if res.Platform == "" {
		t.Error("Resolution.Platform should be set")
	}
	if res.Name == "" {
		t.Error("Resolution.Name should be set")
	}
	if !res.Supported && res.Reason == "" {
		t.Error("degraded resolution must carry a reason")
	}
	if res.Supported && res.Reason != "" {
		t.Errorf("supported resolution carries reason %q", res.Reason)
	}

	// Resolution is one-shot per process.
	if again := Resolve(); again.Adapter != res.Adapter {
		t.Error("Resolve() should return the same adapter on every call")
	}
}
