package sse

import (
	"strings"
	"sync"
	"testing"
)

func newTestRegistry() *Registry {
	return NewRegistry()
}

func TestRegisterAssignsMonotonicIDs(t *testing.T) {
	r := newTestRegistry()

	first := r.Register(&fakeTransport{})
	second := r.Register(&fakeTransport{})

	if first == NoConnection || second == NoConnection {
		t.Fatal("expected real connection ids")
	}
	if second <= first {
		t.Errorf("ids must be monotonic: first=%d second=%d", first, second)
	}
	if r.Len() != 2 {
		t.Errorf("expected 2 connections, got %d", r.Len())
	}
}

func TestRegisterNilTransport(t *testing.T) {
	r := newTestRegistry()
	if id := r.Register(nil); id != NoConnection {
		t.Errorf("expected NoConnection for nil transport, got %d", id)
	}
}

func TestSendToClient(t *testing.T) {
	r := newTestRegistry()
	ft := &fakeTransport{}
	id := r.Register(ft)

	if !r.SendToClient(id, Event{Type: "tick", Data: "42"}) {
		t.Fatal("expected delivery to succeed")
	}
	if got := ft.payload(); got != "event: tick\ndata: 42\n\n" {
		t.Errorf("unexpected payload: %q", got)
	}
}

func TestSendToClientUnknownID(t *testing.T) {
	r := newTestRegistry()
	if r.SendToClient(999, Event{Data: "x"}) {
		t.Error("expected delivery to unknown id to fail")
	}
}

func TestSendToClientFailureUnregisters(t *testing.T) {
	r := newTestRegistry()
	id := r.Register(&fakeTransport{failAt: 1})

	if r.SendToClient(id, Event{Data: "x"}) {
		t.Fatal("expected delivery to fail")
	}
	if r.Len() != 0 {
		t.Errorf("failed connection must be unregistered, %d left", r.Len())
	}
	if r.SendToClient(id, Event{Data: "y"}) {
		t.Error("delivery after unregister must fail")
	}
}

func TestBroadcast(t *testing.T) {
	r := newTestRegistry()
	transports := []*fakeTransport{{}, {}, {}}
	for _, ft := range transports {
		r.Register(ft)
	}

	n := r.Broadcast(Event{Type: "news", Data: "hello"})
	if n != 3 {
		t.Fatalf("expected 3 deliveries, got %d", n)
	}
	for i, ft := range transports {
		if !strings.Contains(ft.payload(), "data: hello") {
			t.Errorf("transport %d missed the broadcast: %q", i, ft.payload())
		}
	}
}

func TestBroadcastPartialFailure(t *testing.T) {
	r := newTestRegistry()
	r.Register(&fakeTransport{})
	r.Register(&fakeTransport{failAt: 1})
	r.Register(&fakeTransport{})

	n := r.Broadcast(Event{Data: "x"})
	if n != 2 {
		t.Errorf("expected 2 successful deliveries, got %d", n)
	}
	if r.Len() != 2 {
		t.Errorf("failed connection must be dropped, %d left", r.Len())
	}
}

func TestBroadcastEmptyRegistry(t *testing.T) {
	r := newTestRegistry()
	if n := r.Broadcast(Event{Data: "x"}); n != 0 {
		t.Errorf("expected 0 deliveries, got %d", n)
	}
}

func TestCloseClientIdempotent(t *testing.T) {
	r := newTestRegistry()
	ft := &fakeTransport{}
	id := r.Register(ft)

	r.CloseClient(id)
	r.CloseClient(id)
	r.CloseClient(424242)

	if ft.closeCount() != 1 {
		t.Errorf("transport should be closed once, got %d", ft.closeCount())
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestShutdown(t *testing.T) {
	r := newTestRegistry()
	transports := []*fakeTransport{{}, {}}
	for _, ft := range transports {
		r.Register(ft)
	}

	r.Shutdown()

	if r.Len() != 0 {
		t.Errorf("expected drained registry, got %d", r.Len())
	}
	for i, ft := range transports {
		if ft.closeCount() != 1 {
			t.Errorf("transport %d close count = %d, want 1", i, ft.closeCount())
		}
	}

	// Register and SendToClient refuse after shutdown.
	ft := &fakeTransport{}
	if id := r.Register(ft); id != NoConnection {
		t.Errorf("expected NoConnection after shutdown, got %d", id)
	}
	if ft.closeCount() != 1 {
		t.Error("refused transport must be closed")
	}
	if r.SendToClient(1, Event{Data: "x"}) {
		t.Error("delivery after shutdown must fail")
	}

	// Second shutdown is a no-op.
	r.Shutdown()
}

func TestRegisterAfterShutdownSendsNothing(t *testing.T) {
	r := newTestRegistry()
	r.Shutdown()

	ft := &fakeTransport{}
	if id := r.Register(ft, WithPreamble([]byte("HTTP/1.1 200 OK\r\n\r\n"))); id != NoConnection {
		t.Fatalf("expected NoConnection after shutdown, got %d", id)
	}
	if got := ft.payload(); got != "" {
		t.Errorf("no bytes may reach the peer after shutdown, sent %q", got)
	}
	if ft.closeCount() != 1 {
		t.Errorf("refused transport close count = %d, want 1", ft.closeCount())
	}
}

func TestWriterLookup(t *testing.T) {
	r := newTestRegistry()
	id := r.Register(&fakeTransport{})

	if _, ok := r.Writer(id); !ok {
		t.Error("expected writer for registered id")
	}
	if _, ok := r.Writer(id + 1); ok {
		t.Error("expected no writer for unknown id")
	}
}

func TestIDs(t *testing.T) {
	r := newTestRegistry()
	a := r.Register(&fakeTransport{})
	b := r.Register(&fakeTransport{})

	ids := r.IDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	seen := map[uint64]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen[a] || !seen[b] {
		t.Errorf("ids %v missing %d or %d", ids, a, b)
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := r.Register(&fakeTransport{})
			r.SendToClient(id, Event{Data: "direct"})
			r.Broadcast(Event{Data: "fanout"})
			r.CloseClient(id)
		}()
	}
	wg.Wait()

	if r.Len() != 0 {
		t.Errorf("expected all connections closed, got %d", r.Len())
	}
}
