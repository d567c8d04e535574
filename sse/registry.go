package sse

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/streamwire/ssekit/logger"
)

// NoConnection is the sentinel id returned by Register when no connection
// was created (nil transport or registry already shut down).
const NoConnection uint64 = 0

// Registry owns the set of live push connections keyed by connection id.
// The registry lock is held only for map mutation and snapshotting, never
// across a write, so one slow peer cannot block registration or delivery
// to other peers.
type Registry struct {
	mu       sync.Mutex
	conns    map[uint64]*StreamWriter
	shutdown bool

	nextID  atomic.Uint64
	log     *logger.Logger
	metrics *Metrics
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used by the registry.
func WithLogger(log *logger.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = log
	}
}

// WithMetrics attaches delivery metrics to the registry.
func WithMetrics(m *Metrics) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates an empty connection registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		conns: make(map[uint64]*StreamWriter),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Get("sse")
	}
	return r
}

// Register creates a connection over the given transport and returns its
// id. Ids are assigned monotonically and never reused. It returns
// NoConnection for a nil transport or after Shutdown; the transport is
// closed in the latter case since the caller handed ownership over.
func (r *Registry) Register(t Transport, opts ...WriterOption) uint64 {
	if t == nil {
		return NoConnection
	}

	// After Shutdown no bytes may reach the peer, so the flag is checked
	// before writer construction performs any preamble I/O.
	r.mu.Lock()
	down := r.shutdown
	r.mu.Unlock()
	if down {
		_ = t.Close()
		return NoConnection
	}

	// Writer construction may perform preamble I/O, so it happens outside
	// the lock.
	w := NewStreamWriter(t, opts...)
	id := r.nextID.Add(1)

	r.mu.Lock()
	if r.shutdown {
		// Shutdown raced in between the checks.
		r.mu.Unlock()
		_ = w.Close()
		return NoConnection
	}
	r.conns[id] = w
	total := len(r.conns)
	r.mu.Unlock()

	r.metrics.connOpened(context.Background())
	r.log.Debug("connection registered", logger.Fields(
		logger.FieldConnectionID, id,
		"total_connections", total,
	))
	return id
}

// Writer returns the stream writer for a connection id.
func (r *Registry) Writer(id uint64) (*StreamWriter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.conns[id]
	return w, ok
}

// SendToClient delivers one event to exactly one connection. The lookup
// holds the lock; the write does not. A failed write unregisters the
// connection as best-effort cleanup and returns false.
func (r *Registry) SendToClient(id uint64, e Event) bool {
	r.mu.Lock()
	w, ok := r.conns[id]
	r.mu.Unlock()
	if !ok {
		return false
	}

	if err := w.Write(e); err != nil {
		r.log.Warn("send failed, unregistering connection",
			logger.MergeWithError(logger.ConnFields(id), err))
		r.metrics.sendFailed(context.Background())
		r.unregister(id)
		return false
	}
	r.metrics.delivered(context.Background())
	return true
}

// Broadcast delivers one event to every registered connection and returns
// the number of successful deliveries. It iterates over a snapshot taken
// under the lock, so a peer registered mid-broadcast may or may not
// receive the event. Failed connections are individually unregistered;
// deliveries are never retried.
func (r *Registry) Broadcast(e Event) int {
	type entry struct {
		id uint64
		w  *StreamWriter
	}

	r.mu.Lock()
	snapshot := make([]entry, 0, len(r.conns))
	for id, w := range r.conns {
		snapshot = append(snapshot, entry{id, w})
	}
	r.mu.Unlock()

	r.metrics.broadcast(context.Background())

	succeeded := 0
	for _, c := range snapshot {
		if err := c.w.Write(e); err != nil {
			r.log.Warn("broadcast write failed, unregistering connection",
				logger.MergeWithError(logger.ConnFields(c.id), err))
			r.metrics.sendFailed(context.Background())
			r.unregister(c.id)
			continue
		}
		r.metrics.delivered(context.Background())
		succeeded++
	}
	return succeeded
}

// CloseClient explicitly closes and unregisters a connection. Calling it
// for an unknown or already-closed id is a safe no-op.
func (r *Registry) CloseClient(id uint64) {
	r.unregister(id)
}

// unregister removes the connection under the lock and closes its writer
// outside of it.
func (r *Registry) unregister(id uint64) {
	r.mu.Lock()
	w, ok := r.conns[id]
	if ok {
		delete(r.conns, id)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	_ = w.Close()
	r.metrics.connClosed(context.Background(), 1)
	r.log.Debug("connection unregistered", logger.ConnFields(id))
}

// Shutdown drains the connection map in a single lock acquisition, then
// closes every drained writer outside the lock, tolerating individual
// close failures. Register returns NoConnection afterwards.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return
	}
	r.shutdown = true
	drained := make([]*StreamWriter, 0, len(r.conns))
	for _, w := range r.conns {
		drained = append(drained, w)
	}
	r.conns = make(map[uint64]*StreamWriter)
	r.mu.Unlock()

	for _, w := range drained {
		_ = w.Close()
	}
	r.metrics.connClosed(context.Background(), int64(len(drained)))
	r.log.Info("registry shut down", logger.Fields(
		"closed_connections", len(drained),
	))
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// IDs returns the ids of all registered connections, in no particular order.
func (r *Registry) IDs() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uint64, 0, len(r.conns))
	for id := range r.conns {
		ids = append(ids, id)
	}
	return ids
}
