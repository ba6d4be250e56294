// Package broadcast fans order lifecycle events out to connected websocket
// viewers. The hub is transport-agnostic: it sees connections through a
// small interface and never touches websocket framing itself.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"tableservice/internal/core/events"
)

// Connection is one attached viewer. Implementations must be safe for
// concurrent Send calls.
type Connection interface {
	// Send writes one text message to the viewer.
	Send(payload []byte) error

	// Ping probes connection liveness.
	Ping() error

	// Close tears the connection down.
	Close() error
}

// Hub is the connection registry. Delivery is at-most-once: a connection
// that fails a send or a ping is dropped and closed, never retried.
type Hub struct {
	mu     sync.RWMutex
	conns  map[Connection]struct{}
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		conns:  make(map[Connection]struct{}),
		logger: logger.With("component", "broadcast_hub"),
	}
}

// Register attaches a viewer. The connection starts receiving broadcasts
// immediately; there is no backlog replay.
func (h *Hub) Register(conn Connection) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	count := len(h.conns)
	h.mu.Unlock()

	h.logger.Info("viewer connected", "connections", count)
}

// Unregister detaches a viewer. Safe to call for a connection that was
// already dropped.
func (h *Hub) Unregister(conn Connection) {
	h.mu.Lock()
	_, ok := h.conns[conn]
	delete(h.conns, conn)
	count := len(h.conns)
	h.mu.Unlock()

	if ok {
		h.logger.Info("viewer disconnected", "connections", count)
	}
}

// Publish broadcasts an order lifecycle event. It implements the event
// publisher port; marshalling failures are logged and swallowed because a
// broadcast must never fail the command that triggered it.
func (h *Hub) Publish(_ context.Context, event events.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal event", "kind", string(event.Kind), "error", err)
		return
	}

	h.send(payload)
}

// send delivers the payload to a snapshot of the current connections.
// Failed connections are collected and dropped after the loop so the
// registry lock is never held across a network write.
func (h *Hub) send(payload []byte) {
	h.mu.RLock()
	snapshot := make([]Connection, 0, len(h.conns))
	for conn := range h.conns {
		snapshot = append(snapshot, conn)
	}
	h.mu.RUnlock()

	var failed []Connection
	for _, conn := range snapshot {
		if err := conn.Send(payload); err != nil {
			h.logger.Warn("send to viewer failed", "error", err)
			failed = append(failed, conn)
		}
	}

	h.drop(failed)
}

// Ping probes every connection and drops the dead ones. Called periodically
// by the keepalive job.
func (h *Hub) Ping() {
	h.mu.RLock()
	snapshot := make([]Connection, 0, len(h.conns))
	for conn := range h.conns {
		snapshot = append(snapshot, conn)
	}
	h.mu.RUnlock()

	var failed []Connection
	for _, conn := range snapshot {
		if err := conn.Ping(); err != nil {
			h.logger.Warn("viewer ping failed", "error", err)
			failed = append(failed, conn)
		}
	}

	h.drop(failed)
}

// Close detaches and closes every connection. The hub stays usable, which
// keeps shutdown ordering forgiving.
func (h *Hub) Close() {
	h.mu.Lock()
	snapshot := make([]Connection, 0, len(h.conns))
	for conn := range h.conns {
		snapshot = append(snapshot, conn)
	}
	h.conns = make(map[Connection]struct{})
	h.mu.Unlock()

	for _, conn := range snapshot {
		_ = conn.Close()
	}
}

// Count reports the number of attached viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) drop(failed []Connection) {
	if len(failed) == 0 {
		return
	}

	for _, conn := range failed {
		h.Unregister(conn)
		_ = conn.Close()
	}
}
