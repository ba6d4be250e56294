package broadcast_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tableservice/internal/broadcast"
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/events"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu      sync.Mutex
	sent    [][]byte
	sendErr error
	pingErr error
	closed  bool
}

func (c *fakeConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, payload)
	return nil
}

func (c *fakeConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pingErr
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent(t *testing.T) events.Event {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Cappuccino", 1, 5.00, "")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), 5, []order.Item{item}, "Carlos Silva", "")
	require.NoError(t, err)
	return events.NewOrderCreated(aggregate)
}

func TestHub_Publish_ReachesAllViewers(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	first := &fakeConn{}
	second := &fakeConn{}
	hub.Register(first)
	hub.Register(second)

	hub.Publish(t.Context(), testEvent(t))

	require.Equal(t, 1, first.sentCount())
	require.Equal(t, 1, second.sentCount())
}

func TestHub_Publish_PayloadCarriesWireFields(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	conn := &fakeConn{}
	hub.Register(conn)

	hub.Publish(t.Context(), testEvent(t))

	require.Equal(t, 1, conn.sentCount())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(conn.sent[0], &decoded))
	require.Equal(t, "new_order", decoded["type"])
	require.Contains(t, decoded, "order")
	require.Contains(t, decoded, "timestamp")
}

func TestHub_Publish_DropsFailedConnection(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	healthy := &fakeConn{}
	broken := &fakeConn{sendErr: errors.New("write: broken pipe")}
	hub.Register(healthy)
	hub.Register(broken)

	hub.Publish(t.Context(), testEvent(t))

	require.Equal(t, 1, hub.Count())
	require.True(t, broken.isClosed())
	require.False(t, healthy.isClosed())

	// The dropped viewer no longer receives anything.
	hub.Publish(t.Context(), testEvent(t))
	require.Equal(t, 2, healthy.sentCount())
	require.Equal(t, 0, broken.sentCount())
}

func TestHub_Unregister_IsIdempotent(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	conn := &fakeConn{}
	hub.Register(conn)

	hub.Unregister(conn)
	hub.Unregister(conn)

	require.Zero(t, hub.Count())
}

func TestHub_Ping_DropsDeadConnections(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	alive := &fakeConn{}
	dead := &fakeConn{pingErr: errors.New("connection reset")}
	hub.Register(alive)
	hub.Register(dead)

	hub.Ping()

	require.Equal(t, 1, hub.Count())
	require.True(t, dead.isClosed())
	require.False(t, alive.isClosed())
}

func TestHub_Close_DetachesEveryone(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	first := &fakeConn{}
	second := &fakeConn{}
	hub.Register(first)
	hub.Register(second)

	hub.Close()

	require.Zero(t, hub.Count())
	require.True(t, first.isClosed())
	require.True(t, second.isClosed())
}

func TestHub_ConcurrentPublishAndRegister(t *testing.T) {
	hub := broadcast.NewHub(testLogger())
	event := testEvent(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			conn := &fakeConn{}
			hub.Register(conn)
			time.Sleep(time.Millisecond)
			hub.Unregister(conn)
		}()
		go func() {
			defer wg.Done()
			hub.Publish(t.Context(), event)
		}()
	}
	wg.Wait()

	require.Zero(t, hub.Count())
}
