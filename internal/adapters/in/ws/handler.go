// Package ws upgrades HTTP requests to websocket connections and attaches
// them to the broadcast hub so dashboards receive state changes as they
// happen.
package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tableservice/internal/broadcast"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	// The REST surface is already open to any origin; the socket follows suit.
	CheckOrigin: func(*http.Request) bool { return true },
}

// conn adapts a gorilla connection to broadcast.Connection. Gorilla permits
// one concurrent writer per connection, so Send and Ping share a mutex.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *conn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (c *conn) Close() error {
	return c.ws.Close()
}

// Handler serves the websocket endpoint.
type Handler struct {
	hub    *broadcast.Hub
	logger *slog.Logger
}

// NewHandler creates a websocket handler bound to the given hub.
func NewHandler(hub *broadcast.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With("component", "ws_handler"),
	}
}

// Serve handles GET /ws: upgrades the request, registers the viewer with the
// hub, then blocks on the read loop until the peer goes away. Inbound text
// frames are acknowledged verbatim; the socket is otherwise server-to-client.
func (h *Handler) Serve(ctx echo.Context) error {
	socket, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return err
	}

	viewer := &conn{ws: socket}
	h.hub.Register(viewer)
	defer func() {
		h.hub.Unregister(viewer)
		_ = viewer.Close()
	}()

	for {
		_, message, err := socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "error", err)
			}
			return nil
		}

		if err = viewer.Send([]byte("Message received: " + string(message))); err != nil {
			return nil
		}
	}
}
