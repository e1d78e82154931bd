// Package ws pushes order lifecycle events to connected browsers over
// websockets. The hub is the push-mode NotificationTransport: every event
// is broadcast to every connection, and clients reconcile against their
// last observed status, so delivery stays best-effort and unscoped.
//
// Clients may send trackOrder/untrackOrder messages to declare interest in
// a specific order. The declarations are advisory: they are recorded per
// connection but do not narrow the broadcast, matching the behavior the
// storefront frontends already rely on.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"storefront/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second

	// sendBuffer bounds per-client backlog; a client that cannot drain it
	// is dropped rather than allowed to stall the hub.
	sendBuffer = 32
)

// clientMessage is the inbound frame shape for tracking declarations.
type clientMessage struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
}

// Hub upgrades connections and fans events out to them. It implements both
// http.Handler (the /ws endpoint) and ports.NotificationTransport.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte

	mu      sync.Mutex
	tracked map[string]struct{}
}

// NewHub creates a hub that accepts connections from any origin. The API is
// already open cross-origin; the websocket endpoint follows the same policy.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:  logger.With("component", "ws_hub"),
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and runs the connection's read and write
// pumps until the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &client{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		tracked: make(map[string]struct{}),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

// Publish broadcasts the event to every connected client. A client whose
// send buffer is full is disconnected; it can reconnect and poll to catch
// up. Publish never blocks on a slow consumer.
func (h *Hub) Publish(_ context.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.dropLocked(c)
		}
	}
	return nil
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.dropLocked(c)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *Hub) dropLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.OrderID == "" {
			continue
		}

		c.mu.Lock()
		switch msg.Action {
		case "trackOrder":
			c.tracked[msg.OrderID] = struct{}{}
		case "untrackOrder":
			delete(c.tracked, msg.OrderID)
		}
		c.mu.Unlock()
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
