package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Lead notification types
const (
	NotificationTypeNewRequirement = "new_requirement"
	NotificationTypeNewEnquiry     = "new_enquiry"
)

// Notification represents a message sent over WebSocket
type Notification struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	// writeWait bounds a single write to an admin socket
	writeWait = 10 * time.Second
	// sendBuffer is how many notifications may queue for one admin
	sendBuffer = 16
)

// Client represents a connected admin. Notifications are queued on send
// and written by the client's own writer goroutine.
type Client struct {
	Email string
	Conn  *websocket.Conn

	send      chan Notification
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(email string, conn *websocket.Conn) *Client {
	return &Client{
		Email: email,
		Conn:  conn,
		send:  make(chan Notification, sendBuffer),
		done:  make(chan struct{}),
	}
}

// enqueue hands n to the writer without blocking. It reports false when
// the client is gone or its queue is full.
func (c *Client) enqueue(n Notification) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- n:
		return true
	default:
		return false
	}
}

// writePump writes queued notifications until the client is closed or a
// write fails. A failed write closes the socket so the reader unregisters.
func (c *Client) writePump(logger *zap.Logger) {
	for {
		select {
		case <-c.done:
			return
		case n := <-c.send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteJSON(n); err != nil {
				logger.Warn("lead feed write failed", zap.String("admin", c.Email), zap.Error(err))
				c.close()
				return
			}
		}
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.Conn.Close()
	})
}

// Hub maintains the set of connected admins and fans leads out to them
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected admins
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastLead queues a freshly stored lead for every connected admin. It
// never waits on a socket; an admin whose queue is full misses the lead.
func (h *Hub) BroadcastLead(kind string, lead interface{}) {
	notification := Notification{
		Type:    kind,
		Message: leadMessage(kind),
		Data:    lead,
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if !client.enqueue(notification) {
			h.logger.Warn("lead feed dropped notification", zap.String("admin", client.Email), zap.String("type", kind))
		}
	}
}

func leadMessage(kind string) string {
	switch kind {
	case NotificationTypeNewRequirement:
		return "New requirement received"
	case NotificationTypeNewEnquiry:
		return "New enquiry received"
	default:
		return "New lead received"
	}
}
