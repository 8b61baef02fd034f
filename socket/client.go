// socket/client.go
package socket

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is the wire frame for socket events, both directions.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (m *Message) unmarshal(data []byte) error {
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	if m.Event == "" {
		return errors.New("missing event name")
	}
	return nil
}

type outMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// HandlerFunc handles one inbound event's raw payload.
type HandlerFunc func(payload json.RawMessage)

// Client represents one authenticated socket connection. Role and CompanyID
// are resolved once by the gate and fixed for the connection's lifetime.
//
// handlers and attached are only touched from the connection's read loop, so
// they need no lock; Emit is also called from hub broadcasts and serializes
// writes with writeMu.
type Client struct {
	UserID    primitive.ObjectID
	Role      string
	CompanyID string

	conn     *websocket.Conn
	handlers map[string]HandlerFunc
	attached map[string]bool
	writeMu  sync.Mutex
}

// NewClient wraps an upgraded connection with resolved identity.
func NewClient(conn *websocket.Conn, userID primitive.ObjectID, role, companyID string) *Client {
	return &Client{
		UserID:    userID,
		Role:      role,
		CompanyID: companyID,
		conn:      conn,
		handlers:  make(map[string]HandlerFunc),
		attached:  make(map[string]bool),
	}
}

// On registers a handler for an event name.
func (c *Client) On(event string, h HandlerFunc) {
	c.handlers[event] = h
}

// Handler returns the registered handler for an event, if any.
func (c *Client) Handler(event string) (HandlerFunc, bool) {
	h, ok := c.handlers[event]
	return h, ok
}

// Attached reports whether a module's handler set is already registered.
func (c *Client) Attached(module string) bool {
	return c.attached[module]
}

// MarkAttached records that a module's handlers are registered on this
// connection.
func (c *Client) MarkAttached(module string) {
	c.attached[module] = true
}

// Emit writes one event frame to the peer.
func (c *Client) Emit(event string, payload interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(outMessage{Event: event, Payload: payload})
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
