package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newConnPair upgrades a loopback connection and returns both ends.
func newConnPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	connCh := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	server = <-connCh
	t.Cleanup(func() { server.Close() })
	return server, client
}

func readFrame(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestClientEmit(t *testing.T) {
	server, peer := newConnPair(t)
	c := NewClient(server, primitive.NewObjectID(), "superadmin", "")

	require.NoError(t, c.Emit("connected", map[string]string{"role": "superadmin"}))

	msg := readFrame(t, peer)
	assert.Equal(t, "connected", msg.Event)
	assert.JSONEq(t, `{"role":"superadmin"}`, string(msg.Payload))
}

func TestBroadcastToRoom(t *testing.T) {
	h := NewHub()
	go h.Run()

	serverA, peerA := newConnPair(t)
	serverB, peerB := newConnPair(t)
	serverC, peerC := newConnPair(t)

	a := NewClient(serverA, primitive.NewObjectID(), "superadmin", "")
	b := NewClient(serverB, primitive.NewObjectID(), "superadmin", "")
	outsider := NewClient(serverC, primitive.NewObjectID(), "public", "")

	h.Register(a)
	h.Register(b)
	h.Register(outsider)
	h.JoinRoom("superadmin_room", a)
	h.JoinRoom("superadmin_room", b)

	assert.Equal(t, 2, h.RoomSize("superadmin_room"))

	h.BroadcastToRoom("superadmin_room", "superadmin/packages/planlist-response", []string{"basic", "pro"})

	for _, peer := range []*websocket.Conn{peerA, peerB} {
		msg := readFrame(t, peer)
		assert.Equal(t, "superadmin/packages/planlist-response", msg.Event)
		assert.JSONEq(t, `["basic","pro"]`, string(msg.Payload))
	}

	// The client outside the room must not receive the frame.
	require.NoError(t, peerC.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	var stray Message
	assert.Error(t, peerC.ReadJSON(&stray))
}

func TestUnregisterLeavesRooms(t *testing.T) {
	h := NewHub()
	go h.Run()

	server, _ := newConnPair(t)
	c := NewClient(server, primitive.NewObjectID(), "superadmin", "")

	h.Register(c)
	h.JoinRoom("superadmin_room", c)
	require.Equal(t, 1, h.RoomSize("superadmin_room"))

	h.Unregister(c)

	// Unregister goes through the hub loop; poll until it lands.
	deadline := time.Now().Add(2 * time.Second)
	for h.RoomSize("superadmin_room") != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Zero(t, h.RoomSize("superadmin_room"))
}
