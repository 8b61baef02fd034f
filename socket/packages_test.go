package socket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stafflyhq/staffly_backend/models"
)

func TestPublishPlanListBroadcastsToRoom(t *testing.T) {
	h := NewHub()
	go h.Run()

	serverA, peerA := newConnPair(t)
	serverB, peerB := newConnPair(t)

	a := NewClient(serverA, primitive.NewObjectID(), "superadmin", "")
	b := NewClient(serverB, primitive.NewObjectID(), "superadmin", "")
	h.Register(a)
	h.Register(b)
	h.JoinRoom("superadmin_room", a)
	h.JoinRoom("superadmin_room", b)

	m := &PackagesModule{Hub: h}
	m.publishPlanList(models.Ok([]map[string]string{{"planName": "Pro"}}))

	for _, peer := range []*websocket.Conn{peerA, peerB} {
		msg := readFrame(t, peer)
		assert.Equal(t, "superadmin/packages/planlist-response", msg.Event)
		assert.JSONEq(t, `[{"planName":"Pro"}]`, string(msg.Payload))
	}
}

func TestPublishPlanListSkipsFailedFetch(t *testing.T) {
	h := NewHub()
	go h.Run()

	server, peer := newConnPair(t)
	c := NewClient(server, primitive.NewObjectID(), "superadmin", "")
	h.Register(c)
	h.JoinRoom("superadmin_room", c)

	m := &PackagesModule{Hub: h}
	m.publishPlanList(models.FailMessage("database unavailable"))

	require.NoError(t, peer.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	var stray Message
	assert.Error(t, peer.ReadJSON(&stray))
}

func TestAddPlanFailureEmitsResponseWithoutBroadcast(t *testing.T) {
	h := NewHub()
	go h.Run()

	r := NewRouter()
	m := NewPackagesModule(nil, h)
	r.Handle("superadmin", "packages", m.Register)

	serverCaller, peerCaller := newConnPair(t)
	serverMember, peerMember := newConnPair(t)

	caller := NewClient(serverCaller, primitive.NewObjectID(), "superadmin", "")
	member := NewClient(serverMember, primitive.NewObjectID(), "superadmin", "")
	h.Register(caller)
	h.Register(member)
	h.JoinRoom("superadmin_room", member)

	// Invalid plan: validation rejects it before any database call, so a
	// nil client is safe and no list refresh should go out.
	r.Dispatch(caller, Message{
		Event:   "superadmin/packages/add-plan",
		Payload: json.RawMessage(`{"price":-5}`),
	})

	msg := readFrame(t, peerCaller)
	assert.Equal(t, "superadmin/packages/add-plan-response", msg.Event)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(msg.Payload, &env))
	assert.False(t, env.Done)

	require.NoError(t, peerMember.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	var stray Message
	assert.Error(t, peerMember.ReadJSON(&stray))
}
