package socket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestModuleFromEvent(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"superadmin/packages/fetch-packages", "packages"},
		{"superadmin/companies/add-company", "companies"},
		{"admin/contacts", "contacts"},
		{"ping", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ModuleFromEvent(tt.event), "event %q", tt.event)
	}
}

func TestDispatchAttachesModuleOnce(t *testing.T) {
	registered := 0
	handled := 0

	r := NewRouter()
	r.Handle("superadmin", "packages", func(c *Client) {
		registered++
		c.On("superadmin/packages/fetch-packages", func(json.RawMessage) {
			handled++
		})
	})

	c := NewClient(nil, primitive.NewObjectID(), "superadmin", "")

	r.Dispatch(c, Message{Event: "superadmin/packages/fetch-packages"})
	r.Dispatch(c, Message{Event: "superadmin/packages/fetch-packages"})

	assert.Equal(t, 1, registered, "registrar must run once per connection")
	assert.Equal(t, 2, handled)
	assert.True(t, c.Attached("packages"))
}

func TestDispatchDropsRoleMismatch(t *testing.T) {
	registered := 0

	r := NewRouter()
	r.Handle("superadmin", "packages", func(c *Client) {
		registered++
	})

	c := NewClient(nil, primitive.NewObjectID(), "public", "")

	// Matching event name for the wrong role: silently ignored.
	r.Dispatch(c, Message{Event: "superadmin/packages/fetch-packages"})

	assert.Zero(t, registered)
	assert.False(t, c.Attached("packages"))
}

func TestDispatchIgnoresUnknownEvents(t *testing.T) {
	r := NewRouter()
	c := NewClient(nil, primitive.NewObjectID(), "superadmin", "")

	require.NotPanics(t, func() {
		r.Dispatch(c, Message{Event: "superadmin/unknown/fetch"})
		r.Dispatch(c, Message{Event: "ping"})
		r.Dispatch(c, Message{Event: ""})
	})
}

func TestMessageUnmarshal(t *testing.T) {
	var msg Message
	err := msg.unmarshal([]byte(`{"event":"superadmin/packages/get-plan","payload":{"planid":"p1"}}`))
	require.NoError(t, err)
	assert.Equal(t, "superadmin/packages/get-plan", msg.Event)
	assert.JSONEq(t, `{"planid":"p1"}`, string(msg.Payload))

	var missing Message
	assert.Error(t, missing.unmarshal([]byte(`{"payload":{}}`)))

	var garbage Message
	assert.Error(t, garbage.unmarshal([]byte(`not json`)))
}
