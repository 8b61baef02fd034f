// socket/subscriptions.go
package socket

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/services"
)

const (
	evFetchSubscriptions = "superadmin/subscriptions/fetch-subscriptions"
	evUpdateSubscription = "superadmin/subscriptions/update-subscription"
	evSubscriptionList   = "superadmin/subscriptions/subscriptionlist"
)

// SubscriptionsModule serves the company-to-plan join and plan moves.
type SubscriptionsModule struct {
	DB  *mongo.Client
	Hub *Hub
}

func NewSubscriptionsModule(db *mongo.Client, hub *Hub) *SubscriptionsModule {
	return &SubscriptionsModule{DB: db, Hub: hub}
}

// Register attaches the module's handlers to one connection.
func (m *SubscriptionsModule) Register(c *Client) {
	c.On(evFetchSubscriptions, func(payload json.RawMessage) {
		c.Emit(evFetchSubscriptions+"-response", services.FetchSubscriptions(m.DB))
	})

	c.On(evUpdateSubscription, func(payload json.RawMessage) {
		env := services.UpdateSubscription(m.DB, payload)
		c.Emit(evUpdateSubscription+"-response", env)
		if env.Done {
			m.broadcastSubscriptionList()
		}
	})
}

func (m *SubscriptionsModule) broadcastSubscriptionList() {
	env := services.FetchSubscriptions(m.DB)
	if env.Done {
		m.Hub.BroadcastToRoom("superadmin_room", evSubscriptionList+"-response", env.Data)
	}
}
