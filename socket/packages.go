// socket/packages.go
package socket

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/models"
	"github.com/stafflyhq/staffly_backend/services"
)

// Event names handled by the packages module.
const (
	evFetchPackages = "superadmin/packages/fetch-packages"
	evGetPlan       = "superadmin/packages/get-plan"
	evAddPlan       = "superadmin/packages/add-plan"
	evUpdatePlan    = "superadmin/packages/update-plan"
	evDeletePlan    = "superadmin/packages/delete-plan"
	evPlanList      = "superadmin/packages/planlist"
)

// PackagesModule handles plan CRUD over the socket. Every handler answers
// on "<event>-response"; mutations additionally push the refreshed plan
// list to the superadmin room.
type PackagesModule struct {
	DB  *mongo.Client
	Hub *Hub
}

func NewPackagesModule(db *mongo.Client, hub *Hub) *PackagesModule {
	return &PackagesModule{DB: db, Hub: hub}
}

// Register attaches the module's handlers to one connection.
func (m *PackagesModule) Register(c *Client) {
	c.On(evFetchPackages, func(payload json.RawMessage) {
		c.Emit(evFetchPackages+"-response", services.FetchPlans(m.DB))
	})

	c.On(evGetPlan, func(payload json.RawMessage) {
		c.Emit(evGetPlan+"-response", services.GetPlan(m.DB, payload))
	})

	c.On(evAddPlan, func(payload json.RawMessage) {
		env := services.AddPlan(m.DB, payload)
		c.Emit(evAddPlan+"-response", env)
		if env.Done {
			m.broadcastPlanList()
		}
	})

	c.On(evUpdatePlan, func(payload json.RawMessage) {
		env := services.UpdatePlan(m.DB, payload)
		c.Emit(evUpdatePlan+"-response", env)
		if env.Done {
			m.broadcastPlanList()
		}
	})

	c.On(evDeletePlan, func(payload json.RawMessage) {
		env := services.DeletePlan(m.DB, payload)
		c.Emit(evDeletePlan+"-response", env)
		if env.Done {
			m.broadcastPlanList()
		}
	})
}

func (m *PackagesModule) broadcastPlanList() {
	m.publishPlanList(services.FetchPlans(m.DB))
}

// publishPlanList pushes a refreshed plan list to the superadmin room. A
// failed fetch is not broadcast; connected screens keep their last list.
func (m *PackagesModule) publishPlanList(env models.Envelope) {
	if env.Done {
		m.Hub.BroadcastToRoom("superadmin_room", evPlanList+"-response", env.Data)
	}
}
