// socket/companies.go
package socket

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/services"
)

const (
	evFetchCompanies  = "superadmin/companies/fetch-companies"
	evCompanyPackages = "superadmin/companies/fetch-packages" // plan dropdown data
	evGetCompany      = "superadmin/companies/get-company"
	evAddCompany      = "superadmin/companies/add-company"
	evUpdateCompany   = "superadmin/companies/update-company"
	evDeleteCompanies = "superadmin/companies/delete-companies"
	evCompanyList     = "superadmin/companies/companylist"
)

// CompaniesModule handles company CRUD over the socket.
type CompaniesModule struct {
	DB  *mongo.Client
	Hub *Hub
}

func NewCompaniesModule(db *mongo.Client, hub *Hub) *CompaniesModule {
	return &CompaniesModule{DB: db, Hub: hub}
}

// Register attaches the module's handlers to one connection.
func (m *CompaniesModule) Register(c *Client) {
	c.On(evFetchCompanies, func(payload json.RawMessage) {
		c.Emit(evFetchCompanies+"-response", services.FetchCompanies(m.DB, payload))
	})

	// The companies screen needs the plan list for its plan dropdown; the
	// event lives in this module's namespace so it routes here.
	c.On(evCompanyPackages, func(payload json.RawMessage) {
		c.Emit(evCompanyPackages+"-response", services.FetchPlans(m.DB))
	})

	c.On(evGetCompany, func(payload json.RawMessage) {
		c.Emit(evGetCompany+"-response", services.GetCompany(m.DB, payload))
	})

	c.On(evAddCompany, func(payload json.RawMessage) {
		env := services.AddCompany(m.DB, payload)
		c.Emit(evAddCompany+"-response", env)
		if env.Done {
			m.broadcastCompanyList()
		}
	})

	c.On(evUpdateCompany, func(payload json.RawMessage) {
		env := services.UpdateCompany(m.DB, payload)
		c.Emit(evUpdateCompany+"-response", env)
		if env.Done {
			m.broadcastCompanyList()
		}
	})

	c.On(evDeleteCompanies, func(payload json.RawMessage) {
		env := services.DeleteCompanies(m.DB, payload)
		c.Emit(evDeleteCompanies+"-response", env)
		if env.Done {
			m.broadcastCompanyList()
		}
	})
}

func (m *CompaniesModule) broadcastCompanyList() {
	env := services.FetchCompanies(m.DB, nil)
	if env.Done {
		m.Hub.BroadcastToRoom("superadmin_room", evCompanyList+"-response", env.Data)
	}
}
