// socket/dashboard.go
package socket

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stafflyhq/staffly_backend/services"
)

const (
	evCompanyStats    = "superadmin/dashboard/company-stats"
	evRevenueStats    = "superadmin/dashboard/revenue-stats"
	evRecentCompanies = "superadmin/dashboard/recent-companies"
)

// DashboardModule serves the aggregate widgets. Read-only, so nothing here
// broadcasts.
type DashboardModule struct {
	DB *mongo.Client
}

func NewDashboardModule(db *mongo.Client) *DashboardModule {
	return &DashboardModule{DB: db}
}

// Register attaches the module's handlers to one connection.
func (m *DashboardModule) Register(c *Client) {
	c.On(evCompanyStats, func(payload json.RawMessage) {
		c.Emit(evCompanyStats+"-response", services.CompanyStats(m.DB, payload))
	})

	c.On(evRevenueStats, func(payload json.RawMessage) {
		c.Emit(evRevenueStats+"-response", services.RevenueStats(m.DB, payload))
	})

	c.On(evRecentCompanies, func(payload json.RawMessage) {
		c.Emit(evRecentCompanies+"-response", services.RecentCompanies(m.DB, payload))
	})
}
