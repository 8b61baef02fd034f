// models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead stages as shown on the Kanban board. The stage is stored as a plain
// string; mutation endpoints reject labels outside this set.
const (
	LeadStageContacted    = "Contacted"
	LeadStageNotContacted = "Not Contacted"
	LeadStageClosed       = "Closed"
	LeadStageLost         = "Lost"
	LeadStageOpportunity  = "Opportunity"
)

var LeadStages = []string{
	LeadStageContacted,
	LeadStageNotContacted,
	LeadStageClosed,
	LeadStageLost,
	LeadStageOpportunity,
}

type Lead struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Company   string             `json:"company,omitempty" bson:"company,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Value     float64            `json:"value,omitempty" bson:"value,omitempty"`
	Stage     string             `json:"stage" bson:"stage"`
	Source    string             `json:"source,omitempty" bson:"source,omitempty"`
	Owner     string             `json:"owner,omitempty" bson:"owner,omitempty"`
	Tags      []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Priority  string             `json:"priority,omitempty" bson:"priority,omitempty"` // "low", "medium", "high"
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsValidLeadStage reports whether stage is one of the known board labels.
func IsValidLeadStage(stage string) bool {
	for _, s := range LeadStages {
		if s == stage {
			return true
		}
	}
	return false
}
