package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The failure paths below reject the payload before any database call, so a
// nil client is safe to pass.

func TestGetPlanRequiresPlanID(t *testing.T) {
	env := GetPlan(nil, json.RawMessage(`{}`))
	assert.False(t, env.Done)
	assert.Equal(t, "planid is required", env.Message)

	env = GetPlan(nil, json.RawMessage(`not json`))
	assert.False(t, env.Done)
	assert.NotEmpty(t, env.Error)
}

func TestAddPlanRejectsInvalidPlan(t *testing.T) {
	// Missing planName and planType, negative price.
	env := AddPlan(nil, json.RawMessage(`{"price":-5}`))
	assert.False(t, env.Done)
	assert.NotEmpty(t, env.Error)
}

func TestUpdatePlanRequiresPlanID(t *testing.T) {
	env := UpdatePlan(nil, json.RawMessage(`{"plan":{"planName":"Pro","planType":"monthly","price":49}}`))
	assert.False(t, env.Done)
	assert.Equal(t, "planid is required", env.Message)
}

func TestUpdatePlanRejectsInvalidPlan(t *testing.T) {
	env := UpdatePlan(nil, json.RawMessage(`{"planid":"p1","plan":{"price":49}}`))
	assert.False(t, env.Done)
	assert.NotEmpty(t, env.Error)
}

func TestDeletePlanRequiresPlanID(t *testing.T) {
	env := DeletePlan(nil, json.RawMessage(`{}`))
	assert.False(t, env.Done)
	assert.Equal(t, "planid is required", env.Message)
}
