package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stafflyhq/staffly_backend/utils"
)

func TestFetchCompaniesRejectsCustomFilterWithoutBounds(t *testing.T) {
	env := FetchCompanies(nil, json.RawMessage(`{"filter":"custom"}`))
	assert.False(t, env.Done)
	assert.Equal(t, utils.ErrCustomRangeBounds.Error(), env.Error)
}

func TestFetchCompaniesRejectsUnknownFilter(t *testing.T) {
	env := FetchCompanies(nil, json.RawMessage(`{"filter":"quarterly"}`))
	assert.False(t, env.Done)
	assert.NotEmpty(t, env.Error)
}

func TestGetCompanyRejectsMalformedID(t *testing.T) {
	env := GetCompany(nil, json.RawMessage(`{"companyid":"not-a-hex-id"}`))
	assert.False(t, env.Done)
	assert.Equal(t, "invalid company id", env.Message)
}
