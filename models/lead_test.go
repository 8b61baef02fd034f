package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLeadStage(t *testing.T) {
	for _, stage := range LeadStages {
		assert.True(t, IsValidLeadStage(stage), "stage %q", stage)
	}

	assert.False(t, IsValidLeadStage("contacted")) // stage labels are case sensitive
	assert.False(t, IsValidLeadStage("Won"))
	assert.False(t, IsValidLeadStage(""))
}
