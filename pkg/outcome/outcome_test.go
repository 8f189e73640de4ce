package outcome_test

import (
	"testing"

	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	o := outcome.Success("Doctor added successfully!")

	assert.True(t, o.Succeeded())
	assert.Equal(t, "Doctor added successfully!", o.Message)
	assert.Equal(t, outcome.SeverityInfo, o.Severity)
	assert.Empty(t, o.Reason)
}

func TestRejected(t *testing.T) {
	o := outcome.Rejected(outcome.ReasonDuplicateKey, "Error: Doctor with this ID already exists.")

	assert.False(t, o.Succeeded())
	assert.Equal(t, outcome.SeverityError, o.Severity)
	assert.Equal(t, outcome.ReasonDuplicateKey, o.Reason)
}

func TestBlocked(t *testing.T) {
	o := outcome.Blocked(outcome.ReasonUnresolvedReference, "Error: Invalid insurance selection.")

	assert.False(t, o.Succeeded())
	assert.Equal(t, outcome.SeverityWarning, o.Severity)
	assert.Equal(t, outcome.ReasonUnresolvedReference, o.Reason)
}
