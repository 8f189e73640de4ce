package validator_test

import (
	"testing"

	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDoctorRequest(t *testing.T) {
	v := validator.NewValidator()

	valid := &dto.DoctorRequest{
		ID:        "D1",
		FirstName: "John",
		Surname:   "Smith",
		Email:     "john@example.com",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := &dto.DoctorRequest{
		FirstName: "John",
		Surname:   "Smith",
		Email:     "not-an-email",
	}
	err := v.Validate(invalid)
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "ID is required", formatted["ID"])
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
}

func TestValidateVisitRequest(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(&dto.VisitRequest{PatientID: "P1"})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Contains(t, formatted, "DoctorID")
	assert.Contains(t, formatted, "DateOfVisit")
	assert.NotContains(t, formatted, "PatientID")
}
