package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/domain/entity"
	"github.com/I2oman/HospitalAssessment/internal/usecase"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patientFixture struct {
	patients      *fakePatientRepo
	insurances    *fakeInsuranceRepo
	prescriptions *fakePrescriptionRepo
	visits        *fakeVisitRepo
	usecase       usecase.PatientUsecase
}

func newPatientFixture() *patientFixture {
	f := &patientFixture{
		patients:      newFakePatientRepo(),
		insurances:    newFakeInsuranceRepo(),
		prescriptions: newFakePrescriptionRepo(),
		visits:        newFakeVisitRepo(),
	}
	f.usecase = usecase.NewPatientUsecase(nil, testLogger(), f.patients, f.insurances, f.prescriptions, f.visits)
	return f
}

func patientRequest(id, email, insuranceID string) *dto.PatientRequest {
	return &dto.PatientRequest{
		ID:          id,
		FirstName:   "Alice",
		Surname:     "Brown",
		Postcode:    "AB1 2CD",
		Address:     "2 Low Road",
		Phone:       "01234 567890",
		Email:       email,
		InsuranceID: insuranceID,
	}
}

func TestPatientCreateDefaultsToNHS(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	o := f.usecase.Create(ctx, patientRequest("P1", "alice@example.com", ""))
	require.True(t, o.Succeeded())
	assert.Equal(t, "Patient added successfully!", o.Message)

	assert.Equal(t, entity.DefaultInsuranceID, f.patients.patients["P1"].InsuranceID)

	// no NHS row exists, so the response carries the default label only
	got, err := f.usecase.Get(ctx, "P1")
	require.NoError(t, err)
	assert.Nil(t, got.Insurance)
	assert.Equal(t, "NHS", got.InsuranceCompany)
}

func TestPatientCreateWithKnownInsurance(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()
	f.insurances.insurances["INS1"] = entity.Insurance{ID: "INS1", Company: "Aviva"}

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "alice@example.com", "INS1")).Succeeded())

	got, err := f.usecase.Get(ctx, "P1")
	require.NoError(t, err)
	require.NotNil(t, got.Insurance)
	assert.Equal(t, "INS1", got.Insurance.ID)
	assert.Equal(t, "Aviva", got.Insurance.Label)
	assert.Equal(t, "Aviva", got.InsuranceCompany)
}

func TestPatientCreateUnknownInsuranceBlocked(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	o := f.usecase.Create(ctx, patientRequest("P1", "alice@example.com", "NOPE"))
	assert.False(t, o.Succeeded())
	assert.Equal(t, outcome.ReasonUnresolvedReference, o.Reason)
	assert.Equal(t, outcome.SeverityWarning, o.Severity)
	assert.Equal(t, "Error: Invalid insurance selection.", o.Message)

	assert.Empty(t, f.patients.patients)
}

func TestPatientDanglingInsuranceMaterializesAsDefault(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	// insurance row removed after the patient was stored
	f.patients.patients["P1"] = entity.Patient{
		ID: "P1", FirstName: "Alice", Surname: "Brown",
		Email: "alice@example.com", InsuranceID: "GONE",
	}

	got, err := f.usecase.Get(ctx, "P1")
	require.NoError(t, err)
	assert.Nil(t, got.Insurance)
	assert.Equal(t, "NHS", got.InsuranceCompany)

	list := f.usecase.GetAll(ctx)
	require.Len(t, list.Patients, 1)
	assert.Nil(t, list.Patients[0].Insurance)
}

func TestPatientCreateDuplicateID(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "one@example.com", "")).Succeeded())

	o := f.usecase.Create(ctx, patientRequest("P1", "two@example.com", ""))
	assert.Equal(t, outcome.ReasonDuplicateKey, o.Reason)
	assert.Equal(t, "Error: A patient with this ID already exists.", o.Message)
}

func TestPatientEmailUniqueness(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "one@example.com", "")).Succeeded())
	require.True(t, f.usecase.Create(ctx, patientRequest("P2", "two@example.com", "")).Succeeded())

	o := f.usecase.Create(ctx, patientRequest("P3", "one@example.com", ""))
	assert.Equal(t, outcome.ReasonDuplicateNaturalKey, o.Reason)

	o = f.usecase.Update(ctx, patientRequest("P2", "one@example.com", ""))
	assert.Equal(t, outcome.ReasonDuplicateNaturalKey, o.Reason)

	o = f.usecase.Update(ctx, patientRequest("P2", "two@example.com", ""))
	assert.True(t, o.Succeeded())
}

func TestPatientUpdateNotFound(t *testing.T) {
	f := newPatientFixture()

	o := f.usecase.Update(context.Background(), patientRequest("missing", "x@example.com", ""))
	assert.Equal(t, outcome.ReasonNotFound, o.Reason)
	assert.Equal(t, "Error: Patient with this ID does not exist.", o.Message)
}

func TestPatientDeleteRestricted(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "one@example.com", "")).Succeeded())
	v := visitEntity("P1", "D1", "2024-01-10")
	f.visits.visits[visitKeyOf(&v)] = v

	o := f.usecase.Delete(ctx, "P1")
	assert.Equal(t, outcome.ReasonReferenced, o.Reason)

	_, err := f.usecase.Get(ctx, "P1")
	assert.NoError(t, err)
}

func TestPatientDeleteRemovesRow(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "one@example.com", "")).Succeeded())

	o := f.usecase.Delete(ctx, "P1")
	require.True(t, o.Succeeded())
	assert.Equal(t, "Patient deleted successfully!", o.Message)

	_, err := f.usecase.Get(ctx, "P1")
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}

func TestPatientGetByNaturalKeys(t *testing.T) {
	f := newPatientFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, patientRequest("P1", "alice@example.com", "")).Succeeded())

	byEmail, err := f.usecase.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "P1", byEmail.ID)

	byName, err := f.usecase.GetByFullName(ctx, "Alice Brown")
	require.NoError(t, err)
	assert.Equal(t, "P1", byName.ID)
}

func TestPatientGetAllDegradesOnStorageFault(t *testing.T) {
	f := newPatientFixture()
	f.patients.err = errors.New("connection refused")

	list := f.usecase.GetAll(context.Background())
	require.NotNil(t, list)
	assert.Empty(t, list.Patients)
}
