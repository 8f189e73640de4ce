package usecase_test

import (
	"context"
	"testing"

	"github.com/I2oman/HospitalAssessment/internal/delivery/dto"
	"github.com/I2oman/HospitalAssessment/internal/usecase"
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drugFixture struct {
	drugs         *fakeDrugRepo
	prescriptions *fakePrescriptionRepo
	usecase       usecase.DrugUsecase
}

func newDrugFixture() *drugFixture {
	f := &drugFixture{
		drugs:         newFakeDrugRepo(),
		prescriptions: newFakePrescriptionRepo(),
	}
	f.usecase = usecase.NewDrugUsecase(nil, testLogger(), f.drugs, f.prescriptions)
	return f
}

func drugRequest(id, name string) *dto.DrugRequest {
	return &dto.DrugRequest{
		ID:          id,
		DrugName:    name,
		SideEffects: "drowsiness",
		Benefits:    "pain relief",
	}
}

func TestDrugCreateThenGet(t *testing.T) {
	f := newDrugFixture()
	ctx := context.Background()

	o := f.usecase.Create(ctx, drugRequest("DR1", "Paracetamol"))
	require.True(t, o.Succeeded())
	assert.Equal(t, "Drug added successfully!", o.Message)

	got, err := f.usecase.Get(ctx, "DR1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", got.DrugName)
	assert.Equal(t, "DR1 - Paracetamol", got.Display)

	byName, err := f.usecase.GetByName(ctx, "Paracetamol")
	require.NoError(t, err)
	assert.Equal(t, "DR1", byName.ID)
}

func TestDrugCreateDuplicateID(t *testing.T) {
	f := newDrugFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, drugRequest("DR1", "Paracetamol")).Succeeded())

	o := f.usecase.Create(ctx, drugRequest("DR1", "Ibuprofen"))
	assert.Equal(t, outcome.ReasonDuplicateKey, o.Reason)
	assert.Equal(t, "Error: Drug with this ID already exists.", o.Message)
}

func TestDrugUpdate(t *testing.T) {
	f := newDrugFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, drugRequest("DR1", "Paracetamol")).Succeeded())

	o := f.usecase.Update(ctx, drugRequest("DR1", "Ibuprofen"))
	require.True(t, o.Succeeded())
	assert.Equal(t, "Drug updated successfully!", o.Message)

	got, err := f.usecase.Get(ctx, "DR1")
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen", got.DrugName)

	o = f.usecase.Update(ctx, drugRequest("missing", "X"))
	assert.Equal(t, outcome.ReasonNotFound, o.Reason)
}

func TestDrugDeleteRestricted(t *testing.T) {
	f := newDrugFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, drugRequest("DR1", "Paracetamol")).Succeeded())
	f.prescriptions.prescriptions["PR1"] = prescriptionEntity("PR1", "DR1", "D1", "PA1")

	o := f.usecase.Delete(ctx, "DR1")
	assert.Equal(t, outcome.ReasonReferenced, o.Reason)
	assert.Equal(t, "Error: Drug is referenced by existing prescriptions and cannot be deleted.", o.Message)
}

func TestDrugDeleteRemovesRow(t *testing.T) {
	f := newDrugFixture()
	ctx := context.Background()

	require.True(t, f.usecase.Create(ctx, drugRequest("DR1", "Paracetamol")).Succeeded())

	o := f.usecase.Delete(ctx, "DR1")
	require.True(t, o.Succeeded())

	_, err := f.usecase.Get(ctx, "DR1")
	assert.ErrorIs(t, err, usecase.ErrDrugNotFound)
}
