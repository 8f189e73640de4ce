package usecase_test

import (
	"context"
	"io"
	"time"

	"github.com/I2oman/HospitalAssessment/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mustDate(value string) time.Time {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return date
}

func prescriptionEntity(id, drugID, doctorID, patientID string) entity.Prescription {
	return entity.Prescription{
		ID:             id,
		DatePrescribed: mustDate("2024-03-05"),
		Dosage:         10,
		Duration:       7,
		DrugID:         drugID,
		DoctorID:       doctorID,
		PatientID:      patientID,
	}
}

func visitEntity(patientID, doctorID, date string) entity.Visit {
	return entity.Visit{
		PatientID:   patientID,
		DoctorID:    doctorID,
		DateOfVisit: mustDate(date),
		Symptoms:    "headache",
		Diagnosis:   "migraine",
	}
}

// The fakes below implement the domain repository interfaces over maps. A
// non-nil err makes every call fail, simulating a storage fault.

type fakeDoctorRepo struct {
	doctors map[string]entity.Doctor
	err     error
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]entity.Doctor)}
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	var doctors []entity.Doctor
	for _, d := range f.doctors {
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.doctors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.doctors {
		if d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByFullName(ctx context.Context, db *gorm.DB, fullName string) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.doctors {
		if d.FullName() == fullName {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.doctors[doctor.ID] = *doctor
	return 1, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.doctors[doctor.ID]; !ok {
		return 0, nil
	}
	f.doctors[doctor.ID] = *doctor
	return 1, nil
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.doctors[id]; !ok {
		return 0, nil
	}
	delete(f.doctors, id)
	return 1, nil
}

type fakeDrugRepo struct {
	drugs map[string]entity.Drug
	err   error
}

func newFakeDrugRepo() *fakeDrugRepo {
	return &fakeDrugRepo{drugs: make(map[string]entity.Drug)}
}

func (f *fakeDrugRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Drug, error) {
	if f.err != nil {
		return nil, f.err
	}
	var drugs []entity.Drug
	for _, d := range f.drugs {
		drugs = append(drugs, d)
	}
	return drugs, nil
}

func (f *fakeDrugRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Drug, error) {
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.drugs[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (f *fakeDrugRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Drug, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.drugs {
		if d.DrugName == name {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDrugRepo) Create(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.drugs[drug.ID] = *drug
	return 1, nil
}

func (f *fakeDrugRepo) Update(ctx context.Context, db *gorm.DB, drug *entity.Drug) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.drugs[drug.ID]; !ok {
		return 0, nil
	}
	f.drugs[drug.ID] = *drug
	return 1, nil
}

func (f *fakeDrugRepo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.drugs[id]; !ok {
		return 0, nil
	}
	delete(f.drugs, id)
	return 1, nil
}

type fakeInsuranceRepo struct {
	insurances map[string]entity.Insurance
	err        error
}

func newFakeInsuranceRepo() *fakeInsuranceRepo {
	return &fakeInsuranceRepo{insurances: make(map[string]entity.Insurance)}
}

func (f *fakeInsuranceRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Insurance, error) {
	if f.err != nil {
		return nil, f.err
	}
	var insurances []entity.Insurance
	for _, i := range f.insurances {
		insurances = append(insurances, i)
	}
	return insurances, nil
}

func (f *fakeInsuranceRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Insurance, error) {
	if f.err != nil {
		return nil, f.err
	}
	if i, ok := f.insurances[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (f *fakeInsuranceRepo) FindByCompany(ctx context.Context, db *gorm.DB, company string) (*entity.Insurance, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, i := range f.insurances {
		if i.Company == company {
			i := i
			return &i, nil
		}
	}
	return nil, nil
}

func (f *fakeInsuranceRepo) Create(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.insurances[insurance.ID] = *insurance
	return 1, nil
}

func (f *fakeInsuranceRepo) Update(ctx context.Context, db *gorm.DB, insurance *entity.Insurance) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.insurances[insurance.ID]; !ok {
		return 0, nil
	}
	f.insurances[insurance.ID] = *insurance
	return 1, nil
}

func (f *fakeInsuranceRepo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.insurances[id]; !ok {
		return 0, nil
	}
	delete(f.insurances, id)
	return 1, nil
}

type fakePatientRepo struct {
	patients map[string]entity.Patient
	err      error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]entity.Patient)}
}

func (f *fakePatientRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	var patients []entity.Patient
	for _, p := range f.patients {
		patients = append(patients, p)
	}
	return patients, nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.patients {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByFullName(ctx context.Context, db *gorm.DB, fullName string) (*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.patients {
		if p.FullName() == fullName {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) CountByInsuranceID(ctx context.Context, db *gorm.DB, insuranceID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, p := range f.patients {
		if p.InsuranceID == insuranceID {
			count++
		}
	}
	return count, nil
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.patients[patient.ID] = *patient
	return 1, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.patients[patient.ID]; !ok {
		return 0, nil
	}
	f.patients[patient.ID] = *patient
	return 1, nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.patients[id]; !ok {
		return 0, nil
	}
	delete(f.patients, id)
	return 1, nil
}

type fakePrescriptionRepo struct {
	prescriptions map[string]entity.Prescription
	err           error
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[string]entity.Prescription)}
}

func (f *fakePrescriptionRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error) {
	if f.err != nil {
		return nil, f.err
	}
	var prescriptions []entity.Prescription
	for _, p := range f.prescriptions {
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, nil
}

func (f *fakePrescriptionRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.Prescription, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.prescriptions[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePrescriptionRepo) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, p := range f.prescriptions {
		if p.DoctorID == doctorID {
			count++
		}
	}
	return count, nil
}

func (f *fakePrescriptionRepo) CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, p := range f.prescriptions {
		if p.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (f *fakePrescriptionRepo) CountByDrugID(ctx context.Context, db *gorm.DB, drugID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, p := range f.prescriptions {
		if p.DrugID == drugID {
			count++
		}
	}
	return count, nil
}

func (f *fakePrescriptionRepo) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.prescriptions[prescription.ID] = *prescription
	return 1, nil
}

func (f *fakePrescriptionRepo) Update(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.prescriptions[prescription.ID]; !ok {
		return 0, nil
	}
	f.prescriptions[prescription.ID] = *prescription
	return 1, nil
}

func (f *fakePrescriptionRepo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.prescriptions[id]; !ok {
		return 0, nil
	}
	delete(f.prescriptions, id)
	return 1, nil
}

type fakeVisitRepo struct {
	visits map[entity.VisitKey]entity.Visit
	err    error
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{visits: make(map[entity.VisitKey]entity.Visit)}
}

func visitKeyOf(v *entity.Visit) entity.VisitKey {
	return entity.VisitKey{PatientID: v.PatientID, DoctorID: v.DoctorID, DateOfVisit: v.DateOfVisit}
}

func (f *fakeVisitRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Visit, error) {
	if f.err != nil {
		return nil, f.err
	}
	var visits []entity.Visit
	for _, v := range f.visits {
		visits = append(visits, v)
	}
	return visits, nil
}

func (f *fakeVisitRepo) FindByKey(ctx context.Context, db *gorm.DB, key entity.VisitKey) (*entity.Visit, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.visits[key]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeVisitRepo) CountByDoctorID(ctx context.Context, db *gorm.DB, doctorID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, v := range f.visits {
		if v.DoctorID == doctorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeVisitRepo) CountByPatientID(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, v := range f.visits {
		if v.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (f *fakeVisitRepo) MainDoctorID(ctx context.Context, db *gorm.DB, patientID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	counts := make(map[string]int)
	for _, v := range f.visits {
		if v.PatientID == patientID {
			counts[v.DoctorID]++
		}
	}
	var best string
	var bestCount int
	for doctorID, count := range counts {
		if count > bestCount {
			best, bestCount = doctorID, count
		}
	}
	return best, nil
}

func (f *fakeVisitRepo) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.visits[visitKeyOf(visit)] = *visit
	return 1, nil
}

func (f *fakeVisitRepo) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	key := visitKeyOf(visit)
	existing, ok := f.visits[key]
	if !ok {
		return 0, nil
	}
	existing.Symptoms = visit.Symptoms
	existing.Diagnosis = visit.Diagnosis
	f.visits[key] = existing
	return 1, nil
}

func (f *fakeVisitRepo) Delete(ctx context.Context, db *gorm.DB, key entity.VisitKey) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.visits[key]; !ok {
		return 0, nil
	}
	delete(f.visits, key)
	return 1, nil
}
