package service

import (
	"context"

	"clinicbook/internal/domain"
)

// Stub bases so per-test stubs only override the methods they exercise.

type SpecializationRepositoryStub struct{}

func (SpecializationRepositoryStub) Create(context.Context, domain.CreateSpecializationDTO) (int64, error) {
	return 0, domain.ErrNotFound
}
func (SpecializationRepositoryStub) GetByID(context.Context, int64) (*domain.Specialization, error) {
	return nil, domain.ErrNotFound
}
func (SpecializationRepositoryStub) Update(context.Context, int64, domain.UpdateSpecializationDTO) error {
	return domain.ErrNotFound
}
func (SpecializationRepositoryStub) Delete(context.Context, int64) error {
	return domain.ErrNotFound
}
func (SpecializationRepositoryStub) List(context.Context, domain.SpecializationFilter) ([]domain.Specialization, int, error) {
	return nil, 0, nil
}

type DoctorRepositoryStub struct{}

func (DoctorRepositoryStub) Create(context.Context, domain.CreateDoctorDTO) (int64, error) {
	return 0, domain.ErrNotFound
}
func (DoctorRepositoryStub) GetByID(context.Context, int64) (*domain.Doctor, error) {
	return nil, domain.ErrNotFound
}
func (DoctorRepositoryStub) GetByName(context.Context, string) (*domain.Doctor, error) {
	return nil, domain.ErrNotFound
}
func (DoctorRepositoryStub) Update(context.Context, int64, domain.UpdateDoctorDTO) error {
	return domain.ErrNotFound
}
func (DoctorRepositoryStub) Delete(context.Context, int64) error {
	return domain.ErrNotFound
}
func (DoctorRepositoryStub) List(context.Context, domain.DoctorFilter) ([]domain.Doctor, int, error) {
	return nil, 0, nil
}

type AppointmentRepositoryStub struct{}

func (AppointmentRepositoryStub) Create(context.Context, domain.Appointment) (int64, error) {
	return 0, domain.ErrNotFound
}
func (AppointmentRepositoryStub) GetByID(context.Context, int64) (*domain.Appointment, error) {
	return nil, domain.ErrNotFound
}
func (AppointmentRepositoryStub) UpdateStatus(context.Context, int64, domain.AppointmentStatus) error {
	return domain.ErrNotFound
}
func (AppointmentRepositoryStub) List(context.Context, domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	return nil, 0, nil
}
func (AppointmentRepositoryStub) GetBookedTimes(context.Context, int64, string) ([]string, error) {
	return nil, nil
}

type PatientRepositoryStub struct{}

func (PatientRepositoryStub) Create(context.Context, domain.UpsertPatientDTO) (int64, error) {
	return 0, domain.ErrNotFound
}
func (PatientRepositoryStub) GetByID(context.Context, int64) (*domain.Patient, error) {
	return nil, domain.ErrNotFound
}
func (PatientRepositoryStub) GetByEmail(context.Context, string) (*domain.Patient, error) {
	return nil, domain.ErrNotFound
}
func (PatientRepositoryStub) GetByPhone(context.Context, string) (*domain.Patient, error) {
	return nil, domain.ErrNotFound
}
func (PatientRepositoryStub) Update(context.Context, int64, domain.UpsertPatientDTO) error {
	return domain.ErrNotFound
}
func (PatientRepositoryStub) List(context.Context, domain.PatientFilter) ([]domain.Patient, int, error) {
	return nil, 0, nil
}
