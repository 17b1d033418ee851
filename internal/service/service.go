package service

import (
	"context"

	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	Specialization SpecializationService
	Doctor         DoctorService
	Availability   AvailabilityService
	Appointment    AppointmentService
	Patient        PatientService
}

func NewServices(deps Deps) (*Services, error) {
	availability, err := NewAvailabilityService(deps.Repos.Appointment, deps.Repos.Doctor, deps.Config.Clinic, deps.Logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Specialization: NewSpecializationService(deps.Repos.Specialization, deps.Logger),
		Doctor:         NewDoctorService(deps.Repos.Doctor, deps.Repos.Specialization, deps.Logger),
		Availability:   availability,
		Appointment:    NewAppointmentService(deps.Repos.Appointment, deps.Repos.Doctor, deps.Repos.Patient, availability, deps.Config.Clinic, deps.Logger),
		Patient:        NewPatientService(deps.Repos.Patient, deps.Logger),
	}, nil
}

type SpecializationService interface {
	Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialization, error)
	Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.SpecializationFilter) ([]domain.Specialization, int, error)
}

type DoctorService interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error)
}

type AvailabilityService interface {
	GetDailySlots(ctx context.Context, doctorID int64, date string) ([]domain.TimeSlot, error)
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
}

type PatientService interface {
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}
