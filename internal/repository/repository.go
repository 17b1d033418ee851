package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinicbook/internal/domain"
)

// Querier abstracts the pgx query interface for testing.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Specialization SpecializationRepository
	Doctor         DoctorRepository
	Appointment    AppointmentRepository
	Patient        PatientRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Specialization: NewSpecializationRepository(db),
		Doctor:         NewDoctorRepository(db),
		Appointment:    NewAppointmentRepository(db),
		Patient:        NewPatientRepository(db),
	}
}

type SpecializationRepository interface {
	Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialization, error)
	Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.SpecializationFilter) ([]domain.Specialization, int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, dto domain.CreateDoctorDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	GetByName(ctx context.Context, name string) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, dto domain.UpdateDoctorDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.DoctorFilter) ([]domain.Doctor, int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	GetBookedTimes(ctx context.Context, doctorID int64, date string) ([]string, error)
}

type PatientRepository interface {
	Create(ctx context.Context, dto domain.UpsertPatientDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Patient, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Patient, error)
	Update(ctx context.Context, id int64, dto domain.UpsertPatientDTO) error
	List(ctx context.Context, filter domain.PatientFilter) ([]domain.Patient, int, error)
}
