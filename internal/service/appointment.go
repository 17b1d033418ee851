package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
	"clinicbook/internal/repository"
	"clinicbook/pkg/validator"
)

type AppointmentServiceImpl struct {
	repo         repository.AppointmentRepository
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	availability AvailabilityService
	location     *time.Location
	logger       *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	availability AvailabilityService,
	clinic config.ClinicConfig,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	location, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		location = time.Local
	}

	return &AppointmentServiceImpl{
		repo:         repo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		availability: availability,
		location:     location,
		logger:       logger,
	}
}

func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error) {
	dto.PatientName = validator.SanitizeString(dto.PatientName)
	dto.Notes = validator.SanitizeString(dto.Notes)

	if !validator.ValidateName(dto.PatientName) {
		return nil, fmt.Errorf("%w: patient name is required", domain.ErrValidation)
	}
	if !validator.ValidatePhone(dto.Phone) {
		return nil, fmt.Errorf("%w: valid patient phone is required", domain.ErrValidation)
	}
	if dto.Email != "" && !validator.ValidateEmail(dto.Email) {
		return nil, fmt.Errorf("%w: invalid patient email", domain.ErrValidation)
	}
	if dto.Age != nil && !validator.ValidateAge(*dto.Age) {
		return nil, fmt.Errorf("%w: age must be between 1 and 120", domain.ErrValidation)
	}

	date, clock, err := s.splitDatetime(dto.AppointmentDatetime)
	if err != nil {
		return nil, err
	}

	doctor, err := s.resolveDoctor(ctx, dto)
	if err != nil {
		return nil, err
	}

	if doctor != nil {
		available, err := s.slotAvailable(ctx, doctor.ID, date, clock)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, domain.ErrSlotTaken
		}
	}

	patientID, err := s.upsertPatient(ctx, dto)
	if err != nil {
		// Patient bookkeeping must not block the booking itself.
		s.logger.Warn("failed to upsert patient record", zap.Error(err))
		patientID = nil
	}

	appointment := domain.Appointment{
		PatientID:      patientID,
		PatientName:    validator.FormatName(dto.PatientName),
		PatientPhone:   dto.Phone,
		PatientAge:     dto.Age,
		PatientGender:  dto.Gender,
		Specialization: dto.Service,
		Date:           date,
		Time:           clock,
		Status:         domain.AppointmentStatusPending,
		BookingSource:  dto.BookingSource,
		Notes:          dto.Notes,
	}
	if dto.Email != "" {
		appointment.PatientEmail = &dto.Email
	}
	if appointment.BookingSource == "" {
		appointment.BookingSource = "website"
	}
	if doctor != nil {
		appointment.DoctorID = &doctor.ID
		appointment.DoctorName = doctor.Name
	}

	id, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error("failed to create appointment", zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info("appointment created",
		zap.Int64("id", id),
		zap.String("date", date),
		zap.String("time", clock),
		zap.String("specialization", dto.Service),
	)

	confirmation := &domain.BookingConfirmation{
		Token:          fmt.Sprintf("APT%06d", id),
		Date:           date,
		Time:           clock,
		Specialization: dto.Service,
		PatientName:    appointment.PatientName,
	}
	if doctor != nil {
		confirmation.Doctor = doctor.Name
	}

	return confirmation, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get appointment", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !validTransition(appointment.Status, status) {
		return domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update appointment status", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, domain.AppointmentStatusCancelled)
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list appointments", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, total, nil
}

// splitDatetime converts the RFC 3339 booking datetime into clinic-local
// date and time columns.
func (s *AppointmentServiceImpl) splitDatetime(value string) (string, string, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", "", domain.ErrInvalidDatetime
	}

	local := parsed.In(s.location)
	if local.Weekday() == time.Sunday {
		return "", "", domain.ErrClinicClosed
	}

	return local.Format("2006-01-02"), local.Format(clockLayout), nil
}

// resolveDoctor looks the doctor up by id, falling back to exact name match.
// A booking without a resolvable doctor is still accepted; the clinic assigns
// one manually.
func (s *AppointmentServiceImpl) resolveDoctor(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Doctor, error) {
	if dto.DoctorID != nil {
		doctor, err := s.doctorRepo.GetByID(ctx, *dto.DoctorID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrDoctorNotFound
			}
			return nil, err
		}
		return doctor, nil
	}

	if dto.Doctor == "" {
		return nil, nil
	}

	doctor, err := s.doctorRepo.GetByName(ctx, dto.Doctor)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return doctor, nil
}

func (s *AppointmentServiceImpl) slotAvailable(ctx context.Context, doctorID int64, date, clock string) (bool, error) {
	slots, err := s.availability.GetDailySlots(ctx, doctorID, date)
	if err != nil {
		return false, err
	}

	for _, slot := range slots {
		if slot.Time == clock {
			return slot.Available, nil
		}
	}

	return false, nil
}

func (s *AppointmentServiceImpl) upsertPatient(ctx context.Context, dto domain.CreateAppointmentDTO) (*int64, error) {
	upsert := domain.UpsertPatientDTO{
		Name:   validator.FormatName(dto.PatientName),
		Phone:  dto.Phone,
		Age:    dto.Age,
		Gender: dto.Gender,
	}
	if dto.Email != "" {
		upsert.Email = &dto.Email
	}

	var patient *domain.Patient
	var err error

	if dto.Email != "" {
		patient, err = s.patientRepo.GetByEmail(ctx, dto.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if patient == nil {
		patient, err = s.patientRepo.GetByPhone(ctx, dto.Phone)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	if patient == nil {
		id, err := s.patientRepo.Create(ctx, upsert)
		if err == nil {
			return &id, nil
		}
		if !errors.Is(err, domain.ErrDuplicateRecord) {
			return nil, err
		}

		// A concurrent booking inserted the same patient between our lookup
		// and the insert; fall back to updating that row.
		if dto.Email != "" {
			patient, err = s.patientRepo.GetByEmail(ctx, dto.Email)
		} else {
			patient, err = s.patientRepo.GetByPhone(ctx, dto.Phone)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.patientRepo.Update(ctx, patient.ID, upsert); err != nil {
		return nil, err
	}

	return &patient.ID, nil
}

func validTransition(from, to domain.AppointmentStatus) bool {
	if from == to {
		return true
	}

	switch from {
	case domain.AppointmentStatusPending:
		return to == domain.AppointmentStatusConfirmed ||
			to == domain.AppointmentStatusCompleted ||
			to == domain.AppointmentStatusCancelled
	case domain.AppointmentStatusConfirmed:
		return to == domain.AppointmentStatusCompleted ||
			to == domain.AppointmentStatusCancelled
	}

	// Completed and cancelled are terminal.
	return false
}
