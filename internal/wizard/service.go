package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
	"clinicbook/pkg/timefmt"
	"clinicbook/pkg/validator"
)

var (
	ErrUnknownService   = errors.New("unknown service category")
	ErrUnknownDoctor    = errors.New("unknown doctor")
	ErrDoctorRequired   = errors.New("doctor must be selected before a date")
	ErrPastDate         = errors.New("date is before today")
	ErrSlotUnavailable  = errors.New("time slot is not available")
	ErrInvalidPatient   = errors.New("invalid patient details")
	ErrNotReadyToSubmit = errors.New("session is not ready for submission")
)

// ClinicAPI is the slice of the clinic backend the wizard consumes.
type ClinicAPI interface {
	ListSpecializations(ctx context.Context) ([]domain.Specialization, error)
	ListDoctors(ctx context.Context, specializationID *int64) ([]domain.Doctor, error)
	GetAvailability(ctx context.Context, doctorID int64, date string) ([]domain.TimeSlot, error)
	CreateAppointment(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error)
}

// SubmissionResult is the terminal payload after a confirmed booking.
type SubmissionResult struct {
	Token    string `json:"token"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Doctor   string `json:"doctor,omitempty"`
	ChatLink string `json:"chat_link,omitempty"`
}

// Service drives wizard sessions: directory lookups, availability resolution,
// step transitions and the final submission.
type Service struct {
	api      ClinicAPI
	store    Store
	clinic   config.ClinicConfig
	location *time.Location
	logger   *zap.Logger

	// now is swappable in tests for the today/past-slot rules.
	now func() time.Time
}

func NewService(api ClinicAPI, store Store, clinic config.ClinicConfig, logger *zap.Logger) (*Service, error) {
	location, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load clinic timezone %q: %w", clinic.Timezone, err)
	}

	return &Service{
		api:      api,
		store:    store,
		clinic:   clinic,
		location: location,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// StartSession creates a fresh draft on the service step.
func (s *Service) StartSession(ctx context.Context) (*Session, error) {
	now := s.now().In(s.location)
	session := &Session{
		ID:        uuid.NewString(),
		Step:      StepService,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("wizard session started", zap.String("session_id", session.ID))
	return session, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// ListServices returns the active categories for the service step. Directory
// failures degrade to an empty list so the flow still renders.
func (s *Service) ListServices(ctx context.Context) []domain.Specialization {
	specializations, err := s.api.ListSpecializations(ctx)
	if err != nil {
		s.logger.Warn("failed to list service categories", zap.Error(err))
		return []domain.Specialization{}
	}

	active := make([]domain.Specialization, 0, len(specializations))
	for _, sp := range specializations {
		if sp.IsActive {
			active = append(active, sp)
		}
	}
	return active
}

// ListDoctors returns the active doctors for the session's chosen category,
// degrading to an empty list on directory failure.
func (s *Service) ListDoctors(ctx context.Context, session *Session) []domain.Doctor {
	if session.SpecializationID == nil {
		return []domain.Doctor{}
	}
	return s.activeDoctors(ctx, *session.SpecializationID)
}

// SelectService records the category and applies the doctor resolution
// policy: one active doctor is auto-assigned with a jump to the date step,
// zero or many land on the doctor step.
func (s *Service) SelectService(ctx context.Context, sessionID string, specializationID int64) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	specializations, err := s.api.ListSpecializations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service category: %w", err)
	}

	var chosen *domain.Specialization
	for i := range specializations {
		if specializations[i].ID == specializationID && specializations[i].IsActive {
			chosen = &specializations[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrUnknownService
	}

	session.SetService(chosen.ID, chosen.Name)

	doctors := s.activeDoctors(ctx, chosen.ID)
	if len(doctors) == 1 {
		session.SetDoctor(doctors[0])
		session.Step = StepDate
	} else {
		session.Step = StepDoctor
	}

	return s.save(ctx, session)
}

// SelectDoctor records an explicit doctor choice on the doctor step.
func (s *Service) SelectDoctor(ctx context.Context, sessionID string, doctorID int64) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SpecializationID == nil {
		return nil, ErrUnknownService
	}

	doctors := s.activeDoctors(ctx, *session.SpecializationID)
	var chosen *domain.Doctor
	for i := range doctors {
		if doctors[i].ID == doctorID {
			chosen = &doctors[i]
			break
		}
	}
	if chosen == nil {
		return nil, ErrUnknownDoctor
	}

	session.SetDoctor(*chosen)
	return s.save(ctx, session)
}

// SelectDate records the day and resolves its slot grid. The resolution is
// tagged with a revision; if the session's date changed while resolving, the
// result is discarded so the newest selection wins.
func (s *Service) SelectDate(ctx context.Context, sessionID, date string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.DoctorID == nil {
		return nil, ErrDoctorRequired
	}

	day, err := timefmt.ParseDate(date, s.location)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	today := s.today()
	if day.Before(today) {
		return nil, ErrPastDate
	}

	session.SetDate(date)
	session.SlotRevision++
	revision := session.SlotRevision
	doctorID := *session.DoctorID

	if _, err := s.save(ctx, session); err != nil {
		return nil, err
	}

	slots := s.resolveSlots(ctx, doctorID, day)

	// Reload: a newer date selection may have superseded this resolution.
	session, err = s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ApplySlots(revision, slots) {
		return session, nil
	}

	return s.save(ctx, session)
}

// SelectTime records a display slot; it must be in the last resolved grid.
func (s *Service) SelectTime(ctx context.Context, sessionID, display string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.HasSlot(display) {
		return nil, ErrSlotUnavailable
	}

	session.Time = display
	return s.save(ctx, session)
}

// SetPatient records the contact details for the details step.
func (s *Service) SetPatient(ctx context.Context, sessionID string, details PatientDetails) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	details = details.Normalize()
	switch {
	case !validator.ValidateName(details.FullName):
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidPatient)
	case !validator.ValidatePhone(details.Phone):
		return nil, fmt.Errorf("%w: phone must have at least 10 digits", ErrInvalidPatient)
	case !validator.ValidateEmail(details.Email):
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidPatient)
	case !validator.ValidateAge(details.Age):
		return nil, fmt.Errorf("%w: age must be between 1 and 120", ErrInvalidPatient)
	case !validator.ValidateGender(details.Gender):
		return nil, fmt.Errorf("%w: gender is required", ErrInvalidPatient)
	}

	session.Patient = details
	return s.save(ctx, session)
}

// Next advances one step when the current gate passes; a blocked gate is a
// no-op, not an error.
func (s *Service) Next(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Advance()
	return s.save(ctx, session)
}

// Back retreats one step, preserving downstream selections.
func (s *Service) Back(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Retreat()
	return s.save(ctx, session)
}

// Submit books the appointment from the review step. Preconditions are
// re-checked here even though the gates should have enforced them already.
func (s *Service) Submit(ctx context.Context, sessionID string) (*SubmissionResult, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != StepReview {
		return nil, ErrNotReadyToSubmit
	}
	if session.Date == "" || session.Time == "" {
		return nil, ErrNotReadyToSubmit
	}
	if !session.detailsValid() {
		return nil, ErrNotReadyToSubmit
	}

	day, err := timefmt.ParseDate(session.Date, s.location)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	at, err := timefmt.CombineDateTime(day, session.Time)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}

	age := session.Patient.Age
	dto := domain.CreateAppointmentDTO{
		PatientName:         session.Patient.FullName,
		Phone:               session.Patient.Phone,
		Email:               session.Patient.Email,
		Age:                 &age,
		Gender:              session.Patient.Gender,
		Service:             session.Service,
		Doctor:              session.DoctorName,
		DoctorID:            session.DoctorID,
		AppointmentDatetime: at.Format(time.RFC3339),
		BookingSource:       "website",
	}

	confirmation, err := s.api.CreateAppointment(ctx, dto)
	if err != nil {
		s.logger.Warn("booking submission failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	session.Confirmation = confirmation
	session.Step = StepConfirmed
	if _, err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("booking confirmed",
		zap.String("session_id", sessionID),
		zap.String("token", confirmation.Token),
	)

	return &SubmissionResult{
		Token:    confirmation.Token,
		Date:     confirmation.Date,
		Time:     confirmation.Time,
		Doctor:   confirmation.Doctor,
		ChatLink: s.chatLink(confirmation.Token),
	}, nil
}

// resolveSlots builds the display grid for one doctor+day. Any fetch failure
// degrades to an empty grid; Sundays are closed regardless of the backend.
func (s *Service) resolveSlots(ctx context.Context, doctorID int64, day time.Time) []string {
	if day.Weekday() == time.Sunday {
		return []string{}
	}

	raw, err := s.api.GetAvailability(ctx, doctorID, timefmt.FormatDate(day))
	if err != nil {
		s.logger.Warn("availability fetch failed",
			zap.Int64("doctor_id", doctorID),
			zap.String("date", timefmt.FormatDate(day)),
			zap.Error(err),
		)
		return []string{}
	}

	now := s.now().In(s.location)
	isToday := timefmt.FormatDate(day) == timefmt.FormatDate(now)

	slots := make([]string, 0, len(raw))
	for _, slot := range raw {
		if !slot.Available {
			continue
		}
		display, err := timefmt.To12Hour(slot.Time)
		if err != nil {
			continue
		}
		if isToday {
			at, err := timefmt.CombineDateTime(day, display)
			if err != nil || !at.After(now) {
				continue
			}
		}
		slots = append(slots, display)
	}
	return slots
}

func (s *Service) activeDoctors(ctx context.Context, specializationID int64) []domain.Doctor {
	doctors, err := s.api.ListDoctors(ctx, &specializationID)
	if err != nil {
		s.logger.Warn("failed to list doctors",
			zap.Int64("specialization_id", specializationID),
			zap.Error(err),
		)
		return []domain.Doctor{}
	}

	// Filter defensively even though the backend pre-filters.
	active := make([]domain.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if d.IsActive {
			active = append(active, d)
		}
	}
	return active
}

func (s *Service) save(ctx context.Context, session *Session) (*Session, error) {
	session.UpdatedAt = s.now().In(s.location)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

func (s *Service) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

func (s *Service) chatLink(token string) string {
	if s.clinic.ChatBotLink == "" {
		return ""
	}
	return fmt.Sprintf("%s?start=%s", s.clinic.ChatBotLink, token)
}
