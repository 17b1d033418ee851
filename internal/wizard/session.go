package wizard

import (
	"strings"
	"time"

	"clinicbook/internal/domain"
	"clinicbook/pkg/validator"
)

type Step int

const (
	StepService Step = 1
	StepDoctor  Step = 2
	StepDate    Step = 3
	StepDetails Step = 4
	StepReview  Step = 5

	// StepConfirmed is the terminal state after a successful submission.
	StepConfirmed Step = 6
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepDoctor:
		return "doctor"
	case StepDate:
		return "date_time"
	case StepDetails:
		return "contact_details"
	case StepReview:
		return "review"
	case StepConfirmed:
		return "confirmed"
	}
	return "unknown"
}

type PatientDetails struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// Session is the draft booking record for one wizard run. It is exclusively
// owned by its session id; there are no concurrent writers.
type Session struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	Service          string `json:"service"`
	SpecializationID *int64 `json:"specialization_id,omitempty"`

	DoctorID   *int64         `json:"doctor_id,omitempty"`
	DoctorName string         `json:"doctor_name,omitempty"`
	Doctor     *domain.Doctor `json:"doctor,omitempty"`

	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	// Slots is the last resolved display grid for Date; SlotRevision guards
	// against a slower, older resolution overwriting a newer one.
	Slots        []string `json:"slots,omitempty"`
	SlotRevision int64    `json:"slot_revision"`

	Patient PatientDetails `json:"patient"`

	Confirmation *domain.BookingConfirmation `json:"confirmation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanAdvance reports whether the current step's required fields are complete.
func (s *Session) CanAdvance() bool {
	switch s.Step {
	case StepService:
		return s.Service != ""
	case StepDoctor:
		return s.DoctorID != nil
	case StepDate:
		return s.Date != "" && s.Time != ""
	case StepDetails:
		return s.detailsValid()
	case StepReview:
		return true
	}
	return false
}

func (s *Session) detailsValid() bool {
	return validator.ValidateName(s.Patient.FullName) &&
		validator.ValidatePhone(s.Patient.Phone) &&
		validator.ValidateEmail(s.Patient.Email) &&
		validator.ValidateAge(s.Patient.Age) &&
		validator.ValidateGender(s.Patient.Gender)
}

// Advance moves forward one step when the gate passes, capped at the review
// step. Submission past review is handled separately.
func (s *Session) Advance() bool {
	if s.Step >= StepReview || s.Step == StepConfirmed {
		return false
	}
	if !s.CanAdvance() {
		return false
	}
	s.Step++
	return true
}

// Retreat moves back one step, floored at the first. Downstream selections
// are preserved; only changing a value clears dependents.
func (s *Session) Retreat() bool {
	if s.Step <= StepService || s.Step == StepConfirmed {
		return false
	}
	s.Step--
	return true
}

// SetService records the chosen category and clears everything downstream.
func (s *Session) SetService(specializationID int64, name string) {
	if s.SpecializationID != nil && *s.SpecializationID == specializationID {
		return
	}
	s.Service = name
	s.SpecializationID = &specializationID
	s.clearDoctor()
}

// SetDoctor records the chosen practitioner and clears date, time and slots.
func (s *Session) SetDoctor(doctor domain.Doctor) {
	if s.DoctorID != nil && *s.DoctorID == doctor.ID {
		return
	}
	id := doctor.ID
	snapshot := doctor
	s.DoctorID = &id
	s.DoctorName = doctor.Name
	s.Doctor = &snapshot
	s.clearDate()
}

// SetDate records the chosen day and clears the selected time. The slot grid
// is replaced separately by ApplySlots once resolution completes.
func (s *Session) SetDate(date string) {
	if s.Date == date {
		return
	}
	s.Date = date
	s.Time = ""
	s.Slots = nil
}

// ApplySlots installs a resolved slot grid if revision still matches the
// session's current one. A stale resolution is discarded.
func (s *Session) ApplySlots(revision int64, slots []string) bool {
	if revision != s.SlotRevision {
		return false
	}
	s.Slots = slots
	return true
}

// HasSlot reports whether display is in the last resolved grid.
func (s *Session) HasSlot(display string) bool {
	for _, slot := range s.Slots {
		if slot == display {
			return true
		}
	}
	return false
}

func (s *Session) clearDoctor() {
	s.DoctorID = nil
	s.DoctorName = ""
	s.Doctor = nil
	s.clearDate()
}

func (s *Session) clearDate() {
	s.Date = ""
	s.Time = ""
	s.Slots = nil
}

// Normalize trims the contact fields and strips markup characters before
// validation.
func (p PatientDetails) Normalize() PatientDetails {
	p.FullName = strings.TrimSpace(validator.SanitizeString(p.FullName))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Gender = strings.TrimSpace(p.Gender)
	return p
}
