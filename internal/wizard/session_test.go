package wizard

import (
	"testing"

	"clinicbook/internal/domain"
)

func sessionAtReview() *Session {
	s := &Session{ID: "s1", Step: StepService}
	s.SetService(1, "Orthodontics")
	s.SetDoctor(domain.Doctor{ID: 7, Name: "Dr. Mehta", IsActive: true})
	s.SetDate("2026-09-07")
	s.ApplySlots(s.SlotRevision, []string{"10:00 AM", "11:00 AM"})
	s.Time = "10:00 AM"
	s.Patient = PatientDetails{
		FullName: "Jane Doe",
		Phone:    "9876543210",
		Email:    "jane@example.com",
		Age:      30,
		Gender:   "Female",
	}
	s.Step = StepReview
	return s
}

func TestServiceChangeClearsDownstream(t *testing.T) {
	s := sessionAtReview()

	s.SetService(2, "Endodontics")

	if s.DoctorID != nil || s.DoctorName != "" || s.Doctor != nil {
		t.Fatalf("doctor not cleared: %+v", s)
	}
	if s.Date != "" || s.Time != "" || s.Slots != nil {
		t.Fatalf("date/time not cleared: %+v", s)
	}
}

func TestReselectingSameServiceKeepsDownstream(t *testing.T) {
	s := sessionAtReview()

	s.SetService(1, "Orthodontics")

	if s.DoctorID == nil || s.Date == "" || s.Time == "" {
		t.Fatalf("same-service reselect should preserve selections: %+v", s)
	}
}

func TestDoctorChangeClearsDateAndTime(t *testing.T) {
	s := sessionAtReview()

	s.SetDoctor(domain.Doctor{ID: 8, Name: "Dr. Rao", IsActive: true})

	if s.Date != "" || s.Time != "" || s.Slots != nil {
		t.Fatalf("date/time not cleared after doctor change: %+v", s)
	}
}

func TestDateChangeClearsTime(t *testing.T) {
	s := sessionAtReview()

	s.SetDate("2026-09-08")

	if s.Time != "" {
		t.Fatalf("time not cleared after date change: %q", s.Time)
	}
	if s.Slots != nil {
		t.Fatal("stale slots kept after date change")
	}
}

func TestCanAdvanceGates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Session)
		want   bool
	}{
		{"complete details", func(s *Session) {}, true},
		{"empty service", func(s *Session) { s.Step = StepService; s.Service = "" }, false},
		{"no doctor", func(s *Session) { s.Step = StepDoctor; s.DoctorID = nil }, false},
		{"no time", func(s *Session) { s.Step = StepDate; s.Time = "" }, false},
		{"blank name", func(s *Session) { s.Step = StepDetails; s.Patient.FullName = "  " }, false},
		{"short phone", func(s *Session) { s.Step = StepDetails; s.Patient.Phone = "12345" }, false},
		{"bad email", func(s *Session) { s.Step = StepDetails; s.Patient.Email = "jane@nodot" }, false},
		{"age out of range", func(s *Session) { s.Step = StepDetails; s.Patient.Age = 0 }, false},
		{"no gender", func(s *Session) { s.Step = StepDetails; s.Patient.Gender = "" }, false},
		{"valid details", func(s *Session) { s.Step = StepDetails }, true},
		{"review always passes", func(s *Session) { s.Step = StepReview }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sessionAtReview()
			tt.mutate(s)
			if got := s.CanAdvance(); got != tt.want {
				t.Fatalf("CanAdvance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceBlockedIsNoOp(t *testing.T) {
	s := &Session{Step: StepService}

	if s.Advance() {
		t.Fatal("advance should fail with no service selected")
	}
	if s.Step != StepService {
		t.Fatalf("step moved despite blocked gate: %v", s.Step)
	}
}

func TestRetreatPreservesSelections(t *testing.T) {
	s := sessionAtReview()

	s.Retreat()
	s.Retreat()

	if s.Step != StepDate {
		t.Fatalf("unexpected step after two retreats: %v", s.Step)
	}
	if s.Date == "" || s.Time == "" || s.Patient.FullName == "" {
		t.Fatalf("retreat cleared selections: %+v", s)
	}

	// Walking forward again reuses intact selections.
	if !s.Advance() || !s.Advance() {
		t.Fatal("expected to re-advance through intact steps")
	}
	if s.Step != StepReview {
		t.Fatalf("unexpected step after re-advancing: %v", s.Step)
	}
}

func TestRetreatFloorsAtFirstStep(t *testing.T) {
	s := &Session{Step: StepService}
	if s.Retreat() {
		t.Fatal("retreat from the first step should be a no-op")
	}
}

func TestApplySlotsDiscardsStaleRevision(t *testing.T) {
	s := &Session{SlotRevision: 2}

	if s.ApplySlots(1, []string{"9:00 AM"}) {
		t.Fatal("stale revision applied")
	}
	if s.Slots != nil {
		t.Fatalf("stale slots installed: %v", s.Slots)
	}

	if !s.ApplySlots(2, []string{"10:00 AM"}) {
		t.Fatal("current revision rejected")
	}
	if len(s.Slots) != 1 || s.Slots[0] != "10:00 AM" {
		t.Fatalf("unexpected slots: %v", s.Slots)
	}
}

func TestNormalizeStripsMarkupFromName(t *testing.T) {
	details := PatientDetails{
		FullName: `  jane; "doe"  `,
		Phone:    " 9876543210 ",
		Email:    " jane@example.com ",
		Gender:   " Female ",
	}.Normalize()

	if details.FullName != "jane doe" {
		t.Fatalf("unexpected name: %q", details.FullName)
	}
	if details.Phone != "9876543210" || details.Email != "jane@example.com" || details.Gender != "Female" {
		t.Fatalf("fields not trimmed: %+v", details)
	}
}
