package wizard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
)

type fakeClinicAPI struct {
	specializations []domain.Specialization
	doctors         []domain.Doctor
	slots           map[string][]domain.TimeSlot
	availabilityErr error

	onAvailability func(doctorID int64, date string)

	bookings []domain.CreateAppointmentDTO
	bookErr  error
}

func (f *fakeClinicAPI) ListSpecializations(context.Context) ([]domain.Specialization, error) {
	return f.specializations, nil
}

func (f *fakeClinicAPI) ListDoctors(_ context.Context, specializationID *int64) ([]domain.Doctor, error) {
	if specializationID == nil {
		return f.doctors, nil
	}
	var out []domain.Doctor
	for _, d := range f.doctors {
		if d.SpecializationID == *specializationID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeClinicAPI) GetAvailability(_ context.Context, doctorID int64, date string) ([]domain.TimeSlot, error) {
	if f.onAvailability != nil {
		hook := f.onAvailability
		f.onAvailability = nil
		hook(doctorID, date)
	}
	if f.availabilityErr != nil {
		return nil, f.availabilityErr
	}
	return f.slots[date], nil
}

func (f *fakeClinicAPI) CreateAppointment(_ context.Context, dto domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.bookings = append(f.bookings, dto)
	return &domain.BookingConfirmation{
		Token:       "APT000042",
		Date:        "2026-09-07",
		Time:        "10:00",
		Doctor:      dto.Doctor,
		PatientName: dto.PatientName,
	}, nil
}

func testClinicConfig() config.ClinicConfig {
	return config.ClinicConfig{
		Timezone:    "Asia/Kolkata",
		ChatBotLink: "https://t.me/Med_ad_bot",
	}
}

func newTestService(t *testing.T, api ClinicAPI) *Service {
	t.Helper()
	svc, err := NewService(api, NewMemoryStore(time.Minute), testClinicConfig(), zap.NewNop())
	require.NoError(t, err)
	// Fixed clock: Wednesday 2026-09-02 10:30 clinic time.
	loc := svc.location
	svc.now = func() time.Time {
		return time.Date(2026, 9, 2, 10, 30, 0, 0, loc)
	}
	return svc
}

func singleDoctorAPI() *fakeClinicAPI {
	return &fakeClinicAPI{
		specializations: []domain.Specialization{
			{ID: 1, Name: "Root Canal Treatment", IsActive: true},
			{ID: 2, Name: "Orthodontics", IsActive: true},
		},
		doctors: []domain.Doctor{
			{ID: 7, Name: "Dr. Mehta", SpecializationID: 1, IsActive: true},
			{ID: 8, Name: "Dr. Rao", SpecializationID: 2, IsActive: true},
			{ID: 9, Name: "Dr. Iyer", SpecializationID: 2, IsActive: true},
		},
		slots: map[string][]domain.TimeSlot{
			"2026-09-07": {
				{Time: "10:00", Available: true},
				{Time: "11:00", Available: false},
				{Time: "14:00", Available: true},
			},
		},
	}
}

func TestSingleDoctorAutoSkip(t *testing.T) {
	api := singleDoctorAPI()
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectService(ctx, session.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, StepDate, session.Step)
	require.NotNil(t, session.DoctorID)
	assert.Equal(t, int64(7), *session.DoctorID)
	assert.Equal(t, "Dr. Mehta", session.DoctorName)
}

func TestMultiDoctorLandsOnPicker(t *testing.T) {
	api := singleDoctorAPI()
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectService(ctx, session.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, StepDoctor, session.Step)
	assert.Nil(t, session.DoctorID)

	session, err = svc.SelectDoctor(ctx, session.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Iyer", session.DoctorName)
}

func TestZeroDoctorsStaysOnDoctorStep(t *testing.T) {
	api := singleDoctorAPI()
	api.specializations = append(api.specializations, domain.Specialization{ID: 3, Name: "Implants", IsActive: true})
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectService(ctx, session.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, StepDoctor, session.Step)
	assert.Empty(t, svc.ListDoctors(ctx, session))
}

func TestInactiveDoctorsFilteredDefensively(t *testing.T) {
	api := singleDoctorAPI()
	api.doctors = append(api.doctors, domain.Doctor{ID: 10, Name: "Dr. Gone", SpecializationID: 1, IsActive: false})
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	// The inactive second doctor must not defeat the auto-skip.
	session, err = svc.SelectService(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, StepDate, session.Step)

	_, err = svc.SelectDoctor(ctx, session.ID, 10)
	assert.ErrorIs(t, err, ErrUnknownDoctor)
}

func TestSelectDateResolvesDisplaySlots(t *testing.T) {
	api := singleDoctorAPI()
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)

	session, err := svc.SelectDate(ctx, session.ID, "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00 AM", "2:00 PM"}, session.Slots)
}

func TestSelectDateRejectsPastAndMalformed(t *testing.T) {
	svc := newTestService(t, singleDoctorAPI())
	ctx := context.Background()

	session := startDatedSession(t, svc)

	_, err := svc.SelectDate(ctx, session.ID, "2026-09-01")
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = svc.SelectDate(ctx, session.ID, "07-09-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSundayClosedOverridesBackend(t *testing.T) {
	api := singleDoctorAPI()
	// Backend misbehaves and reports Sunday slots; the wizard must ignore them.
	api.slots["2026-09-06"] = []domain.TimeSlot{{Time: "10:00", Available: true}}
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)

	session, err := svc.SelectDate(ctx, session.ID, "2026-09-06")
	require.NoError(t, err)
	assert.Empty(t, session.Slots)
}

func TestTodayFiltersPastSlots(t *testing.T) {
	api := singleDoctorAPI()
	api.slots["2026-09-02"] = []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "10:30", Available: true},
		{Time: "11:00", Available: true},
		{Time: "15:00", Available: true},
	}
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)

	// Clock is fixed at 10:30: 09:00 is past, 10:30 is not strictly after now.
	session, err := svc.SelectDate(ctx, session.ID, "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "3:00 PM"}, session.Slots)
}

func TestTomorrowKeepsAllSlots(t *testing.T) {
	api := singleDoctorAPI()
	api.slots["2026-09-03"] = []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "15:00", Available: true},
	}
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)

	session, err := svc.SelectDate(ctx, session.ID, "2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "3:00 PM"}, session.Slots)
}

func TestAvailabilityFailureYieldsEmptyGrid(t *testing.T) {
	api := singleDoctorAPI()
	api.availabilityErr = fmt.Errorf("backend down")
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)

	session, err := svc.SelectDate(ctx, session.ID, "2026-09-07")
	require.NoError(t, err)
	assert.Empty(t, session.Slots)
}

func TestStaleAvailabilityDiscarded(t *testing.T) {
	api := singleDoctorAPI()
	api.slots["2026-09-08"] = []domain.TimeSlot{{Time: "09:00", Available: true}}
	svc := newTestService(t, api)
	ctx := context.Background()

	session := startDatedSession(t, svc)
	sessionID := session.ID

	// While date A's resolution is in flight, the user picks date B. The hook
	// fires inside A's availability fetch, before A's result is applied.
	api.onAvailability = func(int64, string) {
		_, err := svc.SelectDate(ctx, sessionID, "2026-09-08")
		require.NoError(t, err)
	}

	session, err := svc.SelectDate(ctx, sessionID, "2026-09-07")
	require.NoError(t, err)

	// Date A's slower result must not clobber date B's.
	assert.Equal(t, "2026-09-08", session.Date)
	assert.Equal(t, []string{"9:00 AM"}, session.Slots)
}

func TestSelectTimeRequiresResolvedSlot(t *testing.T) {
	svc := newTestService(t, singleDoctorAPI())
	ctx := context.Background()

	session := startDatedSession(t, svc)
	session, err := svc.SelectDate(ctx, session.ID, "2026-09-07")
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, session.ID, "11:00 AM")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	session, err = svc.SelectTime(ctx, session.ID, "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", session.Time)
}

func TestSetPatientValidation(t *testing.T) {
	svc := newTestService(t, singleDoctorAPI())
	ctx := context.Background()
	session := startDatedSession(t, svc)

	valid := PatientDetails{FullName: "Jane Doe", Phone: "9876543210", Email: "jane@example.com", Age: 30, Gender: "Female"}

	tests := []struct {
		name   string
		mutate func(*PatientDetails)
	}{
		{"blank name", func(p *PatientDetails) { p.FullName = " " }},
		{"short phone", func(p *PatientDetails) { p.Phone = "123" }},
		{"bad email", func(p *PatientDetails) { p.Email = "jane@@x" }},
		{"zero age", func(p *PatientDetails) { p.Age = 0 }},
		{"bad gender", func(p *PatientDetails) { p.Gender = "unknown" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := valid
			tt.mutate(&details)
			_, err := svc.SetPatient(ctx, session.ID, details)
			assert.ErrorIs(t, err, ErrInvalidPatient)
		})
	}

	updated, err := svc.SetPatient(ctx, session.ID, valid)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Patient.FullName)
}

func TestHappyPathSubmit(t *testing.T) {
	api := singleDoctorAPI()
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := session.ID

	session, err = svc.SelectService(ctx, id, 1)
	require.NoError(t, err)
	require.Equal(t, StepDate, session.Step)

	_, err = svc.SelectDate(ctx, id, "2026-09-07")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "10:00 AM")
	require.NoError(t, err)

	session, err = svc.Next(ctx, id)
	require.NoError(t, err)
	require.Equal(t, StepDetails, session.Step)

	_, err = svc.SetPatient(ctx, id, PatientDetails{
		FullName: "Jane Doe", Phone: "9876543210", Email: "jane@example.com", Age: 30, Gender: "Female",
	})
	require.NoError(t, err)

	session, err = svc.Next(ctx, id)
	require.NoError(t, err)
	require.Equal(t, StepReview, session.Step)

	result, err := svc.Submit(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "APT000042", result.Token)
	assert.Equal(t, "https://t.me/Med_ad_bot?start=APT000042", result.ChatLink)

	require.Len(t, api.bookings, 1)
	booked := api.bookings[0]
	assert.Equal(t, "Root Canal Treatment", booked.Service)
	assert.Equal(t, "Dr. Mehta", booked.Doctor)
	assert.Equal(t, "website", booked.BookingSource)

	// Next Monday at 10:00 clinic-local, RFC 3339.
	at, err := time.Parse(time.RFC3339, booked.AppointmentDatetime)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-07T10:00:00+05:30", at.Format(time.RFC3339))

	session, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StepConfirmed, session.Step)
	require.NotNil(t, session.Confirmation)
	assert.Equal(t, "APT000042", session.Confirmation.Token)
}

func TestSubmitRequiresReviewStep(t *testing.T) {
	svc := newTestService(t, singleDoctorAPI())
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotReadyToSubmit)
}

func TestSubmitFailureKeepsSessionOnReview(t *testing.T) {
	api := singleDoctorAPI()
	api.bookErr = fmt.Errorf("slot conflict")
	svc := newTestService(t, api)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	id := session.ID

	_, err = svc.SelectService(ctx, id, 1)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, id, "2026-09-07")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "10:00 AM")
	require.NoError(t, err)
	_, err = svc.Next(ctx, id)
	require.NoError(t, err)
	_, err = svc.SetPatient(ctx, id, PatientDetails{
		FullName: "Jane Doe", Phone: "9876543210", Email: "jane@example.com", Age: 30, Gender: "Female",
	})
	require.NoError(t, err)
	_, err = svc.Next(ctx, id)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, id)
	require.Error(t, err)

	session, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StepReview, session.Step)
	assert.Nil(t, session.Confirmation)
}

// startDatedSession runs a session up to the date step with Dr. Mehta selected.
func startDatedSession(t *testing.T, svc *Service) *Session {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	session, err = svc.SelectService(ctx, session.ID, 1)
	require.NoError(t, err)
	require.Equal(t, StepDate, session.Step)

	return session
}
