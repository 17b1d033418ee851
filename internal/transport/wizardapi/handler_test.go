package wizardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/internal/domain"
	"clinicbook/internal/wizard"
)

type fakeClinicAPI struct {
	confirmErr error
}

func (f *fakeClinicAPI) ListSpecializations(context.Context) ([]domain.Specialization, error) {
	return []domain.Specialization{{ID: 1, Name: "Root Canal Treatment", IsActive: true}}, nil
}

func (f *fakeClinicAPI) ListDoctors(context.Context, *int64) ([]domain.Doctor, error) {
	return []domain.Doctor{{ID: 7, Name: "Dr. Mehta", SpecializationID: 1, IsActive: true}}, nil
}

func (f *fakeClinicAPI) GetAvailability(context.Context, int64, string) ([]domain.TimeSlot, error) {
	return []domain.TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "11:00", Available: false},
	}, nil
}

func (f *fakeClinicAPI) CreateAppointment(context.Context, domain.CreateAppointmentDTO) (*domain.BookingConfirmation, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &domain.BookingConfirmation{Token: "APT000042", Date: "2026-09-07", Time: "10:00"}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := wizard.NewService(
		&fakeClinicAPI{},
		wizard.NewMemoryStore(time.Minute),
		config.ClinicConfig{Timezone: "Asia/Kolkata", ChatBotLink: "https://t.me/Med_ad_bot"},
		zap.NewNop(),
	)
	require.NoError(t, err)

	router := gin.New()
	NewHandler(svc, zap.NewNop()).InitRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]json.RawMessage
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func startSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w, envelope := doJSON(t, router, http.MethodPost, "/api/wizard/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
		Services []domain.Specialization `json:"services"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.NotEmpty(t, data.Session.ID)
	require.Len(t, data.Services, 1)
	return data.Session.ID
}

func TestWizardFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)
	base := "/api/wizard/sessions/" + id

	// Single doctor: the service step jumps straight to the date step.
	w, envelope := doJSON(t, router, http.MethodPut, base+"/service", gin.H{"specialization_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Session struct {
			Step       int      `json:"step"`
			DoctorName string   `json:"doctor_name"`
			Slots      []string `json:"slots"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &view))
	assert.Equal(t, 3, view.Session.Step)
	assert.Equal(t, "Dr. Mehta", view.Session.DoctorName)

	w, envelope = doJSON(t, router, http.MethodPut, base+"/date", gin.H{"date": "2100-01-04"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(envelope["data"], &view))
	assert.Equal(t, []string{"10:00 AM"}, view.Session.Slots)

	w, _ = doJSON(t, router, http.MethodPut, base+"/time", gin.H{"time": "10:00 AM"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, base+"/patient", gin.H{
		"full_name": "Jane Doe",
		"phone":     "9876543210",
		"email":     "jane@example.com",
		"age":       30,
		"gender":    "Female",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Token    string `json:"token"`
		ChatLink string `json:"chat_link"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &result))
	assert.Equal(t, "APT000042", result.Token)
	assert.Equal(t, "https://t.me/Med_ad_bot?start=APT000042", result.ChatLink)
}

func TestUnknownSessionReturns404(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/wizard/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTimeOutsideGridReturns409(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)
	base := "/api/wizard/sessions/" + id

	w, _ := doJSON(t, router, http.MethodPut, base+"/service", gin.H{"specialization_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, router, http.MethodPut, base+"/date", gin.H{"date": "2100-01-04"})
	require.Equal(t, http.StatusOK, w.Code)

	// 11:00 exists upstream but is booked, so it never enters the grid.
	w, _ = doJSON(t, router, http.MethodPut, base+"/time", gin.H{"time": "11:00 AM"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPastDateReturns400(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)
	base := "/api/wizard/sessions/" + id

	w, _ := doJSON(t, router, http.MethodPut, base+"/service", gin.H{"specialization_id": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodPut, base+"/date", gin.H{"date": "2020-01-06"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitBeforeReviewReturns400(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)

	w, _ := doJSON(t, router, http.MethodPost, "/api/wizard/sessions/"+id+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
