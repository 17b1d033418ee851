package wizardapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/clinicapi"
	"clinicbook/internal/domain"
	"clinicbook/internal/wizard"
)

// Handler exposes the booking wizard as a small session-based REST surface.
type Handler struct {
	wizard *wizard.Service
	logger *zap.Logger
}

func NewHandler(wizardService *wizard.Service, logger *zap.Logger) *Handler {
	return &Handler{
		wizard: wizardService,
		logger: logger,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	api := router.Group("/api/wizard")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", h.createSession)
			sessions.GET("/:id", h.getSession)
			sessions.PUT("/:id/service", h.putService)
			sessions.PUT("/:id/doctor", h.putDoctor)
			sessions.PUT("/:id/date", h.putDate)
			sessions.PUT("/:id/time", h.putTime)
			sessions.PUT("/:id/patient", h.putPatient)
			sessions.POST("/:id/next", h.next)
			sessions.POST("/:id/back", h.back)
			sessions.POST("/:id/submit", h.submit)
		}
	}
}

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		h.logger.Info("wizard request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// sessionView is the session plus the option list the current step needs.
type sessionView struct {
	Session  *wizard.Session         `json:"session"`
	Services []domain.Specialization `json:"services,omitempty"`
	Doctors  []domain.Doctor         `json:"doctors,omitempty"`
}

func (h *Handler) view(c *gin.Context, session *wizard.Session) sessionView {
	view := sessionView{Session: session}
	switch session.Step {
	case wizard.StepService:
		view.Services = h.wizard.ListServices(c.Request.Context())
	case wizard.StepDoctor:
		view.Doctors = h.wizard.ListDoctors(c.Request.Context(), session)
	}
	return view
}

func (h *Handler) createSession(c *gin.Context) {
	session, err := h.wizard.StartSession(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to start wizard session", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	successResponse(c, http.StatusCreated, h.view(c, session))
}

func (h *Handler) getSession(c *gin.Context) {
	session, err := h.wizard.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) putService(c *gin.Context) {
	var input struct {
		SpecializationID int64 `json:"specialization_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	session, err := h.wizard.SelectService(c.Request.Context(), c.Param("id"), input.SpecializationID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) putDoctor(c *gin.Context) {
	var input struct {
		DoctorID int64 `json:"doctor_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	session, err := h.wizard.SelectDoctor(c.Request.Context(), c.Param("id"), input.DoctorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) putDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	session, err := h.wizard.SelectDate(c.Request.Context(), c.Param("id"), input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) putTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	session, err := h.wizard.SelectTime(c.Request.Context(), c.Param("id"), input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) putPatient(c *gin.Context) {
	var input wizard.PatientDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	session, err := h.wizard.SetPatient(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) next(c *gin.Context) {
	session, err := h.wizard.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) back(c *gin.Context) {
	session, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, h.view(c, session))
}

func (h *Handler) submit(c *gin.Context) {
	result, err := h.wizard.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, result)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		notFoundResponse(c, "session not found")
	case errors.Is(err, wizard.ErrUnknownService):
		badRequestResponse(c, "unknown service category")
	case errors.Is(err, wizard.ErrUnknownDoctor):
		badRequestResponse(c, "unknown doctor")
	case errors.Is(err, wizard.ErrDoctorRequired):
		badRequestResponse(c, "select a doctor first")
	case errors.Is(err, domain.ErrInvalidDate):
		badRequestResponse(c, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, wizard.ErrPastDate):
		badRequestResponse(c, "date is in the past")
	case errors.Is(err, wizard.ErrSlotUnavailable):
		conflictResponse(c, "time slot is not available")
	case errors.Is(err, wizard.ErrInvalidPatient):
		badRequestResponse(c, err.Error())
	case errors.Is(err, wizard.ErrNotReadyToSubmit):
		badRequestResponse(c, "booking details are incomplete")
	case errors.Is(err, clinicapi.ErrConflict):
		conflictResponse(c, "slot already taken, pick another time")
	default:
		h.logger.Error("wizard request failed", zap.Error(err))
		errorResponse(c, http.StatusBadGateway, "booking failed, please try again")
	}
}
