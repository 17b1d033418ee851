package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/domain"
)

// @Summary Book an appointment
// @Description Creates a pending appointment and returns a booking confirmation
// @Description with a reference token. The slot is re-checked against the doctor's
// @Description availability before the record is written.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Booking request"
// @Success 201 {object} domain.BookingConfirmation "Booking confirmation"
// @Failure 400 {object} errorResponseBody "Invalid booking data"
// @Failure 409 {object} errorResponseBody "Slot already taken"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var dto domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	confirmation, err := h.services.Appointment.Create(c.Request.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			conflictResponse(c, "slot already taken")
		case errors.Is(err, domain.ErrClinicClosed):
			badRequestResponse(c, "clinic is closed on the requested date")
		case errors.Is(err, domain.ErrDoctorNotFound):
			badRequestResponse(c, "doctor not found")
		case errors.Is(err, domain.ErrInvalidDatetime),
			errors.Is(err, domain.ErrInvalidDate),
			errors.Is(err, domain.ErrInvalidTime):
			badRequestResponse(c, "invalid appointment datetime")
		case errors.Is(err, domain.ErrValidation):
			badRequestResponse(c, err.Error())
		default:
			h.logger.Error("failed to create appointment", zap.Error(err))
			internalServerErrorResponse(c)
		}
		return
	}

	createdResponse(c, confirmation)
}

// @Summary List appointments
// @Tags Appointments
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Param doctor_id query int false "Filter by doctor ID"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Success 200 {object} paginatedResponse "Appointments with pagination"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.AppointmentFilter{
		Limit:  limit,
		Offset: offset,
	}

	if doctorIDParam := c.Query("doctor_id"); doctorIDParam != "" {
		doctorID, err := strconv.ParseInt(doctorIDParam, 10, 64)
		if err != nil {
			badRequestResponse(c, "invalid doctor_id")
			return
		}
		filter.DoctorID = &doctorID
	}

	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}

	if statusParam := c.Query("status"); statusParam != "" {
		status := domain.AppointmentStatus(statusParam)
		filter.Status = &status
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list appointments", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, appointments, total, page, limit)
}

// @Summary Get appointment by ID
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} domain.Appointment "Appointment"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "appointment not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Update appointment status
// @Description Moves an appointment along the pending -> confirmed -> completed
// @Description lifecycle. Completed and cancelled are terminal.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param input body domain.UpdateAppointmentStatusDTO true "Target status"
// @Success 200 {object} messageResponseType "Status updated"
// @Failure 400 {object} errorResponseBody "Invalid status transition"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id}/status [patch]
func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	var dto domain.UpdateAppointmentStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Appointment.UpdateStatus(c.Request.Context(), id, dto.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "appointment not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			badRequestResponse(c, "invalid status transition")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	messageResponse(c, http.StatusOK, "appointment status updated")
}

// @Summary Cancel appointment
// @Description Cancelling frees the slot for other patients.
// @Tags Appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} messageResponseType "Cancelled"
// @Failure 400 {object} errorResponseBody "Appointment already terminal"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "appointment not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			badRequestResponse(c, "appointment cannot be cancelled")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	messageResponse(c, http.StatusOK, "appointment cancelled")
}
