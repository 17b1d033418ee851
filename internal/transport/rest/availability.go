package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/domain"
)

type availabilityResponse struct {
	DoctorID int64             `json:"doctor_id"`
	Date     string            `json:"date"`
	Slots    []domain.TimeSlot `json:"slots"`
}

// @Summary Get available time slots
// @Description Returns the hourly slot grid for a doctor on a given date. Booked
// @Description slots are included with available=false. Sundays yield an empty grid.
// @Tags Availability
// @Accept json
// @Produce json
// @Param doctor_id query int true "Doctor ID"
// @Param date query string true "Date in YYYY-MM-DD format"
// @Success 200 {object} availabilityResponse "Slot grid"
// @Failure 400 {object} errorResponseBody "Missing or invalid parameters"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /availability [get]
func (h *Handler) getAvailability(c *gin.Context) {
	doctorIDParam := c.Query("doctor_id")
	if doctorIDParam == "" {
		badRequestResponse(c, "doctor_id is required")
		return
	}

	doctorID, err := strconv.ParseInt(doctorIDParam, 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid doctor_id")
		return
	}

	date := c.Query("date")
	if date == "" {
		badRequestResponse(c, "date is required")
		return
	}

	slots, err := h.services.Availability.GetDailySlots(c.Request.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			badRequestResponse(c, "invalid date, expected YYYY-MM-DD")
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "doctor not found")
		default:
			h.logger.Error("failed to resolve availability",
				zap.Int64("doctor_id", doctorID),
				zap.String("date", date),
				zap.Error(err),
			)
			internalServerErrorResponse(c)
		}
		return
	}

	successResponse(c, http.StatusOK, availabilityResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    slots,
	})
}
