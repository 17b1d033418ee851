package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/domain"
)

// @Summary List patients
// @Tags Patients
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Param search query string false "Search term (name, phone or email)"
// @Success 200 {object} paginatedResponse "Patients with pagination"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.PatientFilter{
		Limit:  limit,
		Offset: offset,
	}

	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	patients, total, err := h.services.Patient.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list patients", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, patients, total, page, limit)
}

// @Summary Get patient by ID
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} domain.Patient "Patient"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Patient not found"
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	patient, err := h.services.Patient.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "patient not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, patient)
}
