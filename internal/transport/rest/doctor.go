package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/domain"
)

// @Summary List doctors
// @Description Returns doctors with optional filtering by specialization and activity
// @Tags Doctors
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Param specialization_id query int false "Filter by specialization ID"
// @Param active_only query boolean false "Return only active doctors"
// @Param search query string false "Search term"
// @Success 200 {object} paginatedResponse "Doctors with pagination"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.DoctorFilter{
		Limit:  limit,
		Offset: offset,
	}

	if specID := c.Query("specialization_id"); specID != "" {
		id, err := strconv.ParseInt(specID, 10, 64)
		if err != nil {
			badRequestResponse(c, "invalid specialization_id")
			return
		}
		filter.SpecializationID = &id
	}

	if c.Query("active_only") == "true" {
		isActive := true
		filter.IsActive = &isActive
	}

	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	doctors, total, err := h.services.Doctor.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list doctors", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, doctors, total, page, limit)
}

// @Summary Get doctor by ID
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} domain.Doctor "Doctor"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "doctor not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Create doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Doctor data"
// @Success 201 {object} successResponseBody "Created doctor ID"
// @Failure 400 {object} errorResponseBody "Invalid request body or OPD window"
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var dto domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Doctor.Create(c.Request.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpecializationNotFound):
			badRequestResponse(c, "specialization not found")
		case errors.Is(err, domain.ErrInvalidTime):
			badRequestResponse(c, "invalid OPD time window")
		default:
			h.logger.Error("failed to create doctor", zap.Error(err))
			internalServerErrorResponse(c)
		}
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param input body domain.UpdateDoctorDTO true "Fields to update"
// @Success 200 {object} messageResponseType "Updated"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	var dto domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Doctor.Update(c.Request.Context(), id, dto); err != nil {
		switch {
		case errors.Is(err, domain.ErrSpecializationNotFound):
			badRequestResponse(c, "specialization not found")
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "doctor not found")
		case errors.Is(err, domain.ErrInvalidTime):
			badRequestResponse(c, "invalid OPD time window")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	messageResponse(c, http.StatusOK, "doctor updated")
}

// @Summary Delete doctor
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Router /doctors/{id} [delete]
func (h *Handler) deleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	if err := h.services.Doctor.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "doctor not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
