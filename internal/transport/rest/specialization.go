package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicbook/internal/domain"
)

// @Summary List specializations
// @Description Returns specializations with optional filtering and pagination
// @Tags Specializations
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset (default 0)"
// @Param active_only query boolean false "Return only active specializations"
// @Param search query string false "Search term"
// @Success 200 {object} paginatedResponse "Specializations with pagination"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /specializations [get]
func (h *Handler) getSpecializations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := domain.SpecializationFilter{
		Limit:  limit,
		Offset: offset,
	}

	if c.Query("active_only") == "true" {
		isActive := true
		filter.IsActive = &isActive
	}

	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	specializations, total, err := h.services.Specialization.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list specializations", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	page := offset/limit + 1
	paginatedSuccessResponse(c, specializations, total, page, limit)
}

// @Summary Get specialization by ID
// @Tags Specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} domain.Specialization "Specialization"
// @Failure 400 {object} errorResponseBody "Invalid ID"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [get]
func (h *Handler) getSpecializationByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	specialization, err := h.services.Specialization.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "specialization not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, specialization)
}

// @Summary Create specialization
// @Tags Specializations
// @Accept json
// @Produce json
// @Param input body domain.CreateSpecializationDTO true "Specialization data"
// @Success 201 {object} successResponseBody "Created specialization ID"
// @Failure 400 {object} errorResponseBody "Invalid request body"
// @Router /specializations [post]
func (h *Handler) createSpecialization(c *gin.Context) {
	var dto domain.CreateSpecializationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	id, err := h.services.Specialization.Create(c.Request.Context(), dto)
	if err != nil {
		h.logger.Error("failed to create specialization", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Update specialization
// @Tags Specializations
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Param input body domain.UpdateSpecializationDTO true "Fields to update"
// @Success 200 {object} messageResponseType "Updated"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [put]
func (h *Handler) updateSpecialization(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	var dto domain.UpdateSpecializationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Specialization.Update(c.Request.Context(), id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "specialization not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "specialization updated")
}

// @Summary Delete specialization
// @Tags Specializations
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Specialization not found"
// @Router /specializations/{id} [delete]
func (h *Handler) deleteSpecialization(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid id")
		return
	}

	if err := h.services.Specialization.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "specialization not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
