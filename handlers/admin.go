// File: medibook/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/practitioner"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the roster and schedule management endpoints.
type AdminHandler struct {
	Practitioners practitioner.PractitionerService
	Schedules     schedule.ScheduleService
	Logger        *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(practitioners practitioner.PractitionerService, schedules schedule.ScheduleService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Practitioners: practitioners, Schedules: schedules, Logger: logger}
}

// CreatePractitionerHandler handles POST /api/admin/practitioners.
func (h *AdminHandler) CreatePractitionerHandler(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Practitioners.Create(c.Request.Context(), &p); err != nil {
		var invalid practitioner.InvalidInputError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", invalid.Message)
			return
		}
		h.Logger.Error("Failed to create practitioner", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "creation failed",
			"An unexpected error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusCreated, p.Summary())
}

// UpdatePractitionerHandler handles PUT /api/admin/practitioners/:id.
func (h *AdminHandler) UpdatePractitionerHandler(c *gin.Context) {
	var p models.Practitioner
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p.ID = c.Param("id")

	if err := h.Practitioners.Update(c.Request.Context(), &p); err != nil {
		var invalid practitioner.InvalidInputError
		var notFound practitioner.NotFoundError
		switch {
		case errors.As(err, &invalid):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", invalid.Message)
		case errors.As(err, &notFound):
			utils.JSONError(c, http.StatusNotFound, "not found", notFound.Error())
		default:
			h.Logger.Error("Failed to update practitioner", zap.String("id", p.ID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "update failed",
				"An unexpected error occurred. Please try again later.")
		}
		return
	}
	c.JSON(http.StatusOK, p.Summary())
}

// DeletePractitionerHandler handles DELETE /api/admin/practitioners/:id.
func (h *AdminHandler) DeletePractitionerHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Practitioners.Delete(c.Request.Context(), id); err != nil {
		var notFound practitioner.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "not found", notFound.Error())
			return
		}
		h.Logger.Error("Failed to delete practitioner", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "deletion failed",
			"An unexpected error occurred. Please try again later.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateScheduleBlockHandler handles POST /api/admin/schedule-blocks.
func (h *AdminHandler) CreateScheduleBlockHandler(c *gin.Context) {
	var input schedule.BlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block, err := h.Schedules.CreateBlock(c.Request.Context(), input)
	if err != nil {
		var invalid schedule.InvalidInputError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", invalid.Message)
			return
		}
		h.Logger.Error("Failed to create schedule block", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "creation failed",
			"An unexpected error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusCreated, block)
}

// CreateBookedIntervalHandler handles POST /api/admin/booked-intervals.
func (h *AdminHandler) CreateBookedIntervalHandler(c *gin.Context) {
	var input schedule.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Schedules.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var invalid schedule.InvalidInputError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", invalid.Message)
			return
		}
		h.Logger.Error("Failed to create booked interval", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "creation failed",
			"An unexpected error occurred. Please try again later.")
		return
	}
	c.JSON(http.StatusCreated, booking)
}
