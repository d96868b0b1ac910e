// File: medibook/handlers/practitioner.go
package handlers

import (
	"errors"
	"net/http"

	"medibook/services/practitioner"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PractitionerHandler serves the practitioner directory endpoints.
type PractitionerHandler struct {
	Service practitioner.PractitionerService
}

// NewPractitionerHandler creates a new PractitionerHandler.
func NewPractitionerHandler(svc practitioner.PractitionerService) *PractitionerHandler {
	return &PractitionerHandler{Service: svc}
}

// GetPractitionerByIDHandler handles GET /practitioners/:id.
func (h *PractitionerHandler) GetPractitionerByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	summary, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		var notFound practitioner.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Practitioner not found"})
			return
		}
		logger.Error("Failed to retrieve practitioner", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get practitioner"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPractitionersByVerticalHandler handles GET /practitioners/vertical/:vertical.
func (h *PractitionerHandler) GetPractitionersByVerticalHandler(c *gin.Context) {
	logger := utils.GetLogger()
	vertical := c.Param("vertical")

	summaries, err := h.Service.GetByVertical(c.Request.Context(), vertical)
	if err != nil {
		logger.Error("Failed to list practitioners", zap.String("vertical", vertical), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list practitioners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"practitioners": summaries})
}
