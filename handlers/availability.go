// File: medibook/handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"medibook/models"
	"medibook/services/availability"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the availability search endpoint.
type AvailabilityHandler struct {
	Service availability.Service
	Logger  *zap.Logger
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// availabilitySearchRequest is the wire form of an availability search.
// Instants arrive as strings so UTC-naive timestamps can be accepted.
type availabilitySearchRequest struct {
	PractitionerIDs []string `json:"practitionerIds"`
	MemberTimezone  string   `json:"memberTimezone"`
	StartTime       string   `json:"startTime,omitempty"`
	EndTime         string   `json:"endTime,omitempty"`
	ProviderType    string   `json:"providerType,omitempty"`
	CanPrescribe    *bool    `json:"canPrescribe,omitempty"`
}

// parseInstant accepts RFC 3339 instants and zone-naive timestamps, which are
// treated as UTC.
func parseInstant(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SearchAvailability handles POST /api/availability/search.
func (h *AvailabilityHandler) SearchAvailability(c *gin.Context) {
	var req availabilitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	startTime, err := parseInstant(req.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "startTime is not a valid instant")
		return
	}
	endTime, err := parseInstant(req.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "endTime is not a valid instant")
		return
	}

	query := models.AvailabilityQuery{
		PractitionerIDs: req.PractitionerIDs,
		MemberTimezone:  req.MemberTimezone,
		StartTime:       startTime,
		EndTime:         endTime,
		ProviderType:    req.ProviderType,
		CanPrescribe:    req.CanPrescribe,
	}

	days, err := h.Service.SearchAvailability(c.Request.Context(), query)
	if err != nil {
		var ve *availability.ValidationError
		if errors.As(err, &ve) {
			utils.JSONError(c, http.StatusBadRequest, ve.Code, ve.Message)
			return
		}
		h.Logger.Error("availability search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed",
			"An unexpected error occurred. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
