// File: medibook/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	SearchAvailability gin.HandlerFunc

	// Practitioner directory endpoints
	GetPractitionerByIDHandler        gin.HandlerFunc
	GetPractitionersByVerticalHandler gin.HandlerFunc

	// Roster and schedule management endpoints
	CreatePractitioner   gin.HandlerFunc
	UpdatePractitioner   gin.HandlerFunc
	DeletePractitioner   gin.HandlerFunc
	CreateScheduleBlock  gin.HandlerFunc
	CreateBookedInterval gin.HandlerFunc
}
