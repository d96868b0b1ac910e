package routes

import (
	"time"

	"medibook/handlers"
	"medibook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability search endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMemberMiddleware())
		api.POST("/search", hb.SearchAvailability)
	}
}

// RegisterPractitionerRoutes registers the practitioner directory endpoints.
func RegisterPractitionerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/practitioners")
	{
		api.Use(middleware.JWTAuthMemberMiddleware())
		api.GET("/id/:id", hb.GetPractitionerByIDHandler)
		api.GET("/vertical/:vertical", hb.GetPractitionersByVerticalHandler)
	}
}

// RegisterAdminRoutes registers the roster and schedule management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMemberMiddleware())
		api.POST("/practitioners", hb.CreatePractitioner)
		api.PUT("/practitioners/:id", hb.UpdatePractitioner)
		api.DELETE("/practitioners/:id", hb.DeletePractitioner)
		api.POST("/schedule-blocks", hb.CreateScheduleBlock)
		api.POST("/booked-intervals", hb.CreateBookedInterval)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterPractitionerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
