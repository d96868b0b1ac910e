package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorDetail is one entry of the errors array in an error response.
type ErrorDetail struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error  string        `json:"error"`
	Errors []ErrorDetail `json:"errors"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Internal Server Error",
					Errors: []ErrorDetail{{
						Status: http.StatusInternalServerError,
						Title:  "Internal Server Error",
						Detail: "An unexpected error occurred. Please try again later.",
					}},
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, title string, detail string) {
	Logger := GetLogger()
	Logger.Warn(title, zap.String("detail", detail))
	c.JSON(status, ErrorResponse{
		Error: title,
		Errors: []ErrorDetail{{
			Status: status,
			Title:  title,
			Detail: detail,
		}},
	})
}
