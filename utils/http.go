package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware that catches panics and returns structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a service error onto the HTTP status dictated by
// its code: 404 notFound, 400 invalidInput, 409 conflict/raceLost,
// 503 for store failures and anything else.
func RespondError(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		JSONError(c, http.StatusNotFound, "not found", err.Error())
	case IsInvalidInput(err):
		JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case IsConflict(err), IsRaceLost(err):
		JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		JSONError(c, http.StatusServiceUnavailable, "service unavailable", err.Error())
	}
}
