package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/shared/errors"
)

// OKResponse sends a 200 response with the given body fields.
func OKResponse(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

// CreatedResponse sends a 201 response with the given body fields.
func CreatedResponse(c *gin.Context, body gin.H) {
	c.JSON(http.StatusCreated, body)
}

// ErrorResponse sends an error response with the API's `{error: message}`
// body shape.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithError maps an error to the API error body. AppErrors keep
// their message and status; anything else collapses to a generic 500 so
// internal details never leak to the caller.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Code >= http.StatusInternalServerError {
			ErrorResponse(c, appErr.Code, "Something went wrong. Please try again.")
			return
		}
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
