package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leadportal-api/internal/ghl"
	"leadportal-api/internal/repositories"
	"leadportal-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// isValidationError checks if an error carries the validation wrap the
// services apply before any outbound call
func isValidationError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "validation failed")
}

// respondError maps service errors onto the envelope: validation → 400,
// unauthorized → 403, missing records → 404, upstream non-2xx and
// everything else → 500
func respondError(c *gin.Context, err error, fallback string) {
	var statusErr *ghl.StatusError
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error: err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "User not found",
		})
	case errors.As(err, &statusErr):
		// Upstream non-2xx is a server-side failure no matter what
		// the upstream body text says
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request body",
		Message: err.Error(),
	})
}
