package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/company-site-api/internal/auth"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service and auth errors onto the {message} envelope.
// Unclassified errors are logged and answered with a fixed 500 message.
func respondError(c *gin.Context, log zerolog.Logger, err error, resource string) {
	var invalid *service.InvalidInputError

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  invalid.Fields,
		})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, auth.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
	case errors.Is(err, service.ErrNotFound):
		if resource == "" {
			resource = "Resource"
		}
		c.JSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
	}
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}
