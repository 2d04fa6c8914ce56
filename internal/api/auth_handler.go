package api

import (
	"net/http"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles admin login and identity endpoints
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity := currentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	user, err := h.services.Auth.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, h.log, err, "Admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
