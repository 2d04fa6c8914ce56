package api

import (
	"net/http"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CompanyHandler handles the company profile endpoints
type CompanyHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(services *service.Services, log zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{
		services: services,
		log:      log.With().Str("handler", "company").Logger(),
	}
}

// GetProfile handles GET /company; an unseeded profile is returned as {}
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	profile, err := h.services.Company.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Company profile")
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /company
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var input models.CompanyProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.services.Company.Update(c.Request.Context(), &input); err != nil {
		respondError(c, h.log, err, "Company profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company profile updated successfully"})
}
