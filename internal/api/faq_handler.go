package api

import (
	"net/http"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FAQHandler handles FAQ endpoints
type FAQHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFAQHandler creates a new FAQHandler
func NewFAQHandler(services *service.Services, log zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		services: services,
		log:      log.With().Str("handler", "faq").Logger(),
	}
}

// ListPublic handles GET /faqs
func (h *FAQHandler) ListPublic(c *gin.Context) {
	faqs, err := h.services.Content.ListPublicFAQs(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// List handles GET /admin/faqs
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.services.Content.ListFAQs(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// Get handles GET /admin/faqs/:id
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	faq, err := h.services.Content.GetFAQ(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}
	c.JSON(http.StatusOK, faq)
}

// Create handles POST /admin/faqs
func (h *FAQHandler) Create(c *gin.Context) {
	var input models.FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	id, err := h.services.Content.CreateFAQ(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ created successfully", "id": id})
}

// Update handles PUT /admin/faqs/:id
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input models.FAQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.services.Content.UpdateFAQ(c.Request.Context(), id, &input); err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ updated successfully"})
}

// Delete handles DELETE /admin/faqs/:id
func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Content.DeleteFAQ(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "FAQ")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully"})
}
