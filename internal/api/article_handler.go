package api

import (
	"net/http"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListPublic handles GET /articles
func (h *ArticleHandler) ListPublic(c *gin.Context) {
	articles, err := h.services.Content.ListPublicArticles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Article")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetPublic handles GET /articles/:id
func (h *ArticleHandler) GetPublic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.services.Content.GetPublicArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// List handles GET /admin/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Content.ListArticles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Article")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get handles GET /admin/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.services.Content.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create handles POST /admin/articles (multipart, optional "image")
func (h *ArticleHandler) Create(c *gin.Context) {
	form, image, ok := h.bind(c)
	if !ok {
		return
	}
	defer image.Close()

	id, err := h.services.Content.CreateArticle(c.Request.Context(), form, image.first())
	if err != nil {
		respondError(c, h.log, err, "Article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article created successfully", "id": id})
}

// Update handles PUT /admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	form, image, ok := h.bind(c)
	if !ok {
		return
	}
	defer image.Close()

	if err := h.services.Content.UpdateArticle(c.Request.Context(), id, form, image.first()); err != nil {
		respondError(c, h.log, err, "Article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully"})
}

// Delete handles DELETE /admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Content.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *ArticleHandler) bind(c *gin.Context) (*models.ArticleForm, *openedUploads, bool) {
	var form models.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return nil, nil, false
	}

	image, err := openUploads(c, "image")
	if err != nil {
		h.log.Warn().Err(err).Msg("Rejected multipart body")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return nil, nil, false
	}
	return &form, image, true
}
