package api

import (
	"net/http"

	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProductHandler handles product and category endpoints
type ProductHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(services *service.Services, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		services: services,
		log:      log.With().Str("handler", "product").Logger(),
	}
}

// ListPublic handles GET /products
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.services.Catalog.ListPublicProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetPublic handles GET /products/:id
func (h *ProductHandler) GetPublic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.services.Catalog.GetPublicProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Category")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// List handles GET /admin/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.services.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.services.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /admin/products (multipart, up to N "images")
func (h *ProductHandler) Create(c *gin.Context) {
	form, images, ok := h.bind(c)
	if !ok {
		return
	}
	defer images.Close()

	id, err := h.services.Catalog.CreateProduct(c.Request.Context(), form, images.uploads)
	if err != nil {
		respondError(c, h.log, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product created successfully", "id": id})
}

// Update handles PUT /admin/products/:id; omitting images keeps the current ones
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	form, images, ok := h.bind(c)
	if !ok {
		return
	}
	defer images.Close()

	if err := h.services.Catalog.UpdateProduct(c.Request.Context(), id, form, images.uploads); err != nil {
		respondError(c, h.log, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// Delete handles DELETE /admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) bind(c *gin.Context) (*models.ProductForm, *openedUploads, bool) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return nil, nil, false
	}

	images, err := openUploads(c, "images")
	if err != nil {
		h.log.Warn().Err(err).Msg("Rejected multipart body")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return nil, nil, false
	}
	return &form, images, true
}
