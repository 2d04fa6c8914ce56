package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/company-site-api/internal/api"
	"github.com/company-site-api/internal/config"
	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/mocks"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/service"
	"github.com/company-site-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// seedCatalog fills the in-memory catalog with products of three images each
func seedCatalog(b *testing.B, store *mocks.Store, n int) {
	b.Helper()
	ctx := context.Background()
	store.Category.Add(1, "Spices")

	categoryID := int64(1)
	for i := 0; i < n; i++ {
		status := models.ProductStatusActive
		if i%4 == 0 {
			status = models.ProductStatusInactive
		}
		id, err := store.Product.Create(ctx, &models.Product{
			ProductCode: fmt.Sprintf("P%05d", i),
			Name:        fmt.Sprintf("Product %d", i),
			Price:       decimal.NewFromInt(int64(1000 + i)),
			CategoryID:  &categoryID,
			Status:      status,
		})
		if err != nil {
			b.Fatalf("Create failed: %v", err)
		}
		for j := 0; j < 3; j++ {
			store.Product.AddImage(ctx, &models.ProductImage{
				ProductID: id,
				ImagePath: fmt.Sprintf("%d-%d.png", id, j),
				IsPrimary: j == 0,
			})
		}
	}
}

// BenchmarkListProductViews benchmarks shaping product views (category + images)
func BenchmarkListProductViews(b *testing.B) {
	_, store := mocks.NewRepositories()
	seedCatalog(b, store, 1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := store.Product.List(ctx, true); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkPublicProductsEndpoint benchmarks GET /products end to end, JSON encoding included
func BenchmarkPublicProductsEndpoint(b *testing.B) {
	gin.SetMode(gin.TestMode)

	repos, store := mocks.NewRepositories()
	seedCatalog(b, store, 500)

	cfg := &config.Config{
		Auth:  config.AuthConfig{JWTSecret: "bench", TokenTTL: time.Hour},
		Media: config.MediaConfig{UploadDir: b.TempDir(), URLPrefix: "/uploads", MaxFileSize: 1 << 20, MaxProductImages: 5},
	}
	mediaStore, err := media.NewStore(cfg.Media, zerolog.Nop())
	if err != nil {
		b.Fatal(err)
	}
	router := api.NewRouter(service.NewServices(repos, mediaStore, nil, cfg, zerolog.Nop()), cfg, zerolog.Nop())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
		if w.Code != http.StatusOK {
			b.Fatalf("Expected 200, got %d", w.Code)
		}
	}
}

// BenchmarkProductJSON benchmarks encoding a product view with decimal price
func BenchmarkProductJSON(b *testing.B) {
	name := "Spices"
	categoryID := int64(1)
	view := &models.ProductView{
		Product: models.Product{
			ID:          1,
			ProductCode: "P00001",
			Name:        "Black pepper",
			Price:       decimal.RequireFromString("12500.75"),
			CategoryID:  &categoryID,
			Status:      models.ProductStatusActive,
			CreatedAt:   time.Now(),
		},
		CategoryName: &name,
		Images:       []string{"1-0.png", "1-1.png", "1-2.png"},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := enc.Encode(view); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkValidation benchmarks product form validation
func BenchmarkValidation(b *testing.B) {
	v := validation.NewValidator()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		form := &models.ProductForm{
			ProductCode: "P001",
			Name:        "Widget",
			Price:       "1000.50",
			CategoryID:  "1",
			Status:      "active",
		}
		if _, errs := v.ValidateProduct(form); len(errs) > 0 {
			b.Fatalf("unexpected errors: %v", errs)
		}
	}
}
