package service

import (
	"context"

	"github.com/company-site-api/internal/auth"
	"github.com/company-site-api/internal/config"
	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authorize(token string) (*auth.Identity, error)
	Profile(ctx context.Context, id int64) (*models.AdminSummary, error)
}

// CompanyService defines the interface for the company profile
type CompanyService interface {
	Get(ctx context.Context) (*models.CompanyProfile, error)
	Update(ctx context.Context, input *models.CompanyProfileInput) error
}

// CatalogService defines the interface for products, their images and categories
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListPublicProducts(ctx context.Context) ([]*models.ProductView, error)
	GetPublicProduct(ctx context.Context, id int64) (*models.ProductView, error)
	ListProducts(ctx context.Context) ([]*models.ProductView, error)
	GetProduct(ctx context.Context, id int64) (*models.ProductView, error)
	CreateProduct(ctx context.Context, form *models.ProductForm, images []media.Upload) (int64, error)
	UpdateProduct(ctx context.Context, id int64, form *models.ProductForm, images []media.Upload) error
	DeleteProduct(ctx context.Context, id int64) error
}

// ContentService defines the interface for articles and FAQs
type ContentService interface {
	ListPublicArticles(ctx context.Context) ([]*models.Article, error)
	GetPublicArticle(ctx context.Context, id int64) (*models.Article, error)
	ListArticles(ctx context.Context) ([]*models.Article, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)
	CreateArticle(ctx context.Context, form *models.ArticleForm, image *media.Upload) (int64, error)
	UpdateArticle(ctx context.Context, id int64, form *models.ArticleForm, image *media.Upload) error
	DeleteArticle(ctx context.Context, id int64) error

	ListPublicFAQs(ctx context.Context) ([]*models.FAQ, error)
	ListFAQs(ctx context.Context) ([]*models.FAQ, error)
	GetFAQ(ctx context.Context, id int64) (*models.FAQ, error)
	CreateFAQ(ctx context.Context, input *models.FAQInput) (int64, error)
	UpdateFAQ(ctx context.Context, id int64, input *models.FAQInput) error
	DeleteFAQ(ctx context.Context, id int64) error
}

// HealthService reports whether backing stores are reachable
type HealthService interface {
	Check(ctx context.Context) error
}

// MediaStore is the subset of the media store the services depend on
type MediaStore interface {
	Save(ctx context.Context, up media.Upload) (*media.StoredFile, error)
	Delete(name string) error
}

// Pinger is implemented by *database.DB
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Company CompanyService
	Catalog CatalogService
	Content ContentService
	Health  HealthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, store MediaStore, db Pinger, cfg *config.Config, log zerolog.Logger) *Services {
	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: cfg.Auth.JWTSecret,
		TTL:       cfg.Auth.TokenTTL,
		Issuer:    cfg.Auth.Issuer,
	})
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	v := validation.NewValidator()

	return &Services{
		Auth:    newAuthService(repos.Admin, tokens, hasher, v, log),
		Company: newCompanyService(repos.Company, v, log),
		Catalog: newCatalogService(repos, store, v, cfg.Media.MaxProductImages, log),
		Content: newContentService(repos, store, v, log),
		Health:  healthService{db: db},
	}
}

type healthService struct {
	db Pinger
}

func (h healthService) Check(ctx context.Context) error {
	if h.db == nil {
		return nil
	}
	return h.db.HealthCheck(ctx)
}
