package repository

import (
	"context"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error)
}

// CompanyRepository defines the interface for the singleton company profile
type CompanyRepository interface {
	Get(ctx context.Context) (*models.CompanyProfile, error)
	Update(ctx context.Context, profile *models.CompanyProfile) (bool, error)
}

// CategoryRepository defines the interface for category reads
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
}

// ProductRepository defines the interface for products and their images
type ProductRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*models.ProductView, error)
	GetByID(ctx context.Context, id int64, activeOnly bool) (*models.ProductView, error)
	Create(ctx context.Context, product *models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	ListImages(ctx context.Context, productID int64) ([]*models.ProductImage, error)
	AddImage(ctx context.Context, image *models.ProductImage) error
	DeleteImage(ctx context.Context, imageID int64) error
	DeleteImages(ctx context.Context, productID int64) error
}

// ArticleRepository defines the interface for article operations
type ArticleRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64, publishedOnly bool) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) (int64, error)
	Update(ctx context.Context, article *models.Article, replaceImage bool) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// FAQRepository defines the interface for FAQ operations
type FAQRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*models.FAQ, error)
	GetByID(ctx context.Context, id int64) (*models.FAQ, error)
	Create(ctx context.Context, faq *models.FAQ) (int64, error)
	Update(ctx context.Context, faq *models.FAQ) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Admin    AdminRepository
	Company  CompanyRepository
	Category CategoryRepository
	Product  ProductRepository
	Article  ArticleRepository
	FAQ      FAQRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Admin:    NewAdminRepo(db),
		Company:  NewCompanyRepo(db),
		Category: NewCategoryRepo(db),
		Product:  NewProductRepo(db),
		Article:  NewArticleRepo(db),
		FAQ:      NewFAQRepo(db),
	}
}

// affected reports whether an exec result touched at least one row
func affected(res interface{ RowsAffected() (int64, error) }) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
