package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/company-site-api/internal/media"
	"github.com/company-site-api/internal/models"
	"github.com/company-site-api/internal/repository"
	"github.com/company-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// errProductGone marks a delete of a product that no longer exists. It maps
// to a server error, not 404.
var errProductGone = errors.New("product lookup returned no row")

// catalogService is the concrete implementation of CatalogService
type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	store      MediaStore
	validator  *validation.Validator
	maxImages  int
	log        zerolog.Logger
}

func newCatalogService(repos *repository.Repositories, store MediaStore, v *validation.Validator, maxImages int, log zerolog.Logger) *catalogService {
	return &catalogService{
		products:   repos.Product,
		categories: repos.Category,
		store:      store,
		validator:  v,
		maxImages:  maxImages,
		log:        log.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListPublicProducts(ctx context.Context) ([]*models.ProductView, error) {
	return s.list(ctx, true)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*models.ProductView, error) {
	return s.list(ctx, false)
}

func (s *catalogService) GetPublicProduct(ctx context.Context, id int64) (*models.ProductView, error) {
	return s.get(ctx, id, true)
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.ProductView, error) {
	return s.get(ctx, id, false)
}

func (s *catalogService) list(ctx context.Context, activeOnly bool) ([]*models.ProductView, error) {
	products, err := s.products.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) get(ctx context.Context, id int64, activeOnly bool) (*models.ProductView, error) {
	product, err := s.products.GetByID(ctx, id, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// CreateProduct inserts the product row, then one image row per upload with
// the first flagged primary. A failed image insert leaves the product in place.
func (s *catalogService) CreateProduct(ctx context.Context, form *models.ProductForm, images []media.Upload) (int64, error) {
	input, err := s.validate(form, images)
	if err != nil {
		return 0, err
	}

	stored, err := s.storeAll(ctx, images)
	if err != nil {
		return 0, err
	}

	product := newProduct(input)
	id, err := s.products.Create(ctx, product)
	if err != nil {
		s.discard(stored)
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.attach(ctx, id, stored); err != nil {
		return id, err
	}

	s.log.Info().
		Int64("product_id", id).
		Str("product_code", product.ProductCode).
		Int("images", len(stored)).
		Msg("Product created")

	return id, nil
}

// UpdateProduct overwrites the scalar fields. Supplying images replaces the
// whole set; supplying none leaves the current images untouched.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, form *models.ProductForm, images []media.Upload) error {
	input, err := s.validate(form, images)
	if err != nil {
		return err
	}

	stored, err := s.storeAll(ctx, images)
	if err != nil {
		return err
	}

	product := newProduct(input)
	product.ID = id
	ok, err := s.products.Update(ctx, product)
	if err != nil {
		s.discard(stored)
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	if !ok {
		s.discard(stored)
		return ErrNotFound
	}

	if len(stored) > 0 {
		if err := s.removeImages(ctx, id); err != nil {
			s.discard(stored)
			return err
		}
		if err := s.attach(ctx, id, stored); err != nil {
			return err
		}
	}

	s.log.Info().
		Int64("product_id", id).
		Bool("images_replaced", len(stored) > 0).
		Msg("Product updated")

	return nil
}

// DeleteProduct removes the image files and rows before the product row so an
// interruption leaves at worst an image-less product.
func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.products.GetByID(ctx, id, false)
	if err != nil {
		return fmt.Errorf("failed to get product %d: %w", id, err)
	}
	if product == nil {
		return fmt.Errorf("product %d: %w", id, errProductGone)
	}

	if err := s.removeImages(ctx, id); err != nil {
		return err
	}

	if _, err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	s.log.Info().Int64("product_id", id).Msg("Product deleted")
	return nil
}

func (s *catalogService) validate(form *models.ProductForm, images []media.Upload) (*models.ProductInput, error) {
	input, errs := s.validator.ValidateProduct(form)
	if len(images) > s.maxImages {
		errs = append(errs, validation.ValidationError{
			Field:   "images",
			Message: fmt.Sprintf("at most %d images are allowed", s.maxImages),
			Value:   len(images),
		})
	}
	if len(errs) > 0 {
		return nil, invalidInput(errs)
	}
	return input, nil
}

// storeAll saves every upload; on the first rejection the files already
// written by this call are removed.
func (s *catalogService) storeAll(ctx context.Context, uploads []media.Upload) ([]*media.StoredFile, error) {
	stored := make([]*media.StoredFile, 0, len(uploads))
	for _, up := range uploads {
		file, err := s.store.Save(ctx, up)
		if err != nil {
			s.discard(stored)
			return nil, uploadError("images", up.Name, err)
		}
		stored = append(stored, file)
	}
	return stored, nil
}

// attach inserts image rows in upload order. Files whose rows were never
// written are removed so they do not linger unreferenced.
func (s *catalogService) attach(ctx context.Context, productID int64, stored []*media.StoredFile) error {
	for i, file := range stored {
		image := &models.ProductImage{
			ProductID: productID,
			ImagePath: file.Path,
			ImageName: file.OriginalName,
			IsPrimary: i == 0,
		}
		if err := s.products.AddImage(ctx, image); err != nil {
			s.discard(stored[i:])
			s.log.Error().
				Err(err).
				Int64("product_id", productID).
				Int("inserted", i).
				Int("requested", len(stored)).
				Msg("Image insert failed, product kept")
			return fmt.Errorf("failed to add image to product %d: %w", productID, err)
		}
	}
	return nil
}

// removeImages unlinks each file then deletes its row, then clears any rows left.
func (s *catalogService) removeImages(ctx context.Context, productID int64) error {
	images, err := s.products.ListImages(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to list images of product %d: %w", productID, err)
	}

	for _, img := range images {
		if err := s.store.Delete(img.ImagePath); err != nil {
			return fmt.Errorf("failed to delete image file: %w", err)
		}
		if err := s.products.DeleteImage(ctx, img.ID); err != nil {
			return fmt.Errorf("failed to delete image %d: %w", img.ID, err)
		}
	}

	if err := s.products.DeleteImages(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete images of product %d: %w", productID, err)
	}
	return nil
}

func (s *catalogService) discard(files []*media.StoredFile) {
	for _, f := range files {
		if err := s.store.Delete(f.Path); err != nil {
			s.log.Warn().Err(err).Str("image_path", f.Path).Msg("Failed to remove unused image")
		}
	}
}

func newProduct(in *models.ProductInput) *models.Product {
	return &models.Product{
		ProductCode: in.ProductCode,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
	}
}
