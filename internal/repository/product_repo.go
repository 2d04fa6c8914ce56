package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/company-site-api/internal/database"
	"github.com/company-site-api/internal/models"
	"github.com/lib/pq"
)

// productRepo is the concrete implementation of ProductRepository
type productRepo struct {
	db *database.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *database.DB) ProductRepository {
	return &productRepo{db: db}
}

const productViewColumns = `
	SELECT p.id, p.product_code, p.name, p.description, p.price, p.category_id,
	       p.status, p.created_at, c.name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

// List returns products joined with their category name and images,
// newest first. activeOnly restricts the result to status=active.
func (r *productRepo) List(ctx context.Context, activeOnly bool) ([]*models.ProductView, error) {
	var sb strings.Builder
	sb.WriteString(productViewColumns)
	args := []interface{}{}
	if activeOnly {
		sb.WriteString(" WHERE p.status = $1")
		args = append(args, models.ProductStatusActive)
	}
	sb.WriteString(" ORDER BY p.created_at DESC, p.id DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*models.ProductView, 0)
	for rows.Next() {
		p, err := scanProductView(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product view, or nil if absent (or inactive
// when activeOnly is set)
func (r *productRepo) GetByID(ctx context.Context, id int64, activeOnly bool) (*models.ProductView, error) {
	query := productViewColumns + " WHERE p.id = $1"
	args := []interface{}{id}
	if activeOnly {
		query += " AND p.status = $2"
		args = append(args, models.ProductStatusActive)
	}

	p, err := scanProductView(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, []*models.ProductView{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// attachImages loads image rows for all given products in one query and
// groups them by product id, preserving insertion order
func (r *productRepo) attachImages(ctx context.Context, products []*models.ProductView) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(products))
	byID := make(map[int64]*models.ProductView, len(products))
	for _, p := range products {
		p.Images = make([]string, 0)
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, image_path FROM product_images WHERE product_id = ANY($1) ORDER BY product_id, id`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var path string
		if err := rows.Scan(&productID, &path); err != nil {
			return err
		}
		if p, ok := byID[productID]; ok {
			p.Images = append(p.Images, path)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProductView(row rowScanner) (*models.ProductView, error) {
	var p models.ProductView
	var categoryID sql.NullInt64
	var categoryName sql.NullString

	err := row.Scan(
		&p.ID, &p.ProductCode, &p.Name, &p.Description, &p.Price, &categoryID,
		&p.Status, &p.CreatedAt, &categoryName,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		id := categoryID.Int64
		p.CategoryID = &id
	}
	if categoryName.Valid {
		name := categoryName.String
		p.CategoryName = &name
	}
	return &p, nil
}

// Create inserts a product and returns its new id
func (r *productRepo) Create(ctx context.Context, product *models.Product) (int64, error) {
	query := `
		INSERT INTO products (product_code, name, description, price, category_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.ProductCode, product.Name, product.Description, product.Price,
		nullableID(product.CategoryID), product.Status,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update overwrites every scalar field of a product
func (r *productRepo) Update(ctx context.Context, product *models.Product) (bool, error) {
	query := `
		UPDATE products SET
			product_code = $1, name = $2, description = $3, price = $4, category_id = $5, status = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		product.ProductCode, product.Name, product.Description, product.Price,
		nullableID(product.CategoryID), product.Status, product.ID,
	)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// Delete removes the product row; images must already be gone
func (r *productRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// ListImages returns a product's image rows in upload order
func (r *productRepo) ListImages(ctx context.Context, productID int64) ([]*models.ProductImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, image_path, image_name, is_primary FROM product_images WHERE product_id = $1 ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*models.ProductImage, 0)
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImagePath, &img.ImageName, &img.IsPrimary); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	return images, rows.Err()
}

// AddImage inserts one image row and sets its ID
func (r *productRepo) AddImage(ctx context.Context, image *models.ProductImage) error {
	query := `
		INSERT INTO product_images (product_id, image_path, image_name, is_primary)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		image.ProductID, image.ImagePath, image.ImageName, image.IsPrimary,
	).Scan(&image.ID)
}

// DeleteImage removes a single image row
func (r *productRepo) DeleteImage(ctx context.Context, imageID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM product_images WHERE id = $1", imageID)
	return err
}

// DeleteImages removes every image row of a product
func (r *productRepo) DeleteImages(ctx context.Context, productID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM product_images WHERE product_id = $1", productID)
	return err
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
