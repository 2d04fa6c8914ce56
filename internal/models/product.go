package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus represents whether a product is listed publicly
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Category groups products; read-only through the API
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Product represents a catalog product row
type Product struct {
	ID          int64           `json:"id" db:"id"`
	ProductCode string          `json:"product_code" db:"product_code"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CategoryID  *int64          `json:"category_id" db:"category_id"`
	Status      ProductStatus   `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// ProductImage is one image attached to a product
type ProductImage struct {
	ID        int64  `json:"id" db:"id"`
	ProductID int64  `json:"product_id" db:"product_id"`
	ImagePath string `json:"image_path" db:"image_path"`
	ImageName string `json:"image_name" db:"image_name"`
	IsPrimary bool   `json:"is_primary" db:"is_primary"`
}

// ProductView is the denormalized read shape: product, category name and
// image paths in upload order
type ProductView struct {
	Product
	CategoryName *string  `json:"category_name"`
	Images       []string `json:"images"`
}

// MarshalJSON renders the price as a JSON number, which the storefront's
// currency formatter expects.
func (v ProductView) MarshalJSON() ([]byte, error) {
	type view ProductView
	return json.Marshal(struct {
		view
		Price json.Number `json:"price"`
	}{view(v), json.Number(v.Price.String())})
}

// ProductForm is the raw multipart payload of a product create/update
type ProductForm struct {
	ProductCode string `form:"product_code" validate:"required,max=50"`
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required,numeric"`
	CategoryID  string `form:"category_id" validate:"omitempty,number"`
	Status      string `form:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductInput is a validated product payload
type ProductInput struct {
	ProductCode string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *int64
	Status      ProductStatus
}
