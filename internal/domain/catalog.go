package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductImageDir is the asset prefix product images are stored under
const ProductImageDir = "product_images/"

// Category groups products; deleting it deletes its products
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required,max=100"`
	Description string    `json:"description" db:"description"`
}

func (c *Category) Validate() error {
	return validateStruct(c)
}

func (c *Category) String() string {
	return c.Name
}

// Product represents a product in the catalog
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name" validate:"required,max=100"`
	Description string          `json:"description" db:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	CategoryID  uuid.UUID       `json:"category_id" db:"category_id" validate:"required"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

func (p *Product) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	return validateMoney("price", p.Price, 10, 2)
}

func (p *Product) String() string {
	return p.Name
}

// ProductImage is an image asset attached to a product
type ProductImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id" validate:"required"`
	Image     string    `json:"image" db:"image" validate:"required,max=255"`
}

func (i *ProductImage) Validate() error {
	return validateStruct(i)
}

func (i *ProductImage) String() string {
	return i.Image
}

// ProductReview is a user's rating of a product. A user may review the same product more than once.
type ProductReview struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" validate:"required"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (r *ProductReview) Validate() error {
	return validateStruct(r)
}

func (r *ProductReview) String() string {
	return fmt.Sprintf("%s - %s", r.ProductID, r.UserID)
}
