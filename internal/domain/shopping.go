package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCartItemQuantity applies when a cart item is added without a quantity
const DefaultCartItemQuantity = 1

// Cart belongs to exactly one user
type Cart struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	UserID    uuid.UUID   `json:"user_id" db:"user_id" validate:"required"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	Items     []*CartItem `json:"items,omitempty" db:"-"`
}

// CartItem references a product in a cart
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CartID    uuid.UUID `json:"cart_id" db:"cart_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" db:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" db:"quantity" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ApplyDefaults treats a zero quantity as unspecified
func (i *CartItem) ApplyDefaults() {
	if i.Quantity == 0 {
		i.Quantity = DefaultCartItemQuantity
	}
}

func (i *CartItem) Validate() error {
	return validateStruct(i)
}

func (i *CartItem) String() string {
	return fmt.Sprintf("%s (%d)", i.ProductID, i.Quantity)
}

// Wishlist belongs to exactly one user and holds any number of products
type Wishlist struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     uuid.UUID   `json:"user_id" db:"user_id" validate:"required"`
	ProductIDs []uuid.UUID `json:"product_ids" db:"-"`
}

// Contains reports whether the product is on the wishlist
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// DiscountCode is a percentage discount valid inside a time window.
// Codes are not attached to carts or orders.
type DiscountCode struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Code            string          `json:"code" db:"code" validate:"required,max=50"`
	DiscountPercent decimal.Decimal `json:"discount_percent" db:"discount_percent"`
	ValidFrom       time.Time       `json:"valid_from" db:"valid_from" validate:"required"`
	ValidTo         time.Time       `json:"valid_to" db:"valid_to" validate:"required"`
}

func (d *DiscountCode) Validate() error {
	if err := validateStruct(d); err != nil {
		return err
	}
	return validateMoney("discount_percent", d.DiscountPercent, 5, 2)
}

// ActiveAt reports whether t falls inside the validity window, bounds included
func (d *DiscountCode) ActiveAt(t time.Time) bool {
	return !t.Before(d.ValidFrom) && !t.After(d.ValidTo)
}

func (d *DiscountCode) String() string {
	return d.Code
}
