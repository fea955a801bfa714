package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// OrderStatus is the fulfilment state of an order. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// OrderStatuses lists the accepted order statuses
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseOrderStatus returns ErrInvalidOrderStatus for values outside OrderStatuses
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, s)
	}
	return status, nil
}

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

var PaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
	}
	return status, nil
}

// Order is placed by a user and owns its items, payments and shipping addresses
type Order struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id" validate:"required"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	Status     OrderStatus     `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
	Items      []*OrderItem    `json:"items,omitempty" db:"-"`
}

// ApplyDefaults sets an unspecified status to Pending
func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

func (o *Order) Validate() error {
	if err := validateStruct(o); err != nil {
		return err
	}
	if !o.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderStatus, o.Status)
	}
	return validateMoney("total_price", o.TotalPrice, 10, 2)
}

// ItemsTotal sums price times quantity over the order's items
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) String() string {
	return fmt.Sprintf("Order %s - %s", o.ID, o.UserID)
}

// OrderItem keeps the product price as it was when the order was placed
type OrderItem struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	OrderID   uuid.UUID       `json:"order_id" db:"order_id"`
	ProductID uuid.UUID       `json:"product_id" db:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" db:"quantity" validate:"gte=0"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// Snapshot copies the product's current price into a new order item
func Snapshot(product *Product, quantity int) *OrderItem {
	return &OrderItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
	}
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i *OrderItem) Validate() error {
	if err := validateStruct(i); err != nil {
		return err
	}
	return validateMoney("price", i.Price, 10, 2)
}

func (i *OrderItem) String() string {
	return fmt.Sprintf("%s (%d)", i.ProductID, i.Quantity)
}

// Payment records one payment attempt against an order
type Payment struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	OrderID       uuid.UUID       `json:"order_id" db:"order_id" validate:"required"`
	PaymentMethod string          `json:"payment_method" db:"payment_method" validate:"required,max=50"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        PaymentStatus   `json:"status" db:"status"`
	Timestamp     time.Time       `json:"timestamp" db:"timestamp"`
}

func (p *Payment) ApplyDefaults() {
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
}

func (p *Payment) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, p.Status)
	}
	return validateMoney("amount", p.Amount, 10, 2)
}

func (p *Payment) String() string {
	return fmt.Sprintf("Payment %s - %s", p.ID, p.OrderID)
}

// ShippingAddress is where an order ships to
type ShippingAddress struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id" validate:"required"`
	OrderID      uuid.UUID `json:"order_id" db:"order_id" validate:"required"`
	AddressLine1 string    `json:"address_line1" db:"address_line1" validate:"required,max=255"`
	AddressLine2 string    `json:"address_line2" db:"address_line2" validate:"max=255"`
	City         string    `json:"city" db:"city" validate:"required,max=100"`
	State        string    `json:"state" db:"state" validate:"required,max=100"`
	PostalCode   string    `json:"postal_code" db:"postal_code" validate:"required,max=20"`
	Country      string    `json:"country" db:"country" validate:"required,max=100"`
}

func (a *ShippingAddress) Validate() error {
	return validateStruct(a)
}

func (a *ShippingAddress) String() string {
	return a.AddressLine1
}
